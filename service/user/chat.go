package user

import (
	"context"
	"errors"
	"fmt"

	"gitee.com/taoJie_1/support-agent/dao"
	"gitee.com/taoJie_1/support-agent/engine"
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/db"
	"gitee.com/taoJie_1/support-agent/model/dto"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"github.com/google/uuid"
)

// ChatService 消息处理主流程
type ChatService interface {
	// SendMessage 持久化用户消息, 调用引擎分类, 持久化并返回机器人回复
	SendMessage(ctx context.Context, sessionId, content string) (*dto.SendMessageResult, error)
}

type chatService struct {
	sessions SessionService
}

func NewChatService() ChatService {
	return &chatService{sessions: NewSessionService()}
}

func (s *chatService) SendMessage(ctx context.Context, sessionId, content string) (*dto.SendMessageResult, error) {
	var session db.ChatSession
	if err := s.sessions.LoadActive(&session, sessionId); err != nil {
		return nil, err
	}

	userMessage := &db.Message{
		SessionId:   session.Id,
		MessageType: string(enum.MessageTypeUser),
		Content:     content,
	}
	userMessage.Id = uuid.NewString()
	if err := dao.App.MessageDb.Insert(userMessage); err != nil {
		return nil, fmt.Errorf("写入用户消息失败: %w", err)
	}

	result, err := global.Engine.Classify(ctx, content)
	if err != nil {
		// FAQ存储故障必须原样上抛, 不能伪装成"未命中"返回兜底回复
		if errors.Is(err, engine.ErrFaqStore) {
			global.Log.Errorf("会话 %s 分类失败, FAQ存储不可用: %v", session.Id, err)
		}
		return nil, err
	}

	botMessage := &db.Message{
		SessionId:   session.Id,
		MessageType: string(enum.MessageTypeBot),
		Content:     result.Content,
		Metadata:    marshalResultMetadata(result.Metadata),
	}
	botMessage.Id = uuid.NewString()
	if err := dao.App.MessageDb.Insert(botMessage); err != nil {
		return nil, fmt.Errorf("写入机器人消息失败: %w", err)
	}

	if err := dao.App.SessionDb.Touch(session.Id); err != nil {
		global.Log.Warnf("刷新会话 %s 活跃时间失败: %v", session.Id, err)
	}

	// 会话有新消息, 历史缓存必须失效
	s.sessions.InvalidateHistoryCache(ctx, session.Id)

	recordEvent(session.Id, enum.EventMessageSent, map[string]interface{}{
		"user_message": content,
		"bot_response": result.Content,
		"intent":       result.Intent,
		"confidence":   result.Confidence,
	})

	return &dto.SendMessageResult{
		UserMessage: toMessageView(userMessage),
		BotMessage:  toMessageView(botMessage),
	}, nil
}
