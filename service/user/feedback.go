package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gitee.com/taoJie_1/support-agent/dao"
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/db"
	"gitee.com/taoJie_1/support-agent/model/dto"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"github.com/google/uuid"
)

// helpfulRatingMin 评分达到该值视为"有用", 计入FAQ正向票
const helpfulRatingMin = 4

// FeedbackService 用户反馈
type FeedbackService interface {
	Submit(ctx context.Context, sessionId, messageId string, rating int64, comment string) (*dto.FeedbackResult, error)
}

type feedbackService struct{}

func NewFeedbackService() FeedbackService {
	return &feedbackService{}
}

func (s *feedbackService) Submit(ctx context.Context, sessionId, messageId string, rating int64, comment string) (*dto.FeedbackResult, error) {
	var session db.ChatSession
	if err := dao.App.SessionDb.GetBySessionId(&session, sessionId, false); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("查询会话失败: %w", err)
	}

	// 针对FAQ回复的反馈同步计入FAQ投票
	if messageId != "" {
		var message db.Message
		if err := dao.App.MessageDb.GetById(&message, messageId, session.Id); err != nil {
			if err == sql.ErrNoRows {
				return nil, errors.New("消息不存在")
			}
			return nil, fmt.Errorf("查询消息失败: %w", err)
		}

		meta := message.MetadataMap()
		if meta["type"] == string(enum.ResponseTypeFaq) {
			if faqId, ok := meta["faq_id"].(string); ok && faqId != "" {
				if err := dao.App.FaqDb.AddVote(faqId, rating >= helpfulRatingMin); err != nil {
					// 投票失败不阻塞反馈落库
					global.Log.Warnf("更新FAQ %s 投票失败: %v", faqId, err)
				}
			}
		}
	}

	maxLen := int(global.Config.Bot.MaxCommentLength)
	if maxLen > 0 && len(comment) > maxLen {
		comment = comment[:maxLen]
	}

	feedback := &db.UserFeedback{
		SessionId: session.Id,
		MessageId: messageId,
		Rating:    rating,
		Comment:   comment,
	}
	feedback.Id = uuid.NewString()
	if err := dao.App.FeedbackDb.Insert(feedback); err != nil {
		return nil, fmt.Errorf("写入反馈失败: %w", err)
	}

	recordEvent(session.Id, enum.EventFeedbackSubmitted, map[string]interface{}{
		"rating":     rating,
		"comment":    comment,
		"message_id": messageId,
	})

	return &dto.FeedbackResult{
		FeedbackId: feedback.Id,
		Message:    "Thank you for your feedback!",
	}, nil
}
