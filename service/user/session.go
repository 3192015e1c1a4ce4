package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"gitee.com/taoJie_1/support-agent/dao"
	"gitee.com/taoJie_1/support-agent/engine"
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/internal/redis"
	"gitee.com/taoJie_1/support-agent/model/db"
	"gitee.com/taoJie_1/support-agent/model/dto"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"gitee.com/taoJie_1/support-agent/utils"
	"github.com/google/uuid"
)

// ErrSessionNotFound 会话不存在或已失效
var ErrSessionNotFound = errors.New("会话不存在或已失效")

// ErrSessionExpired 会话超过有效期
var ErrSessionExpired = errors.New("会话已过期, 请重新开始会话")

// 历史锁被占用时的短暂等待, 给持锁方留出回填时间
const historyLockWait = 200 * time.Millisecond

const welcomeContent = "Hello! I'm your virtual assistant. I can help you with:\n\n" +
	"🔐 Login and authentication issues\n" +
	"🔑 Password recovery and reset\n" +
	"👤 Account management\n" +
	"💳 Billing and payments\n" +
	"🛡️ Security settings\n" +
	"🔧 Technical support\n\n" +
	"What can I help you with today?"

// SessionService 会话生命周期与历史记录
type SessionService interface {
	// Start 创建新会话并写入欢迎消息
	Start(ctx context.Context, userAgent, ipAddress string) (*dto.StartSessionResult, error)
	// History 读取会话历史, 缓存优先
	History(ctx context.Context, sessionId string, limit int64) (*dto.HistoryResult, error)
	// LoadActive 取有效会话并做惰性过期检查
	LoadActive(session *db.ChatSession, sessionId string) error
	// InvalidateHistoryCache 会话有新消息后失效缓存
	InvalidateHistoryCache(ctx context.Context, sessionId string)
}

type sessionService struct{}

func NewSessionService() SessionService {
	return &sessionService{}
}

func (s *sessionService) Start(ctx context.Context, userAgent, ipAddress string) (*dto.StartSessionResult, error) {
	session := &db.ChatSession{
		SessionId: uuid.NewString(),
		IsActive:  true,
		UserAgent: userAgent,
		IpAddress: ipAddress,
	}
	session.Id = uuid.NewString()

	if err := dao.App.SessionDb.Insert(session); err != nil {
		return nil, fmt.Errorf("创建会话失败: %w", err)
	}

	welcome := &db.Message{
		SessionId:   session.Id,
		MessageType: string(enum.MessageTypeBot),
		Content:     welcomeContent,
	}
	welcome.Id = uuid.NewString()
	welcome.Metadata = marshalMetadata(map[string]interface{}{
		"type":          string(enum.ResponseTypeWelcome),
		"quick_replies": global.Engine.Rules().InitialQuickReplies,
	})

	if err := dao.App.MessageDb.Insert(welcome); err != nil {
		return nil, fmt.Errorf("写入欢迎消息失败: %w", err)
	}

	recordEvent(session.Id, enum.EventSessionStarted, map[string]interface{}{
		"user_agent": userAgent,
		"ip_address": ipAddress,
	})

	return &dto.StartSessionResult{
		SessionId: session.SessionId,
		Message:   toMessageView(welcome),
	}, nil
}

func (s *sessionService) LoadActive(session *db.ChatSession, sessionId string) error {
	if err := dao.App.SessionDb.GetBySessionId(session, sessionId, true); err != nil {
		if err == sql.ErrNoRows {
			return ErrSessionNotFound
		}
		return fmt.Errorf("查询会话失败: %w", err)
	}

	// 惰性过期: 超过TTL的会话立即失效
	ttl := time.Duration(global.Config.Bot.SessionTTL) * time.Second
	if time.Since(time.Unix(session.CreatedAt, 0)) > ttl {
		if err := dao.App.SessionDb.Deactivate(session.Id); err != nil {
			global.Log.Warnf("失效过期会话 %s 失败: %v", session.Id, err)
		}
		return ErrSessionExpired
	}
	return nil
}

func (s *sessionService) History(ctx context.Context, sessionId string, limit int64) (*dto.HistoryResult, error) {
	if limit <= 0 || limit > global.Config.Bot.HistoryLimit {
		limit = global.Config.Bot.HistoryLimit
	}

	var session db.ChatSession
	if err := dao.App.SessionDb.GetBySessionId(&session, sessionId, false); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("查询会话失败: %w", err)
	}

	info := &dto.SessionInfo{
		Id:        session.SessionId,
		CreatedAt: utils.TimeFormatRFC3339(session.CreatedAt, global.Tz),
		UpdatedAt: utils.TimeFormatRFC3339(session.UpdatedAt, global.Tz),
	}

	// 缓存统一存完整窗口, 按本次limit截断返回, 避免小limit请求把缓存截短
	fetch := func() ([]*dto.MessageView, error) {
		return s.fetchHistory(session.Id, global.Config.Bot.HistoryLimit)
	}

	if global.RedisClient == nil {
		messages, err := s.fetchHistory(session.Id, limit)
		if err != nil {
			return nil, err
		}
		return &dto.HistoryResult{Messages: messages, SessionInfo: info}, nil
	}

	messages, err := s.getOrFillHistory(ctx, global.RedisClient, session.Id, limit, fetch)
	if err != nil {
		return nil, err
	}
	return &dto.HistoryResult{Messages: messages, SessionInfo: info}, nil
}

// getOrFillHistory 封装"缓存优先"逻辑: 未命中时用分布式锁防止缓存击穿,
// 拿到锁后双重检查缓存, 锁被占用则等待后重查, 仍未命中再回源作为降级
func (s *sessionService) getOrFillHistory(ctx context.Context, rdb redis.Service, sessionDbId string, limit int64, fetch func() ([]*dto.MessageView, error)) ([]*dto.MessageView, error) {
	// 1. 缓存优先
	cached, err := rdb.GetSessionHistory(ctx, sessionDbId)
	if err != nil {
		global.Log.Warnf("读取会话 %s 历史缓存失败: %v, 回源数据库", sessionDbId, err)
	} else if cached != nil {
		global.Log.Debugf("会话 %s 历史记录缓存命中", sessionDbId)
		return trimHistory(cached, limit), nil
	}

	// 2. 分布式锁防止缓存击穿
	lockKey := redis.KeyPrefixHistoryLock + sessionDbId
	lockExpiry := time.Duration(global.Config.Redis.LockExpiry) * time.Second
	agentID, _ := os.Hostname()
	if agentID == "" {
		agentID = "unknown-agent"
	}

	locked, err := rdb.SetNX(ctx, lockKey, agentID, lockExpiry).Result()
	if err != nil {
		// 获取锁失败也回源, 作为降级
		global.Log.Warnf("获取会话 %s 历史锁失败: %v", sessionDbId, err)
		return s.fillHistoryCache(ctx, rdb, sessionDbId, limit, fetch)
	}

	if locked {
		// 2a. 成功获取锁, 回源并回填
		defer func() {
			// 使用后台context确保即使原始请求取消, 锁释放也能执行
			if err := rdb.Del(context.Background(), lockKey).Err(); err != nil {
				global.Log.Warnf("释放会话 %s 历史锁失败: %v", sessionDbId, err)
			}
		}()

		// 双重检查: 等锁期间可能已有其他请求完成回填
		cached, err = rdb.GetSessionHistory(ctx, sessionDbId)
		if err == nil && cached != nil {
			global.Log.Debugf("获取锁后发现会话 %s 缓存已存在", sessionDbId)
			return trimHistory(cached, limit), nil
		}
		return s.fillHistoryCache(ctx, rdb, sessionDbId, limit, fetch)
	}

	// 2b. 锁被占用, 说明其他请求正在回源, 等待后重查
	global.Log.Debugf("会话 %s 历史锁被占用, 等待后重试", sessionDbId)
	time.Sleep(historyLockWait)

	cached, err = rdb.GetSessionHistory(ctx, sessionDbId)
	if err == nil && cached != nil {
		return trimHistory(cached, limit), nil
	}

	global.Log.Warnf("等待后会话 %s 缓存仍未命中, 直接回源作为降级", sessionDbId)
	return s.fillHistoryCache(ctx, rdb, sessionDbId, limit, fetch)
}

// fillHistoryCache 回源完整历史窗口并回填缓存, 再按本次limit截断返回
func (s *sessionService) fillHistoryCache(ctx context.Context, rdb redis.Service, sessionDbId string, limit int64, fetch func() ([]*dto.MessageView, error)) ([]*dto.MessageView, error) {
	messages, err := fetch()
	if err != nil {
		return nil, err
	}

	ttl := utils.GetTTLWithJitter(global.Config.Redis.HistoryTTL)
	if err := rdb.SetSessionHistory(ctx, sessionDbId, messages, ttl); err != nil {
		global.Log.Warnf("回填会话 %s 历史缓存失败: %v", sessionDbId, err)
	}
	return trimHistory(messages, limit), nil
}

func trimHistory(messages []*dto.MessageView, limit int64) []*dto.MessageView {
	if limit > 0 && int64(len(messages)) > limit {
		return messages[:limit]
	}
	return messages
}

func (s *sessionService) InvalidateHistoryCache(ctx context.Context, sessionId string) {
	if global.RedisClient == nil {
		return
	}
	if err := global.RedisClient.DelSessionHistory(ctx, sessionId); err != nil {
		global.Log.Warnf("失效会话 %s 历史缓存失败: %v", sessionId, err)
	}
}

func (s *sessionService) fetchHistory(sessionDbId string, limit int64) ([]*dto.MessageView, error) {
	var messages []db.Message
	if err := dao.App.MessageDb.ListBySession(&messages, sessionDbId, limit); err != nil {
		return nil, fmt.Errorf("查询会话消息失败: %w", err)
	}

	views := make([]*dto.MessageView, 0, len(messages))
	for i := range messages {
		views = append(views, toMessageView(&messages[i]))
	}
	return views, nil
}

// --- 包内共享的辅助函数 ---

func toMessageView(m *db.Message) *dto.MessageView {
	return &dto.MessageView{
		Id:        m.Id,
		Content:   m.Content,
		Timestamp: utils.TimeFormatRFC3339(m.CreatedAt, global.Tz),
		Type:      m.MessageType,
		Metadata:  m.MetadataMap(),
	}
}

func marshalMetadata(data map[string]interface{}) string {
	raw, err := json.Marshal(data)
	if err != nil {
		global.Log.Warnf("序列化消息metadata失败: %v", err)
		return "{}"
	}
	return string(raw)
}

func marshalResultMetadata(meta engine.Metadata) string {
	raw, err := json.Marshal(meta)
	if err != nil {
		global.Log.Warnf("序列化分类metadata失败: %v", err)
		return "{}"
	}
	return string(raw)
}

// recordEvent 埋点写入, 失败只告警不阻塞主流程
func recordEvent(sessionDbId string, event enum.AnalyticsEvent, data map[string]interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		global.Log.Warnf("序列化埋点数据失败: %v", err)
		return
	}

	if err := dao.App.AnalyticsDb.Insert(&db.ChatAnalytics{
		SessionId: sessionDbId,
		EventType: string(event),
		EventData: string(raw),
	}); err != nil {
		global.Log.Warnf("写入埋点事件 %s 失败: %v", event, err)
	}
}
