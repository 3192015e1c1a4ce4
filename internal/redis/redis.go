package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/taoJie_1/support-agent/model/dto"
	"github.com/go-redis/redis/v8"
)

const (
	// 会话历史缓存
	KeyPrefixSessionHistory = "support:history:"
	// 历史回源的分布式锁
	KeyPrefixHistoryLock = "support:lock:history:"
)

// Service 定义了Redis操作的接口
type Service interface {
	// GetSessionHistory 读取会话历史缓存, 未命中返回(nil, nil)
	GetSessionHistory(ctx context.Context, sessionId string) ([]*dto.MessageView, error)
	// SetSessionHistory 覆盖写入会话历史缓存
	SetSessionHistory(ctx context.Context, sessionId string, messages []*dto.MessageView, ttl time.Duration) error
	// DelSessionHistory 失效会话历史缓存
	DelSessionHistory(ctx context.Context, sessionId string) error

	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type client struct {
	rdb *redis.Client
}

// NewClient 创建一个新的Redis客户端实例
func NewClient(addr, password string, db int) (Service, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 10, // 连接池大小
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("连接Redis失败: %w", err)
	}

	return &client{rdb: rdb}, nil
}

func (c *client) GetSessionHistory(ctx context.Context, sessionId string) ([]*dto.MessageView, error) {
	raw, err := c.rdb.Get(ctx, KeyPrefixSessionHistory+sessionId).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var messages []*dto.MessageView
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		// 缓存数据损坏按未命中处理, 由回源覆盖
		return nil, nil
	}
	return messages, nil
}

func (c *client) SetSessionHistory(ctx context.Context, sessionId string, messages []*dto.MessageView, ttl time.Duration) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("序列化会话历史失败: %w", err)
	}
	return c.rdb.Set(ctx, KeyPrefixSessionHistory+sessionId, data, ttl).Err()
}

func (c *client) DelSessionHistory(ctx context.Context, sessionId string) error {
	return c.rdb.Del(ctx, KeyPrefixSessionHistory+sessionId).Err()
}

func (c *client) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	return c.rdb.SetNX(ctx, key, value, expiration)
}

func (c *client) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return c.rdb.Del(ctx, keys...)
}

func (c *client) Ping(ctx context.Context) *redis.StatusCmd {
	return c.rdb.Ping(ctx)
}

func (c *client) Close() error {
	return c.rdb.Close()
}
