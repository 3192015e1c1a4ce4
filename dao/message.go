package dao

import (
	"fmt"
	"time"

	"gitee.com/taoJie_1/support-agent/model/db"
)

type MessageDb struct{}

func (d *MessageDb) Insert(m *db.Message) error {
	now := time.Now().Unix()
	m.CreatedAt = now
	m.UpdatedAt = now

	sql := fmt.Sprintf("INSERT INTO `%s` (`id`, `session_id`, `message_type`, `content`, `metadata`, `is_read`, `created_at`, `updated_at`) VALUES (?, ?, ?, ?, ?, ?, ?, ?);", db.Message{}.TableName())
	_, err := DB.Exec(sql, m.Id, m.SessionId, m.MessageType, m.Content, m.Metadata, m.IsRead, m.CreatedAt, m.UpdatedAt)
	return err
}

// ListBySession 按时间升序取会话消息
func (d *MessageDb) ListBySession(list *[]db.Message, sessionId string, limit int64) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` WHERE `session_id` = ? ORDER BY `created_at` ASC LIMIT ?;", db.Message{}.TableName())
	return DB.Select(list, sql, sessionId, limit)
}

// GetById 取单条消息, 校验其归属会话
func (d *MessageDb) GetById(m *db.Message, id, sessionId string) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` WHERE `id` = ? AND `session_id` = ? LIMIT 1;", db.Message{}.TableName())
	return DB.Get(m, sql, id, sessionId)
}
