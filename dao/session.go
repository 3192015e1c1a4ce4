package dao

import (
	"fmt"
	"time"

	"gitee.com/taoJie_1/support-agent/model/db"
)

type SessionDb struct{}

func (d *SessionDb) Insert(s *db.ChatSession) error {
	now := time.Now().Unix()
	s.CreatedAt = now
	s.UpdatedAt = now

	sql := fmt.Sprintf("INSERT INTO `%s` (`id`, `session_id`, `is_active`, `user_agent`, `ip_address`, `created_at`, `updated_at`) VALUES (?, ?, ?, ?, ?, ?, ?);", db.ChatSession{}.TableName())
	_, err := DB.Exec(sql, s.Id, s.SessionId, s.IsActive, s.UserAgent, s.IpAddress, s.CreatedAt, s.UpdatedAt)
	return err
}

// GetBySessionId 按对外会话标识查询
func (d *SessionDb) GetBySessionId(s *db.ChatSession, sessionId string, activeOnly bool) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` WHERE `session_id` = ?", db.ChatSession{}.TableName())
	args := []interface{}{sessionId}
	if activeOnly {
		sql += " AND `is_active` = ?"
		args = append(args, true)
	}
	sql += " LIMIT 1;"
	return DB.Get(s, sql, args...)
}

// Touch 刷新会话活跃时间
func (d *SessionDb) Touch(id string) error {
	sql, args := utils.getUpdateSql(db.ChatSession{}, id, map[string]interface{}{
		"updated_at": time.Now().Unix(),
	})
	_, err := DB.Exec(sql, args...)
	return err
}

func (d *SessionDb) Deactivate(id string) error {
	sql, args := utils.getUpdateSql(db.ChatSession{}, id, map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now().Unix(),
	})
	_, err := DB.Exec(sql, args...)
	return err
}

// ExpireBefore 批量失效创建时间早于cutoff的会话, 返回受影响行数
func (d *SessionDb) ExpireBefore(cutoff int64) (int64, error) {
	sql := fmt.Sprintf("UPDATE `%s` SET `is_active` = ?, `updated_at` = ? WHERE `is_active` = ? AND `created_at` < ?;", db.ChatSession{}.TableName())
	result, err := DB.Exec(sql, false, time.Now().Unix(), true, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
