package dao

import (
	"fmt"
	"time"

	"gitee.com/taoJie_1/support-agent/model/db"
)

type AnalyticsDb struct{}

// Insert 写入埋点事件; 埋点失败不应影响主流程, 由调用方决定是否忽略错误
func (d *AnalyticsDb) Insert(a *db.ChatAnalytics) error {
	now := time.Now().Unix()
	a.CreatedAt = now
	a.UpdatedAt = now

	sql := fmt.Sprintf("INSERT INTO `%s` (`session_id`, `event_type`, `event_data`, `created_at`, `updated_at`) VALUES (?, ?, ?, ?, ?);", db.ChatAnalytics{}.TableName())
	_, err := DB.Exec(sql, a.SessionId, a.EventType, a.EventData, a.CreatedAt, a.UpdatedAt)
	return err
}
