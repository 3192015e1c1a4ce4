package dao

import (
	"fmt"
	"time"

	"gitee.com/taoJie_1/support-agent/model/db"
)

type FeedbackDb struct{}

func (d *FeedbackDb) Insert(f *db.UserFeedback) error {
	now := time.Now().Unix()
	f.CreatedAt = now
	f.UpdatedAt = now

	sql := fmt.Sprintf("INSERT INTO `%s` (`id`, `session_id`, `message_id`, `rating`, `comment`, `created_at`, `updated_at`) VALUES (?, ?, ?, ?, ?, ?, ?);", db.UserFeedback{}.TableName())
	_, err := DB.Exec(sql, f.Id, f.SessionId, f.MessageId, f.Rating, f.Comment, f.CreatedAt, f.UpdatedAt)
	return err
}
