package db

type UserFeedback struct {
	UuidField
	SessionId string `db:"session_id" json:"session_id"`
	MessageId string `db:"message_id" json:"message_id" info:"可为空"`
	Rating    int64  `db:"rating" json:"rating" info:"1-5"`
	Comment   string `db:"comment" json:"comment"`
}

func (UserFeedback) TableName() string {
	return `user_feedbacks`
}
