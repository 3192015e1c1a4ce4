package db

type ChatAnalytics struct {
	BaseField
	SessionId string `db:"session_id" json:"session_id"`
	EventType string `db:"event_type" json:"event_type"`
	EventData string `db:"event_data" json:"event_data" info:"JSON"`
}

func (ChatAnalytics) TableName() string {
	return `chat_analytics`
}
