package db

type ChatSession struct {
	UuidField
	SessionId string `db:"session_id" json:"session_id" info:"对外会话标识"`
	IsActive  bool   `db:"is_active" json:"is_active" info:"是否有效"`
	UserAgent string `db:"user_agent" json:"user_agent" info:"客户端UA"`
	IpAddress string `db:"ip_address" json:"ip_address" info:"客户端IP"`
}

func (ChatSession) TableName() string {
	return `chat_sessions`
}
