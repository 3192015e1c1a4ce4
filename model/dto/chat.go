package dto

// MessageView 返回给前端的单条消息
type MessageView struct {
	Id        string                 `json:"id"`
	Content   string                 `json:"content"`
	Timestamp string                 `json:"timestamp"`
	Type      string                 `json:"type"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// StartSessionResult start_session 的返回
type StartSessionResult struct {
	SessionId string       `json:"session_id"`
	Message   *MessageView `json:"message"`
}

// SendMessageResult send_message 的返回, 同时带用户消息和机器人回复
type SendMessageResult struct {
	UserMessage *MessageView `json:"user_message"`
	BotMessage  *MessageView `json:"bot_message"`
}

// SessionInfo 会话概要
type SessionInfo struct {
	Id        string `json:"id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// HistoryResult get_session_history 的返回
type HistoryResult struct {
	Messages    []*MessageView `json:"messages"`
	SessionInfo *SessionInfo   `json:"session_info"`
}

// FeedbackResult submit_feedback 的返回
type FeedbackResult struct {
	FeedbackId string `json:"feedback_id"`
	Message    string `json:"message"`
}
