package common

// ChatRequest 聊天接口统一入参, 通过action分发
type ChatRequest struct {
	Action    string `json:"action" binding:"required"`
	SessionId string `json:"session_id"`
	// send_message
	Content string `json:"content"`
	// submit_feedback
	MessageId string `json:"message_id"`
	Rating    int64  `json:"rating"`
	Comment   string `json:"comment"`
	// get_session_history
	Limit int64 `json:"limit"`
}

// FaqListRequest FAQ列表查询参数
type FaqListRequest struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Limit    int64  `form:"limit"`
}

// QuickReplyListRequest 快捷回复查询参数
type QuickReplyListRequest struct {
	Category string `form:"category"`
}
