package enum

type DbType string

const (
	MYSQL  DbType = `mysql`
	SQLITE DbType = `sqlite3`
)

type Msg string

const (
	DefaultSuccessMsg Msg = `ok`
	DefaultFailMsg    Msg = `错误`
)

type ResCode int8

const (
	SuccessCode   ResCode = 0
	ErrorCode     ResCode = 1
	AuthErrorCode ResCode = 2
)

// 消息归属方
type MessageType string

const (
	MessageTypeUser   MessageType = "user"
	MessageTypeBot    MessageType = "bot"
	MessageTypeSystem MessageType = "system"
)

// 聊天接口的action参数
type ChatAction string

const (
	ActionStartSession      ChatAction = "start_session"
	ActionSendMessage       ChatAction = "send_message"
	ActionSubmitFeedback    ChatAction = "submit_feedback"
	ActionGetSessionHistory ChatAction = "get_session_history"
)

// ValidChatActions 供参数错误时向调用方返回可选值
var ValidChatActions = []ChatAction{
	ActionStartSession,
	ActionSendMessage,
	ActionSubmitFeedback,
	ActionGetSessionHistory,
}

// 机器人回复的来源类型, 写入消息metadata
type ResponseType string

const (
	ResponseTypeWelcome  ResponseType = "welcome_message"
	ResponseTypeSpecific ResponseType = "specific_response"
	ResponseTypeIntent   ResponseType = "intent_response"
	ResponseTypeFaq      ResponseType = "faq_response"
	ResponseTypeDefault  ResponseType = "default_response"
)

// 埋点事件类型
type AnalyticsEvent string

const (
	EventSessionStarted    AnalyticsEvent = "session_started"
	EventMessageSent       AnalyticsEvent = "message_sent"
	EventFeedbackSubmitted AnalyticsEvent = "feedback_submitted"
)

// FAQ分类, 与语料保持一致
type FaqCategory string

const (
	FaqCategoryLogin     FaqCategory = "login"
	FaqCategoryPassword  FaqCategory = "password"
	FaqCategoryAccount   FaqCategory = "account"
	FaqCategorySignup    FaqCategory = "signup"
	FaqCategorySecurity  FaqCategory = "security"
	FaqCategoryBilling   FaqCategory = "billing"
	FaqCategoryTechnical FaqCategory = "technical"
	FaqCategoryGeneral   FaqCategory = "general"
)
