package user

type ServiceGroup struct {
	SessionService  SessionService
	ChatService     ChatService
	FeedbackService FeedbackService
	FaqService      FaqService
	Validator       IValidator
}

func NewServiceGroup() ServiceGroup {
	return ServiceGroup{
		SessionService:  NewSessionService(),
		ChatService:     NewChatService(),
		FeedbackService: NewFeedbackService(),
		FaqService:      NewFaqService(),
		Validator:       &Validator{},
	}
}
