package engine

import (
	"errors"
	"fmt"
)

// Intent 一类用户目标, 通过pattern/keyword子串匹配识别
type Intent struct {
	Name     string
	Patterns []string // 多词短语, 命中计2分
	Keywords []string // 单词, 命中计1分
}

// QuickReply 展示给用户的快捷操作
type QuickReply struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// Response 某个意图对应的预设回复
type Response struct {
	Message      string
	QuickReplies []QuickReply
}

// Rules 引擎的全部规则表, 启动时构建一次, 之后只读
type Rules struct {
	// 有序: 平分时先声明者获胜
	Intents []Intent
	// 意图名 -> 预设回复
	Responses map[string]Response
	// 精确载荷 -> 回复文本, 优先于意图识别
	Specific map[string]string
	// 兜底话术, 随机选取
	Defaults []string
	// 兜底回复附带的标准菜单
	DefaultQuickReplies []QuickReply
	// 新会话欢迎消息附带的菜单
	InitialQuickReplies []QuickReply
}

// Validate 校验规则表不变式: 意图名唯一且每个意图至少有一个pattern和keyword,
// 兜底话术不少于3条
func (r *Rules) Validate() error {
	if len(r.Defaults) < 3 {
		return errors.New("兜底话术不足3条")
	}

	seen := make(map[string]struct{}, len(r.Intents))
	for _, intent := range r.Intents {
		if intent.Name == "" {
			return errors.New("存在未命名的意图")
		}
		if _, dup := seen[intent.Name]; dup {
			return fmt.Errorf("意图名重复: %s", intent.Name)
		}
		seen[intent.Name] = struct{}{}

		if len(intent.Patterns) == 0 || len(intent.Keywords) == 0 {
			return fmt.Errorf("意图 %s 缺少pattern或keyword", intent.Name)
		}
	}
	return nil
}

// DefaultRules 内置规则语料
func DefaultRules() *Rules {
	return &Rules{
		Intents: []Intent{
			{
				Name:     "login_help",
				Patterns: []string{"login", "log in", "sign in", "signin", "cant login", "unable to login", "login problem"},
				Keywords: []string{"login", "signin", "access", "account", "credentials"},
			},
			{
				Name:     "password_reset",
				Patterns: []string{"password", "forgot password", "reset password", "change password", "lost password"},
				Keywords: []string{"password", "reset", "forgot", "change", "recover"},
			},
			{
				Name:     "account_details",
				Patterns: []string{"account", "profile", "update account", "change email", "personal information"},
				Keywords: []string{"account", "profile", "email", "phone", "information", "details"},
			},
			{
				Name:     "signup_help",
				Patterns: []string{"signup", "sign up", "register", "create account", "new account"},
				Keywords: []string{"signup", "register", "create", "new", "account"},
			},
			{
				Name:     "security",
				Patterns: []string{"security", "2fa", "two factor", "secure", "safety", "protection"},
				Keywords: []string{"security", "safe", "2fa", "authentication", "protection"},
			},
			{
				Name:     "greeting",
				Patterns: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
				Keywords: []string{"hello", "hi", "hey", "morning", "afternoon", "evening"},
			},
			{
				Name:     "goodbye",
				Patterns: []string{"bye", "goodbye", "see you", "thanks", "thank you", "thats all"},
				Keywords: []string{"bye", "goodbye", "thanks", "thank"},
			},
			{
				Name:     "escalate",
				Patterns: []string{"human", "agent", "representative", "speak to someone", "talk to human"},
				Keywords: []string{"human", "agent", "representative", "person", "help"},
			},
		},
		Responses: map[string]Response{
			"login_help": {
				Message: "I can help you with login issues! Here are the most common solutions:",
				QuickReplies: []QuickReply{
					{Title: "Forgot Username", Payload: "forgot_username"},
					{Title: "Account Locked", Payload: "account_locked"},
					{Title: "Invalid Credentials", Payload: "invalid_credentials"},
					{Title: "Two-Factor Issues", Payload: "2fa_issues"},
				},
			},
			"password_reset": {
				Message: "I'll guide you through the password reset process:\n\n1. Go to the login page\n2. Click 'Forgot Password?'\n3. Enter your email address\n4. Check your email for reset instructions\n5. Follow the link and create a new password\n\nIf you don't receive the email, check your spam folder or try again in a few minutes.",
				QuickReplies: []QuickReply{
					{Title: "No Reset Email", Payload: "no_reset_email"},
					{Title: "Reset Link Expired", Payload: "reset_link_expired"},
					{Title: "Password Requirements", Payload: "password_requirements"},
				},
			},
			"account_details": {
				Message: "You can update your account information in several ways:",
				QuickReplies: []QuickReply{
					{Title: "Change Email", Payload: "change_email"},
					{Title: "Update Phone", Payload: "update_phone"},
					{Title: "Personal Info", Payload: "personal_info"},
					{Title: "Delete Account", Payload: "delete_account"},
				},
			},
			"signup_help": {
				Message: "Creating a new account is easy! Here's what you need:",
				QuickReplies: []QuickReply{
					{Title: "Email Verification", Payload: "email_verification"},
					{Title: "Account Activation", Payload: "account_activation"},
					{Title: "Registration Issues", Payload: "registration_issues"},
				},
			},
			"security": {
				Message: "Security is important! Here are our security features:",
				QuickReplies: []QuickReply{
					{Title: "Enable 2FA", Payload: "enable_2fa"},
					{Title: "Security Tips", Payload: "security_tips"},
					{Title: "Suspicious Activity", Payload: "suspicious_activity"},
				},
			},
			"greeting": {
				Message: "Hello! I'm here to help you with any questions about login, passwords, account details, and more. What can I assist you with today?",
				QuickReplies: []QuickReply{
					{Title: "🔐 Login Issues", Payload: "login_help"},
					{Title: "🔑 Password Reset", Payload: "password_reset"},
					{Title: "👤 Account Details", Payload: "account_details"},
					{Title: "📝 Sign Up Help", Payload: "signup_help"},
				},
			},
			"goodbye": {
				Message:      "Thank you for using our support chat! If you need more help, just start a new conversation. Have a great day! 😊",
				QuickReplies: []QuickReply{},
			},
			"escalate": {
				Message: "I understand you'd like to speak with a human agent. I'm transferring you now...\n\n⏱️ **Estimated wait time: 3-5 minutes**\n\nWhile you wait, I can still help with common questions. Is there anything specific I can assist with?",
				QuickReplies: []QuickReply{
					{Title: "Continue with Bot", Payload: "continue_bot"},
					{Title: "Cancel Transfer", Payload: "cancel_transfer"},
				},
			},
		},
		Specific: map[string]string{
			"forgot_username":     "To recover your username:\n\n1. Visit the login page\n2. Click 'Forgot Username?'\n3. Enter your email address\n4. Check your email for your username\n\nIf you don't receive it, contact support at support@company.com",
			"account_locked":      "If your account is locked:\n\n1. Wait 15 minutes and try again\n2. Ensure you're using the correct credentials\n3. Clear your browser cache\n4. Try from a different device\n\nIf it's still locked, I can help unlock it for you.",
			"invalid_credentials": "For invalid credential errors:\n\n✅ Check your username/email spelling\n✅ Ensure Caps Lock is off\n✅ Try copying and pasting your password\n✅ Clear browser cache and cookies\n\nStill having trouble? Let me know!",
			"2fa_issues":          "Two-Factor Authentication troubleshooting:\n\n📱 **App Issues:**\n• Sync your device time\n• Try backup codes\n• Reinstall authenticator app\n\n📞 **SMS Issues:**\n• Check signal strength\n• Try calling instead of SMS\n• Update phone number",
			"no_reset_email":      "If you're not receiving the reset email:\n\n1. Check your spam/junk folder\n2. Wait 5-10 minutes (emails can be delayed)\n3. Ensure you entered the correct email\n4. Try a different email if you have multiple accounts\n5. Add noreply@company.com to your contacts",
			"enable_2fa":          "To enable Two-Factor Authentication:\n\n1. Go to Account Settings > Security\n2. Click 'Enable 2FA'\n3. Download an authenticator app (Google Authenticator, Authy)\n4. Scan the QR code\n5. Enter the verification code\n6. Save your backup codes securely\n\n🔒 This adds an extra layer of security to your account!",
		},
		Defaults: []string{
			"I'm not sure I understand that question. Could you please rephrase it or choose from the options below?",
			"I'd like to help, but I need a bit more information. What specific issue are you facing?",
			"That's an interesting question! Let me suggest some common topics I can help with:",
		},
		DefaultQuickReplies: []QuickReply{
			{Title: "🔐 Login Help", Payload: "login_help"},
			{Title: "🔑 Password Issues", Payload: "password_reset"},
			{Title: "👤 Account Questions", Payload: "account_details"},
			{Title: "🙋 Speak to Human", Payload: "escalate"},
		},
		InitialQuickReplies: []QuickReply{
			{Title: "🔐 Login Issues", Payload: "login_help"},
			{Title: "🔑 Password Reset", Payload: "password_reset"},
			{Title: "👤 Account Details", Payload: "account_details"},
			{Title: "📝 Sign Up Help", Payload: "signup_help"},
			{Title: "💳 Billing Help", Payload: "billing"},
			{Title: "❓ Other Questions", Payload: "other_questions"},
		},
	}
}
