package task

import (
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/taoJie_1/support-agent/dao"
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type faqSeed struct {
	category enum.FaqCategory
	question string
	answer   string
	keywords []string
	priority int64
}

type quickReplySeed struct {
	category enum.FaqCategory
	title    string
	payload  string
	sort     int64
	icon     string
}

// SeedFaqs 导入FAQ和快捷回复种子语料
// 表中已有数据时跳过, 重复执行安全
func (m *Manager) SeedFaqs() error {
	var faqTotal, replyTotal int64
	if err := dao.App.FaqDb.Count(&faqTotal); err != nil {
		return fmt.Errorf("查询FAQ数量失败: %w", err)
	}
	if err := dao.App.QuickReplyDb.Count(&replyTotal); err != nil {
		return fmt.Errorf("查询快捷回复数量失败: %w", err)
	}
	if faqTotal > 0 && replyTotal > 0 {
		global.Log.Infof("语料已存在(FAQ: %d, 快捷回复: %d), 跳过导入", faqTotal, replyTotal)
		return nil
	}

	now := time.Now().Unix()

	faqRows := make([]map[string]interface{}, 0, len(faqSeeds))
	if faqTotal == 0 {
		for _, s := range faqSeeds {
			keywords, err := json.Marshal(s.keywords)
			if err != nil {
				return fmt.Errorf("序列化FAQ关键词失败: %w", err)
			}
			faqRows = append(faqRows, map[string]interface{}{
				"id":                uuid.NewString(),
				"category":          string(s.category),
				"question":          s.question,
				"answer":            s.answer,
				"keywords":          string(keywords),
				"priority":          s.priority,
				"is_active":         true,
				"view_count":        0,
				"helpful_votes":     0,
				"not_helpful_votes": 0,
				"created_at":        now,
				"updated_at":        now,
			})
		}
	}

	replyRows := make([]map[string]interface{}, 0, len(quickReplySeeds))
	if replyTotal == 0 {
		for _, s := range quickReplySeeds {
			replyRows = append(replyRows, map[string]interface{}{
				"category":   string(s.category),
				"title":      s.title,
				"payload":    s.payload,
				"sort":       s.sort,
				"is_active":  true,
				"icon":       s.icon,
				"created_at": now,
				"updated_at": now,
			})
		}
	}

	var faqCount, replyCount int64
	err := dao.Tx(func(tx *sqlx.Tx) (e error) {
		if faqCount, e = dao.App.FaqDb.BatchInsert(faqRows, tx); e != nil {
			return e
		}
		replyCount, e = dao.App.QuickReplyDb.BatchInsert(replyRows, tx)
		return e
	})
	if err != nil {
		global.Log.Errorln("[sd83hf]导入种子语料失败:", err)
		return fmt.Errorf("导入种子语料失败: %w", err)
	}

	global.Log.Infof("成功导入 %d 条FAQ和 %d 条快捷回复", faqCount, replyCount)
	return nil
}

// 种子语料, 以账号/登录类支持场景为主
var faqSeeds = []faqSeed{
	// 登录认证
	{
		category: enum.FaqCategoryLogin,
		question: "I forgot my username. How can I recover it?",
		answer: "To recover your username:\n\n" +
			"**Method 1: Email Recovery**\n" +
			"1. Go to the login page\n" +
			"2. Click \"Forgot Username?\"\n" +
			"3. Enter your registered email address\n" +
			"4. Check your email for a message containing your username\n" +
			"5. If you don't receive it within 10 minutes, check your spam folder\n\n" +
			"**Method 2: Phone Recovery**\n" +
			"If you have a phone number on file, you can also receive your username via SMS.\n\n" +
			"**Still need help?** Contact our support team at support@company.com.",
		keywords: []string{"username", "forgot", "recover", "email", "login", "remember"},
		priority: 10,
	},
	{
		category: enum.FaqCategoryLogin,
		question: "My account is locked. How do I unlock it?",
		answer: "Your account gets locked after 5 failed login attempts for security reasons.\n\n" +
			"**Unlock Options:**\n\n" +
			"**Option 1: Wait (Automatic)** - wait 30 minutes for automatic unlock.\n" +
			"**Option 2: Password Reset** - use the \"Forgot Password?\" link, this immediately unlocks your account.\n" +
			"**Option 3: Contact Support** - we can unlock your account after identity verification.\n\n" +
			"**Prevention Tips:** double-check credentials before entering, use a password manager, and enable two-factor authentication.",
		keywords: []string{"locked", "unlock", "account", "security", "failed", "attempts", "blocked"},
		priority: 9,
	},
	{
		category: enum.FaqCategoryLogin,
		question: "I keep getting \"Invalid credentials\" error. What should I do?",
		answer: "Try these troubleshooting steps in order:\n\n" +
			"**1. Check Your Input** - verify spelling, ensure Caps Lock is OFF, check for extra spaces.\n" +
			"**2. Browser Issues** - clear cookies and cache, try incognito mode or a different browser.\n" +
			"**3. Account Status** - ensure your account hasn't been suspended and your email is confirmed.\n" +
			"**4. Password Issues** - try resetting your password if unsure.\n\n" +
			"**Still having trouble?** Contact support with your username, browser and device information.",
		keywords: []string{"invalid", "credentials", "error", "username", "password", "login", "wrong"},
		priority: 8,
	},
	{
		category: enum.FaqCategoryLogin,
		question: "I cannot access my account from a new device. Why?",
		answer: "Security measures may require additional verification on new devices.\n\n" +
			"**Common Causes:** two-factor authentication, unrecognized device, or location-based restrictions.\n\n" +
			"**Solutions:**\n" +
			"- For 2FA issues: enter the code from your authenticator app, or use backup codes.\n" +
			"- For device recognition: check your email for a device verification link.\n" +
			"- For location issues: a VPN might be causing conflicts.\n\n" +
			"Contact support if you can't access your 2FA device or no verification email arrives.",
		keywords: []string{"new", "device", "access", "blocked", "verification", "2fa", "location"},
		priority: 7,
	},
	// 密码管理
	{
		category: enum.FaqCategoryPassword,
		question: "How do I reset my password?",
		answer: "**Step-by-Step Password Reset:**\n\n" +
			"1. Go to the login page\n" +
			"2. Click \"Forgot Password?\" or \"Reset Password\"\n" +
			"3. Enter your email address exactly as registered\n" +
			"4. Check your email (including spam/junk folders)\n" +
			"5. Click the reset link and create a new secure password\n\n" +
			"**Important Notes:** reset links expire after 24 hours, and you can only request a new reset every 5 minutes.",
		keywords: []string{"reset", "password", "forgot", "change", "new", "recover"},
		priority: 10,
	},
	{
		category: enum.FaqCategoryPassword,
		question: "What are the password requirements?",
		answer: "**Minimum Requirements:**\n" +
			"- At least 8 characters long\n" +
			"- At least one uppercase letter (A-Z)\n" +
			"- At least one lowercase letter (a-z)\n" +
			"- At least one number (0-9)\n" +
			"- At least one special character (!@#$%^&*-_=+)\n\n" +
			"**Guidelines:** avoid common passwords, don't use personal information, and use a unique password not used elsewhere. We highly recommend a password manager.",
		keywords: []string{"password", "requirements", "strong", "security", "characters", "rules"},
		priority: 7,
	},
	{
		category: enum.FaqCategoryPassword,
		question: "I am not receiving the password reset email. What should I do?",
		answer: "**Email Delivery Troubleshooting:**\n\n" +
			"1. **Check spam/junk folder** - reset emails often end up there\n" +
			"2. **Wait 10-15 minutes** - email delivery can be delayed\n" +
			"3. **Check email address** - ensure you entered it correctly\n" +
			"4. **Try again** - request another reset email\n\n" +
			"Add noreply@company.com to your safe senders list. Gmail users should also check the \"Promotions\" and \"Updates\" tabs.\n\n" +
			"**Still no email after 1 hour?** Contact support directly via live chat.",
		keywords: []string{"reset", "email", "not", "received", "spam", "delivery", "missing"},
		priority: 8,
	},
	{
		category: enum.FaqCategoryPassword,
		question: "My password reset link has expired. What now?",
		answer: "Reset links are valid for 24 hours only, as a security measure.\n\n" +
			"**What to Do:**\n" +
			"1. Go back to the login page and click \"Forgot Password?\" again\n" +
			"2. Request a fresh reset link\n" +
			"3. Use the new link promptly and complete the reset in one session\n\n" +
			"If you keep missing the deadline, contact support for assistance with an immediate password reset.",
		keywords: []string{"reset", "link", "expired", "timeout", "24", "hours", "new"},
		priority: 6,
	},
	// 账号管理
	{
		category: enum.FaqCategoryAccount,
		question: "How do I change my email address?",
		answer: "**Email Change Process:**\n\n" +
			"1. Log into your account and go to \"Account Settings\"\n" +
			"2. Find the \"Email Address\" section and click \"Change Email\"\n" +
			"3. Enter your new email address and current password\n" +
			"4. Check your NEW email for a verification link and click it\n\n" +
			"The change will not take effect until verified. You have 24 hours to complete verification, and confirmations are sent to both addresses.",
		keywords: []string{"email", "change", "update", "address", "modify", "new"},
		priority: 6,
	},
	{
		category: enum.FaqCategoryAccount,
		question: "How do I update my phone number?",
		answer: "**Phone Number Update Process:**\n\n" +
			"1. Log into your account and navigate to \"Account Settings\"\n" +
			"2. Select \"Contact Information\" and find the \"Phone Number\" section\n" +
			"3. Enter your new number with country code (no dashes or spaces)\n" +
			"4. Verify with the 6-digit code sent via SMS or call\n\n" +
			"Your phone number is used for 2FA codes, account recovery via SMS, and security alerts.",
		keywords: []string{"phone", "number", "update", "change", "mobile", "sms", "2fa"},
		priority: 5,
	},
	{
		category: enum.FaqCategoryAccount,
		question: "How do I delete or deactivate my account?",
		answer: "**Temporary Deactivation** (recommended): your account is hidden but data is preserved, and it can be reactivated anytime. Go to Account Settings > Privacy & Security > \"Deactivate Account\".\n\n" +
			"**Permanent Deletion:** all data is permanently removed and cannot be undone after a 30-day grace period. This requires contacting our support team and verifying your identity.\n\n" +
			"**Before you delete:** download your data with the export tool and cancel active subscriptions.",
		keywords: []string{"delete", "deactivate", "account", "remove", "close", "cancel"},
		priority: 4,
	},
	// 安全
	{
		category: enum.FaqCategorySecurity,
		question: "How do I enable two-factor authentication (2FA)?",
		answer: "Two-factor authentication adds an extra security layer by requiring a second form of verification.\n\n" +
			"**Setup Process:**\n" +
			"1. Go to \"Account Settings\" > \"Security\" > \"Two-Factor Authentication\"\n" +
			"2. Choose your method:\n" +
			"   - **Authenticator App** (most secure): scan the QR code with Google Authenticator, Authy, or Microsoft Authenticator\n" +
			"   - **SMS Text Messages**: receive codes via text\n" +
			"3. Save your backup codes in a secure location\n" +
			"4. Log out and back in to test your setup",
		keywords: []string{"2fa", "two", "factor", "authentication", "security", "enable", "setup"},
		priority: 9,
	},
	{
		category: enum.FaqCategorySecurity,
		question: "I lost my 2FA device. How can I access my account?",
		answer: "Don't panic! There are several recovery options available.\n\n" +
			"**Option 1: Use Backup Codes** - use any unused backup code to log in, then generate new ones.\n" +
			"**Option 2: Alternative 2FA Method** - try SMS or email codes if configured.\n" +
			"**Option 3: Trusted Device** - if still logged in elsewhere, temporarily disable 2FA in Security Settings.\n\n" +
			"**When other options don't work**, contact support with proof of identity. Standard recovery takes 24-48 hours.",
		keywords: []string{"2fa", "lost", "device", "backup", "codes", "recovery", "access"},
		priority: 10,
	},
	// 账单
	{
		category: enum.FaqCategoryBilling,
		question: "How do I view and download my invoices?",
		answer: "**Viewing Invoices Online:**\n" +
			"1. Log into your account and navigate to \"Billing\"\n" +
			"2. Select \"Billing History\" or \"Invoices\"\n" +
			"3. Click any invoice to view details\n\n" +
			"**Downloading:** click \"Download PDF\" next to any invoice. Invoices are also sent automatically to your billing email, and historical invoices are available for 7 years.",
		keywords: []string{"invoice", "billing", "download", "view", "receipt", "statement"},
		priority: 6,
	},
	{
		category: enum.FaqCategoryBilling,
		question: "How do I update my payment method?",
		answer: "**Adding a New Payment Method:**\n" +
			"1. Go to Account Settings > Billing > \"Payment Methods\"\n" +
			"2. Select \"Add Payment Method\" and choose your payment type\n" +
			"3. Enter payment details and verify\n\n" +
			"**Accepted types:** Visa, MasterCard, American Express, bank transfers (ACH/SEPA), and digital wallets (PayPal, Apple Pay, Google Pay).\n\n" +
			"**Card declined?** Contact your bank first, then verify the billing address matches your card.",
		keywords: []string{"payment", "method", "card", "billing", "update", "credit", "debit"},
		priority: 5,
	},
	// 技术支持
	{
		category: enum.FaqCategoryTechnical,
		question: "The website/app is running slowly. How can I fix this?",
		answer: "**Quick Fixes to Try First:**\n" +
			"- Clear browser cache and cookies\n" +
			"- Disable unnecessary browser extensions\n" +
			"- Try incognito/private browsing mode\n" +
			"- Test your internet speed and try a different network\n" +
			"- Close other applications and browser tabs\n\n" +
			"**Still slow?** Check our status page for ongoing maintenance, then contact support with your device, browser, and connection details.",
		keywords: []string{"slow", "performance", "loading", "speed", "lag", "website", "app"},
		priority: 7,
	},
	{
		category: enum.FaqCategoryTechnical,
		question: "I am getting error messages. What do they mean?",
		answer: "**Common Error Messages & Solutions:**\n\n" +
			"- **\"Network Error\"**: check your internet connection and refresh the page.\n" +
			"- **\"Session Expired\"**: you've been logged out for security, simply log in again.\n" +
			"- **\"500 Internal Server Error\"**: temporary issue on our end, try again in a few minutes.\n" +
			"- **\"404 Not Found\"**: the page doesn't exist, check the URL for typos.\n" +
			"- **\"Payment Failed\"**: contact your bank first and verify your billing address.\n\n" +
			"When contacting support, include the exact error message, what you were doing, and your browser information.",
		keywords: []string{"error", "message", "bug", "problem", "issue", "404", "500", "timeout"},
		priority: 8,
	},
}

var quickReplySeeds = []quickReplySeed{
	// 登录
	{enum.FaqCategoryLogin, "🔐 Forgot Username", "forgot_username", 1, "🔐"},
	{enum.FaqCategoryLogin, "🔒 Account Locked", "account_locked", 2, "🔒"},
	{enum.FaqCategoryLogin, "❌ Invalid Credentials", "invalid_credentials", 3, "❌"},
	{enum.FaqCategoryLogin, "📱 2FA Issues", "2fa_issues", 4, "📱"},
	// 密码
	{enum.FaqCategoryPassword, "🔑 Reset Password", "password_reset", 1, "🔑"},
	{enum.FaqCategoryPassword, "📋 Password Requirements", "password_requirements", 2, "📋"},
	{enum.FaqCategoryPassword, "📧 No Reset Email", "no_reset_email", 3, "📧"},
	{enum.FaqCategoryPassword, "⏰ Reset Link Expired", "reset_link_expired", 4, "⏰"},
	// 账号
	{enum.FaqCategoryAccount, "📧 Change Email", "change_email", 1, "📧"},
	{enum.FaqCategoryAccount, "📞 Update Phone", "update_phone", 2, "📞"},
	{enum.FaqCategoryAccount, "ℹ️ Personal Info", "personal_info", 3, "ℹ️"},
	{enum.FaqCategoryAccount, "🗑️ Delete Account", "delete_account", 4, "🗑️"},
	// 安全
	{enum.FaqCategorySecurity, "🔐 Enable 2FA", "enable_2fa", 1, "🔐"},
	{enum.FaqCategorySecurity, "💡 Security Tips", "security_tips", 2, "💡"},
	{enum.FaqCategorySecurity, "📱 Lost 2FA Device", "lost_2fa_device", 3, "📱"},
	{enum.FaqCategorySecurity, "⚠️ Suspicious Activity", "suspicious_activity", 4, "⚠️"},
	// 账单
	{enum.FaqCategoryBilling, "📄 View Invoices", "view_invoice", 1, "📄"},
	{enum.FaqCategoryBilling, "💳 Update Payment", "update_payment", 2, "💳"},
	{enum.FaqCategoryBilling, "↩️ Refund Request", "refund_request", 3, "↩️"},
	{enum.FaqCategoryBilling, "❓ Billing Issues", "billing_issues", 4, "❓"},
	// 技术
	{enum.FaqCategoryTechnical, "🐛 Report Bug", "report_bug", 1, "🐛"},
	{enum.FaqCategoryTechnical, "⚡ Performance Issues", "performance_issues", 2, "⚡"},
	{enum.FaqCategoryTechnical, "🔧 Feature Not Working", "feature_not_working", 3, "🔧"},
	{enum.FaqCategoryTechnical, "🌐 Browser Issues", "browser_issues", 4, "🌐"},
	// 通用
	{enum.FaqCategoryGeneral, "🔐 Login Help", "login_help", 1, "🔐"},
	{enum.FaqCategoryGeneral, "🔑 Password Issues", "password_reset", 2, "🔑"},
	{enum.FaqCategoryGeneral, "👤 Account Questions", "account_details", 3, "👤"},
	{enum.FaqCategoryGeneral, "🛡️ Security Settings", "security", 4, "🛡️"},
	{enum.FaqCategoryGeneral, "💳 Billing Help", "billing", 5, "💳"},
	{enum.FaqCategoryGeneral, "🔧 Technical Support", "technical", 6, "🔧"},
	{enum.FaqCategoryGeneral, "🙋 Speak to Human", "escalate", 7, "🙋"},
}
