package engine

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"gitee.com/taoJie_1/support-agent/model/enum"
)

// fakeFaqSearcher 内存实现, 供引擎测试注入
type fakeFaqSearcher struct {
	match       *FaqMatch
	err         error
	searchCalls int
}

func (f *fakeFaqSearcher) Search(ctx context.Context, msg string) (*FaqMatch, error) {
	f.searchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.match, nil
}

func TestClassifyGreeting(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	res, err := e.Classify(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Intent != "greeting" {
		t.Fatalf("intent = %q, want greeting", res.Intent)
	}
	if res.Content != DefaultRules().Responses["greeting"].Message {
		t.Fatalf("content 与greeting预设回复不一致")
	}
	if len(res.Metadata.QuickReplies) != 4 {
		t.Fatalf("greeting快捷回复数 = %d, want 4", len(res.Metadata.QuickReplies))
	}
	if res.Confidence <= 0 {
		t.Fatalf("confidence = %v, want > 0", res.Confidence)
	}
	if res.Metadata.Type != enum.ResponseTypeIntent {
		t.Fatalf("metadata.type = %q", res.Metadata.Type)
	}
}

func TestClassifyPasswordReset(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	res, err := e.Classify(context.Background(), "I forgot my password")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Intent != "password_reset" {
		t.Fatalf("intent = %q, want password_reset", res.Intent)
	}
	// 5步重置指引
	if !strings.Contains(res.Content, "5. Follow the link and create a new password") {
		t.Fatalf("content 不含完整重置步骤: %q", res.Content)
	}
}

func TestClassifySpecificResponsePrecedence(t *testing.T) {
	// 即使载荷文本同时命中security意图, 精确载荷也必须优先
	faq := &fakeFaqSearcher{}
	e := newTestEngine(t, nil, faq)

	res, err := e.Classify(context.Background(), "2fa_issues")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Intent != "2fa_issues" {
		t.Fatalf("intent = %q, want 2fa_issues", res.Intent)
	}
	if res.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", res.Confidence)
	}
	if res.Content != DefaultRules().Specific["2fa_issues"] {
		t.Fatalf("content 与2fa_issues预设文本不一致")
	}
	if res.Metadata.Type != enum.ResponseTypeSpecific {
		t.Fatalf("metadata.type = %q", res.Metadata.Type)
	}
	if faq.searchCalls != 0 {
		t.Fatalf("精确载荷命中不应触发FAQ检索")
	}

	// 归一化后命中: 大小写不影响
	res, err = e.Classify(context.Background(), "  Enable_2FA  ")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Intent != "enable_2fa" || res.Confidence != 1.0 {
		t.Fatalf("归一化精确命中失败: intent=%q conf=%v", res.Intent, res.Confidence)
	}
}

func TestClassifyFaqMatch(t *testing.T) {
	faq := &fakeFaqSearcher{
		match: &FaqMatch{
			Id:       "faq-1",
			Question: "How do I unlock my account?",
			Answer:   "Wait 15 minutes or contact support.",
			Category: "login",
		},
	}
	e := newTestEngine(t, nil, faq)

	// 不命中任何意图, 走FAQ检索
	res, err := e.Classify(context.Background(), "xyzzy unlock-me")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Intent != IntentFaqMatch {
		t.Fatalf("intent = %q, want %q", res.Intent, IntentFaqMatch)
	}
	if res.Confidence != 0.8 {
		t.Fatalf("FAQ命中置信度固定0.8, got %v", res.Confidence)
	}
	if res.Content != "**How do I unlock my account?**\n\nWait 15 minutes or contact support." {
		t.Fatalf("FAQ回复格式不对: %q", res.Content)
	}
	if res.Metadata.FaqId != "faq-1" {
		t.Fatalf("metadata.faq_id = %q", res.Metadata.FaqId)
	}
	if len(res.Metadata.QuickReplies) != 3 {
		t.Fatalf("FAQ快捷回复数 = %d, want 3", len(res.Metadata.QuickReplies))
	}
	if res.Metadata.QuickReplies[0].Payload != "helpful_faq-1" ||
		res.Metadata.QuickReplies[1].Payload != "not_helpful_faq-1" ||
		res.Metadata.QuickReplies[2].Payload != "escalate" {
		t.Fatalf("FAQ快捷回复载荷不对: %+v", res.Metadata.QuickReplies)
	}
}

func TestClassifyDefaultResponse(t *testing.T) {
	faq := &fakeFaqSearcher{} // 无匹配
	e := newTestEngine(t, nil, faq)

	res, err := e.Classify(context.Background(), "xyzzy plugh")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Intent != IntentUnknown {
		t.Fatalf("intent = %q, want unknown", res.Intent)
	}
	if res.Confidence != 0.0 {
		t.Fatalf("confidence = %v, want 0", res.Confidence)
	}
	// 话术内容随机, 只要求属于固定集合
	if InSlice(DefaultRules().Defaults, res.Content) == -1 {
		t.Fatalf("兜底话术不在已知集合内: %q", res.Content)
	}
	if len(res.Metadata.QuickReplies) != 4 {
		t.Fatalf("兜底快捷回复数 = %d, want 4", len(res.Metadata.QuickReplies))
	}
	if res.Metadata.Type != enum.ResponseTypeDefault {
		t.Fatalf("metadata.type = %q", res.Metadata.Type)
	}
}

func TestClassifyDefaultResponseSeeded(t *testing.T) {
	// 相同种子下兜底选择可复现
	pick := func() string {
		rules := DefaultRules()
		e, err := New(rules, &fakeFaqSearcher{}, rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		res, err := e.Classify(context.Background(), "xyzzy plugh")
		if err != nil {
			t.Fatalf("Classify: %v", err)
		}
		return res.Content
	}

	first := pick()
	for i := 0; i < 5; i++ {
		if got := pick(); got != first {
			t.Fatalf("相同种子的兜底选择不可复现: %q != %q", got, first)
		}
	}
}

func TestClassifyFaqStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	faq := &fakeFaqSearcher{err: storeErr}
	e := newTestEngine(t, nil, faq)

	_, err := e.Classify(context.Background(), "xyzzy plugh")
	if err == nil {
		t.Fatalf("FAQ存储故障必须向上传播, 不能当作未命中")
	}
	if !errors.Is(err, ErrFaqStore) {
		t.Fatalf("错误应包裹ErrFaqStore: %v", err)
	}
}

func TestClassifyEmptyMessage(t *testing.T) {
	// 空白输入不是错误, 走兜底
	e := newTestEngine(t, nil, &fakeFaqSearcher{})

	res, err := e.Classify(context.Background(), "   ")
	if err != nil {
		t.Fatalf("空白输入不应报错: %v", err)
	}
	if res.Intent != IntentUnknown || res.Confidence != 0.0 {
		t.Fatalf("空白输入应走兜底: intent=%q conf=%v", res.Intent, res.Confidence)
	}
}

// InSlice 避免engine包反向依赖utils
func InSlice(slice []string, value string) int {
	for i, item := range slice {
		if item == value {
			return i
		}
	}
	return -1
}
