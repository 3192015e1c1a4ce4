package engine

import (
	"math"
	"math/rand"
	"testing"
)

func newTestEngine(t *testing.T, rules *Rules, faq FaqSearcher) *Engine {
	t.Helper()
	if rules == nil {
		rules = DefaultRules()
	}
	e, err := New(rules, faq, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("创建引擎失败: %v", err)
	}
	return e
}

func TestDefaultRulesValidate(t *testing.T) {
	if err := DefaultRules().Validate(); err != nil {
		t.Fatalf("内置规则表校验失败: %v", err)
	}
}

func TestDetectIntentDeterminism(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	messages := []string{
		"i forgot my password",
		"hello",
		"cant login to my account",
		"xyzzy plugh",
	}
	for _, msg := range messages {
		first := e.DetectIntent(msg)
		firstConf := e.Confidence(msg, first)
		// 重复调用结果必须完全一致
		for i := 0; i < 10; i++ {
			if got := e.DetectIntent(msg); got != first {
				t.Fatalf("DetectIntent(%q) 不确定: %q != %q", msg, got, first)
			}
			if got := e.Confidence(msg, first); got != firstConf {
				t.Fatalf("Confidence(%q) 不确定: %v != %v", msg, got, firstConf)
			}
		}
	}
}

func TestDetectIntentThreshold(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	// 与任何pattern/keyword都不存在子串交集
	msg := "xyzzy plugh"
	if got := e.DetectIntent(msg); got != "" {
		t.Fatalf("无命中消息应返回空意图, got %q", got)
	}
	if got := e.Confidence(msg, ""); got != 0.0 {
		t.Fatalf("空意图置信度应为0, got %v", got)
	}
}

func TestDetectIntentSubstringSemantics(t *testing.T) {
	e := newTestEngine(t, &Rules{
		Intents: []Intent{
			{Name: "greet", Patterns: []string{"hi"}, Keywords: []string{"hi"}},
		},
		Responses: map[string]Response{},
		Specific:  map[string]string{},
		Defaults:  []string{"a", "b", "c"},
	}, nil)

	// 子串包含而非整词匹配: "hi"命中"this"
	if got := e.DetectIntent("this"); got != "greet" {
		t.Fatalf("子串匹配失效, got %q", got)
	}
}

func TestIntentScoringMonotonicity(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	base := "help me"
	withMore := "help me reset my password"

	// 追加命中词后, password_reset 的置信度不应下降到0以下且该意图分数不降
	baseIntent := e.DetectIntent(base)
	moreIntent := e.DetectIntent(withMore)
	if moreIntent != "password_reset" {
		t.Fatalf("期望 password_reset, got %q (base=%q)", moreIntent, baseIntent)
	}

	if c := e.Confidence(withMore, "password_reset"); c <= 0 {
		t.Fatalf("命中意图的置信度应大于0, got %v", c)
	}
}

func TestTieBreakFirstDeclaredWins(t *testing.T) {
	a := Intent{Name: "alpha", Patterns: []string{"foo"}, Keywords: []string{"foo"}}
	b := Intent{Name: "beta", Patterns: []string{"foo"}, Keywords: []string{"foo"}}
	filler := Intent{Name: "gamma", Patterns: []string{"zzz"}, Keywords: []string{"zzz"}}

	// 非平分意图的位置任意排列, 平分时永远是先声明者获胜
	permutations := [][]Intent{
		{a, b, filler},
		{a, filler, b},
		{filler, a, b},
	}
	for _, intents := range permutations {
		e := newTestEngine(t, &Rules{
			Intents:   intents,
			Responses: map[string]Response{},
			Specific:  map[string]string{},
			Defaults:  []string{"a", "b", "c"},
		}, nil)

		if got := e.DetectIntent("foo"); got != "alpha" {
			t.Fatalf("平分时应返回先声明的意图 alpha, got %q", got)
		}
	}

	// alpha和beta交换声明顺序后, 获胜者随之交换
	e := newTestEngine(t, &Rules{
		Intents:   []Intent{b, a},
		Responses: map[string]Response{},
		Specific:  map[string]string{},
		Defaults:  []string{"a", "b", "c"},
	}, nil)
	if got := e.DetectIntent("foo"); got != "beta" {
		t.Fatalf("平分时应返回先声明的意图 beta, got %q", got)
	}
}

func TestConfidenceFormula(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	// "i forgot my password": wordCount=4
	// password_reset: pattern命中1个("password"), keyword命中2个("password","forgot")
	// (1*0.4 + 2*0.2) / max(4*0.1, 1.0) = 0.8
	msg := "i forgot my password"
	if got := e.Confidence(msg, "password_reset"); math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("Confidence(%q) = %v, want 0.8", msg, got)
	}

	// 长消息摊薄置信度: 单keyword命中, 20词
	long := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen seventeen eighteen nineteen recover"
	want := 0.2 / 2.0 // (0*0.4 + 1*0.2) / (20*0.1)
	if got := e.Confidence(long, "password_reset"); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Confidence(长消息) = %v, want %v", got, want)
	}
}

func TestConfidenceBounds(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	// 空消息: wordCount=0, 分母取1, 不能除零
	if got := e.Confidence("", "password_reset"); got != 0.0 {
		t.Fatalf("空消息置信度 = %v, want 0", got)
	}

	// 大量命中也不能超过1
	msg := "password reset forgot change recover password"
	got := e.Confidence(msg, "password_reset")
	if got < 0.0 || got > 1.0 {
		t.Fatalf("置信度越界: %v", got)
	}

	// 未知意图名按0处理
	if got := e.Confidence("password", "no_such_intent"); got != 0.0 {
		t.Fatalf("未知意图置信度 = %v, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  Hello World  ": "hello world",
		"ENABLE_2FA":      "enable_2fa",
		"":                "",
		"   ":             "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
