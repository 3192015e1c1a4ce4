package user

import (
	"testing"

	"gitee.com/taoJie_1/support-agent/model/db"
)

func makeFaq(id, question string, keywords string) db.Faq {
	f := db.Faq{
		Question: question,
		Keywords: keywords,
	}
	f.Id = id
	return f
}

// TestScoreFaq 验证计分规则: 分词命中问题+2(只计一次), 每个关键词命中+1
func TestScoreFaq(t *testing.T) {
	cases := []struct {
		name    string
		message string
		faq     db.Faq
		want    int
	}{
		{
			name:    "分词命中问题加2",
			message: "unlock my account please",
			faq:     makeFaq("f1", "My account is locked. How do I unlock it?", `[]`),
			want:    2,
		},
		{
			name:    "多个分词命中问题只加一次",
			message: "unlock locked account",
			faq:     makeFaq("f1", "My account is locked. How do I unlock it?", `[]`),
			want:    2,
		},
		{
			name:    "每个关键词命中各加1",
			message: "my account is locked",
			faq:     makeFaq("f1", "How to bake bread", `["locked","account"]`),
			want:    2,
		},
		{
			name:    "问题与关键词叠加",
			message: "my account is locked",
			faq:     makeFaq("f1", "My account is locked. How do I unlock it?", `["locked","account","unlock"]`),
			want:    4,
		},
		{
			name:    "完全不相关得0分",
			message: "xyzzy plugh",
			faq:     makeFaq("f1", "My account is locked. How do I unlock it?", `["locked","unlock"]`),
			want:    0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := scoreFaq(c.message, &c.faq); got != c.want {
				t.Errorf("scoreFaq(%q) = %d, 期望 %d", c.message, got, c.want)
			}
		})
	}
}

// TestPickBestFaqThreshold 最优分低于阈值(2)视为未命中
func TestPickBestFaqThreshold(t *testing.T) {
	faqs := []db.Faq{
		// 仅一个关键词命中, 得1分, 低于阈值
		makeFaq("f1", "How to bake bread", `["locked"]`),
	}

	if best := pickBestFaq("my account is locked", faqs); best != nil {
		t.Errorf("得1分的FAQ不应命中, 实际返回 %s", best.Id)
	}

	// 问题命中+关键词命中, 得3分, 达到阈值
	faqs = append(faqs, makeFaq("f2", "My account is locked", `["locked"]`))
	best := pickBestFaq("my account is locked", faqs)
	if best == nil {
		t.Fatal("得3分的FAQ应命中")
	}
	if best.Id != "f2" {
		t.Errorf("命中的FAQ = %s, 期望 f2", best.Id)
	}
}

// TestPickBestFaqExactThreshold 恰好等于阈值的分数应命中
func TestPickBestFaqExactThreshold(t *testing.T) {
	faqs := []db.Faq{
		makeFaq("f1", "My account is locked. How do I unlock it?", `[]`),
	}

	best := pickBestFaq("unlock my account", faqs)
	if best == nil {
		t.Fatal("恰好2分的FAQ应命中")
	}
	if best.Id != "f1" {
		t.Errorf("命中的FAQ = %s, 期望 f1", best.Id)
	}
}

// TestPickBestFaqTieBreak 平分时沿候选顺序先到先得
func TestPickBestFaqTieBreak(t *testing.T) {
	faqs := []db.Faq{
		makeFaq("first", "How do I reset my password?", `["password"]`),
		makeFaq("second", "What are the password requirements?", `["password"]`),
	}

	best := pickBestFaq("password help", faqs)
	if best == nil {
		t.Fatal("应有FAQ命中")
	}
	if best.Id != "first" {
		t.Errorf("平分时应返回候选顺序靠前者, 实际 %s", best.Id)
	}
}

// TestPickBestFaqHigherScoreWins 分数严格更高者获胜, 与顺序无关
func TestPickBestFaqHigherScoreWins(t *testing.T) {
	faqs := []db.Faq{
		makeFaq("low", "How to bake bread", `["locked"]`),
		makeFaq("high", "My account is locked", `["locked","account"]`),
	}

	best := pickBestFaq("my account is locked", faqs)
	if best == nil {
		t.Fatal("应有FAQ命中")
	}
	if best.Id != "high" {
		t.Errorf("应返回高分FAQ, 实际 %s", best.Id)
	}
}

func TestPickBestFaqEmptyList(t *testing.T) {
	if best := pickBestFaq("anything", nil); best != nil {
		t.Error("空候选列表应返回nil")
	}
}
