package user

import (
	"context"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/support-agent/dao"
	"gitee.com/taoJie_1/support-agent/engine"
	"gitee.com/taoJie_1/support-agent/model/db"
)

// faqMatchThreshold 低于该分数的最优候选按未命中处理
const faqMatchThreshold = 2

// faqSearchService 基于数据库的FAQ检索, 实现engine.FaqSearcher
type faqSearchService struct{}

func NewFaqSearchService() engine.FaqSearcher {
	return &faqSearchService{}
}

func (s *faqSearchService) Search(ctx context.Context, message string) (*engine.FaqMatch, error) {
	var faqs []db.Faq
	if err := dao.App.FaqDb.GetActiveList(&faqs); err != nil {
		return nil, fmt.Errorf("查询FAQ失败: %w", err)
	}

	best := pickBestFaq(message, faqs)
	if best == nil {
		return nil, nil
	}

	// 命中即计数; 计数失败视为存储故障, 与检索故障同样向上传播
	if err := dao.App.FaqDb.IncrementViewCount(best.Id); err != nil {
		return nil, fmt.Errorf("FAQ计数失败: %w", err)
	}

	return &engine.FaqMatch{
		Id:       best.Id,
		Question: best.Question,
		Answer:   best.Answer,
		Category: best.Category,
	}, nil
}

// scoreFaq 单条FAQ计分: 消息任一分词是问题的子串+2, 每个FAQ关键词命中+1
func scoreFaq(message string, f *db.Faq) int {
	score := 0

	question := strings.ToLower(f.Question)
	for _, word := range strings.Fields(message) {
		if strings.Contains(question, word) {
			score += 2
			break
		}
	}

	for _, keyword := range f.KeywordList() {
		if strings.Contains(message, strings.ToLower(keyword)) {
			score += 1
		}
	}

	return score
}

// pickBestFaq 严格更高分获胜, 平分时沿候选顺序先到先得;
// 最优分低于阈值返回nil
func pickBestFaq(message string, faqs []db.Faq) *db.Faq {
	var best *db.Faq
	bestScore := 0

	for i := range faqs {
		if score := scoreFaq(message, &faqs[i]); score > bestScore {
			bestScore = score
			best = &faqs[i]
		}
	}

	if best == nil || bestScore < faqMatchThreshold {
		return nil
	}
	return best
}
