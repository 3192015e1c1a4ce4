package db

import "encoding/json"

type Faq struct {
	UuidField
	Category        string `db:"category" json:"category" info:"分类"`
	Question        string `db:"question" json:"question" info:"问题"`
	Answer          string `db:"answer" json:"answer" info:"答案"`
	Keywords        string `db:"keywords" json:"-" info:"关键词JSON数组"`
	Priority        int64  `db:"priority" json:"priority" info:"排序优先级"`
	IsActive        bool   `db:"is_active" json:"is_active"`
	ViewCount       int64  `db:"view_count" json:"view_count" info:"命中次数"`
	HelpfulVotes    int64  `db:"helpful_votes" json:"helpful_votes"`
	NotHelpfulVotes int64  `db:"not_helpful_votes" json:"not_helpful_votes"`
}

func (Faq) TableName() string {
	return `faqs`
}

// KeywordList 解析keywords JSON数组
func (f *Faq) KeywordList() []string {
	if f.Keywords == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(f.Keywords), &list); err != nil {
		return nil
	}
	return list
}

// HelpfulnessScore 有用率, 0-100
func (f *Faq) HelpfulnessScore() float64 {
	total := f.HelpfulVotes + f.NotHelpfulVotes
	if total == 0 {
		return 0
	}
	return float64(f.HelpfulVotes) / float64(total) * 100
}
