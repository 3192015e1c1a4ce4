package dto

// FaqView FAQ列表的单条返回
type FaqView struct {
	Id               string  `json:"id"`
	Category         string  `json:"category"`
	Question         string  `json:"question"`
	Answer           string  `json:"answer"`
	HelpfulVotes     int64   `json:"helpful_votes"`
	NotHelpfulVotes  int64   `json:"not_helpful_votes"`
	HelpfulnessScore float64 `json:"helpfulness_score"`
	ViewCount        int64   `json:"view_count"`
}

// FaqListResult FAQ列表返回
type FaqListResult struct {
	Faqs       []*FaqView `json:"faqs"`
	TotalCount int        `json:"total_count"`
}

// QuickReplyView 快捷回复的单条返回
type QuickReplyView struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
	Icon    string `json:"icon,omitempty"`
}
