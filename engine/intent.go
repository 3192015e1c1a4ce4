package engine

import "strings"

const (
	// IntentUnknown 没有任何意图命中
	IntentUnknown = "unknown"
	// IntentFaqMatch 通过FAQ检索命中
	IntentFaqMatch = "faq_match"
)

// Normalize 统一的消息归一化: 小写+去首尾空白
// 引擎各组件都假定输入已经过该处理
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// DetectIntent 对归一化后的消息打分并返回最优意图, 全部为0分时返回空串
// 计分: 每个pattern子串命中+2, 每个keyword子串命中+1
// 平分时先声明的意图获胜, 因此Intents必须是有序切片
func (e *Engine) DetectIntent(message string) string {
	bestIntent := ""
	bestScore := 0

	for _, intent := range e.rules.Intents {
		score := 0

		for _, pattern := range intent.Patterns {
			if strings.Contains(message, pattern) {
				score += 2
			}
		}

		for _, keyword := range intent.Keywords {
			if strings.Contains(message, keyword) {
				score += 1
			}
		}

		if score > bestScore {
			bestScore = score
			bestIntent = intent.Name
		}
	}

	return bestIntent
}

// Confidence 对给定意图重新计算置信度, 结果在[0,1]
// 公式与DetectIntent的计分刻意不同, 两者不可合并,
// 否则对外可见的置信度数值会发生变化
func (e *Engine) Confidence(message, intentName string) float64 {
	if intentName == "" {
		return 0.0
	}

	var intent *Intent
	for i := range e.rules.Intents {
		if e.rules.Intents[i].Name == intentName {
			intent = &e.rules.Intents[i]
			break
		}
	}
	if intent == nil {
		return 0.0
	}

	wordCount := len(strings.Fields(message))

	patternMatches := 0
	for _, pattern := range intent.Patterns {
		if strings.Contains(message, pattern) {
			patternMatches++
		}
	}

	keywordMatches := 0
	for _, keyword := range intent.Keywords {
		if strings.Contains(message, keyword) {
			keywordMatches++
		}
	}

	// 分母取max防止空消息除零
	denominator := float64(wordCount) * 0.1
	if denominator < 1.0 {
		denominator = 1.0
	}

	confidence := (float64(patternMatches)*0.4 + float64(keywordMatches)*0.2) / denominator
	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}
