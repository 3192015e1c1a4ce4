package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"gitee.com/taoJie_1/support-agent/model/enum"
)

// ErrFaqStore 表示FAQ存储不可用
// 调用方必须把它和"未命中"区分开, 不能把依赖故障当作空结果
var ErrFaqStore = errors.New("FAQ存储不可用")

// FaqMatch FAQ检索命中的结果
type FaqMatch struct {
	Id       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// FaqSearcher 外部FAQ检索端口, 由存储层实现
// 未命中时返回 (nil, nil)
type FaqSearcher interface {
	Search(ctx context.Context, normalizedMessage string) (*FaqMatch, error)
}

// Metadata 单次分类结果的附加信息, 随消息持久化
type Metadata struct {
	Type         enum.ResponseType `json:"type"`
	QuickReplies []QuickReply      `json:"quick_replies"`
	FaqId        string            `json:"faq_id,omitempty"`
}

// Result 单次分类的产出, 引擎本身不持久化
type Result struct {
	Content    string   `json:"content"`
	Intent     string   `json:"intent"`
	Confidence float64  `json:"confidence"`
	Metadata   Metadata `json:"metadata"`
}

// Engine 规则式意图分类引擎
// 规则表启动时构建且只读, 并发调用无需加锁; 唯一的外部副作用在FaqSearcher内
type Engine struct {
	rules *Rules
	faq   FaqSearcher

	// 兜底回复的随机选择; rand.Rand非并发安全, 用锁保护
	mu  sync.Mutex
	rng *rand.Rand
}

// New 创建引擎; rng传nil时使用随机种子
func New(rules *Rules, faq FaqSearcher, rng *rand.Rand) (*Engine, error) {
	if rules == nil {
		return nil, errors.New("规则表不能为空")
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("规则表非法: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Engine{rules: rules, faq: faq, rng: rng}, nil
}

// Classify 对一条用户消息做完整的意图识别和回复选择
// 解析顺序固定: 精确载荷 -> 意图 -> FAQ检索 -> 随机兜底
func (e *Engine) Classify(ctx context.Context, rawMessage string) (*Result, error) {
	message := Normalize(rawMessage)

	// 精确载荷优先, 完全跳过意图识别
	if content, ok := e.rules.Specific[message]; ok {
		return &Result{
			Content:    content,
			Intent:     message,
			Confidence: 1.0,
			Metadata: Metadata{
				Type:         enum.ResponseTypeSpecific,
				QuickReplies: []QuickReply{},
			},
		}, nil
	}

	intent := e.DetectIntent(message)
	confidence := e.Confidence(message, intent)

	if resp, ok := e.rules.Responses[intent]; ok {
		return &Result{
			Content:    resp.Message,
			Intent:     intent,
			Confidence: confidence,
			Metadata: Metadata{
				Type:         enum.ResponseTypeIntent,
				QuickReplies: resp.QuickReplies,
			},
		}, nil
	}

	// 没有命中意图, 尝试FAQ检索
	if e.faq != nil {
		match, err := e.faq.Search(ctx, message)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFaqStore, err)
		}
		if match != nil {
			return &Result{
				Content:    fmt.Sprintf("**%s**\n\n%s", match.Question, match.Answer),
				Intent:     IntentFaqMatch,
				Confidence: 0.8,
				Metadata: Metadata{
					Type:  enum.ResponseTypeFaq,
					FaqId: match.Id,
					QuickReplies: []QuickReply{
						{Title: "👍 Helpful", Payload: "helpful_" + match.Id},
						{Title: "👎 Not Helpful", Payload: "not_helpful_" + match.Id},
						{Title: "More Help", Payload: "escalate"},
					},
				},
			}, nil
		}
	}

	return e.defaultResult(), nil
}

// defaultResult 随机选取一条兜底话术
func (e *Engine) defaultResult() *Result {
	e.mu.Lock()
	content := e.rules.Defaults[e.rng.Intn(len(e.rules.Defaults))]
	e.mu.Unlock()

	return &Result{
		Content:    content,
		Intent:     IntentUnknown,
		Confidence: 0.0,
		Metadata: Metadata{
			Type:         enum.ResponseTypeDefault,
			QuickReplies: e.rules.DefaultQuickReplies,
		},
	}
}

// Rules 返回引擎持有的只读规则表
func (e *Engine) Rules() *Rules {
	return e.rules
}
