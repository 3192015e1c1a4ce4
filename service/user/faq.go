package user

import (
	"context"
	"fmt"

	"gitee.com/taoJie_1/support-agent/dao"
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/common"
	"gitee.com/taoJie_1/support-agent/model/db"
	"gitee.com/taoJie_1/support-agent/model/dto"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"gitee.com/taoJie_1/support-agent/utils"
)

// FaqService FAQ与快捷回复的查询
type FaqService interface {
	List(ctx context.Context, req *common.FaqListRequest) (*dto.FaqListResult, error)
	QuickReplies(ctx context.Context, category string) ([]*dto.QuickReplyView, error)
}

type faqService struct{}

func NewFaqService() FaqService {
	return &faqService{}
}

func (s *faqService) List(ctx context.Context, req *common.FaqListRequest) (*dto.FaqListResult, error) {
	limit := req.Limit
	if limit <= 0 || limit > global.Config.Bot.FaqListLimit {
		limit = global.Config.Bot.FaqListLimit
	}

	var faqs []db.Faq
	if err := dao.App.FaqDb.List(&faqs, req.Category, req.Search, limit); err != nil {
		return nil, fmt.Errorf("查询FAQ列表失败: %w", err)
	}

	views := make([]*dto.FaqView, 0, len(faqs))
	for i := range faqs {
		f := &faqs[i]
		views = append(views, &dto.FaqView{
			Id:               f.Id,
			Category:         f.Category,
			Question:         f.Question,
			Answer:           f.Answer,
			HelpfulVotes:     f.HelpfulVotes,
			NotHelpfulVotes:  f.NotHelpfulVotes,
			HelpfulnessScore: utils.NumberFormat(f.HelpfulnessScore()),
			ViewCount:        f.ViewCount,
		})
	}

	return &dto.FaqListResult{Faqs: views, TotalCount: len(views)}, nil
}

func (s *faqService) QuickReplies(ctx context.Context, category string) ([]*dto.QuickReplyView, error) {
	if category == "" {
		category = string(enum.FaqCategoryGeneral)
	}

	var replies []db.QuickReply
	if err := dao.App.QuickReplyDb.ListByCategory(&replies, category); err != nil {
		return nil, fmt.Errorf("查询快捷回复失败: %w", err)
	}

	views := make([]*dto.QuickReplyView, 0, len(replies))
	for i := range replies {
		views = append(views, &dto.QuickReplyView{
			Title:   replies[i].Title,
			Payload: replies[i].Payload,
			Icon:    replies[i].Icon,
		})
	}
	return views, nil
}
