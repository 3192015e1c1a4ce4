package user

import (
	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/common"
	"gitee.com/taoJie_1/support-agent/service"
)

type FaqApi struct{}

// ListFaqs FAQ列表, 支持分类和关键字过滤
func (d *FaqApi) ListFaqs(ctx *gin.Context) {
	var req common.FaqListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		common.Fail(ctx, "参数无效")
		return
	}

	result, err := service.Service.UserServiceGroup.FaqService.List(ctx.Request.Context(), &req)
	if err != nil {
		global.Log.Errorf("[jd93f]查询FAQ列表失败: %v", err)
		common.Fail(ctx, "查询FAQ列表失败")
		return
	}
	common.Success(ctx, result)
}

// ListQuickReplies 按分类返回快捷回复
func (d *FaqApi) ListQuickReplies(ctx *gin.Context) {
	var req common.QuickReplyListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		common.Fail(ctx, "参数无效")
		return
	}

	replies, err := service.Service.UserServiceGroup.FaqService.QuickReplies(ctx.Request.Context(), req.Category)
	if err != nil {
		global.Log.Errorf("[jd93f]查询快捷回复失败: %v", err)
		common.Fail(ctx, "查询快捷回复失败")
		return
	}
	common.Success(ctx, map[string]interface{}{"quick_replies": replies})
}
