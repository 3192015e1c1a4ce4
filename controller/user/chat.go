package user

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/support-agent/engine"
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/common"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"gitee.com/taoJie_1/support-agent/service"
	userService "gitee.com/taoJie_1/support-agent/service/user"
)

type ChatApi struct{}

// HandleChat 聊天统一入口, 按action分发
func (d *ChatApi) HandleChat(ctx *gin.Context) {
	var req common.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "参数无效")
		return
	}

	switch enum.ChatAction(req.Action) {
	case enum.ActionStartSession:
		d.startSession(ctx)
	case enum.ActionSendMessage:
		d.sendMessage(ctx, &req)
	case enum.ActionSubmitFeedback:
		d.submitFeedback(ctx, &req)
	case enum.ActionGetSessionHistory:
		d.getSessionHistory(ctx, &req)
	default:
		common.FailData(ctx, "无效的action", userService.ValidActionsHint())
	}
}

func (d *ChatApi) startSession(ctx *gin.Context) {
	result, err := service.Service.UserServiceGroup.SessionService.Start(
		ctx.Request.Context(),
		ctx.Request.UserAgent(),
		ctx.ClientIP(),
	)
	if err != nil {
		global.Log.Errorf("[q3fjs]创建会话失败: %v", err)
		common.Fail(ctx, "创建会话失败")
		return
	}
	common.Success(ctx, result)
}

func (d *ChatApi) sendMessage(ctx *gin.Context, req *common.ChatRequest) {
	if err := service.Service.UserServiceGroup.Validator.ValidateSendMessage(req); err != nil {
		common.Fail(ctx, err.Error())
		return
	}

	result, err := service.Service.UserServiceGroup.ChatService.SendMessage(ctx.Request.Context(), req.SessionId, req.Content)
	if err != nil {
		d.failSession(ctx, err, "消息处理失败")
		return
	}
	common.Success(ctx, result)
}

func (d *ChatApi) submitFeedback(ctx *gin.Context, req *common.ChatRequest) {
	if err := service.Service.UserServiceGroup.Validator.ValidateFeedback(req); err != nil {
		common.Fail(ctx, err.Error())
		return
	}

	result, err := service.Service.UserServiceGroup.FeedbackService.Submit(ctx.Request.Context(), req.SessionId, req.MessageId, req.Rating, req.Comment)
	if err != nil {
		d.failSession(ctx, err, "提交反馈失败")
		return
	}
	common.Success(ctx, result)
}

func (d *ChatApi) getSessionHistory(ctx *gin.Context, req *common.ChatRequest) {
	if err := service.Service.UserServiceGroup.Validator.ValidateHistory(req); err != nil {
		common.Fail(ctx, err.Error())
		return
	}

	result, err := service.Service.UserServiceGroup.SessionService.History(ctx.Request.Context(), req.SessionId, req.Limit)
	if err != nil {
		d.failSession(ctx, err, "查询历史失败")
		return
	}
	common.Success(ctx, result)
}

// failSession 将服务层错误翻译成对外文案
func (d *ChatApi) failSession(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, userService.ErrSessionNotFound):
		common.Fail(ctx, userService.ErrSessionNotFound.Error())
	case errors.Is(err, userService.ErrSessionExpired):
		common.Fail(ctx, userService.ErrSessionExpired.Error())
	case errors.Is(err, engine.ErrFaqStore):
		global.Log.Errorf("[v8sdh]%s: %v", fallback, err)
		common.Fail(ctx, "服务暂时不可用, 请稍后再试")
	default:
		global.Log.Errorf("[v8sdh]%s: %v", fallback, err)
		common.Fail(ctx, fallback)
	}
}
