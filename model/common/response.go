package common

import (
	"net/http"

	"gitee.com/taoJie_1/support-agent/model/enum"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Code enum.ResCode `json:"code"`
	Data interface{}  `json:"data"`
	Msg  enum.Msg     `json:"msg"`
}

func result(ctx *gin.Context, code enum.ResCode, msg enum.Msg, data interface{}) {
	ctx.JSON(http.StatusOK, Response{
		Code: code,
		Data: data,
		Msg:  msg,
	})
}

// 带data
func Success(ctx *gin.Context, data interface{}) {
	result(ctx, enum.SuccessCode, enum.DefaultSuccessMsg, data)
}

func Fail(ctx *gin.Context, message string) {
	result(ctx, enum.ErrorCode, enum.Msg(message), map[string]interface{}{})
}

// 带data的失败返回, 用于附带可选值提示
func FailData(ctx *gin.Context, message string, data interface{}) {
	result(ctx, enum.ErrorCode, enum.Msg(message), data)
}

func FailNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, Response{
		Code: enum.ErrorCode,
		Msg:  enum.DefaultFailMsg,
	})
}
