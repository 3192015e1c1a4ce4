package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/support-agent/controller"
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/middleware"
	"gitee.com/taoJie_1/support-agent/model/common"
)

func Start(ginServer *gin.Engine) {
	// 限制form内存(默认32MiB)
	ginServer.MaxMultipartMemory = 32 << 20

	ginServer.Use(middleware.CorsHandle(), middleware.OptionsMethod) //全局中间件

	ginServer.StaticFile("/favicon.ico", global.Config.StaticDir+"/favicon.ico")
	ginServer.StaticFile("/robots.txt", global.Config.StaticDir+"/robots.txt")
	ginServer.StaticFS("/static", http.Dir(global.Config.StaticDir))

	ginServer.NoRoute(func(ctx *gin.Context) {
		common.FailNotFound(ctx)
	})

	v1 := ginServer.Group("api/v1")
	{
		v1.POST("/chat", controller.Api.UserApiGroup.ChatApi.HandleChat)
		v1.GET("/faqs", controller.Api.UserApiGroup.FaqApi.ListFaqs)
		v1.GET("/quick-replies", controller.Api.UserApiGroup.FaqApi.ListQuickReplies)
	}

}
