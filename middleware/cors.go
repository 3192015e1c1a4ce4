package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/utils"
)

// CorsHandle 跨域配置, 允许的来源由配置文件控制
func CorsHandle() gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if utils.InSlice(global.Config.Cors, "*") >= 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = global.Config.Cors
	}

	return cors.New(config)
}

// OptionsMethod 预检请求直接放行
func OptionsMethod(ctx *gin.Context) {
	if ctx.Request.Method == http.MethodOptions {
		ctx.AbortWithStatus(http.StatusNoContent)
		return
	}
	ctx.Next()
}
