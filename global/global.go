package global

import (
	"time"

	"gitee.com/taoJie_1/support-agent/engine"
	"gitee.com/taoJie_1/support-agent/internal/redis"
	"gitee.com/taoJie_1/support-agent/model/config"
	"github.com/sirupsen/logrus"
)

const Version = "v1.2.0"

// 全局变量
// 业务逻辑禁止修改
var (
	Config *config.Config = new(config.Config) //指针类型, 给与其内存空间
	Log    *logrus.Logger
	Tz     *time.Location

	// 规则引擎, 启动时构建一次, 规则表只读
	Engine *engine.Engine

	// Redis可选, 不可用时历史缓存直接回源数据库
	RedisClient redis.Service
)
