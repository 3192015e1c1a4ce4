package initialize

import (
	"flag"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/config"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

var (
	Conf string
	Act  string
)

func init() {
	flag.StringVar(&Conf, "c", "", "choose config file.")
	flag.StringVar(&Act, "a", "", `行为,默认为空,即启动服务; "seed": 导入FAQ种子语料; "expire": 清理过期会话;`)
}

// New 创建一个新的初始化器，并加载配置文件
func New() *Initializer {
	var configPath string
	if gin.Mode() != gin.TestMode {
		flag.Parse()
		if Conf != "" {
			configPath = Conf
		}
	}
	if configPath == "" {
		configPath = `config.yaml`
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		panic("读取配置失败[u9ij]: " + configPath + err.Error())
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("配置文件变化[djiads]: ", e.Name)
		if err := v.Unmarshal(global.Config); err != nil {
			fmt.Println(err)
		}
		handleConfig(global.Config)
	})

	if err := v.Unmarshal(global.Config); err != nil {
		panic("出错[dhfal]: " + err.Error())
	}

	handleConfig(global.Config)

	return &Initializer{}
}

// handleConfig 处理和设置配置的默认值
func handleConfig(c *config.Config) {
	c.StaticDir = strings.TrimRight(c.StaticDir, "/")

	if c.ProjectName == "" {
		c.ProjectName = "客服机器人"
	}
	if c.GinAddr == "" {
		c.GinAddr = ":80"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.GinLogPath == "" {
		c.GinLogPath = "log/gin.log"
	}
	if c.RunLogPath == "" {
		c.RunLogPath = "log/run.log"
	}
	if c.Tz == "" {
		c.Tz = "Asia/Shanghai"
	}
	if len(c.Cors) == 0 {
		c.Cors = []string{"*"}
	}
	if c.Database.Type == "" {
		c.Database.Type = "sqlite3"
	}
	if c.Database.SqlitePath == "" {
		c.Database.SqlitePath = "data.db"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Redis.LockPrefix == "" {
		c.Redis.LockPrefix = "support:lock:"
	}
	if c.Redis.LockExpiry == 0 {
		c.Redis.LockExpiry = 30
	}
	if c.Redis.HistoryTTL == 0 {
		c.Redis.HistoryTTL = 3600 // 默认1小时
	}
	if c.Bot.SessionTTL == 0 {
		c.Bot.SessionTTL = 86400 // 默认24小时
	}
	if c.Bot.MaxMessageLength == 0 {
		c.Bot.MaxMessageLength = 1000
	}
	if c.Bot.HistoryLimit == 0 {
		c.Bot.HistoryLimit = 50
	}
	if c.Bot.FaqListLimit == 0 {
		c.Bot.FaqListLimit = 20
	}
	if c.Bot.MaxCommentLength == 0 {
		c.Bot.MaxCommentLength = 500
	}
}
