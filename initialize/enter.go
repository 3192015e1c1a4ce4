package initialize

import (
	"context"
	"os"

	"gitee.com/taoJie_1/support-agent/task"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Initializer 统一管理项目的所有初始化工作
type Initializer struct {
	cron           *cron.Cron
	logFileClosers []*os.File
}

// Run 并发执行所有核心服务的初始化
func (i *Initializer) Run() error {
	eg, _ := errgroup.WithContext(context.Background())

	// 关键任务，失败会终止程序
	eg.Go(i.dbStart)

	// 非关键任务，失败只打印日志，不影响启动
	// Redis不可用时历史缓存降级为直接回源数据库
	eg.Go(func() error {
		i.initRedis()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	// 规则引擎依赖数据库(FAQ检索), 放在数据库之后初始化
	return i.initEngine()
}

// Close 优雅地关闭和释放所有资源
func (i *Initializer) Close() {
	i.dbClose()
	i.redisClose()
	i.timerStop()
	for _, closer := range i.logFileClosers {
		_ = closer.Close()
	}
}

// StartSystem 启动系统级服务，如定时器和数据加载
func (i *Initializer) StartSystem(taskManager *task.Manager) {
	if err := i.timerStart(taskManager); err != nil {
		panic(err)
	}
	i.loadData(taskManager)
}
