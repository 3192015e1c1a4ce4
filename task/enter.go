package task

// Manager 后台任务统一入口, 供cron和`-a`一次性执行复用
type Manager struct{}

// NewManager 创建一个新的任务管理器
func NewManager() *Manager {
	return &Manager{}
}
