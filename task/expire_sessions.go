package task

import (
	"fmt"
	"time"

	"gitee.com/taoJie_1/support-agent/dao"
	"gitee.com/taoJie_1/support-agent/global"
)

// ExpireSessions 批量失效超过TTL的会话
// 请求路径上另有惰性过期兜底, 这里负责清理无人再访问的会话
func (m *Manager) ExpireSessions() error {
	ttl := time.Duration(global.Config.Bot.SessionTTL) * time.Second
	cutoff := time.Now().Add(-ttl).Unix()

	count, err := dao.App.SessionDb.ExpireBefore(cutoff)
	if err != nil {
		return fmt.Errorf("批量失效过期会话失败: %w", err)
	}

	if count > 0 {
		global.Log.Infof("已失效 %d 个过期会话", count)
	}
	return nil
}
