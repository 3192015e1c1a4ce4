package initialize

import (
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/task"
)

// loadData 加载业务所需数据
func (i *Initializer) loadData(taskManager *task.Manager) {
	if err := taskManager.SeedFaqs(); err != nil {
		global.Log.Errorln("启动时导入种子语料失败, FAQ检索可能无结果:", err)
	}
}
