package dao

import (
	"fmt"

	"gitee.com/taoJie_1/support-agent/model/db"
	"github.com/jmoiron/sqlx"
)

type QuickReplyDb struct{}

// ListByCategory 取某分类下启用的快捷回复, 按sort排序
func (d *QuickReplyDb) ListByCategory(list *[]db.QuickReply, category string) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` WHERE `category` = ? AND `is_active` = ? ORDER BY `sort` ASC, `title` ASC;", db.QuickReply{}.TableName())
	return DB.Select(list, sql, category, true)
}

func (d *QuickReplyDb) Count(total *int64) error {
	sql := fmt.Sprintf("SELECT COUNT(*) FROM `%s`;", db.QuickReply{}.TableName())
	return DB.Get(total, sql)
}

// BatchInsert 种子数据导入
func (d *QuickReplyDb) BatchInsert(data []map[string]interface{}, tx *sqlx.Tx) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}

	sql, args, err := utils.getBatchInsertSql(db.QuickReply{}, data)
	if err != nil {
		return 0, fmt.Errorf("构建批量插入SQL失败: %w", err)
	}

	sql = tx.Rebind(sql)
	result, err := tx.Exec(sql, args...)
	if err != nil {
		return 0, fmt.Errorf("批量插入快捷回复失败: %w", err)
	}

	return result.RowsAffected()
}
