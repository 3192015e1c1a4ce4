package dao

import (
	"fmt"

	"gitee.com/taoJie_1/support-agent/model/db"
	"github.com/jmoiron/sqlx"
)

type FaqDb struct{}

// GetActiveList 取全部启用的FAQ, 按存储的自然顺序(优先级/有用票)返回
// 引擎的FAQ检索直接继承该顺序做平分裁决
func (d *FaqDb) GetActiveList(list *[]db.Faq) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` WHERE `is_active` = ? ORDER BY `priority` DESC, `helpful_votes` DESC, `question` ASC;", db.Faq{}.TableName())
	return DB.Select(list, sql, true)
}

// List 带分类/搜索/条数限制的FAQ列表
func (d *FaqDb) List(list *[]db.Faq, category, search string, limit int64) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` WHERE `is_active` = ?", db.Faq{}.TableName())
	args := []interface{}{true}

	if category != "" && category != "all" {
		sql += " AND `category` = ?"
		args = append(args, category)
	}
	if search != "" {
		sql += " AND (`question` LIKE ? OR `answer` LIKE ? OR `keywords` LIKE ?)"
		like := "%" + search + "%"
		args = append(args, like, like, like)
	}

	sql += " ORDER BY `priority` DESC, `helpful_votes` DESC LIMIT ?"
	args = append(args, limit)

	return DB.Select(list, sql, args...)
}

// IncrementViewCount 命中计数, 存储层原子自增, 并发请求不丢更新
func (d *FaqDb) IncrementViewCount(id string) error {
	sql := fmt.Sprintf("UPDATE `%s` SET `view_count` = `view_count` + 1 WHERE `id` = ?;", db.Faq{}.TableName())
	_, err := DB.Exec(sql, id)
	return err
}

// AddVote 投票计数, 同样走原子自增
func (d *FaqDb) AddVote(id string, helpful bool) error {
	column := "not_helpful_votes"
	if helpful {
		column = "helpful_votes"
	}
	sql := fmt.Sprintf("UPDATE `%s` SET `%s` = `%s` + 1 WHERE `id` = ?;", db.Faq{}.TableName(), column, column)
	_, err := DB.Exec(sql, id)
	return err
}

func (d *FaqDb) Count(total *int64) error {
	sql := fmt.Sprintf("SELECT COUNT(*) FROM `%s`;", db.Faq{}.TableName())
	return DB.Get(total, sql)
}

// BatchInsert 种子语料导入
func (d *FaqDb) BatchInsert(data []map[string]interface{}, tx *sqlx.Tx) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}

	sql, args, err := utils.getBatchInsertSql(db.Faq{}, data)
	if err != nil {
		return 0, fmt.Errorf("构建批量插入SQL失败: %w", err)
	}

	sql = tx.Rebind(sql)
	result, err := tx.Exec(sql, args...)
	if err != nil {
		return 0, fmt.Errorf("批量插入FAQ失败: %w", err)
	}

	return result.RowsAffected()
}
