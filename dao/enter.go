package dao

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var (
	DB *sqlx.DB

	utils = new(dbUtils)

	App = new(DaoGroup)
)

type DaoGroup struct {
	SessionDb    SessionDb
	MessageDb    MessageDb
	FaqDb        FaqDb
	QuickReplyDb QuickReplyDb
	FeedbackDb   FeedbackDb
	AnalyticsDb  AnalyticsDb
}

// Tx 事务包装, fn返回错误即回滚
func Tx(fn func(tx *sqlx.Tx) error) error {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if e := tx.Rollback(); e != nil {
			return fmt.Errorf("回滚失败: %v (原错误: %w)", e, err)
		}
		return err
	}

	return tx.Commit()
}
