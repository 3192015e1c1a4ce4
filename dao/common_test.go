package dao

import (
	"strings"
	"testing"

	"gitee.com/taoJie_1/support-agent/model/db"
)

// TestGetBatchInsertSql 验证批量插入SQL的字段顺序与占位符数量
func TestGetBatchInsertSql(t *testing.T) {
	u := new(dbUtils)

	data := []map[string]interface{}{
		{"question": "q1", "answer": "a1", "created_at": int64(100), "updated_at": int64(100)},
		{"question": "q2", "answer": "a2", "created_at": int64(200), "updated_at": int64(200)},
	}

	sql, args, err := u.getBatchInsertSql(db.Faq{}, data)
	if err != nil {
		t.Fatalf("构建SQL失败: %v", err)
	}

	// 字段按字典序排列
	wantPrefix := "INSERT INTO `faqs` (`answer`, `created_at`, `question`, `updated_at`) VALUES "
	if !strings.HasPrefix(sql, wantPrefix) {
		t.Errorf("SQL前缀不符:\n got: %s\nwant: %s", sql, wantPrefix)
	}

	if got := strings.Count(sql, "(?, ?, ?, ?)"); got != 2 {
		t.Errorf("占位符组数 = %d, 期望 2", got)
	}

	if len(args) != 8 {
		t.Errorf("参数数量 = %d, 期望 8", len(args))
	}

	// 首行参数按字段字典序: answer, created_at, question, updated_at
	if args[0] != "a1" || args[2] != "q1" {
		t.Errorf("首行参数顺序不符: %v", args[:4])
	}
}

func TestGetBatchInsertSqlEmpty(t *testing.T) {
	u := new(dbUtils)

	sql, args, err := u.getBatchInsertSql(db.Faq{}, nil)
	if err != nil {
		t.Fatalf("空数据不应报错: %v", err)
	}
	if sql != "" || args != nil {
		t.Errorf("空数据应返回空SQL, 实际: %q", sql)
	}
}

func TestGetBatchInsertSqlInconsistentRows(t *testing.T) {
	u := new(dbUtils)

	data := []map[string]interface{}{
		{"question": "q1", "answer": "a1"},
		{"question": "q2"},
	}

	if _, _, err := u.getBatchInsertSql(db.Faq{}, data); err == nil {
		t.Error("行字段数量不一致应报错")
	}
}

func TestGetUpdateSql(t *testing.T) {
	u := new(dbUtils)

	sql, args := u.getUpdateSql(db.Faq{}, "faq-1", map[string]interface{}{"priority": int64(5)})

	want := "UPDATE `faqs` SET `priority` = ? WHERE `id` = ?"
	if sql != want {
		t.Errorf("SQL不符:\n got: %s\nwant: %s", sql, want)
	}

	if len(args) != 2 || args[0] != int64(5) || args[1] != "faq-1" {
		t.Errorf("参数不符: %v", args)
	}
}

func TestGetUpdateSqlEmpty(t *testing.T) {
	u := new(dbUtils)

	sql, args := u.getUpdateSql(db.Faq{}, "faq-1", nil)
	if sql != "" || len(args) != 0 {
		t.Errorf("空数据应返回空SQL, 实际: %q", sql)
	}
}
