package db

import (
	"reflect"
	"sync"
)

// 所有数据库结构体 都需实现的接口
type Dbfunc interface {
	TableName() string
}

// 自增主键表的公共字段
type BaseField struct {
	Id        uint  `db:"id" json:"id"`
	CreatedAt int64 `db:"created_at" json:"created_at"`
	UpdatedAt int64 `db:"updated_at" json:"-"`
}

// UUID主键表的公共字段, 对齐原会话/消息/FAQ表
type UuidField struct {
	Id        string `db:"id" json:"id"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
	UpdatedAt int64  `db:"updated_at" json:"-"`
}

var (
	once sync.Once

	baseFieldInfo struct {
		CreatedAtDbTag string
		UpdatedAtDbTag string
	}
)

func GetBaseFieldDbTags() struct {
	CreatedAtDbTag string
	UpdatedAtDbTag string
} {
	once.Do(func() {
		t := reflect.TypeOf(BaseField{})

		if field, found := t.FieldByName("CreatedAt"); found {
			baseFieldInfo.CreatedAtDbTag = field.Tag.Get("db")
		}
		if field, found := t.FieldByName("UpdatedAt"); found {
			baseFieldInfo.UpdatedAtDbTag = field.Tag.Get("db")
		}
	})
	return baseFieldInfo
}
