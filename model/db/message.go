package db

import (
	"encoding/json"
)

type Message struct {
	UuidField
	SessionId   string `db:"session_id" json:"session_id" info:"所属会话"`
	MessageType string `db:"message_type" json:"message_type" info:"user/bot/system"`
	Content     string `db:"content" json:"content" info:"消息内容"`
	Metadata    string `db:"metadata" json:"-" info:"JSON元数据"`
	IsRead      bool   `db:"is_read" json:"is_read"`
}

func (Message) TableName() string {
	return `messages`
}

// MetadataMap 解析metadata字段; 空串或非法JSON返回空map
func (m *Message) MetadataMap() map[string]interface{} {
	res := make(map[string]interface{})
	if m.Metadata == "" {
		return res
	}
	if err := json.Unmarshal([]byte(m.Metadata), &res); err != nil {
		return make(map[string]interface{})
	}
	return res
}
