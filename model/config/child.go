package config

type Database struct {
	Type          string `json:"type" mapstructure:"type" yaml:"type"`
	SqlitePath    string `json:"sqlite_path" mapstructure:"sqlite_path" yaml:"sqlite_path"`
	MysqlHost     string `json:"mysql_host" mapstructure:"mysql_host" yaml:"mysql_host"`
	MysqlPort     string `json:"mysql_port" mapstructure:"mysql_port" yaml:"mysql_port"`
	MysqlDbname   string `json:"mysql_dbname" mapstructure:"mysql_dbname" yaml:"mysql_dbname"`
	MysqlUsername string `json:"mysql_username" mapstructure:"mysql_username" yaml:"mysql_username"`
	MysqlPassword string `json:"mysql_password" mapstructure:"mysql_password" yaml:"mysql_password"`
}

type Redis struct {
	Addr       string `json:"addr" mapstructure:"addr" yaml:"addr"`
	Password   string `json:"password" mapstructure:"password" yaml:"password"`
	DB         int64  `json:"db" mapstructure:"db" yaml:"db"`
	LockPrefix string `json:"lock_prefix" mapstructure:"lock_prefix" yaml:"lock_prefix"`
	LockExpiry int64  `json:"lock_expiry" mapstructure:"lock_expiry" yaml:"lock_expiry"`
	// 会话历史缓存的TTL, 秒
	HistoryTTL int64 `json:"history_ttl" mapstructure:"history_ttl" yaml:"history_ttl"`
}

type Bot struct {
	// 会话有效期, 秒, 超出后视为过期
	SessionTTL int64 `json:"session_ttl" mapstructure:"session_ttl" yaml:"session_ttl"`
	// 单条消息长度上限, 防刷
	MaxMessageLength uint `json:"max_message_length" mapstructure:"max_message_length" yaml:"max_message_length"`
	// 历史记录单次返回条数上限
	HistoryLimit int64 `json:"history_limit" mapstructure:"history_limit" yaml:"history_limit"`
	// FAQ列表默认返回条数
	FaqListLimit int64 `json:"faq_list_limit" mapstructure:"faq_list_limit" yaml:"faq_list_limit"`
	// 评论长度上限
	MaxCommentLength uint `json:"max_comment_length" mapstructure:"max_comment_length" yaml:"max_comment_length"`
}
