package dao

import (
	"fmt"

	"gitee.com/taoJie_1/support-agent/model/enum"
)

// sqliteSchema 与 mysqlSchema 字段一致, 仅方言差异(自增主键写法)
var sqliteSchema = []string{
	"CREATE TABLE IF NOT EXISTS `chat_sessions` (" +
		"`id` VARCHAR(36) PRIMARY KEY, " +
		"`session_id` VARCHAR(100) NOT NULL UNIQUE, " +
		"`is_active` TINYINT(1) NOT NULL DEFAULT 1, " +
		"`user_agent` TEXT NOT NULL DEFAULT '', " +
		"`ip_address` VARCHAR(45) NOT NULL DEFAULT '', " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0);",
	"CREATE TABLE IF NOT EXISTS `messages` (" +
		"`id` VARCHAR(36) PRIMARY KEY, " +
		"`session_id` VARCHAR(36) NOT NULL, " +
		"`message_type` VARCHAR(10) NOT NULL, " +
		"`content` TEXT NOT NULL, " +
		"`metadata` TEXT NOT NULL DEFAULT '', " +
		"`is_read` TINYINT(1) NOT NULL DEFAULT 0, " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0);",
	"CREATE INDEX IF NOT EXISTS `idx_messages_session_time` ON `messages` (`session_id`, `created_at`);",
	"CREATE TABLE IF NOT EXISTS `faqs` (" +
		"`id` VARCHAR(36) PRIMARY KEY, " +
		"`category` VARCHAR(20) NOT NULL DEFAULT 'general', " +
		"`question` VARCHAR(500) NOT NULL, " +
		"`answer` TEXT NOT NULL, " +
		"`keywords` TEXT NOT NULL DEFAULT '[]', " +
		"`priority` BIGINT NOT NULL DEFAULT 0, " +
		"`is_active` TINYINT(1) NOT NULL DEFAULT 1, " +
		"`view_count` BIGINT NOT NULL DEFAULT 0, " +
		"`helpful_votes` BIGINT NOT NULL DEFAULT 0, " +
		"`not_helpful_votes` BIGINT NOT NULL DEFAULT 0, " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0);",
	"CREATE INDEX IF NOT EXISTS `idx_faqs_category_active` ON `faqs` (`category`, `is_active`);",
	"CREATE TABLE IF NOT EXISTS `quick_replies` (" +
		"`id` INTEGER PRIMARY KEY AUTOINCREMENT, " +
		"`title` VARCHAR(100) NOT NULL, " +
		"`payload` VARCHAR(200) NOT NULL, " +
		"`category` VARCHAR(20) NOT NULL DEFAULT 'general', " +
		"`sort` BIGINT NOT NULL DEFAULT 0, " +
		"`is_active` TINYINT(1) NOT NULL DEFAULT 1, " +
		"`icon` VARCHAR(50) NOT NULL DEFAULT '', " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0);",
	"CREATE TABLE IF NOT EXISTS `user_feedbacks` (" +
		"`id` VARCHAR(36) PRIMARY KEY, " +
		"`session_id` VARCHAR(36) NOT NULL, " +
		"`message_id` VARCHAR(36) NOT NULL DEFAULT '', " +
		"`rating` BIGINT NOT NULL, " +
		"`comment` TEXT NOT NULL DEFAULT '', " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0);",
	"CREATE TABLE IF NOT EXISTS `chat_analytics` (" +
		"`id` INTEGER PRIMARY KEY AUTOINCREMENT, " +
		"`session_id` VARCHAR(36) NOT NULL, " +
		"`event_type` VARCHAR(50) NOT NULL, " +
		"`event_data` TEXT NOT NULL DEFAULT '', " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0);",
	"CREATE INDEX IF NOT EXISTS `idx_analytics_event_time` ON `chat_analytics` (`event_type`, `created_at`);",
}

var mysqlSchema = []string{
	"CREATE TABLE IF NOT EXISTS `chat_sessions` (" +
		"`id` VARCHAR(36) PRIMARY KEY, " +
		"`session_id` VARCHAR(100) NOT NULL UNIQUE, " +
		"`is_active` TINYINT(1) NOT NULL DEFAULT 1, " +
		"`user_agent` TEXT, " +
		"`ip_address` VARCHAR(45) NOT NULL DEFAULT '', " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;",
	"CREATE TABLE IF NOT EXISTS `messages` (" +
		"`id` VARCHAR(36) PRIMARY KEY, " +
		"`session_id` VARCHAR(36) NOT NULL, " +
		"`message_type` VARCHAR(10) NOT NULL, " +
		"`content` TEXT NOT NULL, " +
		"`metadata` TEXT, " +
		"`is_read` TINYINT(1) NOT NULL DEFAULT 0, " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0, " +
		"INDEX `idx_messages_session_time` (`session_id`, `created_at`)) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;",
	"CREATE TABLE IF NOT EXISTS `faqs` (" +
		"`id` VARCHAR(36) PRIMARY KEY, " +
		"`category` VARCHAR(20) NOT NULL DEFAULT 'general', " +
		"`question` VARCHAR(500) NOT NULL, " +
		"`answer` TEXT NOT NULL, " +
		"`keywords` TEXT, " +
		"`priority` BIGINT NOT NULL DEFAULT 0, " +
		"`is_active` TINYINT(1) NOT NULL DEFAULT 1, " +
		"`view_count` BIGINT NOT NULL DEFAULT 0, " +
		"`helpful_votes` BIGINT NOT NULL DEFAULT 0, " +
		"`not_helpful_votes` BIGINT NOT NULL DEFAULT 0, " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0, " +
		"INDEX `idx_faqs_category_active` (`category`, `is_active`)) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;",
	"CREATE TABLE IF NOT EXISTS `quick_replies` (" +
		"`id` BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT, " +
		"`title` VARCHAR(100) NOT NULL, " +
		"`payload` VARCHAR(200) NOT NULL, " +
		"`category` VARCHAR(20) NOT NULL DEFAULT 'general', " +
		"`sort` BIGINT NOT NULL DEFAULT 0, " +
		"`is_active` TINYINT(1) NOT NULL DEFAULT 1, " +
		"`icon` VARCHAR(50) NOT NULL DEFAULT '', " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;",
	"CREATE TABLE IF NOT EXISTS `user_feedbacks` (" +
		"`id` VARCHAR(36) PRIMARY KEY, " +
		"`session_id` VARCHAR(36) NOT NULL, " +
		"`message_id` VARCHAR(36) NOT NULL DEFAULT '', " +
		"`rating` BIGINT NOT NULL, " +
		"`comment` TEXT, " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;",
	"CREATE TABLE IF NOT EXISTS `chat_analytics` (" +
		"`id` BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT, " +
		"`session_id` VARCHAR(36) NOT NULL, " +
		"`event_type` VARCHAR(50) NOT NULL, " +
		"`event_data` TEXT, " +
		"`created_at` BIGINT NOT NULL DEFAULT 0, " +
		"`updated_at` BIGINT NOT NULL DEFAULT 0, " +
		"INDEX `idx_analytics_event_time` (`event_type`, `created_at`)) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;",
}

// EnsureSchema 建表, 已存在则跳过
func EnsureSchema(dbType string) error {
	var schema []string
	switch dbType {
	case string(enum.MYSQL):
		schema = mysqlSchema
	case string(enum.SQLITE):
		schema = sqliteSchema
	default:
		return fmt.Errorf("数据库类型错误[rjfsos]: %s", dbType)
	}

	for _, stmt := range schema {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("建表失败: %w", err)
		}
	}
	return nil
}
