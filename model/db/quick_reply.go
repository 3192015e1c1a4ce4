package db

type QuickReply struct {
	BaseField
	Title    string `db:"title" json:"title" info:"展示标题"`
	Payload  string `db:"payload" json:"payload" info:"点击后回传的载荷"`
	Category string `db:"category" json:"category" info:"分类"`
	Sort     int64  `db:"sort" json:"sort" info:"排序"`
	IsActive bool   `db:"is_active" json:"is_active"`
	Icon     string `db:"icon" json:"icon" info:"emoji或图标类名"`
}

func (QuickReply) TableName() string {
	return `quick_replies`
}
