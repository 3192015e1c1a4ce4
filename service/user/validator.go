package user

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/common"
	"gitee.com/taoJie_1/support-agent/model/enum"
)

type IValidator interface {
	ValidateSendMessage(data *common.ChatRequest) error
	ValidateFeedback(data *common.ChatRequest) error
	ValidateHistory(data *common.ChatRequest) error
}

type Validator struct{}

func (v *Validator) ValidateSendMessage(data *common.ChatRequest) error {
	if data.SessionId == "" {
		return errors.New("session_id 不能为空")
	}
	if strings.TrimSpace(data.Content) == "" {
		return errors.New("消息内容不能为空")
	}
	// 防刷
	maxLen := int(global.Config.Bot.MaxMessageLength)
	if maxLen > 0 && utf8.RuneCountInString(data.Content) > maxLen {
		return fmt.Errorf("消息过长, 最多%d个字符", maxLen)
	}
	return nil
}

func (v *Validator) ValidateFeedback(data *common.ChatRequest) error {
	if data.SessionId == "" {
		return errors.New("session_id 不能为空")
	}
	if data.Rating < 1 || data.Rating > 5 {
		return errors.New("评分必须在1到5之间")
	}
	return nil
}

func (v *Validator) ValidateHistory(data *common.ChatRequest) error {
	if data.SessionId == "" {
		return errors.New("session_id 不能为空")
	}
	return nil
}

// ValidActionsHint 参数错误时返回可用action列表
func ValidActionsHint() map[string]interface{} {
	actions := make([]string, 0, len(enum.ValidChatActions))
	for _, a := range enum.ValidChatActions {
		actions = append(actions, string(a))
	}
	return map[string]interface{}{"valid_actions": actions}
}
