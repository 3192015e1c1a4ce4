package utils

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type timeNumber interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// RFC3339格式, 用于对外接口的时间戳字段
func TimeFormatRFC3339[T timeNumber](t T, loc *time.Location) string {
	return time.Unix(int64(t), 0).In(loc).Format(time.RFC3339)
}

// 四舍五入保留小数位
func NumberFormat[T ~float32 | ~float64](f T, n ...uint) float64 {
	num := uint(2)
	if len(n) > 0 {
		num = n[0]
	}
	nu := math.Pow(10, float64(num))
	return math.Round(float64(f)*nu) / nu
}

// 文件是否存在
func FileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

// 创建目录
func Mkdir(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

// 创建文件
// 可能存在跨越目录创建文件的风险
func CreateFile(path string) error {
	if FileExist(path) {
		return nil
	}

	if err := Mkdir(path); err != nil {
		return err
	}

	fi, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fi.Close()

	return nil
}

// 判断值是否在切片中
func InSlice[T comparable](slice []T, value T) int {
	for i, item := range slice {
		if item == value {
			return i
		}
	}
	return -1
}

// GetTTLWithJitter 为缓存TTL增加随机抖动，防止缓存雪崩
func GetTTLWithJitter(baseTTLInSeconds int64) time.Duration {
	if baseTTLInSeconds <= 0 {
		return 0
	}
	jitter := rand.Int63n(baseTTLInSeconds/10 + 1)
	return time.Duration(baseTTLInSeconds+jitter) * time.Second
}

// ParseDateFromLogFileName 从日志文件名中解析日期
// 文件名格式如: gin.log.2025-10-28, run.log.2025-10-28
func ParseDateFromLogFileName(filename string, loc *time.Location) (time.Time, bool) {
	parts := strings.Split(filename, ".")
	if len(parts) < 2 {
		return time.Time{}, false
	}

	dateStr := parts[len(parts)-1]
	t, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
