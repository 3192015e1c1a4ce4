package user

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/dto"
	redislib "github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// fakeHistoryRedis 内存实现, 用于验证缓存/锁路径
type fakeHistoryRedis struct {
	stored   []*dto.MessageView   // 当前缓存内容
	gets     [][]*dto.MessageView // 预设的读取结果序列, 耗尽后返回stored
	getCalls int
	setCalls int
	lockBusy bool // SetNX恒返回false, 模拟锁被其他请求占用
	lockHeld bool
}

func (f *fakeHistoryRedis) GetSessionHistory(ctx context.Context, sessionId string) ([]*dto.MessageView, error) {
	f.getCalls++
	if len(f.gets) > 0 {
		res := f.gets[0]
		f.gets = f.gets[1:]
		return res, nil
	}
	return f.stored, nil
}

func (f *fakeHistoryRedis) SetSessionHistory(ctx context.Context, sessionId string, messages []*dto.MessageView, ttl time.Duration) error {
	f.setCalls++
	f.stored = messages
	return nil
}

func (f *fakeHistoryRedis) DelSessionHistory(ctx context.Context, sessionId string) error {
	f.stored = nil
	return nil
}

func (f *fakeHistoryRedis) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redislib.BoolCmd {
	if f.lockBusy {
		return redislib.NewBoolResult(false, nil)
	}
	f.lockHeld = true
	return redislib.NewBoolResult(true, nil)
}

func (f *fakeHistoryRedis) Del(ctx context.Context, keys ...string) *redislib.IntCmd {
	f.lockHeld = false
	return redislib.NewIntResult(int64(len(keys)), nil)
}

func (f *fakeHistoryRedis) Ping(ctx context.Context) *redislib.StatusCmd {
	return redislib.NewStatusResult("PONG", nil)
}

func (f *fakeHistoryRedis) Close() error { return nil }

func setupHistoryTest(t *testing.T) {
	t.Helper()
	global.Log = logrus.New()
	global.Log.SetOutput(io.Discard)
	global.Config.Bot.HistoryLimit = 50
	global.Config.Redis.LockExpiry = 30
	global.Config.Redis.HistoryTTL = 3600
}

func makeViews(n int) []*dto.MessageView {
	views := make([]*dto.MessageView, 0, n)
	for i := 0; i < n; i++ {
		views = append(views, &dto.MessageView{Id: fmt.Sprintf("m%d", i), Content: fmt.Sprintf("msg %d", i)})
	}
	return views
}

// TestHistoryCacheStoresFullWindow 回填缓存必须是完整窗口:
// 小limit的请求不应把缓存截短, 后续大limit请求应取到完整历史
func TestHistoryCacheStoresFullWindow(t *testing.T) {
	setupHistoryTest(t)

	s := &sessionService{}
	rdb := &fakeHistoryRedis{}
	full := makeViews(5)
	fetchCalls := 0
	fetch := func() ([]*dto.MessageView, error) {
		fetchCalls++
		return full, nil
	}

	// 第一次请求limit=1
	got, err := s.getOrFillHistory(context.Background(), rdb, "s1", 1, fetch)
	if err != nil {
		t.Fatalf("读取历史失败: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("limit=1 应返回1条, 实际 %d", len(got))
	}
	if len(rdb.stored) != 5 {
		t.Fatalf("缓存应存完整窗口5条, 实际 %d", len(rdb.stored))
	}

	// 第二次请求limit=50, 应命中缓存并取到全部5条
	got, err = s.getOrFillHistory(context.Background(), rdb, "s1", 50, fetch)
	if err != nil {
		t.Fatalf("读取历史失败: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("limit=50 应返回全部5条, 实际 %d", len(got))
	}
	if fetchCalls != 1 {
		t.Errorf("第二次请求应命中缓存不回源, 回源次数 %d", fetchCalls)
	}
}

// TestHistoryLockDoubleCheck 拿到锁后必须重查缓存:
// 等锁期间已有请求完成回填时不应再回源
func TestHistoryLockDoubleCheck(t *testing.T) {
	setupHistoryTest(t)

	s := &sessionService{}
	filled := makeViews(3)
	rdb := &fakeHistoryRedis{
		// 首查未命中; 拿锁后的双重检查命中
		gets: [][]*dto.MessageView{nil, filled},
	}
	fetchCalls := 0
	fetch := func() ([]*dto.MessageView, error) {
		fetchCalls++
		return makeViews(3), nil
	}

	got, err := s.getOrFillHistory(context.Background(), rdb, "s1", 50, fetch)
	if err != nil {
		t.Fatalf("读取历史失败: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("应返回双重检查命中的3条, 实际 %d", len(got))
	}
	if fetchCalls != 0 {
		t.Errorf("双重检查命中后不应回源, 回源次数 %d", fetchCalls)
	}
	if rdb.lockHeld {
		t.Error("返回后应释放锁")
	}
}

// TestHistoryLockBusyWaitsAndRechecks 锁被占用时等待后重查,
// 持锁方已回填则直接复用缓存
func TestHistoryLockBusyWaitsAndRechecks(t *testing.T) {
	setupHistoryTest(t)

	s := &sessionService{}
	filled := makeViews(4)
	rdb := &fakeHistoryRedis{
		lockBusy: true,
		// 首查未命中; 等待后的重查命中(持锁方已完成回填)
		gets: [][]*dto.MessageView{nil, filled},
	}
	fetchCalls := 0
	fetch := func() ([]*dto.MessageView, error) {
		fetchCalls++
		return makeViews(4), nil
	}

	got, err := s.getOrFillHistory(context.Background(), rdb, "s1", 2, fetch)
	if err != nil {
		t.Fatalf("读取历史失败: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("limit=2 应截断返回2条, 实际 %d", len(got))
	}
	if fetchCalls != 0 {
		t.Errorf("重查命中后不应回源, 回源次数 %d", fetchCalls)
	}
}

// TestHistoryLockBusyDegradesToSource 等待后缓存仍未命中时降级直接回源
func TestHistoryLockBusyDegradesToSource(t *testing.T) {
	setupHistoryTest(t)

	s := &sessionService{}
	rdb := &fakeHistoryRedis{
		lockBusy: true,
		gets:     [][]*dto.MessageView{nil, nil},
	}
	fetchCalls := 0
	fetch := func() ([]*dto.MessageView, error) {
		fetchCalls++
		return makeViews(3), nil
	}

	got, err := s.getOrFillHistory(context.Background(), rdb, "s1", 50, fetch)
	if err != nil {
		t.Fatalf("读取历史失败: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("降级回源应返回3条, 实际 %d", len(got))
	}
	if fetchCalls != 1 {
		t.Errorf("应回源一次, 实际 %d", fetchCalls)
	}
	if rdb.setCalls != 1 {
		t.Errorf("降级回源后应回填缓存, 回填次数 %d", rdb.setCalls)
	}
}

func TestTrimHistory(t *testing.T) {
	views := makeViews(5)

	if got := trimHistory(views, 2); len(got) != 2 {
		t.Errorf("trimHistory(5, 2) = %d条, 期望 2", len(got))
	}
	if got := trimHistory(views, 10); len(got) != 5 {
		t.Errorf("trimHistory(5, 10) = %d条, 期望 5", len(got))
	}
	if got := trimHistory(nil, 3); got != nil {
		t.Error("空列表应原样返回")
	}
}
