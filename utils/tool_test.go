package utils

import (
	"testing"
	"time"
)

func TestParseDateFromLogFileName(t *testing.T) {
	cases := []struct {
		filename string
		wantOk   bool
		wantDate string
	}{
		{"run.log.2025-10-28", true, "2025-10-28"},
		{"gin.log.2026-01-02", true, "2026-01-02"},
		{"run.log", false, ""},
		{"data.db", false, ""},
		{"noext", false, ""},
	}

	for _, c := range cases {
		got, ok := ParseDateFromLogFileName(c.filename, time.UTC)
		if ok != c.wantOk {
			t.Errorf("ParseDateFromLogFileName(%q) ok = %v, 期望 %v", c.filename, ok, c.wantOk)
			continue
		}
		if ok && got.Format("2006-01-02") != c.wantDate {
			t.Errorf("ParseDateFromLogFileName(%q) = %s, 期望 %s", c.filename, got.Format("2006-01-02"), c.wantDate)
		}
	}
}

func TestGetTTLWithJitter(t *testing.T) {
	// 抖动范围: [base, base+base/10]
	base := int64(3600)
	min := time.Duration(base) * time.Second
	max := time.Duration(base+base/10) * time.Second

	for i := 0; i < 100; i++ {
		ttl := GetTTLWithJitter(base)
		if ttl < min || ttl > max {
			t.Fatalf("GetTTLWithJitter(%d) = %v, 超出 [%v, %v]", base, ttl, min, max)
		}
	}

	// 小TTL不应panic
	if ttl := GetTTLWithJitter(5); ttl < 5*time.Second {
		t.Errorf("GetTTLWithJitter(5) = %v, 不应小于基础值", ttl)
	}

	if ttl := GetTTLWithJitter(0); ttl != 0 {
		t.Errorf("GetTTLWithJitter(0) = %v, 期望 0", ttl)
	}
}

func TestInSlice(t *testing.T) {
	s := []string{"a", "b", "c"}
	if got := InSlice(s, "b"); got != 1 {
		t.Errorf("InSlice = %d, 期望 1", got)
	}
	if got := InSlice(s, "z"); got != -1 {
		t.Errorf("InSlice = %d, 期望 -1", got)
	}
}

func TestNumberFormat(t *testing.T) {
	if got := NumberFormat(66.666); got != 66.67 {
		t.Errorf("NumberFormat(66.666) = %v, 期望 66.67", got)
	}
	if got := NumberFormat(50.0, 0); got != 50 {
		t.Errorf("NumberFormat(50.0, 0) = %v, 期望 50", got)
	}
}
