package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybeFlush_OncePerInterval(t *testing.T) {
	base := time.Now()
	r := NewReporter(15*time.Second, base)

	// 模拟跨越多个窗口的连续流量，每秒一个 payload
	flushes := 0
	for sec := 1; sec <= 45; sec++ {
		r.Record(1, 1200, 0)
		if s, ok := r.MaybeFlush(base.Add(time.Duration(sec) * time.Second)); ok {
			flushes++
			assert.Equal(t, uint64(15), s.Payloads)
			assert.Equal(t, uint64(15*1200), s.Bytes)
		}
	}
	assert.Equal(t, 3, flushes, "45 秒应恰好输出 3 次汇总")
}

func TestMaybeFlush_ResetsCounters(t *testing.T) {
	base := time.Now()
	r := NewReporter(15*time.Second, base)

	r.Record(10, 5000, 2)
	s, ok := r.MaybeFlush(base.Add(16 * time.Second))
	require.True(t, ok)
	assert.Equal(t, uint64(10), s.Payloads)
	assert.Equal(t, uint64(5000), s.Bytes)
	assert.Equal(t, uint64(2), s.Detections)
	assert.Equal(t, 16*time.Second, s.Elapsed)

	// 汇总后计数立即清零，窗口起点重置
	s2, ok := r.MaybeFlush(base.Add(31 * time.Second))
	require.True(t, ok)
	assert.Equal(t, uint64(0), s2.Payloads)
	assert.Equal(t, uint64(0), s2.Bytes)
	assert.Equal(t, uint64(0), s2.Detections)
}

func TestMaybeFlush_BeforeIntervalNoop(t *testing.T) {
	base := time.Now()
	r := NewReporter(15*time.Second, base)

	r.Record(3, 100, 1)
	s, ok := r.MaybeFlush(base.Add(14 * time.Second))
	assert.False(t, ok)
	assert.Nil(t, s)

	// 计数保留到真正的窗口边界
	s, ok = r.MaybeFlush(base.Add(15 * time.Second))
	require.True(t, ok)
	assert.Equal(t, uint64(3), s.Payloads)
}
