package stats

import "time"

// Summary 是一个统计窗口的汇总快照。
type Summary struct {
	Payloads   uint64        // 窗口内处理的完整 payload 数
	Bytes      uint64        // 窗口内接收字节数
	Detections uint64        // 窗口内检测事件数
	Elapsed    time.Duration // 实际窗口长度（机会式检查，允许漂移）
}

// MBytes 返回窗口字节数（MB）。
func (s *Summary) MBytes() float64 {
	return float64(s.Bytes) / 1e6
}

// Reporter 累计吞吐计数并按固定间隔产出汇总。
// 由驱动循环独占持有，不做内部加锁。
type Reporter struct {
	payloads   uint64
	bytes      uint64
	detections uint64

	windowStart time.Time
	interval    time.Duration
}

func NewReporter(interval time.Duration, now time.Time) *Reporter {
	return &Reporter{
		windowStart: now,
		interval:    interval,
	}
}

// Record 累加本次处理的计数增量。
func (r *Reporter) Record(payloads, bytes, detections uint64) {
	r.payloads += payloads
	r.bytes += bytes
	r.detections += detections
}

// MaybeFlush 在窗口时长到达后产出汇总并清零计数。
// 未到间隔时返回 (nil, false)，计数保持不变。
func (r *Reporter) MaybeFlush(now time.Time) (*Summary, bool) {
	elapsed := now.Sub(r.windowStart)
	if elapsed < r.interval {
		return nil, false
	}
	s := &Summary{
		Payloads:   r.payloads,
		Bytes:      r.bytes,
		Detections: r.detections,
		Elapsed:    elapsed,
	}
	r.payloads = 0
	r.bytes = 0
	r.detections = 0
	r.windowStart = now
	return s, true
}
