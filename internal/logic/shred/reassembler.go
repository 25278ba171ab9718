package shred

import (
	"encoding/binary"
	"time"

	"github.com/AllenHark-Inc/UDP-Shreds-Test/pkg/logger"
)

// UDP 分片线上格式：16 字节头 + 分片数据。
//
//	magic           4 字节 "SHRD"
//	message_id      u32 LE
//	fragment_index  u16 LE
//	total_fragments u16 LE
//	total_size      u32 LE
//
// 头部 magic 不匹配（或包长不足 16 字节）的包视为未分片的完整 payload。
const (
	HeaderSize = 16

	magicLen = 4
)

var Magic = [magicLen]byte{'S', 'H', 'R', 'D'}

type fragmentHeader struct {
	messageID      uint32
	fragmentIndex  uint16
	totalFragments uint16
	totalSize      uint32
}

func parseHeader(pkt []byte) fragmentHeader {
	return fragmentHeader{
		messageID:      binary.LittleEndian.Uint32(pkt[4:8]),
		fragmentIndex:  binary.LittleEndian.Uint16(pkt[8:10]),
		totalFragments: binary.LittleEndian.Uint16(pkt[10:12]),
		totalSize:      binary.LittleEndian.Uint32(pkt[12:16]),
	}
}

// reassemblyBuffer 是单个 message_id 的重组状态。
type reassemblyBuffer struct {
	totalFragments uint16
	totalSize      uint32
	fragments      map[uint16][]byte // fragment_index -> 分片字节
	createdAt      time.Time
}

// Reassembler 将乱序到达的 UDP 分片还原为完整 payload。
// 内部 map 只允许单个消费 goroutine 修改，依赖该约束省去锁。
type Reassembler struct {
	buffers map[uint32]*reassemblyBuffer
	ttl     time.Duration

	nowFn func() time.Time // 测试可替换
}

func NewReassembler(ttl time.Duration) *Reassembler {
	return &Reassembler{
		buffers: make(map[uint32]*reassemblyBuffer),
		ttl:     ttl,
		nowFn:   time.Now,
	}
}

// Pending 返回当前未完成的重组缓冲数量。
func (r *Reassembler) Pending() int {
	return len(r.buffers)
}

// Process 处理一个到达的 UDP 包。返回值：
//   - 完整 payload + true：包本身未分片，或该包补齐了一条分片消息
//   - nil + false：分片已缓存但消息尚未完整，或包被判定为非法分片丢弃
func (r *Reassembler) Process(pkt []byte) ([]byte, bool) {
	if len(pkt) < HeaderSize || [magicLen]byte(pkt[:magicLen]) != Magic {
		return pkt, true
	}

	h := parseHeader(pkt)
	if h.totalFragments == 0 {
		logger.Warnf("丢弃非法分片: total_fragments=0, message_id=%d", h.messageID)
		return nil, false
	}
	if h.fragmentIndex >= h.totalFragments {
		logger.Warnf("丢弃越界分片: message_id=%d, index=%d, total=%d",
			h.messageID, h.fragmentIndex, h.totalFragments)
		return nil, false
	}

	buf, ok := r.buffers[h.messageID]
	if !ok {
		buf = &reassemblyBuffer{
			totalFragments: h.totalFragments,
			totalSize:      h.totalSize,
			fragments:      make(map[uint16][]byte, h.totalFragments),
			createdAt:      r.nowFn(),
		}
		r.buffers[h.messageID] = buf
	} else if buf.totalFragments != h.totalFragments || buf.totalSize != h.totalSize {
		// 同一 message_id 的头部字段自相矛盾，保留首个分片声明的预期值
		logger.Warnf("分片头不一致: message_id=%d, total=%d/%d, size=%d/%d",
			h.messageID, h.totalFragments, buf.totalFragments, h.totalSize, buf.totalSize)
		return nil, false
	}

	// 重复 index 直接覆盖（last-write-wins），不影响完成计数
	buf.fragments[h.fragmentIndex] = append([]byte(nil), pkt[HeaderSize:]...)

	if len(buf.fragments) < int(buf.totalFragments) {
		return nil, false
	}

	// 收齐后立即移除缓冲，保证同一 message_id 不会二次产出
	delete(r.buffers, h.messageID)

	payload := make([]byte, 0, buf.totalSize)
	for i := uint16(0); i < buf.totalFragments; i++ {
		frag, ok := buf.fragments[i]
		if !ok {
			// 完成计数已满时不应缺 index；真遇到只跳过该片，产出截断结果
			logger.Errorf("重组异常: message_id=%d 缺少分片 index=%d, total=%d",
				h.messageID, i, buf.totalFragments)
			continue
		}
		payload = append(payload, frag...)
	}
	if uint32(len(payload)) != buf.totalSize {
		logger.Warnf("重组大小不符: message_id=%d, got=%d, expect=%d",
			h.messageID, len(payload), buf.totalSize)
	}
	return payload, true
}

// Cleanup 清除存活超过 TTL 的未完成缓冲，返回清除数量。
// 必须按固定间隔调用，不能只依赖包到达触发，否则静默期内存不会回收。
func (r *Reassembler) Cleanup(now time.Time) int {
	evicted := 0
	for id, buf := range r.buffers {
		if now.Sub(buf.createdAt) > r.ttl {
			logger.Warnf("重组超时丢弃: message_id=%d, 已收 %d/%d 片, age=%v",
				id, len(buf.fragments), buf.totalFragments, now.Sub(buf.createdAt))
			delete(r.buffers, id)
			evicted++
		}
	}
	return evicted
}
