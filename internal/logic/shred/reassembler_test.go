package shred

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFragment 构造一个带 16 字节头的分片包
func buildFragment(msgID uint32, index, total uint16, totalSize uint32, body []byte) []byte {
	pkt := make([]byte, HeaderSize+len(body))
	copy(pkt[:4], Magic[:])
	binary.LittleEndian.PutUint32(pkt[4:8], msgID)
	binary.LittleEndian.PutUint16(pkt[8:10], index)
	binary.LittleEndian.PutUint16(pkt[10:12], total)
	binary.LittleEndian.PutUint32(pkt[12:16], totalSize)
	copy(pkt[HeaderSize:], body)
	return pkt
}

// splitPayload 把 payload 均分为 n 片并构造分片包
func splitPayload(msgID uint32, payload []byte, n int) [][]byte {
	fragments := make([][]byte, 0, n)
	chunk := (len(payload) + n - 1) / n
	for i := 0; i < n; i++ {
		start := i * chunk
		end := start + chunk
		if end > len(payload) {
			end = len(payload)
		}
		fragments = append(fragments, buildFragment(
			msgID, uint16(i), uint16(n), uint32(len(payload)), payload[start:end]))
	}
	return fragments
}

// 无 magic 前缀的包应原样透传
func TestProcess_PassthroughWithoutMagic(t *testing.T) {
	r := NewReassembler(10 * time.Second)

	pkt := []byte("plain payload without header")
	out, ok := r.Process(pkt)
	assert.True(t, ok)
	assert.Equal(t, pkt, out)
	assert.Equal(t, 0, r.Pending())

	// 不足 16 字节的短包同样透传
	short := []byte{'S', 'H', 'R', 'D', 1, 2, 3}
	out, ok = r.Process(short)
	assert.True(t, ok)
	assert.Equal(t, short, out)
}

// 任意乱序投递 N 片都应恰好产出一次原始 payload
func TestProcess_RoundTripAnyPermutation(t *testing.T) {
	payload := make([]byte, 10000)
	rnd := rand.New(rand.NewSource(42))
	rnd.Read(payload)

	for _, n := range []int{1, 2, 3, 7, 16} {
		fragments := splitPayload(1001, payload, n)
		perm := rnd.Perm(n)

		r := NewReassembler(10 * time.Second)
		emitted := 0
		var result []byte
		for _, i := range perm {
			out, ok := r.Process(fragments[i])
			if ok {
				emitted++
				result = out
			}
		}
		require.Equal(t, 1, emitted, "n=%d 应恰好产出一次", n)
		assert.True(t, bytes.Equal(payload, result), "n=%d 重组结果与原始不一致", n)
		assert.Equal(t, 0, r.Pending(), "完成后缓冲应立即移除")
	}
}

// 完成前重复投递同一分片不影响最终结果，也不会二次产出
func TestProcess_DuplicateFragmentIdempotent(t *testing.T) {
	payload := []byte("hello shred reassembly, duplicate fragments welcome")
	fragments := splitPayload(7, payload, 3)

	r := NewReassembler(10 * time.Second)

	_, ok := r.Process(fragments[0])
	assert.False(t, ok)
	_, ok = r.Process(fragments[0]) // 重复
	assert.False(t, ok)
	_, ok = r.Process(fragments[2])
	assert.False(t, ok)

	out, ok := r.Process(fragments[1])
	require.True(t, ok)
	assert.Equal(t, payload, out)

	// 完成后再投同一 message_id 的分片会开新缓冲，不会重复产出旧消息
	_, ok = r.Process(fragments[0])
	assert.False(t, ok)
	assert.Equal(t, 1, r.Pending())
}

// 非法分片（total=0 / index 越界 / 头部自相矛盾）应被丢弃
func TestProcess_RejectsInvalidFragments(t *testing.T) {
	r := NewReassembler(10 * time.Second)

	out, ok := r.Process(buildFragment(1, 0, 0, 10, []byte("x")))
	assert.False(t, ok)
	assert.Nil(t, out)

	out, ok = r.Process(buildFragment(2, 5, 3, 10, []byte("x")))
	assert.False(t, ok)
	assert.Nil(t, out)
	assert.Equal(t, 0, r.Pending())

	// 同一 message_id 声明不同 total：保留首个声明，后到的矛盾分片丢弃
	_, ok = r.Process(buildFragment(3, 0, 2, 8, []byte("aaaa")))
	assert.False(t, ok)
	_, ok = r.Process(buildFragment(3, 1, 3, 8, []byte("bbbb")))
	assert.False(t, ok)
	out, ok = r.Process(buildFragment(3, 1, 2, 8, []byte("bbbb")))
	require.True(t, ok)
	assert.Equal(t, []byte("aaaabbbb"), out)
}

// 永不完成的缓冲到期后被周期清扫移除，缓冲数量有界
func TestCleanup_EvictsExpiredBuffers(t *testing.T) {
	r := NewReassembler(10 * time.Second)

	base := time.Now()
	r.nowFn = func() time.Time { return base }

	// 100 个各缺一片的消息
	for id := uint32(0); id < 100; id++ {
		_, ok := r.Process(buildFragment(id, 0, 2, 8, []byte("half")))
		assert.False(t, ok)
	}
	assert.Equal(t, 100, r.Pending())

	// 未到 TTL 不清
	assert.Equal(t, 0, r.Cleanup(base.Add(5*time.Second)))
	assert.Equal(t, 100, r.Pending())

	// 超过 TTL 全清
	assert.Equal(t, 100, r.Cleanup(base.Add(11*time.Second)))
	assert.Equal(t, 0, r.Pending())

	// 清扫后同 id 重来可以正常完成
	_, ok := r.Process(buildFragment(0, 0, 2, 8, []byte("part")))
	assert.False(t, ok)
	out, ok := r.Process(buildFragment(0, 1, 2, 8, []byte("done")))
	require.True(t, ok)
	assert.Equal(t, []byte("partdone"), out)
}

// 完成计数已满但装配索引缺失时，缺口被跳过并产出截断结果。
// 正常到达路径到不了这个分支（越界索引在入口被拒），直接注入缓冲构造。
func TestProcess_MissingIndexProducesTruncatedPayload(t *testing.T) {
	r := NewReassembler(10 * time.Second)

	r.buffers[7] = &reassemblyBuffer{
		totalFragments: 3,
		totalSize:      9,
		fragments: map[uint16][]byte{
			0: []byte("aaa"),
			5: []byte("ccc"), // 占据完成计数但不参与装配
		},
		createdAt: time.Now(),
	}

	payload, ok := r.Process(buildFragment(7, 1, 3, 9, []byte("bbb")))
	require.True(t, ok)
	assert.Equal(t, []byte("aaabbb"), payload, "缺失 index=2 被跳过，产出截断 payload")
	assert.Equal(t, 0, r.Pending(), "缓冲完成后移除，不会二次产出")
}
