package entry

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试用编码器：按 bincode + solana 线上格式反向构造 payload

func appendShortU16(buf []byte, v uint16) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			buf = append(buf, b|0x80)
		} else {
			return append(buf, b)
		}
	}
}

func appendU64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

type testIx struct {
	programIdx uint8
	accounts   []uint8
	data       []byte
}

type testTx struct {
	sigs     int
	version  int // -1 legacy, 0 v0
	accounts []types.Pubkey
	ixs      []testIx
	lookups  int
}

func key(b byte) types.Pubkey {
	var p types.Pubkey
	for i := range p {
		p[i] = b
	}
	return p
}

func encodeTx(buf []byte, tx testTx) []byte {
	buf = appendShortU16(buf, uint16(tx.sigs))
	for i := 0; i < tx.sigs; i++ {
		var sig [64]byte
		sig[0] = byte(i + 1)
		buf = append(buf, sig[:]...)
	}

	if tx.version >= 0 {
		buf = append(buf, 0x80|byte(tx.version))
	}
	buf = append(buf, byte(tx.sigs), 0, 1) // header

	buf = appendShortU16(buf, uint16(len(tx.accounts)))
	for _, k := range tx.accounts {
		buf = append(buf, k[:]...)
	}

	var blockhash [32]byte
	blockhash[0] = 0xbb
	buf = append(buf, blockhash[:]...)

	buf = appendShortU16(buf, uint16(len(tx.ixs)))
	for _, ix := range tx.ixs {
		buf = append(buf, ix.programIdx)
		buf = appendShortU16(buf, uint16(len(ix.accounts)))
		buf = append(buf, ix.accounts...)
		buf = appendShortU16(buf, uint16(len(ix.data)))
		buf = append(buf, ix.data...)
	}

	if tx.version >= 0 {
		buf = appendShortU16(buf, uint16(tx.lookups))
		for i := 0; i < tx.lookups; i++ {
			table := key(0xcc)
			buf = append(buf, table[:]...)
			buf = appendShortU16(buf, 2)
			buf = append(buf, 1, 2)
			buf = appendShortU16(buf, 1)
			buf = append(buf, 3)
		}
	}
	return buf
}

func encodeEntries(txsPerEntry [][]testTx) []byte {
	var buf []byte
	buf = appendU64(buf, uint64(len(txsPerEntry)))
	for i, txs := range txsPerEntry {
		buf = appendU64(buf, uint64(i+10)) // num_hashes
		hash := key(byte(i + 1))
		buf = append(buf, hash[:]...)
		buf = appendU64(buf, uint64(len(txs)))
		for _, tx := range txs {
			buf = encodeTx(buf, tx)
		}
	}
	return buf
}

func TestDecodeEntries_LegacyRoundTrip(t *testing.T) {
	tx := testTx{
		sigs:     1,
		version:  -1,
		accounts: []types.Pubkey{key(1), key(2), key(3)},
		ixs: []testIx{
			{programIdx: 2, accounts: []uint8{0, 1}, data: []byte{9, 9, 9}},
		},
	}
	payload := encodeEntries([][]testTx{{tx}, {}})

	entries, err := DecodeEntries(payload)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, uint64(10), entries[0].NumHashes)
	require.Len(t, entries[0].Transactions, 1)
	assert.Empty(t, entries[1].Transactions)

	got := entries[0].Transactions[0]
	require.Len(t, got.Signatures, 1)
	assert.NotEmpty(t, got.TxHash())

	m := got.Message
	assert.Equal(t, -1, m.Version)
	assert.Equal(t, uint8(1), m.Header.NumRequiredSignatures)
	require.Len(t, m.AccountKeys, 3)
	assert.Equal(t, key(2), m.AccountKeys[1])
	require.Len(t, m.Instructions, 1)
	assert.Equal(t, uint8(2), m.Instructions[0].ProgramIDIndex)
	assert.Equal(t, []uint8{0, 1}, m.Instructions[0].Accounts)
	assert.Equal(t, []byte{9, 9, 9}, m.Instructions[0].Data)
	assert.Empty(t, m.Lookups)
}

func TestDecodeEntries_V0WithLookups(t *testing.T) {
	tx := testTx{
		sigs:     1,
		version:  0,
		accounts: []types.Pubkey{key(1), key(2)},
		ixs: []testIx{
			{programIdx: 1, accounts: []uint8{0}, data: []byte{1}},
		},
		lookups: 2,
	}
	payload := encodeEntries([][]testTx{{tx}})

	entries, err := DecodeEntries(payload)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	m := entries[0].Transactions[0].Message
	assert.Equal(t, 0, m.Version)
	require.Len(t, m.Lookups, 2)
	assert.Equal(t, key(0xcc), m.Lookups[0].AccountKey)
	assert.Equal(t, []uint8{1, 2}, m.Lookups[0].WritableIndexes)
	assert.Equal(t, []uint8{3}, m.Lookups[0].ReadonlyIndexes)
}

func TestDecodeEntries_EmptyVec(t *testing.T) {
	entries, err := DecodeEntries(appendU64(nil, 0))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// 任意随机字节不允许 panic，只能返回 error
func TestDecodeEntries_RandomBytesNeverPanic(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		buf := make([]byte, rnd.Intn(512))
		rnd.Read(buf)
		assert.NotPanics(t, func() {
			_, _ = DecodeEntries(buf)
		})
	}
}

func TestDecodeEntries_Malformed(t *testing.T) {
	// entry 数量声明超过实际字节
	var buf []byte
	buf = appendU64(buf, 1<<40)
	_, err := DecodeEntries(buf)
	assert.Error(t, err)

	// 合法 payload 带尾部脏字节
	payload := encodeEntries([][]testTx{{}})
	payload = append(payload, 0xde, 0xad)
	_, err = DecodeEntries(payload)
	assert.Error(t, err)

	// 截断的交易
	tx := testTx{sigs: 1, version: -1, accounts: []types.Pubkey{key(1)}}
	payload = encodeEntries([][]testTx{{tx}})
	_, err = DecodeEntries(payload[:len(payload)-5])
	assert.Error(t, err)

	// 不支持的消息版本
	entries := appendU64(nil, 1)
	entries = appendU64(entries, 1)
	entries = append(entries, make([]byte, 32)...)
	entries = appendU64(entries, 1)
	entries = appendShortU16(entries, 0) // 无签名
	entries = append(entries, 0x81)      // version 1
	_, err = DecodeEntries(entries)
	assert.Error(t, err)
}
