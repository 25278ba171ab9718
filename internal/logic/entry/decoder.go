package entry

import (
	"encoding/binary"
	"fmt"

	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/types"
)

// 上游 proxy 推送的 payload 是 bincode 序列化的 Vec<Entry>：
//   - u64 LE entry 数量
//   - 每个 entry: num_hashes u64 LE + 32 字节 hash + u64 LE 交易数量
//   - 每笔交易为标准 solana 线上格式（shortvec 计数 + 定长字段）
//
// 所有读取都做边界检查；长度字段先对剩余字节做合理性校验，
// 防止恶意 payload 触发超大内存分配。解析失败只返回 error，
// 由调用方丢弃该 payload 并继续。

const (
	sigLen    = 64
	pubkeyLen = 32
	hashLen   = 32

	// v0 消息的版本前缀位
	versionPrefixMask = 0x80
)

// DecodeEntries 将原始 payload 反序列化为 entry 列表。
func DecodeEntries(data []byte) ([]Entry, error) {
	r := &reader{buf: data}

	count, err := r.u64()
	if err != nil {
		return nil, fmt.Errorf("entry count: %w", err)
	}
	// 每个 entry 至少 48 字节（num_hashes + hash + tx 数量）
	if count > uint64(r.remaining())/48 {
		return nil, fmt.Errorf("entry count %d exceeds payload size %d", count, len(data))
	}

	entries := make([]Entry, 0, count)
	for i := uint64(0); i < count; i++ {
		e, err := decodeEntry(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	if r.remaining() != 0 {
		return nil, fmt.Errorf("trailing %d bytes after %d entries", r.remaining(), count)
	}
	return entries, nil
}

func decodeEntry(r *reader) (Entry, error) {
	var e Entry
	var err error

	if e.NumHashes, err = r.u64(); err != nil {
		return e, fmt.Errorf("num_hashes: %w", err)
	}
	hash, err := r.bytes(hashLen)
	if err != nil {
		return e, fmt.Errorf("hash: %w", err)
	}
	copy(e.Hash[:], hash)

	txCount, err := r.u64()
	if err != nil {
		return e, fmt.Errorf("tx count: %w", err)
	}
	if txCount > uint64(r.remaining()) {
		return e, fmt.Errorf("tx count %d exceeds remaining %d bytes", txCount, r.remaining())
	}

	e.Transactions = make([]Transaction, 0, txCount)
	for i := uint64(0); i < txCount; i++ {
		tx, err := decodeTransaction(r)
		if err != nil {
			return e, fmt.Errorf("tx %d: %w", i, err)
		}
		e.Transactions = append(e.Transactions, tx)
	}
	return e, nil
}

func decodeTransaction(r *reader) (Transaction, error) {
	var tx Transaction

	sigCount, err := r.shortU16()
	if err != nil {
		return tx, fmt.Errorf("sig count: %w", err)
	}
	if int(sigCount)*sigLen > r.remaining() {
		return tx, fmt.Errorf("sig count %d exceeds remaining %d bytes", sigCount, r.remaining())
	}
	tx.Signatures = make([]types.Signature, sigCount)
	for i := range tx.Signatures {
		raw, err := r.bytes(sigLen)
		if err != nil {
			return tx, fmt.Errorf("signature %d: %w", i, err)
		}
		copy(tx.Signatures[i][:], raw)
	}

	if tx.Message, err = decodeMessage(r); err != nil {
		return tx, fmt.Errorf("message: %w", err)
	}
	return tx, nil
}

func decodeMessage(r *reader) (Message, error) {
	var m Message

	prefix, err := r.u8()
	if err != nil {
		return m, fmt.Errorf("prefix: %w", err)
	}
	if prefix&versionPrefixMask != 0 {
		m.Version = int(prefix &^ versionPrefixMask)
		if m.Version != 0 {
			return m, fmt.Errorf("unsupported message version %d", m.Version)
		}
		if prefix, err = r.u8(); err != nil {
			return m, fmt.Errorf("header: %w", err)
		}
	} else {
		m.Version = versionLegacy
	}
	m.Header.NumRequiredSignatures = prefix

	if m.Header.NumReadonlySignedAccounts, err = r.u8(); err != nil {
		return m, fmt.Errorf("header: %w", err)
	}
	if m.Header.NumReadonlyUnsignedAccounts, err = r.u8(); err != nil {
		return m, fmt.Errorf("header: %w", err)
	}

	keyCount, err := r.shortU16()
	if err != nil {
		return m, fmt.Errorf("account count: %w", err)
	}
	if int(keyCount)*pubkeyLen > r.remaining() {
		return m, fmt.Errorf("account count %d exceeds remaining %d bytes", keyCount, r.remaining())
	}
	m.AccountKeys = make([]types.Pubkey, keyCount)
	for i := range m.AccountKeys {
		raw, err := r.bytes(pubkeyLen)
		if err != nil {
			return m, fmt.Errorf("account %d: %w", i, err)
		}
		copy(m.AccountKeys[i][:], raw)
	}

	blockhash, err := r.bytes(hashLen)
	if err != nil {
		return m, fmt.Errorf("recent blockhash: %w", err)
	}
	copy(m.RecentBlockhash[:], blockhash)

	ixCount, err := r.shortU16()
	if err != nil {
		return m, fmt.Errorf("instruction count: %w", err)
	}
	if int(ixCount) > r.remaining() {
		return m, fmt.Errorf("instruction count %d exceeds remaining %d bytes", ixCount, r.remaining())
	}
	m.Instructions = make([]CompiledInstruction, 0, ixCount)
	for i := uint16(0); i < ixCount; i++ {
		ix, err := decodeInstruction(r)
		if err != nil {
			return m, fmt.Errorf("instruction %d: %w", i, err)
		}
		m.Instructions = append(m.Instructions, ix)
	}

	if m.Version >= 0 {
		lookupCount, err := r.shortU16()
		if err != nil {
			return m, fmt.Errorf("lookup count: %w", err)
		}
		if int(lookupCount)*pubkeyLen > r.remaining() {
			return m, fmt.Errorf("lookup count %d exceeds remaining %d bytes", lookupCount, r.remaining())
		}
		m.Lookups = make([]AddressTableLookup, 0, lookupCount)
		for i := uint16(0); i < lookupCount; i++ {
			lookup, err := decodeLookup(r)
			if err != nil {
				return m, fmt.Errorf("lookup %d: %w", i, err)
			}
			m.Lookups = append(m.Lookups, lookup)
		}
	}
	return m, nil
}

func decodeInstruction(r *reader) (CompiledInstruction, error) {
	var ix CompiledInstruction
	var err error

	if ix.ProgramIDIndex, err = r.u8(); err != nil {
		return ix, fmt.Errorf("program_id_index: %w", err)
	}

	accCount, err := r.shortU16()
	if err != nil {
		return ix, fmt.Errorf("account count: %w", err)
	}
	accounts, err := r.bytes(int(accCount))
	if err != nil {
		return ix, fmt.Errorf("accounts: %w", err)
	}
	ix.Accounts = append([]uint8(nil), accounts...)

	dataLen, err := r.shortU16()
	if err != nil {
		return ix, fmt.Errorf("data len: %w", err)
	}
	data, err := r.bytes(int(dataLen))
	if err != nil {
		return ix, fmt.Errorf("data: %w", err)
	}
	ix.Data = append([]byte(nil), data...)
	return ix, nil
}

func decodeLookup(r *reader) (AddressTableLookup, error) {
	var l AddressTableLookup

	key, err := r.bytes(pubkeyLen)
	if err != nil {
		return l, fmt.Errorf("account key: %w", err)
	}
	copy(l.AccountKey[:], key)

	wCount, err := r.shortU16()
	if err != nil {
		return l, fmt.Errorf("writable count: %w", err)
	}
	writable, err := r.bytes(int(wCount))
	if err != nil {
		return l, fmt.Errorf("writable indexes: %w", err)
	}
	l.WritableIndexes = append([]uint8(nil), writable...)

	rCount, err := r.shortU16()
	if err != nil {
		return l, fmt.Errorf("readonly count: %w", err)
	}
	readonly, err := r.bytes(int(rCount))
	if err != nil {
		return l, fmt.Errorf("readonly indexes: %w", err)
	}
	l.ReadonlyIndexes = append([]uint8(nil), readonly...)
	return l, nil
}

// reader 是顺序字节读取器，所有方法越界时返回 error 而非 panic。
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) u8() (uint8, error) {
	if r.remaining() < 1 {
		return 0, fmt.Errorf("unexpected end of input at offset %d", r.off)
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *reader) u64() (uint64, error) {
	if r.remaining() < 8 {
		return 0, fmt.Errorf("unexpected end of input at offset %d, need 8 bytes", r.off)
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, fmt.Errorf("unexpected end of input at offset %d, need %d bytes", r.off, n)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// shortU16 解析 solana shortvec 变长计数（最多 3 字节，每字节 7 位）。
func (r *reader) shortU16() (uint16, error) {
	var value uint16
	for i := 0; i < 3; i++ {
		b, err := r.u8()
		if err != nil {
			return 0, err
		}
		value |= uint16(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			if i == 2 && b > 0x03 {
				return 0, fmt.Errorf("shortvec value overflows u16 at offset %d", r.off)
			}
			return value, nil
		}
	}
	return 0, fmt.Errorf("shortvec length longer than 3 bytes at offset %d", r.off)
}
