package entry

import (
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/types"
)

// Entry 表示 shredstream 推送的一个账本条目，内含按序排列的交易批次。
type Entry struct {
	NumHashes    uint64        // PoH hash 次数
	Hash         types.Hash    // PoH hash
	Transactions []Transaction // 交易列表，保持原始顺序
}

// Transaction 是一笔已序列化上链的交易（legacy 或 v0）。
type Transaction struct {
	Signatures []types.Signature // 签名列表，首个即交易哈希
	Message    Message
}

// TxHash 返回交易哈希（首个签名的 base58）。无签名交易返回空串。
func (t *Transaction) TxHash() string {
	if len(t.Signatures) == 0 {
		return ""
	}
	return t.Signatures[0].String()
}

// MessageHeader 是消息头的 3 个计数字段。
type MessageHeader struct {
	NumRequiredSignatures       uint8
	NumReadonlySignedAccounts   uint8
	NumReadonlyUnsignedAccounts uint8
}

// Message 是交易消息体。指令中的账户索引只相对本消息的
// AccountKeys（静态账户表）有意义。
type Message struct {
	Version         int // -1 表示 legacy，>=0 表示版本号
	Header          MessageHeader
	AccountKeys     []types.Pubkey // 静态账户表，固定顺序
	RecentBlockhash types.Hash
	Instructions    []CompiledInstruction
	Lookups         []AddressTableLookup // 仅 v0 消息存在
}

const versionLegacy = -1

// CompiledInstruction 是按索引压缩的指令。
type CompiledInstruction struct {
	ProgramIDIndex uint8   // 程序地址在静态账户表中的索引
	Accounts       []uint8 // 账户索引列表（指向静态账户表）
	Data           []byte  // 指令数据原始字节
}

// AddressTableLookup 是 v0 消息的地址查找表引用。
type AddressTableLookup struct {
	AccountKey      types.Pubkey
	WritableIndexes []uint8
	ReadonlyIndexes []uint8
}
