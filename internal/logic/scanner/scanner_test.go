package scanner

import (
	"testing"

	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/consts"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/logic/entry"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/types"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// create 指令方法 ID 的原始字节（大端序 0x181ec828051c0777）
var createDisc = []byte{24, 30, 200, 40, 5, 28, 7, 119}

func key(b byte) types.Pubkey {
	var p types.Pubkey
	for i := range p {
		p[i] = b
	}
	return p
}

// buildEntries 构造单交易 entry：accounts 为静态账户表，末位追加目标程序
func buildEntries(accounts []types.Pubkey, ixs ...entry.CompiledInstruction) []entry.Entry {
	var sig types.Signature
	sig[0] = 0x5a
	return []entry.Entry{{
		NumHashes: 1,
		Transactions: []entry.Transaction{{
			Signatures: []types.Signature{sig},
			Message: entry.Message{
				Version:      -1,
				AccountKeys:  accounts,
				Instructions: ixs,
			},
		}},
	}}
}

// 静态账户表：#0..#7 为 A0..A7，#8 为 PumpFun 程序
func canonicalAccounts() []types.Pubkey {
	accounts := make([]types.Pubkey, 0, 9)
	for i := 0; i < 8; i++ {
		accounts = append(accounts, key(byte(0x10+i)))
	}
	return append(accounts, consts.PumpFunProgram)
}

func TestScan_CanonicalDetection(t *testing.T) {
	accounts := canonicalAccounts()
	ix := entry.CompiledInstruction{
		ProgramIDIndex: 8,
		Accounts:       []uint8{0, 1, 2, 3, 4, 5, 6, 7},
		Data:           createDisc,
	}

	events := Scan(buildEntries(accounts, ix), PumpFunCreateRule())
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, accounts[0].String(), ev.Fields["mint"])
	assert.Equal(t, accounts[2].String(), ev.Fields["bonding_curve"])
	assert.Equal(t, accounts[7].String(), ev.Fields["creator"])
	assert.Equal(t, consts.PumpFunProgram, ev.Program)
	assert.NotEmpty(t, ev.TxHash)
}

// data 不足 8 字节时无论程序是否匹配都不产出事件
func TestScan_ShortDataNeverMatches(t *testing.T) {
	accounts := canonicalAccounts()
	for n := 0; n < 8; n++ {
		ix := entry.CompiledInstruction{
			ProgramIDIndex: 8,
			Accounts:       []uint8{0, 1, 2, 3, 4, 5, 6, 7},
			Data:           createDisc[:n],
		}
		events := Scan(buildEntries(accounts, ix), PumpFunCreateRule())
		assert.Empty(t, events, "data len=%d 不应命中", n)
	}
}

// 程序不匹配时与 data 内容无关，一律跳过
func TestScan_WrongProgramNeverMatches(t *testing.T) {
	accounts := canonicalAccounts()
	ix := entry.CompiledInstruction{
		ProgramIDIndex: 0, // A0，不是 PumpFun
		Accounts:       []uint8{0, 1, 2, 3, 4, 5, 6, 7},
		Data:           createDisc,
	}
	assert.Empty(t, Scan(buildEntries(accounts, ix), PumpFunCreateRule()))
}

func TestScan_WrongDiscriminatorSkipped(t *testing.T) {
	accounts := canonicalAccounts()
	data := append([]byte(nil), createDisc...)
	data[7] ^= 1
	ix := entry.CompiledInstruction{
		ProgramIDIndex: 8,
		Accounts:       []uint8{0, 1, 2},
		Data:           data,
	}
	assert.Empty(t, Scan(buildEntries(accounts, ix), PumpFunCreateRule()))
}

// program_id_index 越界的指令跳过，不视为错误
func TestScan_ProgramIndexOutOfRange(t *testing.T) {
	accounts := canonicalAccounts()
	ix := entry.CompiledInstruction{
		ProgramIDIndex: 200,
		Accounts:       []uint8{0},
		Data:           createDisc,
	}
	assert.Empty(t, Scan(buildEntries(accounts, ix), PumpFunCreateRule()))
}

// 账户索引越界被过滤；位置超出解析列表的字段留空而非失败
func TestScan_MissingAccountsYieldEmptyFields(t *testing.T) {
	accounts := canonicalAccounts()
	ix := entry.CompiledInstruction{
		ProgramIDIndex: 8,
		Accounts:       []uint8{0, 99, 2}, // 99 越界被过滤，解析后为 [A0, A2]
		Data:           createDisc,
	}
	events := Scan(buildEntries(accounts, ix), PumpFunCreateRule())
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, accounts[0].String(), ev.Fields["mint"])
	// 过滤后位置 2 越界 → bonding_curve 留空
	assert.Equal(t, "", ev.Fields["bonding_curve"])
	assert.Equal(t, "", ev.Fields["creator"])
}

// 同一 payload 内多条命中指令各自产出事件，不去重
func TestScan_MultipleMatchesNoDedup(t *testing.T) {
	accounts := canonicalAccounts()
	ix := entry.CompiledInstruction{
		ProgramIDIndex: 8,
		Accounts:       []uint8{0, 1, 2, 3, 4, 5, 6, 7},
		Data:           createDisc,
	}
	events := Scan(buildEntries(accounts, ix, ix, ix), PumpFunCreateRule())
	assert.Len(t, events, 3)
}

// create 参数（borsh）可解析时补充 name/symbol/uri
func TestScan_DecodesCreateArgs(t *testing.T) {
	args := pumpFunCreateArgs{
		Name:    "Test Token",
		Symbol:  "TST",
		Uri:     "https://example.com/meta.json",
		Creator: key(0x17),
	}
	encoded, err := borsh.Serialize(args)
	require.NoError(t, err)

	accounts := canonicalAccounts()
	ix := entry.CompiledInstruction{
		ProgramIDIndex: 8,
		Accounts:       []uint8{0, 1, 2, 3, 4, 5, 6, 7},
		Data:           append(append([]byte(nil), createDisc...), encoded...),
	}
	events := Scan(buildEntries(accounts, ix), PumpFunCreateRule())
	require.Len(t, events, 1)
	assert.Equal(t, "Test Token", events[0].Name)
	assert.Equal(t, "TST", events[0].Symbol)
	assert.Equal(t, "https://example.com/meta.json", events[0].Uri)
}

// 参数解不出来只降级为空字段，事件照常产出
func TestScan_BadArgsStillEmits(t *testing.T) {
	accounts := canonicalAccounts()
	ix := entry.CompiledInstruction{
		ProgramIDIndex: 8,
		Accounts:       []uint8{0, 1, 2, 3, 4, 5, 6, 7},
		Data:           append(append([]byte(nil), createDisc...), 0xff, 0xff),
	}
	events := Scan(buildEntries(accounts, ix), PumpFunCreateRule())
	require.Len(t, events, 1)
	assert.Empty(t, events[0].Name)
}
