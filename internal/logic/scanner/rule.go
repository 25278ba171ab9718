package scanner

import (
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/consts"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/types"
)

// AccountField 描述一个按固定位置提取的账户字段。
// Position 指向指令账户列表解析后的下标（越界的索引已被过滤）。
type AccountField struct {
	Name     string
	Position int
}

// DetectionRule 把「程序地址 + 方法 ID + 字段位置表」表示成数据，
// 新增检测目标时不需要改扫描算法本身。
type DetectionRule struct {
	Name          string         // 规则名，用于日志
	Program       types.Pubkey   // 目标程序地址
	Discriminator uint64         // 指令 data 前 8 字节（大端序）
	Fields        []AccountField // 按位置提取的账户字段

	// DecodeArgs 可选：在命中后对指令 data（含 8 字节方法 ID）做
	// 进一步解码补充事件字段。失败只能降级，不允许否决事件。
	DecodeArgs func(data []byte, ev *DetectionEvent)
}

// DetectionEvent 是一次命中产出的事件，产出后不可变。
type DetectionEvent struct {
	Slot    uint64            // 流式来源的 slot；UDP 来源为 0
	Source  string            // UDP 来源地址；流式来源为空
	TxHash  string            // 交易哈希（首个签名），可为空
	Program types.Pubkey      // 命中的程序地址
	Fields  map[string]string // 字段名 -> base58 账户地址，缺失为空串

	// PumpFun create 参数（borsh 解码，尽力而为）
	Name   string
	Symbol string
	Uri    string
}

// PumpFunCreateRule 返回 PumpFun create 指令的检测规则。
//
// create 指令账户布局（与线上交易一致）：
//
//	#0 mint  #1 mint_authority  #2 bonding_curve  #3 associated_bonding_curve
//	#4 global  #5 mpl_token_metadata  #6 metadata  #7 user (creator)
func PumpFunCreateRule() *DetectionRule {
	return &DetectionRule{
		Name:          "pumpfun_create",
		Program:       consts.PumpFunProgram,
		Discriminator: consts.PumpFunCreate,
		Fields: []AccountField{
			{Name: "mint", Position: 0},
			{Name: "bonding_curve", Position: 2},
			{Name: "creator", Position: 7},
		},
		DecodeArgs: decodePumpFunCreateArgs,
	}
}
