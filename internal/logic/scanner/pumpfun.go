package scanner

import (
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/types"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/pkg/logger"
	"github.com/near/borsh-go"
)

// pumpFunCreateArgs 是 create 指令 data 去掉 8 字节方法 ID 后的 borsh 参数。
type pumpFunCreateArgs struct {
	Name    string
	Symbol  string
	Uri     string
	Creator types.Pubkey
}

// decodePumpFunCreateArgs 尽力解析 create 参数补充 name/symbol/uri。
// 指令已通过方法 ID 精确匹配，这里解不出来只降级为空字段。
func decodePumpFunCreateArgs(data []byte, ev *DetectionEvent) {
	if len(data) <= 8 {
		return
	}
	var args pumpFunCreateArgs
	if err := borsh.Deserialize(&args, data[8:]); err != nil {
		logger.Debugf("[pumpfun_create] 参数解码失败: %v, tx=%s", err, ev.TxHash)
		return
	}
	ev.Name = args.Name
	ev.Symbol = args.Symbol
	ev.Uri = args.Uri
}
