package scanner

import (
	"encoding/binary"

	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/logic/entry"
)

// Scan 按原始顺序遍历所有交易的所有指令，返回命中规则的事件列表。
// 事件顺序与指令在 payload 内出现的顺序一致。同一 payload 内多条
// 命中指令各自产出事件，不做去重。
//
// 结构异常（索引越界、data 过短）一律跳过当前指令，不中断扫描。
func Scan(entries []entry.Entry, rule *DetectionRule) []*DetectionEvent {
	var events []*DetectionEvent
	for i := range entries {
		for j := range entries[i].Transactions {
			tx := &entries[i].Transactions[j]
			events = scanTx(tx, rule, events)
		}
	}
	return events
}

func scanTx(tx *entry.Transaction, rule *DetectionRule, events []*DetectionEvent) []*DetectionEvent {
	accounts := tx.Message.AccountKeys
	for _, ix := range tx.Message.Instructions {
		if int(ix.ProgramIDIndex) >= len(accounts) {
			continue
		}
		if !accounts[ix.ProgramIDIndex].Equals(rule.Program) {
			continue
		}
		if len(ix.Data) < 8 {
			continue
		}
		if binary.BigEndian.Uint64(ix.Data[:8]) != rule.Discriminator {
			continue
		}

		// 解析指令账户列表，越界索引直接过滤（缺失字段留空，不否决事件）
		resolved := make([]string, 0, len(ix.Accounts))
		for _, idx := range ix.Accounts {
			if int(idx) >= len(accounts) {
				continue
			}
			resolved = append(resolved, accounts[idx].String())
		}

		ev := &DetectionEvent{
			TxHash:  tx.TxHash(),
			Program: rule.Program,
			Fields:  make(map[string]string, len(rule.Fields)),
		}
		for _, f := range rule.Fields {
			if f.Position < len(resolved) {
				ev.Fields[f.Name] = resolved[f.Position]
			} else {
				ev.Fields[f.Name] = ""
			}
		}
		if rule.DecodeArgs != nil {
			rule.DecodeArgs(ix.Data, ev)
		}
		events = append(events, ev)
	}
	return events
}
