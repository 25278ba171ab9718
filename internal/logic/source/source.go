package source

// RawPayload 是数据源产出的一个原始载荷及其来源信息。
// 被解码后即丢弃，不在组件间长期持有。
type RawPayload struct {
	Slot   uint64 // 流式来源：payload 所属 slot；UDP 来源恒为 0
	Source string // UDP 来源：发送方地址；流式来源为空
	Data   []byte
}

// PayloadSource 抽象两种传输（gRPC 流 / UDP 分片），
// 让重组之后的解码、扫描、统计逻辑与传输无关。
type PayloadSource interface {
	// Next 阻塞等待下一个原始载荷。仅在 ctx 取消或源被关闭后返回 error。
	Next() (*RawPayload, error)

	// Close 释放底层连接/套接字，令阻塞中的 Next 尽快返回。
	Close()
}
