package config

import (
	"github.com/AllenHark-Inc/UDP-Shreds-Test/pkg/logger"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径）
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// DetectConfig 表示检测规则相关配置
type DetectConfig struct {
	Program string `yaml:"program"` // 目标程序地址（base58），为空时默认 PumpFun
}

// StatsConfig 表示吞吐统计相关配置
type StatsConfig struct {
	IntervalSec int `yaml:"interval_sec"` // 统计汇总输出间隔（秒），默认 15
}

// KafkaProducerConfig 表示 Kafka 生产者相关配置（可选输出）
type KafkaProducerConfig struct {
	Enabled   bool   `yaml:"enabled"`    // 是否启用 Kafka 输出
	Brokers   string `yaml:"brokers"`    // Kafka broker 地址，多个用英文逗号分隔
	Topic     string `yaml:"topic"`      // 检测事件 topic
	BatchSize int    `yaml:"batch_size"` // 批处理大小（单位字节）
	LingerMs  int    `yaml:"linger_ms"`  // 批处理最大延迟（毫秒）
}

// GrpcSourceConfig 是 shredstream gRPC 订阅源配置
type GrpcSourceConfig struct {
	Endpoint string `yaml:"endpoint"` // shredstream proxy 地址，例如 127.0.0.1:9001
	XToken   string `yaml:"x_token"`  // x-token 认证，可为空

	// gRPC Keepalive 底层连接检测配置
	KeepalivePingIntervalSec int `yaml:"keepalive_ping_interval_sec"` // 底层 keepalive 间隔（秒）
	KeepalivePingTimeoutSec  int `yaml:"keepalive_ping_timeout_sec"`  // 底层 keepalive 超时（秒）

	// 消息体大小限制
	MaxCallRecvMsgSize int `yaml:"max_call_recv_msg_size"` // 单条消息最大接收字节数

	// 超时与重连策略
	ReconnectIntervalSec int `yaml:"reconnect_interval_sec"` // 断流后固定重连间隔（秒），无限重试
	ConnectTimeoutSec    int `yaml:"connect_timeout_sec"`    // 连接建立超时（秒）
}

// UdpSourceConfig 是 UDP 分片数据源配置
type UdpSourceConfig struct {
	BindAddr string `yaml:"bind_addr"` // UDP 监听地址，例如 0.0.0.0:20001

	ReadBufferBytes    int `yaml:"read_buffer_bytes"`    // 单包读取缓冲区（字节），默认 64KiB
	ReassemblyTTLSec   int `yaml:"reassembly_ttl_sec"`   // 未完成重组缓冲的存活时间（秒），默认 10
	CleanupIntervalSec int `yaml:"cleanup_interval_sec"` // 过期缓冲清扫间隔（秒），默认 2
}

// DetectorConfig 是主配置结构体，驱动 token create 检测服务
type DetectorConfig struct {
	LogConf           LogConfig           `yaml:"logger"`
	Source            string              `yaml:"source"` // 数据源类型："grpc" 或 "udp"
	DetectConf        DetectConfig        `yaml:"detect"`
	StatsConf         StatsConfig         `yaml:"stats"`
	KafkaProducerConf KafkaProducerConfig `yaml:"kafka_producer"`

	Grpc GrpcSourceConfig `yaml:"grpc"`
	Udp  UdpSourceConfig  `yaml:"udp"`
}
