package svc

import (
	"fmt"

	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/config"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/logic/scanner"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/mq"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/types"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/pkg/logger"
)

// DetectorServiceContext 持有检测服务的共享资源
type DetectorServiceContext struct {
	Config   config.DetectorConfig
	Rule     *scanner.DetectionRule
	Producer *mq.EventProducer // 可选，未启用 Kafka 时为 nil
}

// NewDetectorServiceContext 创建检测服务上下文
func NewDetectorServiceContext(c config.DetectorConfig) (*DetectorServiceContext, error) {
	// 1. 构造检测规则；program 可覆盖，方法 ID 与字段布局固定为 create 约定
	rule := scanner.PumpFunCreateRule()
	if c.DetectConf.Program != "" {
		program, err := types.TryPubkeyFromBase58(c.DetectConf.Program)
		if err != nil {
			return nil, fmt.Errorf("detect.program 非法: %w", err)
		}
		rule.Program = program
	}

	// 2. 可选初始化 Kafka 生产者
	var producer *mq.EventProducer
	if c.KafkaProducerConf.Enabled {
		p, err := mq.NewEventProducer(c.KafkaProducerConf)
		if err != nil {
			logger.Errorf("Kafka producer 初始化失败: %v", err)
			return nil, err
		}
		producer = p
	}

	logger.Infof("检测服务上下文初始化完成: program=%s, kafka=%v",
		rule.Program, c.KafkaProducerConf.Enabled)
	return &DetectorServiceContext{
		Config:   c,
		Rule:     rule,
		Producer: producer,
	}, nil
}

// Close 关闭服务上下文中的资源
func (ctx *DetectorServiceContext) Close() {
	if ctx.Producer != nil {
		ctx.Producer.Close()
	}
}
