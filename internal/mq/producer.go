package mq

import (
	"fmt"

	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/config"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/utils"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/pb"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/pkg/logger"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

const (
	defaultBatchSize = 32 * 1024
	defaultLingerMs  = 5
)

// EventProducer 把检测事件异步投递到 Kafka。可选输出，不参与核心管线。
type EventProducer struct {
	producer *kafka.Producer
	topic    string
}

// NewEventProducer 创建 Kafka 生产者并启动投递结果回收协程。
func NewEventProducer(cfg config.KafkaProducerConfig) (*EventProducer, error) {
	if cfg.Brokers == "" || cfg.Topic == "" {
		return nil, fmt.Errorf("kafka producer: brokers/topic 未配置")
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	lingerMs := cfg.LingerMs
	if lingerMs <= 0 {
		lingerMs = defaultLingerMs
	}

	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Brokers,
		"client.id":         "shreds-detector",

		"acks":                     "1",
		"delivery.timeout.ms":      30000,
		"message.send.max.retries": 3,
		"retry.backoff.ms":         100,

		"batch.size":       batchSize,
		"linger.ms":        lingerMs,
		"compression.type": "none",
	})
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	p := &EventProducer{producer: producer, topic: cfg.Topic}
	go p.drainEvents()
	return p, nil
}

// drainEvents 回收异步投递结果，失败只记日志（检测输出以日志为准）。
func (p *EventProducer) drainEvents() {
	for e := range p.producer.Events() {
		if msg, ok := e.(*kafka.Message); ok && msg.TopicPartition.Error != nil {
			logger.Errorf("Kafka 投递失败: topic=%s, err=%v",
				*msg.TopicPartition.Topic, msg.TopicPartition.Error)
		}
	}
}

// PublishTokenCreate 异步发送一条 token create 事件，
// 分区 key 为 mint 地址，保证同一 mint 的事件有序。
func (p *EventProducer) PublishTokenCreate(ev *pb.TokenCreateEvent) error {
	value, err := utils.EncodeEvent(utils.EventTypeTokenCreate, ev)
	if err != nil {
		return err
	}
	return p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &p.topic,
			Partition: kafka.PartitionAny,
		},
		Key:   []byte(ev.GetMint()),
		Value: value,
	}, nil)
}

// Close 冲刷未投递消息并关闭生产者。
func (p *EventProducer) Close() {
	p.producer.Flush(3000)
	p.producer.Close()
}
