package source

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/config"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/pb"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/metadata"
)

// GrpcSource 订阅 shredstream proxy 的 SubscribeEntries 长连接流。
// 流级错误不向上传递：固定间隔无限重连，仅在 Close 后 Next 返回 error。
type GrpcSource struct {
	conf config.GrpcSourceConfig

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	conn    *grpc.ClientConn
	stream  grpc.ServerStreamingClient[pb.Entry]
	stopped bool
}

// NewGrpcSource 校验配置并构造流式数据源。连接延迟到首次 Next 时建立，
// 但 x-token 不合法在这里直接失败（认证错误只允许在启动期暴露）。
func NewGrpcSource(conf config.GrpcSourceConfig) (*GrpcSource, error) {
	if conf.Endpoint == "" {
		return nil, fmt.Errorf("grpc source: endpoint 未配置")
	}
	if err := validateXToken(conf.XToken); err != nil {
		return nil, fmt.Errorf("grpc source: %w", err)
	}
	applyGrpcDefaults(&conf)

	ctx, cancel := context.WithCancel(context.Background())
	return &GrpcSource{
		conf:   conf,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// validateXToken 检查 token 是否为合法的 gRPC metadata 值（可打印 ASCII）。
func validateXToken(token string) error {
	for i := 0; i < len(token); i++ {
		if token[i] < 0x20 || token[i] > 0x7e {
			return fmt.Errorf("x_token 含非法字符 0x%02x (偏移 %d)", token[i], i)
		}
	}
	return nil
}

func applyGrpcDefaults(c *config.GrpcSourceConfig) {
	if c.ReconnectIntervalSec <= 0 {
		c.ReconnectIntervalSec = 1
	}
	if c.ConnectTimeoutSec <= 0 {
		c.ConnectTimeoutSec = 5
	}
	if c.KeepalivePingIntervalSec <= 0 {
		c.KeepalivePingIntervalSec = 5
	}
	if c.KeepalivePingTimeoutSec <= 0 {
		c.KeepalivePingTimeoutSec = 10
	}
	if c.MaxCallRecvMsgSize <= 0 {
		c.MaxCallRecvMsgSize = 64 * 1024 * 1024
	}
}

// Next 返回流上的下一条 entry 消息。断流时在内部重连，不把
// 传输错误抛给调用方；只有 Close 之后才返回 error。
func (s *GrpcSource) Next() (*RawPayload, error) {
	for {
		if err := s.ctx.Err(); err != nil {
			return nil, err
		}

		stream := s.currentStream()
		if stream == nil {
			if err := s.connect(); err != nil {
				logger.Errorf("连接 shredstream 失败: %v, %ds 后重试",
					err, s.conf.ReconnectIntervalSec)
				if !s.waitReconnect() {
					return nil, s.ctx.Err()
				}
			}
			continue
		}

		msg, err := stream.Recv()
		if err != nil {
			if s.ctx.Err() != nil {
				return nil, s.ctx.Err()
			}
			logger.Errorf("shredstream 流中断: %v, %ds 后重连",
				err, s.conf.ReconnectIntervalSec)
			s.teardown()
			if !s.waitReconnect() {
				return nil, s.ctx.Err()
			}
			continue
		}

		return &RawPayload{
			Slot: msg.GetSlot(),
			Data: msg.GetEntries(),
		}, nil
	}
}

// Close 关闭数据源，令阻塞中的 Next 返回。
func (s *GrpcSource) Close() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	s.cancel()
	s.teardown()
}

func (s *GrpcSource) currentStream() grpc.ServerStreamingClient[pb.Entry] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream
}

// connect 只尝试一次：拨号 + 发起订阅。
func (s *GrpcSource) connect() error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return fmt.Errorf("source 已关闭")
	}
	s.mu.Unlock()

	dialCtx, cancel := context.WithTimeout(s.ctx, time.Duration(s.conf.ConnectTimeoutSec)*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		s.conf.Endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(s.conf.MaxCallRecvMsgSize),
		),
		grpc.WithBlock(),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                time.Duration(s.conf.KeepalivePingIntervalSec) * time.Second,
			Timeout:             time.Duration(s.conf.KeepalivePingTimeoutSec) * time.Second,
			PermitWithoutStream: true,
		}),
	)
	if err != nil {
		return fmt.Errorf("dial %s: %w", s.conf.Endpoint, err)
	}

	// 订阅请求体为空；x-token 仅在配置时附带
	subCtx := s.ctx
	if s.conf.XToken != "" {
		subCtx = metadata.NewOutgoingContext(
			s.ctx,
			metadata.New(map[string]string{"x-token": s.conf.XToken}),
		)
	}

	client := pb.NewShredstreamProxyClient(conn)
	stream, err := client.SubscribeEntries(subCtx, &pb.SubscribeEntriesRequest{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("subscribe entries: %w", err)
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		_ = conn.Close()
		return fmt.Errorf("source 已关闭")
	}
	s.conn = conn
	s.stream = stream
	s.mu.Unlock()

	logger.Infof("shredstream 已连接: %s", s.conf.Endpoint)
	return nil
}

func (s *GrpcSource) teardown() {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.stream = nil
	s.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

// waitReconnect 等待固定重连间隔，Close 时提前返回 false。
func (s *GrpcSource) waitReconnect() bool {
	t := time.NewTimer(time.Duration(s.conf.ReconnectIntervalSec) * time.Second)
	defer t.Stop()
	select {
	case <-s.ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
