package source

import (
	"errors"
	"fmt"
	"net"

	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/config"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/pkg/logger"
)

// UdpSource 从一个 UDP 套接字逐包读取数据。
// 绑定失败在启动期直接失败，不做重试；无连接概念故也无重连。
// 消费不及时或超过系统缓冲的包由内核静默丢弃，分片丢失是常态，
// 由上层重组 TTL 兜底。
type UdpSource struct {
	conn *net.UDPConn
	buf  []byte // 复用的读缓冲，按最大预期包长分配
}

func NewUdpSource(conf config.UdpSourceConfig) (*UdpSource, error) {
	if conf.BindAddr == "" {
		return nil, fmt.Errorf("udp source: bind_addr 未配置")
	}
	bufSize := conf.ReadBufferBytes
	if bufSize <= 0 {
		bufSize = 64 * 1024
	}

	addr, err := net.ResolveUDPAddr("udp", conf.BindAddr)
	if err != nil {
		return nil, fmt.Errorf("udp source: 解析地址 %s: %w", conf.BindAddr, err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("udp source: 绑定 %s: %w", conf.BindAddr, err)
	}

	logger.Infof("UDP 已监听: %s", conn.LocalAddr())
	return &UdpSource{
		conn: conn,
		buf:  make([]byte, bufSize),
	}, nil
}

// Next 读取一个完整 UDP 包。返回的字节已从复用缓冲中拷出，
// 调用方可跨 Next 调用持有。
func (s *UdpSource) Next() (*RawPayload, error) {
	for {
		n, sender, err := s.conn.ReadFromUDP(s.buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil, err
			}
			// 瞬时读错误（如 ICMP 回弹）跳过当前包继续
			logger.Warnf("UDP 读取错误: %v", err)
			continue
		}
		data := append([]byte(nil), s.buf[:n]...)
		return &RawPayload{
			Source: sender.String(),
			Data:   data,
		}, nil
	}
}

func (s *UdpSource) Close() {
	_ = s.conn.Close()
}
