package detector

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/logic/entry"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/logic/scanner"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/logic/shred"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/logic/source"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/logic/stats"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/svc"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/pb"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/pkg/logger"

	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/errgroup"
)

// Detector 串起单条管线：接收 → (重组) → 解码 → 扫描 → 统计。
// 重组器与统计器只在消费 goroutine 内被修改，保持单写者约束；
// 接收 goroutine 只负责把 payload 推进 channel。
type Detector struct {
	sc     *svc.DetectorServiceContext
	source source.PayloadSource

	reassembler *shred.Reassembler // 仅 UDP 源
	stats       *stats.Reporter
	rule        *scanner.DetectionRule

	payloadCh chan *source.RawPayload
	firstSeen bool

	cleanupInterval time.Duration

	ctx    context.Context
	cancel func(err error)
	logx.Logger
}

func NewDetector(sc *svc.DetectorServiceContext, src source.PayloadSource) *Detector {
	ctx, cancel := context.WithCancelCause(context.Background())

	statsInterval := time.Duration(sc.Config.StatsConf.IntervalSec) * time.Second
	if statsInterval <= 0 {
		statsInterval = 15 * time.Second
	}

	d := &Detector{
		sc:        sc,
		source:    src,
		stats:     stats.NewReporter(statsInterval, time.Now()),
		rule:      sc.Rule,
		payloadCh: make(chan *source.RawPayload, 256),
		ctx:       ctx,
		cancel:    cancel,
		Logger:    logx.WithContext(ctx).WithFields(logx.Field("service", "detector")),
	}

	if sc.Config.Source == "udp" {
		ttl := time.Duration(sc.Config.Udp.ReassemblyTTLSec) * time.Second
		if ttl <= 0 {
			ttl = 10 * time.Second
		}
		d.reassembler = shred.NewReassembler(ttl)

		d.cleanupInterval = time.Duration(sc.Config.Udp.CleanupIntervalSec) * time.Second
		if d.cleanupInterval <= 0 {
			d.cleanupInterval = 2 * time.Second
		}
	}
	return d
}

func (d *Detector) Start() {
	g, _ := errgroup.WithContext(d.ctx)
	g.Go(d.recvLoop)
	g.Go(d.procLoop)
	if err := g.Wait(); err != nil && d.ctx.Err() == nil {
		d.Errorf("检测管线退出: %v", err)
	}
}

func (d *Detector) Stop() {
	d.cancel(errors.New("service stop"))
	d.source.Close()
}

// recvLoop 是唯一的挂起点：阻塞等待下一个网络单元
func (d *Detector) recvLoop() error {
	for {
		p, err := d.source.Next()
		if err != nil {
			if d.ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		select {
		case d.payloadCh <- p:
		case <-d.ctx.Done():
			return nil
		}
	}
}

// procLoop 串行消费 payload，并在固定间隔驱动清扫与统计输出，
// 不依赖包到达触发。
func (d *Detector) procLoop() error {
	statsTick := time.NewTicker(time.Second)
	defer statsTick.Stop()

	var cleanupC <-chan time.Time
	if d.reassembler != nil {
		cleanupTick := time.NewTicker(d.cleanupInterval)
		defer cleanupTick.Stop()
		cleanupC = cleanupTick.C
	}

	for {
		select {
		case <-d.ctx.Done():
			return nil
		case p := <-d.payloadCh:
			d.procPayload(p)
		case now := <-statsTick.C:
			d.flushStats(now)
		case now := <-cleanupC:
			if n := d.reassembler.Cleanup(now); n > 0 {
				d.Infof("清扫过期重组缓冲: evicted=%d, pending=%d", n, d.reassembler.Pending())
			}
		}
	}
}

func (d *Detector) procPayload(p *source.RawPayload) {
	received := uint64(len(p.Data))

	data := p.Data
	if d.reassembler != nil {
		complete, ok := d.reassembler.Process(p.Data)
		if !ok {
			// 分片尚未集齐（或被丢弃），只计入字节数
			d.stats.Record(0, received, 0)
			return
		}
		data = complete
	}

	if !d.firstSeen {
		d.firstSeen = true
		d.Infof("首个 payload: slot=%d, size=%d bytes, source=%s", p.Slot, len(data), p.Source)
	}

	entries, err := entry.DecodeEntries(data)
	if err != nil {
		// 解码失败不致命：丢弃该 payload 继续
		logger.Warnf("payload 解码失败: slot=%d, size=%d, source=%s, err=%v",
			p.Slot, len(data), p.Source, err)
		d.stats.Record(1, received, 0)
		return
	}

	events := scanner.Scan(entries, d.rule)
	for _, ev := range events {
		ev.Slot = p.Slot
		ev.Source = p.Source
		d.emit(ev)
	}
	d.stats.Record(1, received, uint64(len(events)))
}

// emit 输出一条检测事件：结构化日志必发，Kafka 按配置可选。
func (d *Detector) emit(ev *scanner.DetectionEvent) {
	d.Infof("检测到 token create: slot=%d, mint=%s, bonding_curve=%s, creator=%s, name=%q, symbol=%q, tx=%s, source=%s",
		ev.Slot, ev.Fields["mint"], ev.Fields["bonding_curve"], ev.Fields["creator"],
		ev.Name, ev.Symbol, ev.TxHash, ev.Source)

	if d.sc.Producer == nil {
		return
	}
	err := d.sc.Producer.PublishTokenCreate(&pb.TokenCreateEvent{
		Slot:         ev.Slot,
		Mint:         ev.Fields["mint"],
		BondingCurve: ev.Fields["bonding_curve"],
		Creator:      ev.Fields["creator"],
		Name:         ev.Name,
		Symbol:       ev.Symbol,
		Uri:          ev.Uri,
		TxHash:       ev.TxHash,
		Source:       ev.Source,
	})
	if err != nil {
		d.Errorf("token create 事件投递失败: mint=%s, err=%v", ev.Fields["mint"], err)
	}
}

func (d *Detector) flushStats(now time.Time) {
	s, ok := d.stats.MaybeFlush(now)
	if !ok {
		return
	}
	d.Infof("统计: payloads=%d, %.2f MB, creates=%d, 窗口=%v",
		s.Payloads, s.MBytes(), s.Detections, s.Elapsed.Round(time.Millisecond))
}
