package main

import (
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/config"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/logic/detector"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/logic/source"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/internal/svc"
	"github.com/AllenHark-Inc/UDP-Shreds-Test/pkg/logger"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"
)

var configFile = flag.String("f", "etc/detector.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()

	var c config.DetectorConfig
	conf.MustLoad(*configFile, &c)

	logger.Init(c.LogConf.ToLogOption())
	defer logger.Sync()

	serviceContext, err := svc.NewDetectorServiceContext(c)
	if err != nil {
		panic(err)
	}
	defer serviceContext.Close()

	src, err := newPayloadSource(c)
	if err != nil {
		// 启动期错误一律致命：UDP 绑定失败 / 非法 x-token / 配置错误
		panic(err)
	}

	sg := zerosvc.NewServiceGroup()
	sg.Add(detector.NewDetector(serviceContext, src))

	logx.Infof("Starting token create detector, source=%s", c.Source)
	sg.Start()

	// 等待退出信号
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logx.Info("Shutting down services...")
	sg.Stop()
}

func newPayloadSource(c config.DetectorConfig) (source.PayloadSource, error) {
	if c.Source == "udp" {
		return source.NewUdpSource(c.Udp)
	}
	return source.NewGrpcSource(c.Grpc)
}
