package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"gopkg.in/yaml.v3"

	grpc_adapter "github.com/olavocarvalho/oop-bank/internal/app/bank/adapter/in/grpc"
	memory_adapter "github.com/olavocarvalho/oop-bank/internal/app/bank/adapter/out/memory"
	"github.com/olavocarvalho/oop-bank/internal/app/bank/usecase"
	pb "github.com/olavocarvalho/oop-bank/proto"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	Bank struct {
		Name   string `yaml:"name"`
		Branch string `yaml:"branch"`
	} `yaml:"bank"`
	Log struct {
		Level string `yaml:"level"` // "production" 或 "development"
	} `yaml:"log"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()

	logger := newLogger(cfg.Log.Level)
	defer logger.Sync()

	// 2. 初始化記憶體 Registry (唯一的狀態來源，行程結束即消失)
	registry := memory_adapter.NewRegistry(cfg.Bank.Name, cfg.Bank.Branch)

	// 3. 初始化 UseCase
	bankUseCase := usecase.NewBankUseCase(registry)

	// 4. 初始化 gRPC Adapter (Driving Adapter)
	grpcServer := grpc_adapter.NewGrpcServer(bankUseCase)

	// 5. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.Server.Listen)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("listen", cfg.Server.Listen), zap.Error(err))
	}

	s := grpc.NewServer(
		grpc.UnaryInterceptor(grpc_adapter.UnaryLogging(logger)),
	)
	pb.RegisterLedgerServiceServer(s, grpcServer)
	reflection.Register(s) // 方便 gRPC Client 測試 (如 Postman/grpcurl)

	// Graceful Shutdown
	go func() {
		logger.Info("starting gRPC server",
			zap.String("listen", cfg.Server.Listen),
			zap.String("bank", cfg.Bank.Name),
			zap.String("branch", cfg.Bank.Branch),
		)
		if err := s.Serve(lis); err != nil {
			logger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	s.GracefulStop()
	logger.Info("server exited")
}

// loadConfig 讀取 yaml 設定檔，檔案不存在時退回預設值
func loadConfig() Config {
	var cfg Config

	cfgData, err := os.ReadFile(defaultConfigPath)
	if err == nil {
		if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
			panic("failed to parse config: " + err.Error())
		}
	} else if !os.IsNotExist(err) {
		panic("failed to read config file: " + err.Error())
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":50051"
	}
	if cfg.Bank.Name == "" {
		cfg.Bank.Name = "Banco Digital OOP Bank"
	}
	if cfg.Bank.Branch == "" {
		cfg.Bank.Branch = "0001"
	}
	return cfg
}

// newLogger 根據配置建立 zap Logger
func newLogger(level string) *zap.Logger {
	if level == "development" {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
