// Package cmd 實作 bankctl 的所有子命令。
// bankctl 是帳務核心的「外部呼叫端」：它負責解析自由文字輸入
// (CPF、金額) 與格式化輸出，本身不含任何業務邏輯。
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	grpcpool "github.com/olavocarvalho/oop-bank/pkg/grpc"
	pb "github.com/olavocarvalho/oop-bank/proto"
)

const defaultServerAddr = "localhost:50051"

var (
	serverAddr string
	connPool   = grpcpool.NewPool()
)

var rootCmd = &cobra.Command{
	Use:   "bankctl",
	Short: "Command line client for the oop-bank ledger server",
	Long: `bankctl talks to the oop-bank gRPC ledger server.

It covers the full client lifecycle:
  - register a client and open their account
  - deposit, withdraw and transfer between accounts
  - print account statements and list open accounts

Amounts are plain decimal text ("100.50" or "100,50"); CPFs may
contain punctuation, only the 11 digits are kept.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer connPool.Close()
	return rootCmd.Execute()
}

func init() {
	// .env 可提供 BANKCTL_ADDR 覆寫預設伺服器位址
	_ = godotenv.Load()
	addr := os.Getenv("BANKCTL_ADDR")
	if addr == "" {
		addr = defaultServerAddr
	}
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", addr, "ledger server address")
}

// newClient 透過連線池取得 LedgerService 客戶端
func newClient() (pb.LedgerServiceClient, error) {
	conn, err := connPool.GetConnection(serverAddr)
	if err != nil {
		return nil, err
	}
	return pb.NewLedgerServiceClient(conn), nil
}

// callCtx 回傳單次 RPC 用的 context
func callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// cleanCPF 移除標點後檢查剛好 11 位數字 (如 "111.111.111-11")
func cleanCPF(input string) (string, error) {
	var b strings.Builder
	for _, c := range input {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	cpf := b.String()
	if len(cpf) != 11 {
		return "", fmt.Errorf("cpf must contain exactly 11 digits, got %d in %q", len(cpf), input)
	}
	return cpf, nil
}
