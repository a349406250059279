package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/olavocarvalho/oop-bank/internal/app/bank/adapter/out/memory"
	"github.com/olavocarvalho/oop-bank/internal/app/bank/usecase"
	pb "github.com/olavocarvalho/oop-bank/proto"
)

const (
	cpfAna = "11111111111"
	cpfBea = "22222222222"
)

func newTestServer(t *testing.T) *GrpcServer {
	t.Helper()
	registry := memory.NewRegistry("Banco Digital OOP Bank", "0001")
	return NewGrpcServer(usecase.NewBankUseCase(registry))
}

func registerAndOpen(t *testing.T, s *GrpcServer, name, cpf string) {
	t.Helper()
	ctx := context.Background()

	resp, err := s.RegisterClient(ctx, &pb.RegisterClientRequest{
		Name:    name,
		Cpf:     cpf,
		Address: "Rua A, 1",
	})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)

	openResp, err := s.OpenAccount(ctx, &pb.OpenAccountRequest{Cpf: cpf})
	require.NoError(t, err)
	require.True(t, openResp.Success, openResp.Message)
}

// 業務錯誤走 Soft Failure (Success=false)，不回傳 gRPC error
func TestRegisterClientSoftFailure(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.RegisterClient(ctx, &pb.RegisterClientRequest{
		Name:    "Ana",
		Cpf:     "123",
		Address: "Rua A, 1",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)

	registerAndOpen(t, s, "Ana", cpfAna)

	resp, err = s.RegisterClient(ctx, &pb.RegisterClientRequest{
		Name:    "Ana",
		Cpf:     cpfAna,
		Address: "Rua A, 1",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestOpenAccountSoftFailure(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.OpenAccount(ctx, &pb.OpenAccountRequest{Cpf: cpfAna})
	require.NoError(t, err)
	assert.False(t, resp.Success)

	registerAndOpen(t, s, "Ana", cpfAna)

	resp, err = s.OpenAccount(ctx, &pb.OpenAccountRequest{Cpf: cpfAna})
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestDepositAndWithdraw(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	ctx := context.Background()

	registerAndOpen(t, s, "Ana", cpfAna)

	resp, err := s.Deposit(ctx, &pb.MovementRequest{Cpf: cpfAna, Amount: 10000})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, int64(10000), resp.Balance)

	resp, err = s.Withdraw(ctx, &pb.MovementRequest{Cpf: cpfAna, Amount: 2500})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, int64(7500), resp.Balance)

	// 餘額不足
	resp, err = s.Withdraw(ctx, &pb.MovementRequest{Cpf: cpfAna, Amount: 100000})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)

	// 金額必須為正
	resp, err = s.Deposit(ctx, &pb.MovementRequest{Cpf: cpfAna, Amount: -1})
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestTransfer(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	ctx := context.Background()

	registerAndOpen(t, s, "Ana", cpfAna)
	registerAndOpen(t, s, "Bea", cpfBea)

	_, err := s.Deposit(ctx, &pb.MovementRequest{Cpf: cpfAna, Amount: 10000})
	require.NoError(t, err)

	resp, err := s.Transfer(ctx, &pb.TransferRequest{
		FromCpf: cpfAna,
		ToCpf:   cpfBea,
		Amount:  4000,
	})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, int64(6000), resp.SourceBalance)
	assert.False(t, resp.ReconciliationRequired)

	// 餘額不足時轉帳失敗，來源餘額不變
	resp, err = s.Transfer(ctx, &pb.TransferRequest{
		FromCpf: cpfAna,
		ToCpf:   cpfBea,
		Amount:  100000,
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.False(t, resp.ReconciliationRequired)
	assert.Equal(t, int64(6000), resp.SourceBalance)
}

func TestGetStatement(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	ctx := context.Background()

	registerAndOpen(t, s, "Ana", cpfAna)
	_, err := s.Deposit(ctx, &pb.MovementRequest{Cpf: cpfAna, Amount: 10000})
	require.NoError(t, err)
	_, err = s.Withdraw(ctx, &pb.MovementRequest{Cpf: cpfAna, Amount: 2500})
	require.NoError(t, err)

	resp, err := s.GetStatement(ctx, &pb.StatementRequest{Cpf: cpfAna})
	require.NoError(t, err)
	assert.Equal(t, "Banco Digital OOP Bank", resp.BankName)
	assert.Equal(t, "0001", resp.Branch)
	assert.Equal(t, int64(1), resp.AccountNumber)
	assert.Equal(t, "Ana", resp.OwnerName)
	assert.Equal(t, cpfAna, resp.OwnerCpf)
	assert.Equal(t, int64(7500), resp.Balance)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, pb.TransactionKind_TRANSACTION_KIND_DEPOSIT, resp.Entries[0].Kind)
	assert.Equal(t, pb.TransactionKind_TRANSACTION_KIND_WITHDRAWAL, resp.Entries[1].Kind)
	assert.NotEmpty(t, resp.Entries[0].TransactionId)

	// 查無帳戶走 gRPC NotFound，不是 Soft Failure
	_, err = s.GetStatement(ctx, &pb.StatementRequest{Cpf: cpfBea})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestListClients(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.ListClients(ctx, &pb.ListClientsRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Clients)

	// 已註冊但未開戶的客戶也要列出
	reg, err := s.RegisterClient(ctx, &pb.RegisterClientRequest{
		Name:    "Bea",
		Cpf:     cpfBea,
		Address: "Rua B, 2",
	})
	require.NoError(t, err)
	require.True(t, reg.Success, reg.Message)
	registerAndOpen(t, s, "Ana", cpfAna)

	resp, err = s.ListClients(ctx, &pb.ListClientsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Clients, 2)
	assert.Equal(t, cpfAna, resp.Clients[0].Cpf)
	assert.Equal(t, "Ana", resp.Clients[0].Name)
	assert.Equal(t, cpfBea, resp.Clients[1].Cpf)
	assert.Equal(t, "Rua B, 2", resp.Clients[1].Address)
	assert.NotZero(t, resp.Clients[1].RegisteredAt)
}

func TestListAccounts(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	ctx := context.Background()

	registerAndOpen(t, s, "Ana", cpfAna)
	registerAndOpen(t, s, "Bea", cpfBea)
	_, err := s.Deposit(ctx, &pb.MovementRequest{Cpf: cpfBea, Amount: 5000})
	require.NoError(t, err)

	resp, err := s.ListAccounts(ctx, &pb.ListAccountsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Accounts, 2)
	assert.Equal(t, int64(1), resp.Accounts[0].Number)
	assert.Equal(t, "0001", resp.Accounts[0].Branch)
	assert.Equal(t, "Ana", resp.Accounts[0].OwnerName)
	assert.Equal(t, int64(0), resp.Accounts[0].Balance)
	assert.Equal(t, int64(2), resp.Accounts[1].Number)
	assert.Equal(t, int64(5000), resp.Accounts[1].Balance)
}
