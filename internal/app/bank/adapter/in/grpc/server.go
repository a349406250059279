package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/olavocarvalho/oop-bank/internal/app/bank/domain"
	"github.com/olavocarvalho/oop-bank/internal/app/bank/usecase"
	pb "github.com/olavocarvalho/oop-bank/proto"
)

type GrpcServer struct {
	pb.UnimplementedLedgerServiceServer
	bank *usecase.BankUseCase
}

func NewGrpcServer(bank *usecase.BankUseCase) *GrpcServer {
	return &GrpcServer{
		bank: bank,
	}
}

func (s *GrpcServer) RegisterClient(ctx context.Context, req *pb.RegisterClientRequest) (*pb.RegisterClientResponse, error) {
	// 1. 建構 Domain Client (含 CPF/姓名/地址驗證)
	client, err := domain.NewClient(req.Name, req.Cpf, req.Address)
	if err != nil {
		return &pb.RegisterClientResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	// 2. 寫入 registry
	// 業務邏輯錯誤 (如 CPF 重複) 回傳 Success=false (Soft Failure)
	if err := s.bank.RegisterClient(ctx, client); err != nil {
		return &pb.RegisterClientResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	return &pb.RegisterClientResponse{Success: true}, nil
}

func (s *GrpcServer) OpenAccount(ctx context.Context, req *pb.OpenAccountRequest) (*pb.OpenAccountResponse, error) {
	account, err := s.bank.OpenAccount(ctx, req.Cpf)
	if err != nil {
		return &pb.OpenAccountResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	return &pb.OpenAccountResponse{
		Success:       true,
		AccountNumber: account.Number(),
	}, nil
}

func (s *GrpcServer) Deposit(ctx context.Context, req *pb.MovementRequest) (*pb.MovementResponse, error) {
	if err := s.bank.Deposit(ctx, req.Cpf, req.Amount); err != nil {
		return &pb.MovementResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	return &pb.MovementResponse{
		Success: true,
		Balance: s.balanceOf(ctx, req.Cpf),
	}, nil
}

func (s *GrpcServer) Withdraw(ctx context.Context, req *pb.MovementRequest) (*pb.MovementResponse, error) {
	if err := s.bank.Withdraw(ctx, req.Cpf, req.Amount); err != nil {
		return &pb.MovementResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	return &pb.MovementResponse{
		Success: true,
		Balance: s.balanceOf(ctx, req.Cpf),
	}, nil
}

func (s *GrpcServer) Transfer(ctx context.Context, req *pb.TransferRequest) (*pb.TransferResponse, error) {
	err := s.bank.Transfer(ctx, req.FromCpf, req.ToCpf, req.Amount)
	if err != nil {
		// 沖正失敗必須特別標示，讓呼叫端能通知人工對帳
		return &pb.TransferResponse{
			Success:                false,
			Message:                err.Error(),
			ReconciliationRequired: errors.Is(err, domain.ErrCompensationFailed),
			SourceBalance:          s.balanceOf(ctx, req.FromCpf),
		}, nil
	}

	return &pb.TransferResponse{
		Success:       true,
		SourceBalance: s.balanceOf(ctx, req.FromCpf),
	}, nil
}

func (s *GrpcServer) GetStatement(ctx context.Context, req *pb.StatementRequest) (*pb.StatementResponse, error) {
	stmt, err := s.bank.Statement(ctx, req.Cpf)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	entries := make([]*pb.StatementEntry, 0, len(stmt.Entries))
	for _, tran := range stmt.Entries {
		entries = append(entries, &pb.StatementEntry{
			TransactionId: tran.TransactionID.String(),
			Kind:          kindToProto(tran.Kind),
			Amount:        tran.Amount,
			CreatedAt:     tran.CreatedAt.Unix(),
		})
	}

	return &pb.StatementResponse{
		BankName:      stmt.BankName,
		Branch:        stmt.Branch,
		AccountNumber: stmt.AccountNumber,
		OwnerName:     stmt.Owner.Name(),
		OwnerCpf:      stmt.Owner.CPF(),
		RegisteredAt:  stmt.Owner.RegisteredAt().Unix(),
		Balance:       stmt.Balance,
		Entries:       entries,
	}, nil
}

func (s *GrpcServer) ListAccounts(ctx context.Context, req *pb.ListAccountsRequest) (*pb.ListAccountsResponse, error) {
	accounts, err := s.bank.ListAccounts(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	out := make([]*pb.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, &pb.AccountSummary{
			Number:    account.Number(),
			Branch:    s.bank.Branch(),
			OwnerName: account.Owner().Name(),
			OwnerCpf:  account.Owner().CPF(),
			Balance:   account.Balance(),
		})
	}
	return &pb.ListAccountsResponse{Accounts: out}, nil
}

func (s *GrpcServer) ListClients(ctx context.Context, req *pb.ListClientsRequest) (*pb.ListClientsResponse, error) {
	clients, err := s.bank.ListClients(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	out := make([]*pb.ClientSummary, 0, len(clients))
	for _, client := range clients {
		out = append(out, &pb.ClientSummary{
			Cpf:          client.CPF(),
			Name:         client.Name(),
			Address:      client.Address(),
			RegisteredAt: client.RegisteredAt().Unix(),
		})
	}
	return &pb.ListClientsResponse{Clients: out}, nil
}

// balanceOf 取得最新餘額 (Best Effort)，查詢失敗時回傳 0
func (s *GrpcServer) balanceOf(ctx context.Context, cpf string) int64 {
	stmt, err := s.bank.Statement(ctx, cpf)
	if err != nil {
		return 0
	}
	return stmt.Balance
}

// kindToProto 轉換交易類型
func kindToProto(kind domain.TransactionKind) pb.TransactionKind {
	switch kind {
	case domain.TransactionKindDeposit:
		return pb.TransactionKind_TRANSACTION_KIND_DEPOSIT
	case domain.TransactionKindWithdrawal:
		return pb.TransactionKind_TRANSACTION_KIND_WITHDRAWAL
	default:
		return pb.TransactionKind_TRANSACTION_KIND_UNSPECIFIED
	}
}
