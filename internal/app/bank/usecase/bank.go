package usecase

import (
	"context"

	"github.com/olavocarvalho/oop-bank/internal/app/bank/domain"
)

// BankUseCase 是核心業務邏輯層
type BankUseCase struct {
	registry Registry
}

func NewBankUseCase(registry Registry) *BankUseCase {
	return &BankUseCase{
		registry: registry,
	}
}

// BankName 回傳銀行名稱
func (b *BankUseCase) BankName() string {
	return b.registry.BankName()
}

// Branch 回傳分行代碼
func (b *BankUseCase) Branch() string {
	return b.registry.Branch()
}

// RegisterClient 註冊新客戶
func (b *BankUseCase) RegisterClient(ctx context.Context, client *domain.Client) error {
	return b.registry.RegisterClient(ctx, client)
}

// OpenAccount 為客戶開戶
func (b *BankUseCase) OpenAccount(ctx context.Context, cpf string) (*domain.Account, error) {
	return b.registry.OpenAccount(ctx, cpf)
}

// Deposit 存款
func (b *BankUseCase) Deposit(ctx context.Context, cpf string, amount int64) error {
	return b.registry.Deposit(ctx, cpf, amount)
}

// Withdraw 提款
func (b *BankUseCase) Withdraw(ctx context.Context, cpf string, amount int64) error {
	return b.registry.Withdraw(ctx, cpf, amount)
}

// Transfer 轉帳
func (b *BankUseCase) Transfer(ctx context.Context, fromCPF, toCPF string, amount int64) error {
	return b.registry.Transfer(ctx, fromCPF, toCPF, amount)
}

// Statement 取得對帳單
func (b *BankUseCase) Statement(ctx context.Context, cpf string) (*domain.Statement, error) {
	return b.registry.Statement(ctx, cpf)
}

// ListClients 列出所有客戶
func (b *BankUseCase) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return b.registry.ListClients(ctx)
}

// ListAccounts 列出所有帳戶
func (b *BankUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return b.registry.ListAccounts(ctx)
}
