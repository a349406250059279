package usecase

import (
	"context"

	"github.com/olavocarvalho/oop-bank/internal/app/bank/domain"
)

// Registry 是客戶與帳戶對應表的介面。
// 以 CPF 解析出帳戶後，餘額相關邏輯全部委派給 domain.Account，
// registry 本身只負責查找、唯一性與帳號分配。
type Registry interface {
	// BankName 回傳銀行名稱 (顯示用)
	BankName() string
	// Branch 回傳分行代碼 (顯示用)
	Branch() string
	// RegisterClient 註冊客戶，CPF 重複時回傳 ErrDuplicateClient
	RegisterClient(ctx context.Context, client *domain.Client) error
	// OpenAccount 為已註冊客戶開戶並分配下一個帳號
	OpenAccount(ctx context.Context, cpf string) (*domain.Account, error)
	// Deposit 對 CPF 對應的帳戶存款
	Deposit(ctx context.Context, cpf string, amount int64) error
	// Withdraw 對 CPF 對應的帳戶提款
	Withdraw(ctx context.Context, cpf string, amount int64) error
	// Transfer 由來源 CPF 的帳戶轉帳到目標 CPF 的帳戶
	Transfer(ctx context.Context, fromCPF, toCPF string, amount int64) error
	// Statement 回傳帳戶對帳單快照
	Statement(ctx context.Context, cpf string) (*domain.Statement, error)
	// ListClients 列出所有已註冊客戶
	ListClients(ctx context.Context) ([]*domain.Client, error)
	// ListAccounts 列出所有已開帳戶
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}
