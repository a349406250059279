package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/olavocarvalho/oop-bank/internal/app/bank/domain"
	"github.com/olavocarvalho/oop-bank/internal/app/bank/usecase"
)

// record 一位客戶在 registry 中的完整狀態。
// account 為 nil 表示「已註冊但尚未開戶」，
// 這讓查無帳戶時可以用單一查找區分兩種診斷訊息。
type record struct {
	client  *domain.Client
	account *domain.Account
}

// Registry 是以 map 實現的記憶體版客戶/帳戶對應表
//
// 結構:
//
//	records: CPF 對應客戶紀錄的 Map
//	nextNumber: 帳號計數器，單調遞增、永不重用
//	mu: RWMutex 用於保護上述狀態
type Registry struct {
	bankName string
	branch   string

	mu         sync.RWMutex
	records    map[string]*record
	nextNumber int64
}

// NewRegistry 建立一個新的 Registry 實例
//
// 參數:
//
//	bankName: 銀行名稱，僅用於對帳單顯示
//	branch: 分行代碼 (如 "0001")
//
// 回傳:
//
//	*Registry: Registry 實例，不含任何客戶與帳戶
func NewRegistry(bankName, branch string) *Registry {
	return &Registry{
		bankName: bankName,
		branch:   branch,
		records:  make(map[string]*record),
	}
}

// BankName 回傳銀行名稱
func (r *Registry) BankName() string {
	return r.bankName
}

// Branch 回傳分行代碼
func (r *Registry) Branch() string {
	return r.branch
}

// RegisterClient 註冊客戶
//
// 參數:
//
//	ctx: 上下文
//	client: 客戶物件
//
// 回傳:
//
//	error: CPF 已存在時回傳 ErrDuplicateClient
func (r *Registry) RegisterClient(ctx context.Context, client *domain.Client) error {
	if client == nil {
		return domain.ErrInvalidClient
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[client.CPF()]; ok {
		return fmt.Errorf("%w: cpf %s", domain.ErrDuplicateClient, client.CPF())
	}
	r.records[client.CPF()] = &record{client: client}
	return nil
}

// OpenAccount 為已註冊客戶開戶
//
// 參數:
//
//	ctx: 上下文
//	cpf: 客戶識別碼
//
// 回傳:
//
//	*domain.Account: 新開的帳戶，帳號取自計數器的下一個值
//	error: ErrUnknownClient / ErrAccountAlreadyExists
func (r *Registry) OpenAccount(ctx context.Context, cpf string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[cpf]
	if !ok {
		return nil, fmt.Errorf("%w: cpf %s", domain.ErrUnknownClient, cpf)
	}
	if rec.account != nil {
		return nil, fmt.Errorf("%w: client %s already holds account %d",
			domain.ErrAccountAlreadyExists, rec.client.Name(), rec.account.Number())
	}

	r.nextNumber++
	rec.account = domain.NewAccount(r.nextNumber, rec.client)
	return rec.account, nil
}

// Deposit 對 CPF 對應的帳戶存款
func (r *Registry) Deposit(ctx context.Context, cpf string, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, err := r.lookupAccount(cpf)
	if err != nil {
		return err
	}
	return account.Deposit(amount)
}

// Withdraw 對 CPF 對應的帳戶提款
func (r *Registry) Withdraw(ctx context.Context, cpf string, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, err := r.lookupAccount(cpf)
	if err != nil {
		return err
	}
	return account.Withdraw(amount)
}

// Transfer 由來源帳戶轉帳到目標帳戶。
// 兩個帳戶都在同一個臨界區內解析與操作，
// 餘額與補償邏輯完全委派給 domain.Account.Transfer。
func (r *Registry) Transfer(ctx context.Context, fromCPF, toCPF string, amount int64) error {
	if fromCPF == toCPF {
		return domain.ErrInvalidDestination
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	from, err := r.lookupAccount(fromCPF)
	if err != nil {
		return err
	}
	to, err := r.lookupAccount(toCPF)
	if err != nil {
		return err
	}
	return from.Transfer(amount, to)
}

// Statement 回傳帳戶對帳單快照
//
// 參數:
//
//	ctx: 上下文
//	cpf: 客戶識別碼
//
// 回傳:
//
//	*domain.Statement: 餘額與日誌複本，連同銀行與持有人資訊
//	error: 查無帳戶時回傳包裝後的 ErrAccountNotFound
func (r *Registry) Statement(ctx context.Context, cpf string) (*domain.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, err := r.lookupAccount(cpf)
	if err != nil {
		return nil, err
	}
	return &domain.Statement{
		BankName:      r.bankName,
		Branch:        r.branch,
		AccountNumber: account.Number(),
		Owner:         account.Owner(),
		Balance:       account.Balance(),
		Entries:       account.History(),
	}, nil
}

// ListClients 列出所有客戶，依 CPF 排序
func (r *Registry) ListClients(ctx context.Context) ([]*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Client, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec.client)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CPF() < out[j].CPF() })
	return out, nil
}

// ListAccounts 列出所有帳戶，依帳號排序
func (r *Registry) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Account, 0, len(r.records))
	for _, rec := range r.records {
		if rec.account != nil {
			out = append(out, rec.account)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number() < out[j].Number() })
	return out, nil
}

// lookupAccount 以 CPF 解析帳戶。
// 查無帳戶時一律回傳 ErrAccountNotFound，但訊息區分
// 「客戶不存在」與「客戶存在但未開戶」兩種情況，
// 前者同時可用 errors.Is 比對到 ErrUnknownClient。
// 呼叫端必須已持有 r.mu。
func (r *Registry) lookupAccount(cpf string) (*domain.Account, error) {
	rec, ok := r.records[cpf]
	if !ok {
		return nil, fmt.Errorf("%w: cpf %s: %w", domain.ErrAccountNotFound, cpf, domain.ErrUnknownClient)
	}
	if rec.account == nil {
		return nil, fmt.Errorf("%w: client %s (cpf %s) has no open account",
			domain.ErrAccountNotFound, rec.client.Name(), cpf)
	}
	return rec.account, nil
}

var _ usecase.Registry = (*Registry)(nil)
