package domain

import (
	"time"

	"github.com/google/uuid"
)

// amount 使用 int64，並定義精度：小數點後 2 位 (centavos)
const (
	CurrencyScale = 100
)

// TransactionKind 交易類型
// 轉帳「不是」一種獨立類型：一筆轉帳會在來源帳戶記一筆提款、
// 在目標帳戶記一筆存款。
type TransactionKind uint8

const (
	// 存款
	TransactionKindDeposit TransactionKind = 1
	// 提款
	TransactionKindWithdrawal TransactionKind = 2
)

// String 回傳類型名稱，供日誌與報表使用
func (k TransactionKind) String() string {
	switch k {
	case TransactionKindDeposit:
		return "deposit"
	case TransactionKindWithdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

// Transaction 交易紀錄。建構完成後不可變更，只能被追加到帳戶日誌中。
type Transaction struct {
	// TransactionID: 外部追蹤號 (UUID)
	TransactionID uuid.UUID
	// Kind: 交易類型 (Deposit / Withdrawal)
	Kind TransactionKind
	// Amount: 金額，保證 > 0
	Amount int64
	// CreatedAt: 交易建立時間
	CreatedAt time.Time
}

// NewDeposit 建立一筆存款交易
//
// 參數:
//
//	amount: 金額 (centavos)，必須 > 0
//
// 回傳:
//
//	Transaction: 交易紀錄
//	error: 金額不合法時回傳 ErrInvalidAmount
func NewDeposit(amount int64) (Transaction, error) {
	return newTransaction(TransactionKindDeposit, amount)
}

// NewWithdrawal 建立一筆提款交易
//
// 參數:
//
//	amount: 金額 (centavos)，必須 > 0
//
// 回傳:
//
//	Transaction: 交易紀錄
//	error: 金額不合法時回傳 ErrInvalidAmount
func NewWithdrawal(amount int64) (Transaction, error) {
	return newTransaction(TransactionKindWithdrawal, amount)
}

func newTransaction(kind TransactionKind, amount int64) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	return Transaction{
		TransactionID: uuid.New(),
		Kind:          kind,
		Amount:        amount,
		CreatedAt:     time.Now(),
	}, nil
}

// Apply 將交易套用到帳戶上。
// 交易本身只負責依類型分發，餘額是否足夠由帳戶檢查。
func (t Transaction) Apply(a *Account) error {
	switch t.Kind {
	case TransactionKindDeposit:
		return a.credit(t)
	case TransactionKindWithdrawal:
		return a.debit(t)
	default:
		return ErrInvalidKind
	}
}
