package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustClient 建立一位測試用客戶
func mustClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient("Ana Souza", "11111111111", "Rua A, 1 - Centro - SP")
	require.NoError(t, err)
	return client
}

// journalBalance 依日誌重算餘額：存款加總減提款加總
func journalBalance(a *Account) int64 {
	var sum int64
	for _, tran := range a.History() {
		switch tran.Kind {
		case TransactionKindDeposit:
			sum += tran.Amount
		case TransactionKindWithdrawal:
			sum -= tran.Amount
		}
	}
	return sum
}

func TestDeposit(t *testing.T) {
	t.Parallel()

	account := NewAccount(1, mustClient(t))

	require.NoError(t, account.Deposit(10000))
	assert.Equal(t, int64(10000), account.Balance())
	require.Len(t, account.History(), 1)
	assert.Equal(t, TransactionKindDeposit, account.History()[0].Kind)

	// 非法金額不得改變餘額與日誌長度
	assert.ErrorIs(t, account.Deposit(0), ErrInvalidAmount)
	assert.ErrorIs(t, account.Deposit(-100), ErrInvalidAmount)
	assert.Equal(t, int64(10000), account.Balance())
	assert.Len(t, account.History(), 1)
}

func TestWithdraw(t *testing.T) {
	t.Parallel()

	account := NewAccount(1, mustClient(t))
	require.NoError(t, account.Deposit(10000))

	require.NoError(t, account.Withdraw(4000))
	assert.Equal(t, int64(6000), account.Balance())
	assert.Len(t, account.History(), 2)

	// 嚴格餘額檢查，不允許透支
	assert.ErrorIs(t, account.Withdraw(6001), ErrInsufficientFunds)
	assert.Equal(t, int64(6000), account.Balance())
	assert.Len(t, account.History(), 2)

	assert.ErrorIs(t, account.Withdraw(0), ErrInvalidAmount)
	assert.Equal(t, int64(6000), account.Balance())
	assert.Len(t, account.History(), 2)
}

// 日誌是事實來源：任何操作序列後，餘額都等於日誌重算結果
func TestBalanceMatchesJournal(t *testing.T) {
	t.Parallel()

	account := NewAccount(1, mustClient(t))
	ops := []struct {
		deposit bool
		amount  int64
	}{
		{true, 10000}, {false, 2500}, {true, 999}, {false, 999},
		{false, 100000}, // 失敗，不得入帳
		{true, 1},
	}
	for _, op := range ops {
		if op.deposit {
			_ = account.Deposit(op.amount)
		} else {
			_ = account.Withdraw(op.amount)
		}
	}

	assert.Equal(t, journalBalance(account), account.Balance())
	assert.GreaterOrEqual(t, account.Balance(), int64(0))
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	source := NewAccount(1, mustClient(t))
	dest := NewAccount(2, mustClient(t))
	require.NoError(t, source.Deposit(10000))

	require.NoError(t, source.Transfer(4000, dest))

	assert.Equal(t, int64(6000), source.Balance())
	assert.Equal(t, int64(4000), dest.Balance())

	// 來源多一筆提款，目標多一筆存款
	sourceHistory := source.History()
	require.Len(t, sourceHistory, 2)
	assert.Equal(t, TransactionKindWithdrawal, sourceHistory[1].Kind)
	destHistory := dest.History()
	require.Len(t, destHistory, 1)
	assert.Equal(t, TransactionKindDeposit, destHistory[0].Kind)
}

func TestTransferInvalidDestination(t *testing.T) {
	t.Parallel()

	source := NewAccount(1, mustClient(t))
	require.NoError(t, source.Deposit(10000))

	assert.ErrorIs(t, source.Transfer(100, nil), ErrInvalidDestination)
	assert.ErrorIs(t, source.Transfer(100, source), ErrInvalidDestination)

	assert.Equal(t, int64(10000), source.Balance())
	assert.Len(t, source.History(), 1)
}

func TestTransferInvalidAmount(t *testing.T) {
	t.Parallel()

	source := NewAccount(1, mustClient(t))
	dest := NewAccount(2, mustClient(t))
	require.NoError(t, source.Deposit(10000))

	assert.ErrorIs(t, source.Transfer(0, dest), ErrInvalidAmount)
	assert.ErrorIs(t, source.Transfer(-5, dest), ErrInvalidAmount)
	assert.Equal(t, int64(10000), source.Balance())
	assert.Zero(t, dest.Balance())
}

// 提款階段失敗：兩邊的餘額與日誌都必須完全不變
func TestTransferFailsAtWithdraw(t *testing.T) {
	t.Parallel()

	source := NewAccount(1, mustClient(t))
	dest := NewAccount(2, mustClient(t))
	require.NoError(t, source.Deposit(3000))

	assert.ErrorIs(t, source.Transfer(5000, dest), ErrInsufficientFunds)

	assert.Equal(t, int64(3000), source.Balance())
	assert.Zero(t, dest.Balance())
	assert.Len(t, source.History(), 1)
	assert.Empty(t, dest.History())
}

// 入帳階段失敗、沖正成功：來源餘額還原，
// 日誌多出原始提款與沖正存款兩筆 (日誌記錄事件，不是淨額)
func TestTransferReversed(t *testing.T) {
	t.Parallel()

	source := NewAccount(1, mustClient(t))
	dest := NewAccount(2, mustClient(t))
	require.NoError(t, source.Deposit(10000))

	faultErr := errors.New("destination rejected the deposit")
	dest.depositFault = func(int64) error { return faultErr }

	err := source.Transfer(4000, dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, faultErr)
	assert.NotErrorIs(t, err, ErrCompensationFailed)

	// 來源餘額還原
	assert.Equal(t, int64(10000), source.Balance())
	assert.Zero(t, dest.Balance())
	assert.Empty(t, dest.History())

	// 原始存款 + 轉帳提款 + 沖正存款
	history := source.History()
	require.Len(t, history, 3)
	assert.Equal(t, TransactionKindWithdrawal, history[1].Kind)
	assert.Equal(t, TransactionKindDeposit, history[2].Kind)
	assert.Equal(t, int64(4000), history[1].Amount)
	assert.Equal(t, int64(4000), history[2].Amount)
	assert.Equal(t, journalBalance(source), source.Balance())
}

// 沖正也失敗：回報 ErrCompensationFailed，來源餘額停留在不一致狀態
func TestTransferCompensationFailed(t *testing.T) {
	t.Parallel()

	source := NewAccount(1, mustClient(t))
	dest := NewAccount(2, mustClient(t))
	require.NoError(t, source.Deposit(10000))

	dest.depositFault = func(int64) error { return errors.New("destination unavailable") }
	source.depositFault = func(int64) error { return errors.New("source unavailable") }

	err := source.Transfer(4000, dest)
	assert.ErrorIs(t, err, ErrCompensationFailed)

	// 款項已離開來源且無法回補
	assert.Equal(t, int64(6000), source.Balance())
	assert.Zero(t, dest.Balance())
}

// History 回傳複本，改寫回傳值不得影響帳戶內部狀態
func TestHistoryIsACopy(t *testing.T) {
	t.Parallel()

	account := NewAccount(1, mustClient(t))
	require.NoError(t, account.Deposit(100))

	history := account.History()
	history[0].Amount = 999999

	assert.Equal(t, int64(100), account.History()[0].Amount)
}
