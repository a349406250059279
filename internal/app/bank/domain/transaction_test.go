package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		build   func(int64) (Transaction, error)
		amount  int64
		wantErr error
	}{
		{"deposit positive", NewDeposit, 100, nil},
		{"deposit zero", NewDeposit, 0, ErrInvalidAmount},
		{"deposit negative", NewDeposit, -50, ErrInvalidAmount},
		{"withdrawal positive", NewWithdrawal, 1, nil},
		{"withdrawal zero", NewWithdrawal, 0, ErrInvalidAmount},
		{"withdrawal negative", NewWithdrawal, -1, ErrInvalidAmount},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tran, err := tt.build(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.amount, tran.Amount)
			assert.False(t, tran.CreatedAt.IsZero())
			assert.NotEqual(t, [16]byte{}, [16]byte(tran.TransactionID))
		})
	}
}

func TestTransactionKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "deposit", TransactionKindDeposit.String())
	assert.Equal(t, "withdrawal", TransactionKindWithdrawal.String())
	assert.Equal(t, "unknown", TransactionKind(99).String())
}

// 交易只負責分發，餘額檢查屬於帳戶：提款交易套用到餘額不足的帳戶
// 必須失敗且不留任何痕跡
func TestApplyRespectsAccountChecks(t *testing.T) {
	t.Parallel()

	account := NewAccount(1, mustClient(t))
	tran, err := NewWithdrawal(500)
	require.NoError(t, err)

	assert.ErrorIs(t, tran.Apply(account), ErrInsufficientFunds)
	assert.Zero(t, account.Balance())
	assert.Empty(t, account.History())
}

// 未知的交易類型不能套用到帳戶上
func TestApplyUnknownKind(t *testing.T) {
	t.Parallel()

	account := NewAccount(1, mustClient(t))
	tran := Transaction{Kind: TransactionKind(99), Amount: 500}

	assert.ErrorIs(t, tran.Apply(account), ErrInvalidKind)
	assert.Zero(t, account.Balance())
	assert.Empty(t, account.History())
}
