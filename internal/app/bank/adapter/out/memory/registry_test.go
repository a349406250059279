package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olavocarvalho/oop-bank/internal/app/bank/domain"
)

const (
	cpfAna = "11111111111"
	cpfBea = "22222222222"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry("Banco Digital OOP Bank", "0001")
}

func registerClient(t *testing.T, r *Registry, name, cpf string) *domain.Client {
	t.Helper()
	client, err := domain.NewClient(name, cpf, "Rua A, 1")
	require.NoError(t, err)
	require.NoError(t, r.RegisterClient(context.Background(), client))
	return client
}

func TestRegisterClientDuplicate(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	ctx := context.Background()

	registerClient(t, r, "Ana", cpfAna)

	dup, err := domain.NewClient("Ana Homônima", cpfAna, "Rua B, 2")
	require.NoError(t, err)
	err = r.RegisterClient(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateClient)

	assert.ErrorIs(t, r.RegisterClient(ctx, nil), domain.ErrInvalidClient)
}

func TestOpenAccount(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	ctx := context.Background()

	// 未註冊的客戶不能開戶
	_, err := r.OpenAccount(ctx, cpfAna)
	assert.ErrorIs(t, err, domain.ErrUnknownClient)

	ana := registerClient(t, r, "Ana", cpfAna)
	registerClient(t, r, "Bea", cpfBea)

	acc, err := r.OpenAccount(ctx, cpfAna)
	require.NoError(t, err)
	assert.Equal(t, int64(1), acc.Number())
	assert.True(t, ana.Equal(acc.Owner()))

	// 一位客戶最多一個帳戶
	_, err = r.OpenAccount(ctx, cpfAna)
	assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	// 帳號單調遞增
	acc2, err := r.OpenAccount(ctx, cpfBea)
	require.NoError(t, err)
	assert.Equal(t, int64(2), acc2.Number())
}

// 查無帳戶的兩種情況都回報 ErrAccountNotFound，
// 但「客戶不存在」另外可比對到 ErrUnknownClient。
func TestLookupDiagnostics(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	ctx := context.Background()

	registerClient(t, r, "Ana", cpfAna)

	err := r.Deposit(ctx, "99999999999", 1000)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.ErrorIs(t, err, domain.ErrUnknownClient)

	err = r.Deposit(ctx, cpfAna, 1000)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.False(t, errors.Is(err, domain.ErrUnknownClient))
}

func TestTransferSelfRejected(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	ctx := context.Background()

	registerClient(t, r, "Ana", cpfAna)
	_, err := r.OpenAccount(ctx, cpfAna)
	require.NoError(t, err)
	require.NoError(t, r.Deposit(ctx, cpfAna, 5000))

	err = r.Transfer(ctx, cpfAna, cpfAna, 1000)
	assert.ErrorIs(t, err, domain.ErrInvalidDestination)
}

func TestStatement(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	ctx := context.Background()

	registerClient(t, r, "Ana", cpfAna)
	_, err := r.OpenAccount(ctx, cpfAna)
	require.NoError(t, err)
	require.NoError(t, r.Deposit(ctx, cpfAna, 10000))
	require.NoError(t, r.Withdraw(ctx, cpfAna, 2500))

	st, err := r.Statement(ctx, cpfAna)
	require.NoError(t, err)
	assert.Equal(t, "Banco Digital OOP Bank", st.BankName)
	assert.Equal(t, "0001", st.Branch)
	assert.Equal(t, int64(1), st.AccountNumber)
	assert.Equal(t, cpfAna, st.Owner.CPF())
	assert.Equal(t, int64(7500), st.Balance)
	require.Len(t, st.Entries, 2)
	assert.Equal(t, domain.TransactionKindDeposit, st.Entries[0].Kind)
	assert.Equal(t, domain.TransactionKindWithdrawal, st.Entries[1].Kind)

	_, err = r.Statement(ctx, cpfBea)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestListClientsAndAccounts(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	ctx := context.Background()

	registerClient(t, r, "Bea", cpfBea)
	registerClient(t, r, "Ana", cpfAna)
	_, err := r.OpenAccount(ctx, cpfBea)
	require.NoError(t, err)
	_, err = r.OpenAccount(ctx, cpfAna)
	require.NoError(t, err)

	clients, err := r.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, cpfAna, clients[0].CPF())
	assert.Equal(t, cpfBea, clients[1].CPF())

	accounts, err := r.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, int64(1), accounts[0].Number())
	assert.Equal(t, int64(2), accounts[1].Number())
	assert.Equal(t, cpfBea, accounts[0].Owner().CPF())
}

// 完整走一遍典型情境: 註冊、開戶、存款、轉帳、餘額不足的提款
func TestEndToEndScenario(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	ctx := context.Background()

	registerClient(t, r, "Ana", cpfAna)
	registerClient(t, r, "Bea", cpfBea)
	_, err := r.OpenAccount(ctx, cpfAna)
	require.NoError(t, err)
	_, err = r.OpenAccount(ctx, cpfBea)
	require.NoError(t, err)

	require.NoError(t, r.Deposit(ctx, cpfAna, 10000))

	st, err := r.Statement(ctx, cpfAna)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), st.Balance)
	assert.Len(t, st.Entries, 1)

	require.NoError(t, r.Transfer(ctx, cpfAna, cpfBea, 4000))

	st, err = r.Statement(ctx, cpfAna)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), st.Balance)
	st, err = r.Statement(ctx, cpfBea)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), st.Balance)

	err = r.Withdraw(ctx, cpfBea, 100000)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	st, err = r.Statement(ctx, cpfBea)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), st.Balance)
	assert.Len(t, st.Entries, 1)
}
