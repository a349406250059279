package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cname   string
		cpf     string
		address string
		wantErr bool
	}{
		{"valid", "Ana Souza", "11111111111", "Rua A, 1", false},
		{"cpf too short", "Ana", "123", "Rua A, 1", true},
		{"cpf too long", "Ana", "123456789012", "Rua A, 1", true},
		{"cpf with letters", "Ana", "1111111111a", "Rua A, 1", true},
		{"cpf with punctuation", "Ana", "111.111.111", "Rua A, 1", true},
		{"empty name", "", "11111111111", "Rua A, 1", true},
		{"empty address", "Ana", "11111111111", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := NewClient(tt.cname, tt.cpf, tt.address)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidClient)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cpf, client.CPF())
			assert.Equal(t, tt.cname, client.Name())
			assert.Equal(t, tt.address, client.Address())
			assert.False(t, client.RegisteredAt().IsZero())
		})
	}
}

// 身分等價性只看 CPF，與姓名、地址無關
func TestClientEqual(t *testing.T) {
	t.Parallel()

	a, err := NewClient("Ana", "11111111111", "Rua A, 1")
	require.NoError(t, err)
	sameCPF, err := NewClient("Outro Nome", "11111111111", "Rua B, 2")
	require.NoError(t, err)
	other, err := NewClient("Ana", "22222222222", "Rua A, 1")
	require.NoError(t, err)

	assert.True(t, a.Equal(sameCPF))
	assert.False(t, a.Equal(other))
	assert.False(t, a.Equal(nil))
}

func TestValidCPF(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidCPF("00000000000"))
	assert.True(t, ValidCPF("12345678901"))
	assert.False(t, ValidCPF(""))
	assert.False(t, ValidCPF("1234567890"))
	assert.False(t, ValidCPF("111111111-1"))
}
