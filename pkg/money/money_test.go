package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		want    int64
		wantErr error
	}{
		{text: "100", want: 10000},
		{text: "100.50", want: 10050},
		{text: "100,50", want: 10050},
		{text: "0.01", want: 1},
		{text: " 7,5 ", want: 750},
		{text: "0", wantErr: ErrNotPositive},
		{text: "-10", wantErr: ErrNotPositive},
		{text: "0.001", wantErr: ErrTooPrecise},
		{text: "10,999", wantErr: ErrTooPrecise},
		{text: "abc", wantErr: ErrMalformed},
		{text: "", wantErr: ErrMalformed},
		{text: "1.2.3", wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "R$ 0,00", Format(0))
	assert.Equal(t, "R$ 0,05", Format(5))
	assert.Equal(t, "R$ 1234,56", Format(123456))
	assert.Equal(t, "R$ -10,00", Format(-1000))
}
