// Package money 處理金額文字與 centavos (int64) 之間的轉換。
// 核心帳務邏輯只認 int64，本套件只給需要讀寫自由文字的呼叫端
// (CLI) 使用。
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale 金額精度：小數點後 2 位 (centavos)
const Scale = 2

var (
	// ErrMalformed 金額文字無法解析
	ErrMalformed = errors.New("malformed amount")

	// ErrNotPositive 金額必須為正數
	ErrNotPositive = errors.New("amount must be positive")

	// ErrTooPrecise 金額小數位數超過 2 位
	ErrTooPrecise = errors.New("amount has more than 2 decimal places")
)

// Parse 將自由文字金額解析為 centavos。
// 接受小數點或逗號作為小數分隔 (如 "100.50"、"100,50")，
// 金額必須為正且最多兩位小數。
//
// 參數:
//
//	text: 金額文字
//
// 回傳:
//
//	int64: 金額 (centavos)
//	error: ErrMalformed / ErrNotPositive / ErrTooPrecise
func Parse(text string) (int64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, text)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: %q", ErrNotPositive, text)
	}
	cents := d.Shift(Scale)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("%w: %q", ErrTooPrecise, text)
	}
	return cents.IntPart(), nil
}

// Format 將 centavos 格式化為 "R$ 123,45" 形式的顯示文字
func Format(cents int64) string {
	value := decimal.New(cents, -Scale).StringFixed(Scale)
	return "R$ " + strings.Replace(value, ".", ",", 1)
}
