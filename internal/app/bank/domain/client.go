package domain

import (
	"fmt"
	"time"
)

// CPFLength CPF 固定為 11 位數字
const CPFLength = 11

// Client 銀行客戶。建立後不可變更 (系統沒有修改資料的操作)，
// 身分等價性只看 CPF，與姓名、地址無關。
type Client struct {
	cpf          string
	name         string
	address      string
	registeredAt time.Time
}

// NewClient 建立一位新客戶
//
// 參數:
//
//	name: 姓名，不可為空
//	cpf: 身分識別碼，必須是剛好 11 位數字
//	address: 地址，不可為空
//
// 回傳:
//
//	*Client: 客戶物件，註冊日期為當下時間
//	error: 資料不合法時回傳包裝後的 ErrInvalidClient
func NewClient(name, cpf, address string) (*Client, error) {
	if !ValidCPF(cpf) {
		return nil, fmt.Errorf("%w: cpf must be %d numeric digits", ErrInvalidClient, CPFLength)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidClient)
	}
	if address == "" {
		return nil, fmt.Errorf("%w: address must not be empty", ErrInvalidClient)
	}
	return &Client{
		cpf:          cpf,
		name:         name,
		address:      address,
		registeredAt: time.Now(),
	}, nil
}

// ValidCPF 檢查字串是否為合法的 CPF 格式 (11 位數字)。
// 只檢查格式，不驗證校驗碼。
func ValidCPF(cpf string) bool {
	if len(cpf) != CPFLength {
		return false
	}
	for _, c := range cpf {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CPF 回傳身分識別碼
func (c *Client) CPF() string {
	return c.cpf
}

// Name 回傳姓名
func (c *Client) Name() string {
	return c.name
}

// Address 回傳地址
func (c *Client) Address() string {
	return c.address
}

// RegisteredAt 回傳註冊日期
func (c *Client) RegisteredAt() time.Time {
	return c.registeredAt
}

// Equal 以 CPF 判斷是否為同一位客戶
func (c *Client) Equal(other *Client) bool {
	if other == nil {
		return false
	}
	return c.cpf == other.cpf
}
