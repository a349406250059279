package domain

import "errors"

var (
	// ErrInvalidAmount 金額必須為正數
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidKind 交易類型未知 (非 Deposit / Withdrawal)
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrInsufficientFunds 餘額不足
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidDestination 轉帳目標無效 (為空或與來源相同)
	ErrInvalidDestination = errors.New("invalid destination account")

	// ErrCompensationFailed 沖正失敗：來源帳戶餘額已與轉帳前不一致，
	// 需要人工對帳處理。這是整個系統唯一無法自我修復的狀態。
	ErrCompensationFailed = errors.New("compensation failed, manual reconciliation required")

	// ErrDuplicateClient 客戶已註冊 (CPF 重複)
	ErrDuplicateClient = errors.New("client already registered")

	// ErrUnknownClient 找不到客戶
	ErrUnknownClient = errors.New("client not found")

	// ErrAccountAlreadyExists 該客戶已擁有帳戶
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidClient 客戶資料無效 (CPF 格式、姓名或地址為空)
	ErrInvalidClient = errors.New("invalid client data")
)
