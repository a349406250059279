package domain

// Statement 對帳單。帳戶在某個時間點的餘額與完整日誌快照，
// 連同顯示用的銀行與持有人資訊；格式化為人可讀文字是呼叫端的事。
type Statement struct {
	// BankName, Branch: 出帳單位
	BankName string
	Branch   string
	// AccountNumber: 帳號
	AccountNumber int64
	// Owner: 帳戶持有人
	Owner *Client
	// Balance: 產生快照當下的餘額 (centavos)
	Balance int64
	// Entries: 交易日誌複本，插入順序即時間順序
	Entries []Transaction
}
