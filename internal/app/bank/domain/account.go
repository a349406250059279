package domain

import "fmt"

// Account 帳戶。持有餘額與一份只增不減的交易日誌 (journal)，
// 兩者在每一次操作中同步更新：日誌有追加，餘額必定有變動，反之亦然。
//
// 不變量:
//
//	balance >= 0
//	balance == sum(存款金額) - sum(提款金額) (以日誌為準)
type Account struct {
	number  int64
	owner   *Client
	balance int64
	journal []Transaction

	// depositFault 入帳故障注入點，僅供同 package 測試模擬
	// 「目標帳戶入帳失敗」與「沖正失敗」；正式流程永遠為 nil。
	depositFault func(amount int64) error
}

// NewAccount 建立一個新帳戶，初始餘額為 0、日誌為空。
// 帳號由 registry 的計數器分配，這裡不做唯一性檢查。
func NewAccount(number int64, owner *Client) *Account {
	return &Account{
		number: number,
		owner:  owner,
	}
}

// Number 回傳帳號
func (a *Account) Number() int64 {
	return a.number
}

// Owner 回傳帳戶持有人
func (a *Account) Owner() *Client {
	return a.owner
}

// Balance 回傳當前餘額 (centavos)
func (a *Account) Balance() int64 {
	return a.balance
}

// Deposit 存款
//
// 參數:
//
//	amount: 金額 (centavos)，必須 > 0
//
// 回傳:
//
//	error: 金額不合法時回傳 ErrInvalidAmount，成功時為 nil
func (a *Account) Deposit(amount int64) error {
	tran, err := NewDeposit(amount)
	if err != nil {
		return err
	}
	return tran.Apply(a)
}

// Withdraw 提款。餘額採嚴格檢查，不允許透支。
//
// 參數:
//
//	amount: 金額 (centavos)，必須 > 0
//
// 回傳:
//
//	error: ErrInvalidAmount / ErrInsufficientFunds，成功時為 nil
func (a *Account) Withdraw(amount int64) error {
	tran, err := NewWithdrawal(amount)
	if err != nil {
		return err
	}
	return tran.Apply(a)
}

// Transfer 轉帳至 dest。
//
// 兩個帳戶之間沒有跨帳戶交易機制，因此採 Saga 式補償流程：
//
//	1. 來源帳戶提款，失敗則整筆轉帳失敗，任何狀態皆未改變
//	2. 目標帳戶存款，成功則轉帳完成 (來源記提款、目標記存款)
//	3. 目標存款失敗時，對來源帳戶做一筆沖正存款 (estorno)；
//	   沖正成功時轉帳仍回報失敗，但來源餘額已還原，
//	   日誌會留下提款 + 沖正存款兩筆紀錄 (日誌記錄事件，不是淨額)
//	4. 沖正也失敗時回傳 ErrCompensationFailed，來源餘額已不一致，
//	   呼叫端必須通知人工對帳
func (a *Account) Transfer(amount int64, dest *Account) error {
	if dest == nil || dest == a {
		return ErrInvalidDestination
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if err := a.Withdraw(amount); err != nil {
		return err
	}

	if err := dest.Deposit(amount); err != nil {
		// 沖正：把已提出的款項存回來源帳戶
		if rerr := a.Deposit(amount); rerr != nil {
			return fmt.Errorf("%w: deposit to account %d failed (%v), reversal failed (%v)",
				ErrCompensationFailed, dest.number, err, rerr)
		}
		return fmt.Errorf("transfer to account %d reversed: %w", dest.number, err)
	}
	return nil
}

// History 回傳完整交易日誌的唯讀快照 (複本)，
// 呼叫端無法透過回傳值改寫帳戶歷史。
func (a *Account) History() []Transaction {
	out := make([]Transaction, len(a.journal))
	copy(out, a.journal)
	return out
}

// credit 入帳：餘額增加並追加日誌，兩者為單一原子步驟
func (a *Account) credit(t Transaction) error {
	if a.depositFault != nil {
		if err := a.depositFault(t.Amount); err != nil {
			return err
		}
	}
	a.balance += t.Amount
	a.journal = append(a.journal, t)
	return nil
}

// debit 扣帳：先檢查餘額，通過後更新餘額並追加日誌
func (a *Account) debit(t Transaction) error {
	if a.balance < t.Amount {
		return ErrInsufficientFunds
	}
	a.balance -= t.Amount
	a.journal = append(a.journal, t)
	return nil
}
