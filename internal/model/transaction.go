package model

import "time"

// Transaction types, states and payment methods.
const (
	TxDeposit    = "DEPOSIT"
	TxWithdrawal = "WITHDRAWAL"
	TxPayment    = "PAYMENT"
	TxRefund     = "REFUND"

	TxPending   = "PENDING"
	TxCompleted = "COMPLETED"
	TxFailed    = "FAILED"

	PayUPI    = "UPI"
	PayCard   = "CARD"
	PayWallet = "WALLET"
	PayEMI    = "EMI"
)

// ValidTxType reports whether s is a known transaction type.
func ValidTxType(s string) bool {
	switch s {
	case TxDeposit, TxWithdrawal, TxPayment, TxRefund:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether s is a known payment method.
func ValidPaymentMethod(s string) bool {
	switch s {
	case PayUPI, PayCard, PayWallet, PayEMI:
		return true
	}
	return false
}

// Transaction is a monetary event tied to a user and optionally to a
// group and its wallet.  GatewayRef stores the external payment gateway
// reference when one exists.  Inserting a transaction never mutates the
// wallet balance.
type Transaction struct {
	ID            uint64    // transactions.id
	UserID        uint64    // transactions.user_id
	GroupID       *uint64   // transactions.group_id (nullable)
	WalletID      *uint64   // transactions.wallet_id (nullable)
	Type          string    // transactions.type
	Status        string    // transactions.status
	PaymentMethod string    // transactions.payment_method
	AmountCents   int64     // transactions.amount_cents
	GatewayRef    *string   // transactions.gateway_ref (nullable)
	CreatedAt     time.Time // transactions.created_at
}
