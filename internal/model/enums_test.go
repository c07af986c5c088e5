package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	for _, c := range []string{CategoryBeach, CategoryMountain, CategoryHeritage, CategoryAdventure, CategoryCity} {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("beach"), "categories are case sensitive")
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("SPACE"))
}

func TestValidTxType(t *testing.T) {
	for _, v := range []string{TxDeposit, TxWithdrawal, TxPayment, TxRefund} {
		assert.True(t, ValidTxType(v), v)
	}
	assert.False(t, ValidTxType("TRANSFER"))
	assert.False(t, ValidTxType(""))
}

func TestValidPaymentMethod(t *testing.T) {
	for _, v := range []string{PayUPI, PayCard, PayWallet, PayEMI} {
		assert.True(t, ValidPaymentMethod(v), v)
	}
	assert.False(t, ValidPaymentMethod("CASH"))
	assert.False(t, ValidPaymentMethod("upi"))
}
