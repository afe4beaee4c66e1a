package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Amount:   25.50,
		Type:     TransactionTypeExpense,
		Category: "Shopping",
		Date:     time.Now(),
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{"negative amount", func(tx *Transaction) { tx.Amount = -1 }, ErrNegativeAmount},
		{"unknown type", func(tx *Transaction) { tx.Type = "transfer" }, ErrInvalidTransactionType},
		{"empty type", func(tx *Transaction) { tx.Type = "" }, ErrInvalidTransactionType},
		{"missing category", func(tx *Transaction) { tx.Category = "" }, ErrMissingCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			assert.ErrorIs(t, tx.Validate(), tt.wantErr)
		})
	}
}

func TestTransactionZeroAmountIsValid(t *testing.T) {
	tx := Transaction{Amount: 0, Type: TransactionTypeIncome, Category: "Salary"}
	assert.NoError(t, tx.Validate())
}

func TestTransactionSignedAmount(t *testing.T) {
	income := Transaction{Amount: 100, Type: TransactionTypeIncome, Category: "Salary"}
	expense := Transaction{Amount: 40, Type: TransactionTypeExpense, Category: "Shopping"}

	assert.Equal(t, 100.0, income.SignedAmount())
	assert.Equal(t, -40.0, expense.SignedAmount())
	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
	assert.True(t, expense.IsExpense())
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypeIncome))
	assert.True(t, IsValidTransactionType(TransactionTypeExpense))
	assert.False(t, IsValidTransactionType("Income"))
	assert.False(t, IsValidTransactionType(""))
}
