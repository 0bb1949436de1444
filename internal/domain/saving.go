package domain

import (
	"github.com/shopspring/decimal"

	"github.com/arjunmalhotra/minibank/internal/clock"
)

var (
	savingCostPerTransaction = decimal.RequireFromString("0.05")
	savingInterestRate       = decimal.RequireFromString("0.015")
)

// Saving is a deposit account earning a higher interest rate than Checking.
// Overdrafts are never allowed, regardless of configuration.
type Saving struct {
	account
}

// NewSaving opens a savings account with the given seed balance.
func NewSaving(number string, balance decimal.Decimal, clk *clock.Clock) *Saving {
	return &Saving{account: newAccount(TypeSaving, number, balance, clk)}
}

// Withdraw debits amount after the holder and authentication checks. A
// withdrawal past the balance always fails; savings accounts have no
// overdraft protection.
func (s *Saving) Withdraw(amount decimal.Decimal, actor *Person) error {
	if err := s.authorize(amount, actor); err != nil {
		return err
	}
	if amount.GreaterThan(s.Balance()) {
		return s.reject(amount, actor, ErrOverdraftNotAllowed)
	}
	s.debit(amount, actor)
	return nil
}

// PrepareMonthlyReport credits interest on the watermark, debits the
// per-transaction service charge and clears the journal.
func (s *Saving) PrepareMonthlyReport() {
	s.settleMonth(savingInterestRate, savingCostPerTransaction)
}
