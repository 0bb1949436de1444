package domain

import (
	"github.com/shopspring/decimal"

	"github.com/arjunmalhotra/minibank/internal/clock"
)

var (
	checkingCostPerTransaction = decimal.RequireFromString("0.05")
	checkingInterestRate       = decimal.RequireFromString("0.005")
)

// Checking is a transactional account. Withdrawals past the balance are only
// honored when the account was opened with overdraft protection, and the
// monthly report charges a fee per journal entry.
type Checking struct {
	account
	overdraft bool
}

// NewChecking opens a checking account with the given seed balance.
func NewChecking(number string, balance decimal.Decimal, overdraft bool, clk *clock.Clock) *Checking {
	return &Checking{
		account:   newAccount(TypeChecking, number, balance, clk),
		overdraft: overdraft,
	}
}

// OverdraftAllowed reports whether the account may go below zero.
func (c *Checking) OverdraftAllowed() bool { return c.overdraft }

// Withdraw debits amount after checking that the actor is a holder, is
// logged in, and that the balance (or overdraft protection) covers it.
// Every refused attempt is still reported to transaction observers.
func (c *Checking) Withdraw(amount decimal.Decimal, actor *Person) error {
	if err := c.authorize(amount, actor); err != nil {
		return err
	}
	if amount.GreaterThan(c.Balance()) && !c.overdraft {
		return c.reject(amount, actor, ErrOverdraftNotAllowed)
	}
	c.debit(amount, actor)
	return nil
}

// PrepareMonthlyReport credits interest on the watermark, debits the
// per-transaction service charge and clears the journal.
func (c *Checking) PrepareMonthlyReport() {
	c.settleMonth(checkingInterestRate, checkingCostPerTransaction)
}
