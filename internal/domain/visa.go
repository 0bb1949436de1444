package domain

import (
	"github.com/shopspring/decimal"

	"github.com/arjunmalhotra/minibank/internal/clock"
)

var visaInterestRate = decimal.RequireFromString("0.1995")

// Visa is a credit-card style account. Balance represents available spend
// capacity: payments raise it, purchases lower it. The credit limit may be
// negative to model capacity that is already exhausted.
type Visa struct {
	account
	creditLimit decimal.Decimal
}

// NewVisa opens a visa account with the given available balance and credit limit.
func NewVisa(number string, balance, creditLimit decimal.Decimal, clk *clock.Clock) *Visa {
	return &Visa{
		account:     newAccount(TypeVisa, number, balance, clk),
		creditLimit: creditLimit,
	}
}

// CreditLimit returns the configured limit.
func (v *Visa) CreditLimit() decimal.Decimal { return v.creditLimit }

// DoPayment credits the account, reducing what is owed. Payments need no
// authorization and always succeed; anyone may pay a card off.
func (v *Visa) DoPayment(amount decimal.Decimal, actor *Person) {
	v.credit(amount, actor)
	v.emit(TransactionEvent{Name: actor.Name(), Amount: amount, Success: true})
}

// DoPurchase debits amount after the holder and authentication checks, and
// fails with ErrCreditLimitExceeded when the purchase is larger than the
// available credit.
func (v *Visa) DoPurchase(amount decimal.Decimal, actor *Person) error {
	if err := v.authorize(amount, actor); err != nil {
		return err
	}
	if amount.GreaterThan(v.Balance()) {
		return v.reject(amount, actor, ErrCreditLimitExceeded)
	}
	v.debit(amount, actor)
	return nil
}

// Withdraw is the debit capability for visa accounts; it is the purchase path.
func (v *Visa) Withdraw(amount decimal.Decimal, actor *Person) error {
	return v.DoPurchase(amount, actor)
}

// PrepareMonthlyReport debits one month of interest on the watermark and
// clears the journal. Visa accounts carry no per-transaction fee.
func (v *Visa) PrepareMonthlyReport() {
	v.settleMonth(visaInterestRate.Neg(), decimal.Decimal{})
}
