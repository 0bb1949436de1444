package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arjunmalhotra/minibank/internal/clock"
)

// Transaction is an immutable record of a single balance change. Amount is
// signed: positive for credits, negative for debits. Transactions are created
// once by the owning account and removed only in bulk when a journal is
// cleared by the monthly report.
type Transaction struct {
	ID         uuid.UUID
	Account    string
	Amount     decimal.Decimal
	Originator *Person
	Time       clock.Stamp
}

func (t Transaction) String() string {
	verb := "deposited"
	if t.Amount.IsNegative() {
		verb = "withdrawn"
	}
	return fmt.Sprintf("%s $%s %s by %s on %s", t.Account, t.Amount, verb, t.Originator, t.Time)
}
