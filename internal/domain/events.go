package domain

import "github.com/shopspring/decimal"

// LoginEvent describes one login attempt, successful or not.
type LoginEvent struct {
	Name    string
	Success bool
}

// TransactionEvent describes one attempted balance change. Amount is signed:
// credits are positive, debits negative. Failed attempts carry the amount the
// caller asked for.
type TransactionEvent struct {
	Name    string
	Amount  decimal.Decimal
	Success bool
}

// LoginFunc receives login notifications. Observers are invoked synchronously
// in registration order.
type LoginFunc func(LoginEvent)

// TransactionFunc receives transaction notifications. Observers are invoked
// synchronously in registration order.
type TransactionFunc func(TransactionEvent)
