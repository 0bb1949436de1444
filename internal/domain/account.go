package domain

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arjunmalhotra/minibank/internal/clock"
)

// Type identifies an account variant and doubles as its number prefix.
type Type string

const (
	TypeChecking Type = "CK"
	TypeSaving   Type = "SV"
	TypeVisa     Type = "VS"
)

// FirstAccountNumber is where the registry's shared account sequence starts.
const FirstAccountNumber = 100_000

var twelve = decimal.NewFromInt(12)

// Account is the behavior shared by the closed set of account variants
// (Checking, Saving, Visa). Authorization rules live on the variant-specific
// debit operations; Deposit is unconditional.
type Account interface {
	Number() string
	Type() Type
	Balance() decimal.Decimal
	LowestBalance() decimal.Decimal
	Holders() []string
	Transactions() []Transaction

	AddHolder(p *Person)
	IsHolder(name string) bool
	Deposit(amount decimal.Decimal, actor *Person)
	PrepareMonthlyReport()
	SubscribeTransaction(fn TransactionFunc)
}

// Withdrawer is the debit capability shared by all variants. For Checking and
// Saving it is the withdraw operation; for Visa it is the purchase path.
type Withdrawer interface {
	Withdraw(amount decimal.Decimal, actor *Person) error
}

// account carries the state common to every variant: balance, the
// lowest-balance watermark, the holder set and the transaction journal.
// The mutex keeps balance, watermark and journal append atomic as a unit.
type account struct {
	number string
	typ    Type
	clk    *clock.Clock

	mu            sync.Mutex
	balance       decimal.Decimal
	lowest        decimal.Decimal
	holders       []*Person
	journal       []Transaction
	onTransaction []TransactionFunc
}

func newAccount(typ Type, number string, balance decimal.Decimal, clk *clock.Clock) account {
	return account{
		number:  number,
		typ:     typ,
		clk:     clk,
		balance: balance,
		lowest:  balance,
	}
}

// Number returns the account's registry number, e.g. "CK-100004".
func (a *account) Number() string { return a.number }

// Type returns the variant tag.
func (a *account) Type() Type { return a.typ }

// Balance returns the current balance.
func (a *account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// LowestBalance returns the running minimum the balance has held since the
// account was opened or the watermark last carried over a monthly report.
func (a *account) LowestBalance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lowest
}

// Holders returns the names of the account's holders in association order.
func (a *account) Holders() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	names := make([]string, len(a.holders))
	for i, p := range a.holders {
		names[i] = p.Name()
	}
	return names
}

// Transactions returns a copy of the journal in chronological order.
func (a *account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.journal))
	copy(out, a.journal)
	return out
}

// AddHolder authorizes a person on this account. Adding a holder twice has
// no effect.
func (a *account) AddHolder(p *Person) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, h := range a.holders {
		if h.Name() == p.Name() {
			return
		}
	}
	a.holders = append(a.holders, p)
}

// IsHolder reports whether a holder with the given name is on the account.
func (a *account) IsHolder(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, h := range a.holders {
		if h.Name() == name {
			return true
		}
	}
	return false
}

// SubscribeTransaction registers an observer for transaction attempts.
func (a *account) SubscribeTransaction(fn TransactionFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onTransaction = append(a.onTransaction, fn)
}

// Deposit unconditionally credits the account and notifies observers of the
// success. No holder or authentication check applies; anyone may pay money in.
func (a *account) Deposit(amount decimal.Decimal, actor *Person) {
	a.credit(amount, actor)
	a.emit(TransactionEvent{Name: actor.Name(), Amount: amount, Success: true})
}

// credit applies a signed amount to the balance, lowers the watermark when
// the new balance drops under it, and appends the journal record stamped
// with the next clock tick. All three updates happen under one lock.
func (a *account) credit(amount decimal.Decimal, actor *Person) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	if a.balance.LessThanOrEqual(a.lowest) {
		a.lowest = a.balance
	}
	a.journal = append(a.journal, Transaction{
		ID:         uuid.New(),
		Account:    a.number,
		Amount:     amount,
		Originator: actor,
		Time:       a.clk.Tick(),
	})
}

// authorize runs the holder and authentication checks shared by every debit
// operation. On failure it notifies observers of the attempt before
// returning, so the audit trail records rejections as well as successes.
func (a *account) authorize(amount decimal.Decimal, actor *Person) error {
	if !a.IsHolder(actor.Name()) {
		a.emit(TransactionEvent{Name: actor.Name(), Amount: amount, Success: false})
		return ErrNotAHolder
	}
	if !actor.IsAuthenticated() {
		a.emit(TransactionEvent{Name: actor.Name(), Amount: amount, Success: false})
		return ErrNotAuthenticated
	}
	return nil
}

// debit notifies observers of the successful debit and applies it.
func (a *account) debit(amount decimal.Decimal, actor *Person) {
	a.emit(TransactionEvent{Name: actor.Name(), Amount: amount.Neg(), Success: true})
	a.credit(amount.Neg(), actor)
}

// reject notifies observers of a refused attempt and returns the reason.
func (a *account) reject(amount decimal.Decimal, actor *Person, reason error) error {
	a.emit(TransactionEvent{Name: actor.Name(), Amount: amount, Success: false})
	return reason
}

// settleMonth applies one month of interest computed on the watermark, minus
// a per-transaction service charge, then clears the journal. The watermark
// deliberately carries over into the next cycle.
func (a *account) settleMonth(annualRate, costPerTransaction decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	interest := a.lowest.Mul(annualRate).Div(twelve)
	charge := costPerTransaction.Mul(decimal.NewFromInt(int64(len(a.journal))))
	a.balance = a.balance.Add(interest).Sub(charge)
	a.journal = nil
}

func (a *account) emit(ev TransactionEvent) {
	a.mu.Lock()
	observers := make([]TransactionFunc, len(a.onTransaction))
	copy(observers, a.onTransaction)
	a.mu.Unlock()

	for _, fn := range observers {
		fn(ev)
	}
}

func (a *account) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	names := make([]string, len(a.holders))
	for i, p := range a.holders {
		names[i] = p.Name()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] $%s", a.number, strings.Join(names, ", "), FormatAmount(a.balance))
	for _, t := range a.journal {
		b.WriteString("\n  ")
		b.WriteString(t.String())
	}
	return b.String()
}
