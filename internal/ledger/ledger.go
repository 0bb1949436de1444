// Package ledger holds the canonical registry of persons and accounts. It
// mints account numbers, wires every person and account to the audit log at
// registration time, and exposes the exact-key lookups everything else uses.
package ledger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/arjunmalhotra/minibank/internal/audit"
	"github.com/arjunmalhotra/minibank/internal/clock"
	"github.com/arjunmalhotra/minibank/internal/domain"
)

// Ledger owns the person and account collections. Insertion order is kept so
// listings and the combined transaction view are deterministic.
type Ledger struct {
	clk    *clock.Clock
	audit  *audit.Log
	logger *slog.Logger

	mu           sync.RWMutex
	persons      map[string]*domain.Person
	personOrder  []string
	accounts     map[string]domain.Account
	accountOrder []string
	nextNumber   int
}

// New builds an empty registry. A nil logger falls back to slog.Default.
func New(clk *clock.Clock, auditLog *audit.Log, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		clk:        clk,
		audit:      auditLog,
		logger:     logger,
		persons:    make(map[string]*domain.Person),
		accounts:   make(map[string]domain.Account),
		nextNumber: domain.FirstAccountNumber,
	}
}

// AddPerson registers a person under their name and subscribes them to the
// audit log's login handler. Duplicate names are rejected.
func (l *Ledger) AddPerson(name, secretID string) (*domain.Person, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.persons[name]; ok {
		return nil, fmt.Errorf("add person %q: %w", name, domain.ErrDuplicateName)
	}
	p := domain.NewPerson(name, secretID)
	p.SubscribeLogin(l.audit.LoginHandler)
	l.persons[name] = p
	l.personOrder = append(l.personOrder, name)
	l.logger.Debug("registered person", "name", name)
	return p, nil
}

// AddAccount registers an externally constructed account and subscribes it to
// the audit log's transaction handler. Duplicate numbers are rejected.
func (l *Ledger) AddAccount(a domain.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addAccountLocked(a)
}

func (l *Ledger) addAccountLocked(a domain.Account) error {
	if _, ok := l.accounts[a.Number()]; ok {
		return fmt.Errorf("add account %q: %w", a.Number(), domain.ErrDuplicateAccount)
	}
	a.SubscribeTransaction(l.audit.TransactionHandler)
	l.accounts[a.Number()] = a
	l.accountOrder = append(l.accountOrder, a.Number())
	l.logger.Debug("opened account", "number", a.Number(), "type", string(a.Type()))
	return nil
}

// OpenChecking mints the next account number, opens a checking account and
// registers it.
func (l *Ledger) OpenChecking(balance decimal.Decimal, overdraft bool) *domain.Checking {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := domain.NewChecking(l.mintNumber(domain.TypeChecking), balance, overdraft, l.clk)
	l.mustAdd(a)
	return a
}

// OpenSaving mints the next account number, opens a savings account and
// registers it.
func (l *Ledger) OpenSaving(balance decimal.Decimal) *domain.Saving {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := domain.NewSaving(l.mintNumber(domain.TypeSaving), balance, l.clk)
	l.mustAdd(a)
	return a
}

// OpenVisa mints the next account number, opens a visa account and registers it.
func (l *Ledger) OpenVisa(balance, creditLimit decimal.Decimal) *domain.Visa {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := domain.NewVisa(l.mintNumber(domain.TypeVisa), balance, creditLimit, l.clk)
	l.mustAdd(a)
	return a
}

// mintNumber produces the next number in the shared sequence, prefixed by
// the variant tag. Callers must hold the lock.
func (l *Ledger) mintNumber(t domain.Type) string {
	n := fmt.Sprintf("%s-%d", t, l.nextNumber)
	l.nextNumber++
	return n
}

// mustAdd registers a freshly minted account; the sequence guarantees the
// number is unused.
func (l *Ledger) mustAdd(a domain.Account) {
	if err := l.addAccountLocked(a); err != nil {
		panic(err)
	}
}

// Associate authorizes the named person on the numbered account.
func (l *Ledger) Associate(number, name string) error {
	a, err := l.Account(number)
	if err != nil {
		return err
	}
	p, err := l.Person(name)
	if err != nil {
		return err
	}
	a.AddHolder(p)
	l.logger.Debug("associated holder", "number", number, "name", name)
	return nil
}

// Person looks up a person by exact name.
func (l *Ledger) Person(name string) (*domain.Person, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.persons[name]
	if !ok {
		return nil, fmt.Errorf("person %q: %w", name, domain.ErrUserNotFound)
	}
	return p, nil
}

// Account looks up an account by exact number.
func (l *Ledger) Account(number string) (domain.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.accounts[number]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", number, domain.ErrAccountNotFound)
	}
	return a, nil
}

// Persons returns every registered person in registration order.
func (l *Ledger) Persons() []*domain.Person {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*domain.Person, len(l.personOrder))
	for i, name := range l.personOrder {
		out[i] = l.persons[name]
	}
	return out
}

// Accounts returns every registered account in creation order.
func (l *Ledger) Accounts() []domain.Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Account, len(l.accountOrder))
	for i, number := range l.accountOrder {
		out[i] = l.accounts[number]
	}
	return out
}

// AllTransactions concatenates every account's journal, accounts in creation
// order and entries in journal order. The combined sequence is chronological
// within one account only.
func (l *Ledger) AllTransactions() []domain.Transaction {
	var out []domain.Transaction
	for _, a := range l.Accounts() {
		out = append(out, a.Transactions()...)
	}
	return out
}

// PrepareMonthlyReports runs the monthly settlement on every account in
// creation order.
func (l *Ledger) PrepareMonthlyReports() {
	accounts := l.Accounts()
	for _, a := range accounts {
		a.PrepareMonthlyReport()
	}
	l.logger.Info("monthly reports prepared", "accounts", len(accounts))
}
