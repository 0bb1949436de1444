package ledger

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/arjunmalhotra/minibank/internal/audit"
	"github.com/arjunmalhotra/minibank/internal/clock"
	"github.com/arjunmalhotra/minibank/internal/domain"
)

var d = decimal.RequireFromString

func newTestLedger(t *testing.T) (*Ledger, *audit.Log) {
	t.Helper()
	clk := clock.New(0, 1)
	auditLog := audit.NewLog(clk)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(clk, auditLog, logger), auditLog
}

func TestLedger_LookupUnknownKeys(t *testing.T) {
	l, _ := newTestLedger(t)
	if err := Seed(l); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := l.Account("CK-100018"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
	if _, err := l.Person("Trudeau"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLedger_AddPersonRejectsDuplicates(t *testing.T) {
	l, _ := newTestLedger(t)

	if _, err := l.AddPerson("Yin", "7890-1234"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := l.AddPerson("Yin", "0000-0000"); !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestLedger_AddAccountRejectsDuplicateNumbers(t *testing.T) {
	l, _ := newTestLedger(t)
	clk := clock.New(0, 1)

	a := domain.NewChecking("CK-200000", d("100"), false, clk)
	if err := l.AddAccount(a); err != nil {
		t.Fatalf("first add: %v", err)
	}
	b := domain.NewChecking("CK-200000", d("200"), true, clk)
	if err := l.AddAccount(b); !errors.Is(err, domain.ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
}

func TestLedger_OpenAccountsMintSequentialNumbers(t *testing.T) {
	l, _ := newTestLedger(t)

	v := l.OpenVisa(decimal.Zero, d("1200"))
	s := l.OpenSaving(d("5000"))
	c := l.OpenChecking(d("2000"), false)

	if v.Number() != "VS-100000" {
		t.Errorf("first account number = %s, want VS-100000", v.Number())
	}
	if s.Number() != "SV-100001" {
		t.Errorf("second account number = %s, want SV-100001", s.Number())
	}
	if c.Number() != "CK-100002" {
		t.Errorf("third account number = %s, want CK-100002", c.Number())
	}
}

func TestLedger_AssociateChecksBothKeys(t *testing.T) {
	l, _ := newTestLedger(t)
	if _, err := l.AddPerson("Hao", "8901-2345"); err != nil {
		t.Fatalf("add person: %v", err)
	}
	a := l.OpenSaving(d("1000"))

	if err := l.Associate("SV-999999", "Hao"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("unknown account: expected ErrAccountNotFound, got %v", err)
	}
	if err := l.Associate(a.Number(), "Nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("unknown person: expected ErrUserNotFound, got %v", err)
	}

	if err := l.Associate(a.Number(), "Hao"); err != nil {
		t.Fatalf("associate: %v", err)
	}
	// Repeated association is deduplicated on the account side.
	if err := l.Associate(a.Number(), "Hao"); err != nil {
		t.Fatalf("repeated associate: %v", err)
	}
	if got := a.Holders(); len(got) != 1 || got[0] != "Hao" {
		t.Fatalf("holders = %v, want exactly [Hao]", got)
	}
}

func TestLedger_WiresAuditSubscriptions(t *testing.T) {
	l, auditLog := newTestLedger(t)

	p, err := l.AddPerson("Jake", "9012-3456")
	if err != nil {
		t.Fatalf("add person: %v", err)
	}
	a := l.OpenChecking(d("100"), false)

	if err := p.Login("901"); err != nil {
		t.Fatalf("login: %v", err)
	}
	a.Deposit(d("10"), p)

	if got := len(auditLog.LoginEvents()); got != 1 {
		t.Errorf("expected 1 audit login line, got %d", got)
	}
	if got := len(auditLog.TransactionEvents()); got != 1 {
		t.Errorf("expected 1 audit transaction line, got %d", got)
	}
}

func TestLedger_AllTransactionsGroupsByAccountOrder(t *testing.T) {
	l, _ := newTestLedger(t)
	p, err := l.AddPerson("Patrick", "6789-0123")
	if err != nil {
		t.Fatalf("add person: %v", err)
	}

	first := l.OpenChecking(d("100"), false)
	second := l.OpenSaving(d("100"))

	// Interleave deposits across the two accounts.
	first.Deposit(d("1"), p)
	second.Deposit(d("2"), p)
	first.Deposit(d("3"), p)

	all := l.AllTransactions()
	if len(all) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(all))
	}
	wantAccounts := []string{first.Number(), first.Number(), second.Number()}
	for i, tx := range all {
		if tx.Account != wantAccounts[i] {
			t.Errorf("transaction %d belongs to %s, want %s", i, tx.Account, wantAccounts[i])
		}
	}
}

func TestLedger_PrepareMonthlyReportsClearsEveryJournal(t *testing.T) {
	l, _ := newTestLedger(t)
	if err := Seed(l); err != nil {
		t.Fatalf("seed: %v", err)
	}
	p, err := l.Person("Vinay")
	if err != nil {
		t.Fatalf("person: %v", err)
	}
	for _, a := range l.Accounts() {
		a.Deposit(d("10"), p)
	}

	l.PrepareMonthlyReports()

	for _, a := range l.Accounts() {
		if got := len(a.Transactions()); got != 0 {
			t.Errorf("%s: journal not cleared, %d entries left", a.Number(), got)
		}
	}
}

func TestSeed_PopulatesTheDemoRegistry(t *testing.T) {
	l, _ := newTestLedger(t)
	if err := Seed(l); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if got := len(l.Persons()); got != 11 {
		t.Fatalf("expected 11 persons, got %d", got)
	}
	accounts := l.Accounts()
	if len(accounts) != 8 {
		t.Fatalf("expected 8 accounts, got %d", len(accounts))
	}

	wantNumbers := []string{
		"VS-100000", "VS-100001", "SV-100002", "SV-100003",
		"CK-100004", "CK-100005", "VS-100006", "SV-100007",
	}
	for i, a := range accounts {
		if a.Number() != wantNumbers[i] {
			t.Errorf("account %d = %s, want %s", i, a.Number(), wantNumbers[i])
		}
	}

	checking, err := l.Account("CK-100004")
	if err != nil {
		t.Fatalf("account: %v", err)
	}
	if got := checking.Balance(); !got.Equal(d("2000")) {
		t.Errorf("CK-100004 balance = %s, want 2000", got)
	}
	for _, name := range []string{"Mehrdad", "Arben", "Yin"} {
		if !checking.IsHolder(name) {
			t.Errorf("CK-100004 must list %s as a holder", name)
		}
	}
	if checking.IsHolder("Jake") {
		t.Error("Jake must not be a holder of CK-100004")
	}

	// Seeding twice must fail loudly on the duplicate names.
	if err := Seed(l); !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("second seed: expected ErrDuplicateName, got %v", err)
	}
}
