// Command bankdemo seeds the demo registry and drives the ledger through a
// fixed scenario: logins, card payments and purchases, deposits, withdrawals,
// a set of deliberately failing operations, the monthly settlement, and a
// replay of the audit trail.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/arjunmalhotra/minibank/internal/audit"
	"github.com/arjunmalhotra/minibank/internal/clock"
	"github.com/arjunmalhotra/minibank/internal/config"
	"github.com/arjunmalhotra/minibank/internal/domain"
	"github.com/arjunmalhotra/minibank/internal/ledger"
	"github.com/arjunmalhotra/minibank/internal/logging"
)

var d = decimal.RequireFromString

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bankdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; absence is the normal case.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.Logging)

	clk := clock.New(cfg.Clock.EpochMinutes, cfg.Clock.Seed)
	auditLog := audit.NewLog(clk)
	reg := ledger.New(clk, auditLog, logger)
	if err := ledger.Seed(reg); err != nil {
		return fmt.Errorf("seed registry: %w", err)
	}

	fmt.Println("\nAll accounts:")
	for _, a := range reg.Accounts() {
		fmt.Println(a)
	}
	fmt.Println("\nAll users:")
	for _, p := range reg.Persons() {
		fmt.Println(p)
	}

	var lookupErr error
	person := func(name string) *domain.Person {
		p, err := reg.Person(name)
		if err != nil && lookupErr == nil {
			lookupErr = err
		}
		return p
	}

	narendra := person("Narendra")
	ilia := person("Ilia")
	mehrdad := person("Mehrdad")
	vinay := person("Vinay")
	arben := person("Arben")
	patrick := person("Patrick")
	yin := person("Yin")
	hao := person("Hao")
	jake := person("Jake")
	nicoletta := person("Nicoletta")
	if lookupErr != nil {
		return lookupErr
	}

	// Passwords are the first three characters of each secret id.
	logins := []struct {
		person   *domain.Person
		password string
	}{
		{narendra, "123"}, {ilia, "234"}, {mehrdad, "345"}, {vinay, "456"},
		{arben, "567"}, {patrick, "678"}, {yin, "789"}, {hao, "890"},
		{nicoletta, "234"}, {jake, "901"},
	}
	for _, l := range logins {
		if err := l.person.Login(l.password); err != nil {
			return fmt.Errorf("login %s: %w", l.person.Name(), err)
		}
	}

	// Card activity.
	visa0, err := visaAccount(reg, "VS-100000")
	if err != nil {
		return err
	}
	visa0.DoPayment(d("1500"), narendra)
	report(visa0.DoPurchase(d("200"), ilia))
	report(visa0.DoPurchase(d("25"), mehrdad))
	report(visa0.DoPurchase(d("15"), narendra))
	report(visa0.DoPurchase(d("39"), ilia))
	visa0.DoPayment(d("400"), narendra)
	fmt.Println(visa0)

	visa1, err := visaAccount(reg, "VS-100001")
	if err != nil {
		return err
	}
	visa1.DoPayment(d("500"), narendra)
	report(visa1.DoPurchase(d("25"), vinay))
	report(visa1.DoPurchase(d("20"), arben))
	report(visa1.DoPurchase(d("15"), patrick))
	fmt.Println(visa1)

	// Savings activity.
	saving2, err := savingAccount(reg, "SV-100002")
	if err != nil {
		return err
	}
	report(saving2.Withdraw(d("300"), yin))
	report(saving2.Withdraw(d("32.90"), yin))
	report(saving2.Withdraw(d("50"), hao))
	report(saving2.Withdraw(d("111.11"), jake))
	fmt.Println(saving2)

	saving3, err := savingAccount(reg, "SV-100003")
	if err != nil {
		return err
	}
	saving3.Deposit(d("300"), vinay) // deposits need no holder status
	saving3.Deposit(d("32.90"), mehrdad)
	saving3.Deposit(d("50"), patrick)
	report(saving3.Withdraw(d("111.11"), nicoletta))
	fmt.Println(saving3)

	// Checking activity.
	checking4, err := checkingAccount(reg, "CK-100004")
	if err != nil {
		return err
	}
	checking4.Deposit(d("33.33"), hao)
	checking4.Deposit(d("40.44"), hao)
	report(checking4.Withdraw(d("150"), mehrdad))
	report(checking4.Withdraw(d("200"), arben))
	report(checking4.Withdraw(d("645"), yin))
	report(checking4.Withdraw(d("350"), yin))
	fmt.Println(checking4)

	checking5, err := checkingAccount(reg, "CK-100005")
	if err != nil {
		return err
	}
	checking5.Deposit(d("33.33"), jake)
	checking5.Deposit(d("40.44"), hao)
	report(checking5.Withdraw(d("450"), nicoletta))
	report(checking5.Withdraw(d("500"), jake))
	report(checking5.Withdraw(d("645"), nicoletta)) // overdraft kicks in
	report(checking5.Withdraw(d("850"), nicoletta))
	fmt.Println(checking5)

	visa6, err := visaAccount(reg, "VS-100006")
	if err != nil {
		return err
	}
	visa6.DoPayment(d("700"), narendra)
	report(visa6.DoPurchase(d("20"), vinay))
	report(visa6.DoPurchase(d("10"), ilia))
	report(visa6.DoPurchase(d("15"), ilia))
	fmt.Println(visa6)

	saving7, err := savingAccount(reg, "SV-100007")
	if err != nil {
		return err
	}
	saving7.Deposit(d("300"), vinay)
	saving7.Deposit(d("32.90"), mehrdad)
	saving7.Deposit(d("50"), patrick)
	report(saving7.Withdraw(d("111.11"), hao))
	fmt.Println(saving7)

	// Every failure below is expected; the point is showing the error surface.
	fmt.Println("\nExceptions:")
	report(jake.Login("911")) // incorrect password

	vinay.Logout()
	report(visa6.DoPurchase(d("12.5"), vinay))    // not logged in
	report(visa6.DoPurchase(d("12.5"), narendra)) // not a holder
	report(visa6.DoPurchase(d("5825"), ilia))     // credit limit exceeded
	report(checking4.Withdraw(d("1500"), yin))    // no overdraft

	if _, err := reg.Account("CK-100018"); err != nil {
		fmt.Println(err)
	}
	if _, err := reg.Person("Trudeau"); err != nil {
		fmt.Println(err)
	}

	fmt.Println("\nAll transactions:")
	for _, t := range reg.AllTransactions() {
		fmt.Println(t)
	}

	for _, a := range reg.Accounts() {
		fmt.Println("\nBefore PrepareMonthlyReport()")
		fmt.Println(a)
		a.PrepareMonthlyReport()
		fmt.Println("After PrepareMonthlyReport()")
		fmt.Println(a)
	}

	fmt.Println("\nLogin events:")
	if err := auditLog.WriteLoginEvents(os.Stdout); err != nil {
		return err
	}
	fmt.Println("\nTransaction events:")
	if err := auditLog.WriteTransactionEvents(os.Stdout); err != nil {
		return err
	}
	return nil
}

// report prints expected operation failures without aborting the scenario.
func report(err error) {
	if err != nil {
		fmt.Println(err)
	}
}

func visaAccount(reg *ledger.Ledger, number string) (*domain.Visa, error) {
	a, err := reg.Account(number)
	if err != nil {
		return nil, err
	}
	v, ok := a.(*domain.Visa)
	if !ok {
		return nil, fmt.Errorf("account %s is not a visa account", number)
	}
	return v, nil
}

func savingAccount(reg *ledger.Ledger, number string) (*domain.Saving, error) {
	a, err := reg.Account(number)
	if err != nil {
		return nil, err
	}
	s, ok := a.(*domain.Saving)
	if !ok {
		return nil, fmt.Errorf("account %s is not a savings account", number)
	}
	return s, nil
}

func checkingAccount(reg *ledger.Ledger, number string) (*domain.Checking, error) {
	a, err := reg.Account(number)
	if err != nil {
		return nil, err
	}
	c, ok := a.(*domain.Checking)
	if !ok {
		return nil, fmt.Errorf("account %s is not a checking account", number)
	}
	return c, nil
}
