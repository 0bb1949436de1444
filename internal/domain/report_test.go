package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestChecking_PrepareMonthlyReport(t *testing.T) {
	c := NewChecking("CK-100004", d("2000"), false, testClock())
	holder := loggedInHolder(t, c, "Yin", "7890-1234")

	c.Deposit(d("100"), holder)
	if err := c.Withdraw(d("300"), holder); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	// balance 1800, watermark 1800, 2 journal entries
	balance := c.Balance()
	lowest := c.LowestBalance()

	c.PrepareMonthlyReport()

	interest := lowest.Mul(checkingInterestRate).Div(twelve)
	charge := checkingCostPerTransaction.Mul(decimal.NewFromInt(2))
	want := balance.Add(interest).Sub(charge)
	if got := c.Balance(); !got.Equal(want) {
		t.Fatalf("balance after report = %s, want %s", got, want)
	}
	if got := len(c.Transactions()); got != 0 {
		t.Fatalf("report must clear the journal, got %d entries", got)
	}
}

func TestSaving_PrepareMonthlyReport(t *testing.T) {
	s := NewSaving("SV-100002", d("5000"), testClock())
	holder := loggedInHolder(t, s, "Hao", "8901-2345")
	if err := s.Withdraw(d("1000"), holder); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	balance := s.Balance()
	lowest := s.LowestBalance()

	s.PrepareMonthlyReport()

	interest := lowest.Mul(savingInterestRate).Div(twelve)
	charge := savingCostPerTransaction // one journal entry
	want := balance.Add(interest).Sub(charge)
	if got := s.Balance(); !got.Equal(want) {
		t.Fatalf("balance after report = %s, want %s", got, want)
	}
}

func TestVisa_PrepareMonthlyReportChargesInterestOnly(t *testing.T) {
	v := NewVisa("VS-100001", d("150"), d("-500"), testClock())
	holder := loggedInHolder(t, v, "Vinay", "4567-8901")
	if err := v.DoPurchase(d("25"), holder); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	balance := v.Balance()
	lowest := v.LowestBalance()

	v.PrepareMonthlyReport()

	interest := lowest.Mul(visaInterestRate).Div(twelve)
	want := balance.Sub(interest) // no per-transaction fee on visa accounts
	if got := v.Balance(); !got.Equal(want) {
		t.Fatalf("balance after report = %s, want %s", got, want)
	}
	if got := len(v.Transactions()); got != 0 {
		t.Fatalf("report must clear the journal, got %d entries", got)
	}
}

func TestAccount_ReportClearsJournalEvenAfterFailures(t *testing.T) {
	c := NewChecking("CK-100000", d("10"), false, testClock())
	holder := loggedInHolder(t, c, "Mayy", "1224-5678")

	c.Deposit(d("5"), holder)
	if err := c.Withdraw(d("1000"), holder); err == nil {
		t.Fatal("expected the oversized withdraw to fail")
	}

	c.PrepareMonthlyReport()
	if got := len(c.Transactions()); got != 0 {
		t.Fatalf("report must clear the journal regardless of failure history, got %d", got)
	}
}

func TestAccount_WatermarkCarriesOverMonthlyReport(t *testing.T) {
	// The watermark is deliberately not reset when a report is prepared:
	// interest in the next cycle still compounds on the all-time minimum
	// since the account last saw it. Running the report twice in a row
	// therefore applies interest twice on the same watermark.
	c := NewChecking("CK-100000", d("1200"), false, testClock())
	holder := loggedInHolder(t, c, "Arben", "5678-9012")
	if err := c.Withdraw(d("200"), holder); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	lowest := c.LowestBalance()
	c.PrepareMonthlyReport()
	if got := c.LowestBalance(); !got.Equal(lowest) {
		t.Fatalf("watermark after report = %s, want %s (carry-over)", got, lowest)
	}

	balance := c.Balance()
	c.PrepareMonthlyReport()

	interest := lowest.Mul(checkingInterestRate).Div(twelve)
	want := balance.Add(interest) // empty journal, no service charge
	if got := c.Balance(); !got.Equal(want) {
		t.Fatalf("second report balance = %s, want %s", got, want)
	}
}
