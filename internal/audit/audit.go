// Package audit keeps the human-readable trail of login and transaction
// attempts. It subscribes to domain notifications so that account and person
// logic never depends on logging concerns, and it records rejected attempts
// alongside successful ones.
package audit

import (
	"fmt"
	"io"
	"sync"

	"github.com/arjunmalhotra/minibank/internal/clock"
	"github.com/arjunmalhotra/minibank/internal/domain"
)

// Log accumulates rendered audit lines in the order events were delivered.
type Log struct {
	clk *clock.Clock

	mu                sync.Mutex
	loginEvents       []string
	transactionEvents []string
}

// NewLog returns an empty audit log stamping entries from clk.
func NewLog(clk *clock.Clock) *Log {
	return &Log{clk: clk}
}

// LoginHandler records a login attempt. Wire it to Person.SubscribeLogin.
func (l *Log) LoginHandler(ev domain.LoginEvent) {
	line := fmt.Sprintf("person %s login success=%t at %s", ev.Name, ev.Success, l.clk.Tick())
	l.mu.Lock()
	l.loginEvents = append(l.loginEvents, line)
	l.mu.Unlock()
}

// TransactionHandler records a transaction attempt. Wire it to
// Account.SubscribeTransaction. The historical audit format words every
// operation as a deposit, whatever the operation actually was; the sign of
// the amount tells the direction.
func (l *Log) TransactionHandler(ev domain.TransactionEvent) {
	outcome := "successfully"
	if !ev.Success {
		outcome = "unsuccessfully"
	}
	line := fmt.Sprintf("%s deposit %s %s on %s", ev.Name, domain.FormatAmount(ev.Amount), outcome, l.clk.Tick())
	l.mu.Lock()
	l.transactionEvents = append(l.transactionEvents, line)
	l.mu.Unlock()
}

// LoginEvents returns a copy of the recorded login lines in delivery order.
func (l *Log) LoginEvents() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.loginEvents))
	copy(out, l.loginEvents)
	return out
}

// TransactionEvents returns a copy of the recorded transaction lines in
// delivery order.
func (l *Log) TransactionEvents() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.transactionEvents))
	copy(out, l.transactionEvents)
	return out
}

// WriteLoginEvents replays the login trail to w: the current clock reading
// followed by every line with a 1-based sequence number.
func (l *Log) WriteLoginEvents(w io.Writer) error {
	return l.replay(w, l.LoginEvents())
}

// WriteTransactionEvents replays the transaction trail to w in the same shape.
func (l *Log) WriteTransactionEvents(w io.Writer) error {
	return l.replay(w, l.TransactionEvents())
}

func (l *Log) replay(w io.Writer, lines []string) error {
	if _, err := fmt.Fprintln(w, l.clk.Now()); err != nil {
		return err
	}
	for i, line := range lines {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, line); err != nil {
			return err
		}
	}
	return nil
}
