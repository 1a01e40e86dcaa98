package reward

import (
	"fmt"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

// Account owns the point balance and the append-only history of an AppState.
// Every point mutation goes through ApplyDelta.
type Account struct {
	state *domain.AppState
}

// NewAccount wraps the given state
func NewAccount(state *domain.AppState) *Account {
	return &Account{state: state}
}

// Balance returns the current point balance
func (a *Account) Balance() int {
	return a.state.Points
}

// ApplyDelta adds a signed amount to the balance and appends the entry verbatim.
// The balance is never clamped; overdraft protection lives in Spend.
func (a *Account) ApplyDelta(amount int, entry domain.HistoryEntry) {
	a.state.Points += amount
	a.state.History = append(a.state.History, entry)
}

// Spend debits cost after checking the balance covers it
func (a *Account) Spend(cost int, entry domain.HistoryEntry) error {
	if cost < 0 {
		return fmt.Errorf(ErrMsgNegativeCostFmt, domain.ErrInvalidInput, cost)
	}
	if a.state.Points < cost {
		return fmt.Errorf(ErrMsgInsufficientFundsFmt, domain.ErrInsufficientFunds, cost, a.state.Points)
	}

	a.ApplyDelta(-cost, entry)
	return nil
}

// History returns a copy of the log
func (a *Account) History() []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(a.state.History))
	copy(out, a.state.History)
	return out
}

// ClearHistory empties the log; the balance is untouched
func (a *Account) ClearHistory() {
	a.state.History = []domain.HistoryEntry{}
}

// CompletedCount derives the number of completed quests from the log
func (a *Account) CompletedCount() int {
	return CountCompletions(a.state.History)
}

// CountCompletions counts daily and timed completion entries.
// It is recomputed on every call so it always agrees with the history.
func CountCompletions(history []domain.HistoryEntry) int {
	n := 0
	for _, e := range history {
		if e.IsCompletion() {
			n++
		}
	}
	return n
}
