package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/pocket/internal/calendar"
)

// Kind classifies a transaction by the sign of its amount.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Transaction is a single wallet movement.
type Transaction struct {
	ID       string
	WalletID string
	Amount   decimal.Decimal // negative = expense, positive = income
	Note     string
	Date     time.Time // zero until a day is picked; ApplyDay reads zero as unset
}

// Kind returns income for non-negative amounts and expense otherwise.
func (t Transaction) Kind() Kind {
	if t.Amount.IsNegative() {
		return KindExpense
	}
	return KindIncome
}

// ApplyDay moves Date onto a picked calendar day in loc, keeping the UTC
// time-of-day of the current Date. A zero Date becomes midnight of day, so a
// caller holding a real 0001-01-01T00:00:00Z instant should use ApplyDayAt.
func (t *Transaction) ApplyDay(day calendar.Day, loc *time.Location) {
	var existing *time.Time
	if !t.Date.IsZero() {
		existing = &t.Date
	}
	t.ApplyDayAt(existing, day, loc)
}

// ApplyDayAt sets Date from an explicit existing instant, nil meaning none.
// The current Date is ignored.
func (t *Transaction) ApplyDayAt(existing *time.Time, day calendar.Day, loc *time.Location) {
	t.Date = calendar.ApplyDayIn(existing, day, loc)
}

// Day returns the calendar day of Date in loc.
func (t Transaction) Day(loc *time.Location) calendar.Day {
	if loc == nil {
		loc = time.Local
	}
	return calendar.FromTime(t.Date.In(loc))
}
