package library

import "strconv"

// FinePerDay is the fixed late fee charged per day overdue.
const FinePerDay = 0.50

// Fine is an immutable monetary amount. The catalog always constructs fines
// as daysLate * FinePerDay, so the constructor does not enforce sign.
type Fine struct {
	amount float64
}

func NewFine(amount float64) Fine { return Fine{amount: amount} }

// Amount returns the fine's dollar value.
func (f Fine) Amount() float64 { return f.amount }

// Add combines two fines into a new one; neither operand changes.
func (f Fine) Add(other Fine) Fine { return Fine{amount: f.amount + other.amount} }

// String formats the amount with exactly two decimal places, e.g. "2.50".
func (f Fine) String() string { return strconv.FormatFloat(f.amount, 'f', 2, 64) }
