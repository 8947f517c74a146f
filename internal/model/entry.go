// Package model defines the budget entry record and the validation that
// turns raw form input into one.
package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk and input format for entry dates.
const DateLayout = "2006-01-02"

// maxAmountPlaces is the finest amount precision accepted. Entries are
// written with exactly this many places, so nothing is ever rounded.
const maxAmountPlaces = 2

// thousandsGroup matches "1,234" style input, which could be either a
// thousands separator or a three-place decimal comma.
var thousandsGroup = regexp.MustCompile(`^[+-]?\d{1,3},\d{3}$`)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("category must be filled in")
)

// FormInput is the raw text of the three entry fields.
type FormInput struct {
	Date     string
	Amount   string
	Category string
}

// Entry is one validated budget entry. It is built once by ParseEntry and
// passed by value from validation to persistence.
type Entry struct {
	Date     time.Time
	Amount   decimal.Decimal
	Category string
}

// Row returns the CSV fields for e in header order.
func (e Entry) Row() []string {
	return []string{
		e.Date.Format(DateLayout),
		e.Amount.StringFixed(2),
		e.Category,
	}
}

// ParseEntry validates all three fields and stops at the first failure.
func ParseEntry(in FormInput) (Entry, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return Entry{}, err
	}
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return Entry{}, err
	}
	category, err := ParseCategory(in.Category)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Date: date, Amount: amount, Category: category}, nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	return d, nil
}

// ParseAmount parses a decimal amount. A lone comma is accepted as the
// decimal separator ("12,50"). Input with more than two decimal places, or
// shaped like a thousands group ("1,234"), is rejected rather than rounded.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is empty", ErrInvalidAmount)
	}
	if thousandsGroup.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w %q: ambiguous comma, use a dot for decimals and no thousands separator", ErrInvalidAmount, s)
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q: not a number", ErrInvalidAmount, s)
	}
	if !d.Equal(d.Truncate(maxAmountPlaces)) {
		return decimal.Zero, fmt.Errorf("%w %q: at most %d decimal places", ErrInvalidAmount, s, maxAmountPlaces)
	}
	return d, nil
}

// ParseCategory trims s and rejects it when nothing is left.
func ParseCategory(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyCategory
	}
	return s, nil
}

// Today returns the current local date formatted for the date field.
func Today() string {
	return time.Now().Format(DateLayout)
}
