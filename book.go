package risknav

import (
	"fmt"
	"iter"
	"sort"
)

// Book holds every position the upstream engine exported, across all
// publication dates, together with the policy-limit table. It is the
// read-only source every snapshot is computed from.
type Book struct {
	positions []Position
	policies  []Policy
}

// NewBook creates a Book from positions and policies. Positions are kept
// sorted by date so per-date scans stop early.
func NewBook(positions []Position, policies []Policy) *Book {
	sorted := make([]Position, len(positions))
	copy(sorted, positions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	return &Book{positions: sorted, policies: policies}
}

// Positions returns an iterator over all positions, oldest date first.
func (b *Book) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, p := range b.positions {
			if !yield(p) {
				return
			}
		}
	}
}

// Len returns the number of position rows in the book.
func (b *Book) Len() int { return len(b.positions) }

// Dates returns the distinct publication dates in the book, oldest first.
func (b *Book) Dates() []Date {
	var dates []Date
	for _, p := range b.positions {
		if len(dates) == 0 || dates[len(dates)-1] != p.Date {
			dates = append(dates, p.Date)
		}
	}
	return dates
}

// LastDate returns the most recent publication date, or the zero Date for
// an empty book.
func (b *Book) LastDate() Date {
	if len(b.positions) == 0 {
		return Date{}
	}
	return b.positions[len(b.positions)-1].Date
}

// On returns the positions published on the given date.
func (b *Book) On(on Date) []Position {
	var day []Position
	for _, p := range b.positions {
		if p.Date.After(on) {
			break
		}
		if p.Date == on {
			day = append(day, p)
		}
	}
	return day
}

// Policies returns the full policy-limit table.
func (b *Book) Policies() []Policy { return b.policies }

// AssetMixPolicies returns the per-class asset-mix rows, in table order.
func (b *Book) AssetMixPolicies() []Policy {
	var mix []Policy
	for _, p := range b.policies {
		if p.Kind == AssetMix {
			mix = append(mix, p)
		}
	}
	return mix
}

// Policy returns the policy row for the given class name.
func (b *Book) Policy(class string) (Policy, bool) {
	for _, p := range b.policies {
		if p.Class == class {
			return p, true
		}
	}
	return Policy{}, false
}

// Append adds positions to the book, keeping the date order.
func (b *Book) Append(positions ...Position) {
	b.positions = append(b.positions, positions...)
	sort.SliceStable(b.positions, func(i, j int) bool { return b.positions[i].Date.Before(b.positions[j].Date) })
}

// Validate checks the book for conditions the dashboard cannot display:
// it must contain at least one date and the policy table must carry the
// asset-mix rows the comparison views join against.
func (b *Book) Validate() error {
	if len(b.positions) == 0 {
		return fmt.Errorf("book has no positions")
	}
	if len(b.AssetMixPolicies()) == 0 {
		return fmt.Errorf("policy table has no asset-mix rows")
	}
	return nil
}
