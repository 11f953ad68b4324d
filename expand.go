package recur

import (
	"fmt"
	"time"
)

// Expand returns one transaction for every due date of t up to and including
// target, and moves t to its next due date past target. Usually that is zero
// or one transaction, more if runs were skipped. Each transaction starts with
// a newline so that it is separated by an empty line in the ledger.
func (t *Template) Expand(target time.Time) ([]string, error) {
	var entries []string
	if t.Due.After(target) {
		return entries, nil
	}

	period, err := ParsePeriod(t.Period)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", t.DueText, err)
	}

	for !t.Due.After(target) {
		entries = append(entries, "\n"+t.TransactionText())

		next, err := period.AddTo(t.Due)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", t.DueText, err)
		}
		if !next.After(t.Due) {
			return nil, fmt.Errorf("template %s: %w: %s", t.DueText, ErrNonAdvancingPeriod, t.Period)
		}
		t.Due = next
		t.DueText = FormatDate(next)
	}

	return entries, nil
}
