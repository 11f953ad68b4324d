package recur

import (
	"strings"
	"time"
)

// Template is a recurring transaction read from the config file. The first
// line starts with the next due date and the period, e.g.
//
//	2020/01/01 (1m) Rent
//	    Expenses:Rent    1200
//	    Assets:Checking
//
// Lines holds the text of the template with the date and period cut from the
// front of the first line. Every line keeps its own line terminator.
type Template struct {
	Due       time.Time
	DueText   string
	Separator string
	Period    string
	Lines     []string
}

// String renders the template as it is stored in the config file.
func (t *Template) String() string {
	var sb strings.Builder
	sb.WriteString(t.DueText)
	sb.WriteString(t.Separator)
	sb.WriteString("(")
	sb.WriteString(t.Period)
	sb.WriteString(")")
	for _, l := range t.Lines {
		sb.WriteString(l)
	}
	return sb.String()
}

// TransactionText renders the template as a ledger transaction dated at the
// current due date. The period is left out and so are whitespace-only lines.
func (t *Template) TransactionText() string {
	var sb strings.Builder
	sb.WriteString(t.DueText)
	if len(t.Lines) > 0 {
		sb.WriteString(t.Lines[0])
		for _, l := range t.Lines[1:] {
			if strings.TrimSpace(l) != "" {
				sb.WriteString(l)
			}
		}
	}
	return sb.String()
}

// Clone returns a copy that can be expanded without touching t.
func (t *Template) Clone() *Template {
	c := *t
	c.Lines = append([]string(nil), t.Lines...)
	return &c
}
