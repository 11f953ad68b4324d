package recur

import (
	"slices"
	"time"
)

// Dataset is the working set of one posting run: the parsed config, the
// files it came from and goes to, and the date to post up to.
type Dataset struct {
	*Config

	LedgerFile string
	ConfigFile string
	Target     time.Time
}

// NewDataset reads configFile. A zero target means today.
func NewDataset(ledgerFile string, target time.Time, configFile string) (*Dataset, error) {
	conf, err := ParseConfigFile(configFile)
	if err != nil {
		return nil, err
	}

	if target.IsZero() {
		target = Today()
	}

	return &Dataset{
		Config:     conf,
		LedgerFile: ledgerFile,
		ConfigFile: configFile,
		Target:     target,
	}, nil
}

// Overdue returns the templates that are due on or before the target date.
func (d *Dataset) Overdue() []*Template {
	var due []*Template
	for _, t := range d.Templates {
		if !t.Due.After(d.Target) {
			due = append(due, t)
		}
	}
	return due
}

// GenerateAll returns the transactions of every template up to the target
// date, sorted as text. Entries start with their date, so the order is
// chronological only when every header date is written in DateFormat; a first
// entry keeps the header's original text, and 2020-12-01 sorts before
// 2020/01/01. The dataset itself is not advanced.
func (d *Dataset) GenerateAll() ([]string, error) {
	entries, _, err := d.generate()
	return entries, err
}

// Post generates the transactions, rewrites the config with the advanced due
// dates and appends the transactions to the ledger. Nothing is written when
// there is nothing to post.
//
// The two files are not updated atomically: the config is replaced first,
// and a failure while appending to the ledger leaves the config advanced. A
// ledger created by this call is removed again if the config cannot be
// written.
func (d *Dataset) Post() ([]string, error) {
	entries, next, err := d.generate()
	if err != nil || len(entries) == 0 {
		return nil, err
	}

	lf, created, err := openLedger(d.LedgerFile)
	if err != nil {
		return nil, err
	}

	if err := writeConfig(d.ConfigFile, next); err != nil {
		discardLedger(lf, created)
		return nil, err
	}

	if err := appendEntries(lf, entries); err != nil {
		return nil, err
	}

	d.Config = next
	return entries, nil
}

func (d *Dataset) generate() ([]string, *Config, error) {
	next := d.Config.Clone()

	var entries []string
	for _, t := range next.Templates {
		e, err := t.Expand(d.Target)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, e...)
	}
	slices.Sort(entries)

	return entries, next, nil
}
