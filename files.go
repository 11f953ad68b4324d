package recur

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

const defaultPerm fs.FileMode = 0o644

// openLedger opens the ledger for appending, creating it if needed. created
// reports whether the file did not exist before.
func openLedger(filename string) (lf *os.File, created bool, err error) {
	if filename == "" {
		return nil, false, fmt.Errorf("%w: no ledger file to post to", ErrIO)
	}
	lf, err = os.OpenFile(filename, os.O_APPEND|os.O_WRONLY, defaultPerm)
	if errors.Is(err, fs.ErrNotExist) {
		created = true
		lf, err = os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_EXCL|os.O_WRONLY, defaultPerm)
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return lf, created, nil
}

// discardLedger closes a ledger that will not be written and removes it if
// openLedger created it.
func discardLedger(lf *os.File, created bool) {
	lf.Close()
	if created {
		os.Remove(lf.Name())
	}
}

// appendEntries writes the entries to lf and closes it.
func appendEntries(lf *os.File, entries []string) error {
	if _, err := lf.WriteString(strings.Join(entries, "")); err != nil {
		lf.Close()
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := lf.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// writeConfig replaces the config file through a temporary file and a rename,
// so a failed write leaves the previous config in place. A symlinked config is
// replaced at its target, and the file keeps its permission bits.
func writeConfig(filename string, conf *Config) error {
	target, err := filepath.EvalSymlinks(filename)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		target = filename
	case err != nil:
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err := renameio.WriteFile(target, []byte(conf.String()), defaultPerm, renameio.WithExistingPermissions()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIO, target, err)
	}
	return nil
}
