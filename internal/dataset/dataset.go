// Package dataset reads and writes the budget CSV file and derives the
// category list from its contents.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultFile is the data file used when nothing else is configured.
const DefaultFile = "budget.csv"

// Header is the first row written to a freshly created data file.
var Header = []string{"timestamp", "amount", "category"}

// Dataset is the in-memory copy of a CSV file: row 0 is the header row,
// the remaining rows are budget entries. Rows are not required to share
// the same number of fields.
type Dataset [][]string

// Entries returns the rows below the header.
func (d Dataset) Entries() [][]string {
	if len(d) < 2 {
		return nil
	}
	return d[1:]
}

// SaveOption tweaks the behavior of Save.
type SaveOption func(*saveOptions)

type saveOptions struct {
	overwrite bool
}

// NoOverwrite makes Save leave an existing file untouched.
func NoOverwrite() SaveOption {
	return func(o *saveOptions) { o.overwrite = false }
}

// Overwrite sets whether Save may replace an existing file.
func Overwrite(allow bool) SaveOption {
	return func(o *saveOptions) { o.overwrite = allow }
}

// Load reads every row of the CSV file at path. A missing file is first
// created with only the Header row.
func Load(path string) (Dataset, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Info("data file not found, creating it", "path", path)
		if err := Save(path, Dataset{Header}); err != nil {
			return nil, fmt.Errorf("initializing data file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking data file: %w", err)
	}

	f, err := os.Open(path) //nolint:gosec // path is user supplied on purpose
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := Read(f)
	if err != nil {
		return nil, err
	}

	log.Info("loaded csv", "rows", len(rows), "path", path)
	return rows, nil
}

// Read parses CSV rows from r. A blank line becomes an empty row, so a
// file survives Read followed by Write unchanged.
func Read(r io.Reader) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = ','
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows := Dataset{}
	// nextLine is the line number right after the previous record, and
	// end is the byte offset where that record stopped.
	nextLine := 1
	var end int64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}

		start, _ := cr.FieldPos(0)
		for ; nextLine < start; nextLine++ {
			rows = append(rows, []string{})
		}
		rows = append(rows, rec)

		end = cr.InputOffset()
		nextLine = 1 + bytes.Count(data[:end], []byte{'\n'})
	}

	// Blank lines after the last record.
	rows = append(rows, blankRows(bytes.Count(data[end:], []byte{'\n'}))...)
	return rows, nil
}

func blankRows(n int) Dataset {
	out := make(Dataset, n)
	for i := range out {
		out[i] = []string{}
	}
	return out
}

// Save writes rows to path, replacing the whole file. When overwriting is
// disabled and the file already exists, Save logs the refusal and returns
// nil without writing anything.
func Save(path string, rows Dataset, opts ...SaveOption) error {
	o := saveOptions{overwrite: true}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.overwrite {
		if _, err := os.Stat(path); err == nil {
			abs, _ := filepath.Abs(path)
			log.Error("refusing to save csv: file exists and overwriting is disabled", "path", abs)
			return nil
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // user data file
	if err != nil {
		return fmt.Errorf("creating data file: %w", err)
	}

	if err := Write(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing data file: %w", err)
	}

	log.Debug("saved csv", "path", path, "rows", len(rows))
	return nil
}

// Write encodes rows as CSV lines terminated by CRLF.
func Write(w io.Writer, rows Dataset) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	for _, row := range rows {
		if len(row) == 1 && row[0] == "" {
			// csv.Writer would emit a bare line, which reads back as no row.
			cw.Flush()
			if _, err := io.WriteString(w, "\"\"\r\n"); err != nil {
				return fmt.Errorf("writing csv: %w", err)
			}
			continue
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// Append loads the file at path, adds row at the end and writes the whole
// dataset back. It returns the dataset as written.
func Append(path string, row []string) (Dataset, error) {
	d, err := Load(path)
	if err != nil {
		return nil, err
	}
	d = append(d, row)
	if err := Save(path, d); err != nil {
		return nil, err
	}
	return d, nil
}
