// Package records reads sortable records from text or JSON and writes them back
// out as lines, JSON, or an aligned table.
package records

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/buildkite/shellwords"
	"github.com/pkg/errors"
	"github.com/rodaine/table"
	"github.com/zond/minheap"

	goccy "github.com/goccy/go-json"
)

type Format string

const (
	Words Format = "words"
	Lines Format = "lines"
	JSON  Format = "json"
	Table Format = "table"
)

var (
	inputFormats  = []Format{Words, Lines, JSON}
	outputFormats = []Format{Lines, JSON, Table}
)

func validate(f Format, valid []Format) error {
	for _, v := range valid {
		if f == v {
			return nil
		}
	}
	return errors.Errorf("unknown format %q, want one of %v", f, valid)
}

func ValidInput(f Format) error  { return validate(f, inputFormats) }
func ValidOutput(f Format) error { return validate(f, outputFormats) }

// Record is one sortable item. Number is only meaningful when the records were
// read with numeric set.
type Record struct {
	Text   string
	Number float64
}

// Less returns the ordering used to sort records: by Number when numeric is set,
// otherwise by Text.
func Less(numeric bool) func(a, b Record) bool {
	if numeric {
		return func(a, b Record) bool { return a.Number < b.Number }
	}
	return func(a, b Record) bool { return a.Text < b.Text }
}

// Read parses every record in r. With numeric set, every record must parse as a
// floating point number.
func Read(r io.Reader, f Format, numeric bool) ([]Record, error) {
	var texts []string
	var err error
	switch f {
	case Words, Lines:
		texts, err = readText(r, f)
	case JSON:
		texts, err = readJSON(r)
	default:
		err = ValidInput(f)
	}
	if err != nil {
		return nil, minheap.WithStack(err)
	}
	result := make([]Record, len(texts))
	for i, text := range texts {
		result[i].Text = text
		if numeric {
			if result[i].Number, err = strconv.ParseFloat(text, 64); err != nil {
				return nil, errors.Wrapf(err, "record %d (%q) is not a number", i+1, text)
			}
			if math.IsNaN(result[i].Number) {
				return nil, errors.Errorf("record %d is NaN, which has no order", i+1)
			}
		}
	}
	return result, nil
}

func readText(r io.Reader, f Format) ([]string, error) {
	result := []string{}
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if f == Lines {
			result = append(result, line)
			continue
		}
		parts, err := shellwords.SplitPosix(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		result = append(result, parts...)
	}
	if err := scanner.Err(); err != nil {
		return nil, minheap.WithStack(err)
	}
	return result, nil
}

func readJSON(r io.Reader) ([]string, error) {
	dec := goccy.NewDecoder(r)
	dec.UseNumber()
	items := []any{}
	if err := dec.Decode(&items); err != nil {
		return nil, minheap.WithStack(err)
	}
	result := make([]string, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			result[i] = v
		case goccy.Number:
			result[i] = v.String()
		default:
			return nil, errors.Errorf("element %d is a %T, want a string or number", i, item)
		}
	}
	return result, nil
}

// Write renders records to w in the given format. Numeric records are written as
// JSON numbers, the rest as JSON strings.
func Write(w io.Writer, records []Record, f Format, numeric bool) error {
	switch f {
	case Lines:
		for _, r := range records {
			if _, err := fmt.Fprintln(w, r.Text); err != nil {
				return minheap.WithStack(err)
			}
		}
	case JSON:
		items := make([]any, len(records))
		for i, r := range records {
			if numeric {
				items[i] = r.Number
			} else {
				items[i] = r.Text
			}
		}
		if err := goccy.NewEncoder(w).Encode(items); err != nil {
			return minheap.WithStack(err)
		}
	case Table:
		t := table.New("Rank", "Value").WithWriter(w)
		for i, r := range records {
			t.AddRow(i+1, r.Text)
		}
		t.Print()
	default:
		return ValidOutput(f)
	}
	return nil
}
