package sorter

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"

	"github.com/gertd/go-pluralize"
	"github.com/pkg/errors"
	"github.com/zond/minheap"
	"github.com/zond/minheap/heap"
	"github.com/zond/minheap/records"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Input   records.Format
	Output  records.Format
	Numeric bool
	// LogFile, if set, receives the log output with size based rotation.
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	Files         []string
}

func DefaultConfig() Config {
	return Config{
		Input:         records.Words,
		Output:        records.Lines,
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
	}
}

func (c Config) Validate() error {
	if err := records.ValidInput(c.Input); err != nil {
		return errors.Wrap(err, "input")
	}
	if err := records.ValidOutput(c.Output); err != nil {
		return errors.Wrap(err, "output")
	}
	return nil
}

// LogWriter returns where log output should go, and a func to close it.
func (c Config) LogWriter(fallback io.Writer) (io.Writer, func() error) {
	if c.LogFile == "" {
		return fallback, func() error { return nil }
	}
	l := &lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
	}
	return l, l.Close
}

var plural = pluralize.NewClient()

// Run reads records from the configured files, or from stdin if there are none,
// heapsorts them and writes them to out.
func Run(ctx context.Context, c Config, stdin io.Reader, out io.Writer) error {
	if err := c.Validate(); err != nil {
		return minheap.WithStack(err)
	}
	all := []records.Record{}
	read := func(name string, r io.Reader) error {
		recs, err := records.Read(r, c.Input, c.Numeric)
		if err != nil {
			return errors.Wrapf(err, "reading %s", name)
		}
		all = append(all, recs...)
		return nil
	}
	if len(c.Files) == 0 {
		if err := read("stdin", stdin); err != nil {
			return err
		}
	}
	for _, name := range c.Files {
		if err := ctx.Err(); err != nil {
			return minheap.WithStack(err)
		}
		b, err := os.ReadFile(name)
		if err != nil {
			return minheap.WithStack(err)
		}
		if err := read(name, bytes.NewReader(b)); err != nil {
			return err
		}
	}
	sorted := heap.Sort(all, records.Less(c.Numeric))
	log.Printf("sorted %s", plural.Pluralize("record", len(sorted), true))
	return records.Write(out, sorted, c.Output, c.Numeric)
}
