// heapsort sorts whitespace separated words, lines, or a JSON array using a
// binary min-heap.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zond/minheap"
	"github.com/zond/minheap/records"
	"github.com/zond/minheap/sorter"
	"golang.org/x/term"
)

func main() {
	config := sorter.DefaultConfig()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		config.Output = records.Table
	}

	input := flag.String("in", string(config.Input), "Input format: words, lines or json.")
	output := flag.String("out", string(config.Output), "Output format: lines, json or table.")
	flag.BoolVar(&config.Numeric, "numeric", config.Numeric, "Order records as numbers instead of text.")
	flag.StringVar(&config.LogFile, "log", config.LogFile, "Rotated log file to use instead of stderr.")
	verbose := flag.Bool("v", false, "Print stack traces of errors.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [files...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Reads stdin when no files are given.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	config.Input = records.Format(*input)
	config.Output = records.Format(*output)
	config.Files = flag.Args()

	w, closeLog := config.LogWriter(os.Stderr)
	log.SetOutput(w)
	defer closeLog()

	if err := sorter.Run(context.Background(), config, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if *verbose {
			fmt.Fprint(os.Stderr, minheap.StackTrace(err))
		}
		closeLog()
		os.Exit(1)
	}
}
