// Command mzip compresses files into MZIP artifacts.
//
// Usage:
//
//     mzip [-v] [-o dir] [file ...]
//
// With no file arguments, mzip reads COMPRESS and QUIT commands from
// standard input.
//
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chronos-tachyon/mzip"
)

type options struct {
	verbose bool
	outDir  string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	logger := log.New(stderr, "mzip: ", 0)

	fs := flag.NewFlagSet("mzip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.BoolVar(&opts.verbose, "v", false, "print the code table of each input")
	fs.StringVar(&opts.outDir, "o", "", "write artifacts to `dir` instead of next to each input")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() == 0 {
		return interact(opts, stdin, stdout, logger)
	}

	status := 0
	for _, name := range fs.Args() {
		if !compressAndReport(opts, name, stdout, logger) {
			status = 1
		}
	}
	return status
}

func interact(opts options, stdin io.Reader, stdout io.Writer, logger *log.Logger) int {
	sc := bufio.NewScanner(stdin)
	prompt := func(text string) (string, bool) {
		fmt.Fprint(stdout, text)
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

loop:
	for {
		fmt.Fprint(stdout, "COMMANDS:\n1. COMPRESS\n2. QUIT\n")
		line, ok := prompt("CMD: ")
		if !ok {
			break loop
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "QUIT", "Q":
			return 0
		case "COMPRESS":
			name, ok := prompt("FILE TO BE COMPRESSED: ")
			if !ok {
				break loop
			}
			compressAndReport(opts, name, stdout, logger)
		}
	}

	if err := sc.Err(); err != nil {
		logger.Printf("reading commands: %v", err)
		return 1
	}
	return 0
}

func compressAndReport(opts options, name string, stdout io.Writer, logger *log.Logger) bool {
	out, err := compressFile(opts, name, stdout)
	if err != nil {
		logger.Printf("could not compress %s: %v", name, err)
		return false
	}
	fmt.Fprintf(stdout, "Successfully compressed to: %s\n", out)
	return true
}

// compressFile reads name, compresses it, and writes the artifact.  It
// returns the artifact's file name.
func compressFile(opts options, name string, stdout io.Writer) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}

	if opts.verbose {
		tree, err := mzip.BuildTree(mzip.CountSymbols(data))
		if err != nil {
			return "", err
		}
		if _, err := mzip.AssignCodes(tree).Dump(stdout); err != nil {
			return "", err
		}
	}

	a, err := mzip.Compress(name, data)
	if err != nil {
		return "", err
	}

	out := mzip.OutputName(name)
	if opts.outDir != "" {
		out = filepath.Join(opts.outDir, filepath.Base(out))
	}

	raw, err := a.MarshalBinary()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(out, raw, 0o666); err != nil {
		return "", err
	}
	return out, nil
}
