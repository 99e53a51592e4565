package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ravelsoft/semver"
	"go.uber.org/multierr"
)

var extraHelp string = "\n" +
	"  Reads a list of versions from standard input and prints the ones\n" +
	"  that satisfy the range expression given as argument.\n" +
	"\n" +
	"  Expects versions to be separated with any number of unicode whitespaces but can\n" +
	"  be changed with a separate flag. See semver.org for version and range syntax.\n" +
	"\n\n"

func main() {
	flag.CommandLine.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [OPTION]... expression\n", os.Args[0])
		fmt.Fprint(flag.CommandLine.Output(), extraHelp)
		flag.PrintDefaults()
	}

	delim := flag.String("d", "", "delimiter used to separate input versions; defaults to 1+ of unicode whitespaces")
	origSep := flag.String("s", "\n", "versions delimiter used in output")
	noLn := flag.Bool("n", false, "do not output the trailing newline")
	invert := flag.Bool("v", false, "print versions that do NOT satisfy the expression")
	ignoreErr := flag.Bool("i", false, "skip versions that have invalid format")

	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(flag.CommandLine.Output(), "Exactly one argument expected: range expression")
		os.Exit(1)
	}

	predicate, err := semver.ParseRange(args[0])
	if err != nil {
		fmt.Printf("Invalid expression: '%s', %s\n", args[0], err)
		os.Exit(1)
	}

	sep, err := strconv.Unquote(`"` + *origSep + `"`)
	if err != nil {
		sep = *origSep
	}

	var scanner interface {
		Scan() bool
		Text() string
	}

	if *delim != "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Printf("error reading input: %v", err)
			os.Exit(1)
		}
		scanner = newSplitScanner(string(data), *delim)
	} else {
		bscan := bufio.NewScanner(os.Stdin)
		bscan.Split(bufio.ScanWords)
		scanner = bscan
	}

	var matched []string
	var errs error
	for scanner.Scan() {
		text := scanner.Text()
		v, err := semver.Parse(text)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", text, err))
			continue
		}
		if v.Satisfies(predicate) != *invert {
			matched = append(matched, v.String())
		}
	}

	if errs != nil && !*ignoreErr {
		for _, err := range multierr.Errors(errs) {
			fmt.Println("error parsing:", err)
		}
		os.Exit(1)
	}

	if len(matched) == 0 {
		os.Exit(0)
	}

	fmt.Print(matched[0])
	for _, v := range matched[1:] {
		fmt.Print(sep, v)
	}
	if !*noLn {
		fmt.Println()
	}

	os.Exit(0)
}

type splitScanner struct {
	pos int
	str []string
}

func newSplitScanner(s, sep string) *splitScanner {
	return &splitScanner{
		pos: -1,
		str: strings.Split(s, sep),
	}
}

func (s *splitScanner) Scan() bool {
	s.pos++
	return s.pos < len(s.str)
}

func (s *splitScanner) Text() string {
	return strings.TrimSpace(s.str[s.pos])
}
