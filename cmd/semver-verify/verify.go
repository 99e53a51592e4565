package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ravelsoft/semver"
	"go.uber.org/multierr"
)

var extraHelp string = "\n" +
	"  Validate range of versions given in argument list.\n" +
	"\n\n"

func main() {
	flag.CommandLine.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [VERSIONS]...\n", os.Args[0])
		fmt.Fprint(flag.CommandLine.Output(), extraHelp)
		flag.PrintDefaults()
	}

	flag.Parse()
	versions := flag.Args()

	var errs error
	for _, version := range versions {
		if _, err := semver.Parse(version); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", version, err))
		}
	}
	if errs != nil {
		for _, err := range multierr.Errors(errs) {
			fmt.Println("Invalid version:", err)
		}
		os.Exit(1)
	}
	os.Exit(0)
}
