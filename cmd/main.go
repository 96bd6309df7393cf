// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"shamai-scan/internal/config"
	"shamai-scan/internal/core"
	"shamai-scan/internal/formatters"
	_ "shamai-scan/internal/formatters/csv"
	_ "shamai-scan/internal/formatters/json"
	_ "shamai-scan/internal/formatters/text"
	"shamai-scan/internal/parallel"
	"shamai-scan/internal/preprocessors"
	"shamai-scan/internal/sections"
	"shamai-scan/internal/version"

	"golang.org/x/term"
)

// configFlags holds command line flag values.
type configFlags struct {
	configFile  string
	profile     string
	format      string
	term        string
	workers     int
	recursive   bool
	verbose     bool
	noColor     bool
	listFormats bool
	showVersion bool
}

func main() {
	os.Exit(run())
}

func run() int {
	var flags configFlags
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file")
	flag.StringVar(&flags.profile, "profile", "", "Named profile from the configuration file")
	flag.StringVar(&flags.format, "format", "", "Output format: text, json, csv")
	flag.StringVar(&flags.term, "term", "", "Search term to resolve a value for (e.g. \"מקדם דחייה\")")
	flag.IntVar(&flags.workers, "workers", 0, "Worker count for batch scanning (0 = one per CPU)")
	flag.BoolVar(&flags.recursive, "recursive", false, "Recurse into directories")
	flag.BoolVar(&flags.verbose, "verbose", false, "Include per-value detail in output")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.listFormats, "list-formats", false, "List available output formats and exit")
	flag.BoolVar(&flags.showVersion, "version", false, "Print version and exit")
	flag.Usage = usage
	flag.Parse()

	if flags.showVersion {
		fmt.Println(version.Info())
		return 0
	}
	if flags.listFormats {
		names := formatters.List()
		sort.Strings(names)
		for _, name := range names {
			f, _ := formatters.Get(name)
			fmt.Printf("%-8s %s\n", name, f.Description())
		}
		return 0
	}

	cfg := loadConfiguration(flags.configFile)
	opts, err := mergeOptions(cfg, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if flag.NArg() == 0 {
		usage()
		return 2
	}

	chain := preprocessors.DefaultChain()
	files, err := collectFiles(flag.Args(), opts.recursive, chain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no processable files found (.txt, .md, .pdf)")
		return 2
	}

	locator := sections.NewLocator(cfg.ExtraPhrases(), cfg.ExtraFallbacks())
	engine := core.New(locator)
	pool := parallel.NewPool(engine, chain, opts.workers)

	jobs := make([]parallel.Job, len(files))
	for i, path := range files {
		jobs[i] = parallel.Job{ID: documentID(path), Path: path}
	}

	var progress parallel.ProgressFunc
	if opts.verbose && isTerminal(os.Stderr) {
		progress = func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rprocessed %d/%d", done, total)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	poolResults := pool.Process(jobs, opts.term, progress)

	var results []formatters.Result
	failed := 0
	for _, r := range poolResults {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", r.Job.Path, r.Err)
			continue
		}
		results = append(results, formatters.Result{
			Extraction:            r.Extraction,
			TermValue:             r.TermValue,
			TermValueFromFallback: r.TermValueFromFallback,
		})
	}

	output, err := formatters.Export(opts.format, results, formatters.FormatterOptions{
		Verbose: opts.verbose,
		NoColor: opts.noColor || !isTerminal(os.Stdout),
		Term:    opts.term,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	fmt.Println(output)

	// Missing sections and unresolved terms are neutral outcomes, not
	// errors. Only a batch where nothing could be read at all fails.
	if failed == len(poolResults) {
		return 1
	}
	return 0
}

// scanOptions is the effective configuration after merging defaults,
// profile, and explicit flags, in that order of increasing precedence.
type scanOptions struct {
	format    string
	term      string
	workers   int
	recursive bool
	verbose   bool
	noColor   bool
}

func mergeOptions(cfg *config.Config, flags configFlags) (scanOptions, error) {
	opts := scanOptions{
		format:    cfg.Defaults.Format,
		term:      cfg.Defaults.Term,
		workers:   cfg.Defaults.Workers,
		recursive: cfg.Defaults.Recursive,
		verbose:   cfg.Defaults.Verbose,
		noColor:   cfg.Defaults.NoColor,
	}

	if flags.profile != "" {
		profile, ok := cfg.GetProfile(flags.profile)
		if !ok {
			return opts, fmt.Errorf("unknown profile: %q", flags.profile)
		}
		if profile.Format != "" {
			opts.format = profile.Format
		}
		if profile.Term != "" {
			opts.term = profile.Term
		}
		if profile.Workers > 0 {
			opts.workers = profile.Workers
		}
		opts.recursive = opts.recursive || profile.Recursive
		opts.verbose = opts.verbose || profile.Verbose
		opts.noColor = opts.noColor || profile.NoColor
	}

	// Explicitly set flags win over config and profile.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			opts.format = flags.format
		case "term":
			opts.term = flags.term
		case "workers":
			opts.workers = flags.workers
		case "recursive":
			opts.recursive = flags.recursive
		case "verbose":
			opts.verbose = flags.verbose
		case "no-color":
			opts.noColor = flags.noColor
		}
	})

	if opts.format == "" {
		opts.format = "text"
	}
	return opts, nil
}

func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default configuration")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// collectFiles expands the given paths into processable files.
func collectFiles(paths []string, recursive bool, chain *preprocessors.Chain) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if chain.CanProcess(path) {
				files = append(files, path)
			}
			continue
		}
		if !recursive {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				p := filepath.Join(path, e.Name())
				if !e.IsDir() && chain.CanProcess(p) {
					files = append(files, p)
				}
			}
			continue
		}
		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && chain.CanProcess(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// documentID derives the opaque document identifier from a file path. The
// engine never interprets it.
func documentID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [options] <file|dir>...

Extracts structured sections and numeric values from Hebrew decisive
appraiser decisions (.txt, .md, .pdf).

Options:
`, filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}
