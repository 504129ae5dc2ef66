// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dramstat runs LiteDRAM benchmarks and summarizes their results.
//
// Usage:
//
//	dramstat -yaml benchmarks.yml [options]
//	dramstat -db file -load-run id [options]
//
// Dramstat loads named benchmark configurations from a YAML file,
// runs the benchmark command once per configuration and extracts the
// BIST counters from its output. It then prints a summary of the
// write and read bandwidth and efficiency of every configuration.
//
// Each YAML entry maps a benchmark name to its parameters:
//
//	test-sdr:
//	  sdram_module: MT48LC16M16
//	  sdram_data_width: 16
//	  bist_length: 4096
//	  bist_random: false
//
// The -names, -regex and -not-regex flags select a subset of the
// configurations. Instead of running the benchmarks, -outputs reads
// previously captured output from <dir>/<name>.txt.
//
// With -plot, dramstat also draws one horizontal bar chart per metric
// into -plot-output-dir. With -db, the results are saved as a new run
// that a later "dramstat -load-run" can summarize again.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/dramstat/dramstat/benchconf"
	"github.com/dramstat/dramstat/benchresult"
	"github.com/dramstat/dramstat/benchsummary"
	"github.com/dramstat/dramstat/plots"
	"github.com/dramstat/dramstat/runner"
	"github.com/dramstat/dramstat/sdram"
	"github.com/dramstat/dramstat/storage/db"
	_ "github.com/dramstat/dramstat/storage/db/sqlite3"
)

func main() {
	log.SetPrefix("dramstat: ")
	log.SetFlags(0)
	if err := dramstat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type options struct {
	yaml      string
	names     string
	regex     string
	notRegex  string
	cmd       string
	dir       string
	outputs   string
	sysClk    float64
	stats     bool
	html      string
	dbDriver  string
	dbSource  string
	loadRun   string
	plot      bool
	plotOpts  plots.Options
	format    string
	backend   string
	outputDir string
}

func dramstat(stdout, stderr io.Writer, args []string) error {
	var o options
	fs := flag.NewFlagSet("dramstat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: dramstat -yaml file [options]\n")
		fmt.Fprintf(fs.Output(), "       dramstat -db file -load-run id [options]\n")
		fmt.Fprintf(fs.Output(), "options:\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&o.yaml, "yaml", "", "load benchmark configurations from YAML `file`")
	fs.StringVar(&o.names, "names", "", "limit benchmarks to the given comma-separated `names`")
	fs.StringVar(&o.regex, "regex", "", "limit benchmarks to names matching `regexp`")
	fs.StringVar(&o.notRegex, "not-regex", "", "limit benchmarks to names not matching `regexp`")
	fs.StringVar(&o.cmd, "cmd", "python3 benchmark.py", "benchmark `command`; configuration flags are appended")
	fs.StringVar(&o.dir, "cmd-dir", "", "run the benchmark command in `dir`")
	fs.StringVar(&o.outputs, "outputs", "", "read benchmark output from `dir`/<name>.txt instead of running the benchmarks")
	fs.Float64Var(&o.sysClk, "sys-clk-freq", sdram.DefaultSysClkFreq, "system clock frequency of the benchmark SoC in `Hz`")
	fs.BoolVar(&o.stats, "stats", false, "print min, mean, geomean and max of each metric")
	fs.StringVar(&o.html, "html", "", "also write the summary as HTML to `file`")
	fs.StringVar(&o.dbDriver, "db-driver", "sqlite3", "database `driver`: sqlite3 or mysql")
	fs.StringVar(&o.dbSource, "db", "", "save results to the database at `dsn`")
	fs.StringVar(&o.loadRun, "load-run", "", "summarize the saved run `id` instead of running benchmarks")
	fs.BoolVar(&o.plot, "plot", false, "generate plots with the results summary")
	fs.StringVar(&o.format, "plot-format", "png", "plot file `format`: "+strings.Join(plots.Formats, ", "))
	fs.StringVar(&o.backend, "plot-backend", "gonum", "plotting `backend`: gonum or none")
	fs.BoolVar(&o.plotOpts.Transparent, "plot-transparent", false, "use a transparent background when saving plots")
	fs.StringVar(&o.outputDir, "plot-output-dir", "plots", "save plots in `dir`")
	fs.StringVar(&o.plotOpts.Theme, "plot-theme", "default", "plot color `theme`: default, dark, grayscale or a ColorBrewer palette")
	fs.IntVar(&o.plotOpts.DPI, "plot-dpi", 0, "resolution of raster plots in `dpi` (0 means the default)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	logger := log.New(stderr, "dramstat: ", 0)
	ctx := context.Background()

	var store *db.DB
	if o.dbSource != "" {
		var err error
		store, err = openDB(o.dbDriver, o.dbSource)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	var (
		summary *benchsummary.Summary
		names   []string
		err     error
	)
	switch {
	case o.loadRun != "":
		if store == nil {
			return errors.New("-load-run requires -db")
		}
		summary, err = loadRun(ctx, store, o.loadRun)
	case o.yaml != "":
		summary, names, err = runBenchmarks(ctx, stdout, logger, &o)
	default:
		fs.Usage()
		return errors.New("missing -yaml")
	}
	if err != nil {
		return err
	}

	if err := summary.WriteText(stdout); err != nil {
		return err
	}
	if o.stats {
		fmt.Fprintln(stdout)
		if err := summary.WriteStats(stdout); err != nil {
			return err
		}
	}
	if o.html != "" {
		if err := writeHTML(summary, o.html); err != nil {
			return err
		}
	}
	switch {
	case store == nil || o.loadRun != "":
	case len(summary.Results()) == 0:
		logger.Printf("no results to save")
	default:
		run, err := saveRun(ctx, store, o.sysClk, names, summary)
		if err != nil {
			return err
		}
		logger.Printf("saved results as run %s", run)
	}
	if o.plot {
		r, err := renderer(o.backend, o.plotOpts)
		if err != nil {
			return err
		}
		if err := summary.Plot(r, o.outputDir, o.format); err != nil {
			return err
		}
	}
	return nil
}

// runBenchmarks runs the configurations selected by o and returns
// their summary together with the name of each result.
func runBenchmarks(ctx context.Context, stdout io.Writer, logger *log.Logger, o *options) (*benchsummary.Summary, []string, error) {
	configs, err := benchconf.LoadFile(o.yaml)
	if err != nil {
		return nil, nil, err
	}
	var f benchconf.Filter
	if o.names != "" {
		f.Names = strings.Split(o.names, ",")
	}
	if o.regex != "" {
		if f.Regex, err = regexp.Compile(o.regex); err != nil {
			return nil, nil, fmt.Errorf("bad -regex: %w", err)
		}
	}
	if o.notRegex != "" {
		if f.NotRegex, err = regexp.Compile(o.notRegex); err != nil {
			return nil, nil, fmt.Errorf("bad -not-regex: %w", err)
		}
	}
	configs = f.Apply(configs)

	r := &runner.Runner{Command: strings.Fields(o.cmd), Dir: o.dir}
	summary := benchsummary.New()
	var names []string
	for _, c := range configs {
		args := c.Config.Args()
		fmt.Fprintf(stdout, "%s: %s\n", c.Name, strings.Join(args, " "))

		var output string
		if o.outputs != "" {
			data, err := os.ReadFile(filepath.Join(o.outputs, c.Name+".txt"))
			if err != nil {
				return nil, nil, err
			}
			output = string(data)
		} else {
			output, err = r.Run(ctx, args)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", c.Name, err)
			}
		}

		geom, err := sdram.Describe(c.Config, o.sysClk)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		res, err := benchresult.Parse(c.Config, output, geom)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		for _, a := range res.Anomalies() {
			logger.Printf("%s: %s", c.Name, a)
		}
		summary.Add(res)
		names = append(names, c.Name)
	}
	return summary, names, nil
}

func openDB(driver, dsn string) (*db.DB, error) {
	switch driver {
	case "sqlite3":
	case "mysql":
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("bad -db: %w", err)
		}
		if cfg.DBName == "" {
			return nil, errors.New("bad -db: no database name")
		}
		dsn = cfg.FormatDSN()
	default:
		return nil, fmt.Errorf("unknown -db-driver %q", driver)
	}
	return db.OpenSQL(driver, dsn)
}

func saveRun(ctx context.Context, store *db.DB, sysClk float64, names []string, s *benchsummary.Summary) (string, error) {
	run, err := store.NewRun(ctx, sysClk)
	if err != nil {
		return "", err
	}
	for i, r := range s.Results() {
		if err := run.InsertResult(ctx, names[i], r); err != nil {
			return "", fmt.Errorf("saving %s: %w", names[i], err)
		}
	}
	return run.ID, nil
}

func loadRun(ctx context.Context, store *db.DB, id string) (*benchsummary.Summary, error) {
	stored, err := store.ListResults(ctx, id)
	if err != nil {
		return nil, err
	}
	s := benchsummary.New()
	for _, st := range stored {
		s.Add(st.Result)
	}
	return s, nil
}

func writeHTML(s *benchsummary.Summary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.WriteHTML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderer(backend string, opts plots.Options) (benchsummary.Renderer, error) {
	switch backend {
	case "gonum":
		return plots.New(opts)
	case "none":
		return benchsummary.NoRenderer, nil
	}
	return nil, fmt.Errorf("unknown -plot-backend %q", backend)
}
