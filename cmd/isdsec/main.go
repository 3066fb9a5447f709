// SPDX-License-Identifier: MIT

// Command isdsec estimates information-set-decoding security levels and
// searches code parameters reaching a target.
//
//	isdsec alpha --k 0.5 --w 0.11
//	isdsec level --n 1280 --r 640 --w 141 --variant quantum
//	isdsec find  --target 128 --db isdsec.db
//	isdsec gap   --target 128 --gap 128
//	isdsec sweep --from 500 --to 5000 --step 500 --out sweep.html
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"

	"github.com/katalvlaran/isdsec/gvbound"
	"github.com/katalvlaran/isdsec/isd"
	"github.com/katalvlaran/isdsec/search"
	"github.com/katalvlaran/isdsec/store"
	"github.com/katalvlaran/isdsec/sweep"
)

var (
	variantFlag = cli.StringFlag{Name: "variant", Value: "classical", Usage: "decoding model: classical|quantum (sweep also accepts both)"}
	tolFlag     = cli.Float64Flag{Name: "tol", Value: isd.DefaultTolerance, Usage: "optimizer tolerance"}
	maxIterFlag = cli.IntFlag{Name: "maxiter", Value: isd.DefaultMaxIterations, Usage: "optimizer iteration cap per inner solve"}
	methodFlag  = cli.StringFlag{Name: "method", Value: "auto", Usage: "inner solver: auto|nelder-mead|bfgs"}
	verboseFlag = cli.BoolFlag{Name: "verbose", Usage: "debug logging on stderr"}
	strictFlag  = cli.BoolFlag{Name: "strict", Usage: "fail on non-converged estimates"}
	probeFlag   = cli.IntFlag{Name: "probe", Usage: "re-check the predicate at n+1..n+k"}
	dbFlag      = cli.StringFlag{Name: "db", Usage: "SQLite file memoising evaluations and logging results"}
	targetFlag  = cli.Float64Flag{Name: "target", Value: 128, Usage: "target security level in bits"}
	gapFlag     = cli.Float64Flag{Name: "gap", Value: 128, Usage: "lossiness gap in bits"}

	solverFlags = []cli.Flag{variantFlag, tolFlag, maxIterFlag, methodFlag, verboseFlag}
	searchFlags = append([]cli.Flag{strictFlag, probeFlag, dbFlag}, solverFlags...)
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "isdsec:", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "isdsec"
	app.Usage = "information-set decoding security estimates"
	app.Version = "0.1.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Commands = []cli.Command{
		{
			Name:   "alpha",
			Usage:  "complexity exponent at normalized (K, W)",
			Flags:  append([]cli.Flag{cli.Float64Flag{Name: "k", Value: 0.5, Usage: "rate k/n"}, cli.Float64Flag{Name: "w", Value: 0.11, Usage: "relative weight w/n"}}, solverFlags...),
			Action: runAlpha,
		},
		{
			Name:   "level",
			Usage:  "security level in bits of (n, r, w)",
			Flags:  append([]cli.Flag{cli.IntFlag{Name: "n", Usage: "code length"}, cli.IntFlag{Name: "r", Usage: "redundancy"}, cli.IntFlag{Name: "w", Usage: "error weight"}}, solverFlags...),
			Action: runLevel,
		},
		{
			Name:   "find",
			Usage:  "shortest full-decoding parameters reaching --target",
			Flags:  append([]cli.Flag{targetFlag}, searchFlags...),
			Action: func(c *cli.Context) error { return runSearch(c, search.FullDecoding) },
		},
		{
			Name:   "gap",
			Usage:  "shortest parameters reaching --target with a lossiness gap of --gap",
			Flags:  append([]cli.Flag{targetFlag, gapFlag}, searchFlags...),
			Action: func(c *cli.Context) error { return runSearch(c, search.Gap) },
		},
		{
			Name:  "sweep",
			Usage: "tabulate security level over a length range",
			Flags: append([]cli.Flag{
				cli.IntFlag{Name: "from", Value: 500, Usage: "first length"},
				cli.IntFlag{Name: "to", Value: 5000, Usage: "last length"},
				cli.IntFlag{Name: "step", Value: 500, Usage: "length step"},
				cli.StringFlag{Name: "mode", Value: "full", Usage: "weight rule: full|gap"},
				gapFlag,
				cli.IntFlag{Name: "workers", Value: sweep.DefaultWorkers, Usage: "parallel lengths"},
				cli.StringFlag{Name: "out", Usage: "write an HTML chart to this file"},
			}, searchFlags...),
			Action: runSweep,
		},
	}

	return app
}

// setupLogging installs a terminal handler on the root logger.
func setupLogging(c *cli.Context) {
	lvl := log.LvlWarn
	if c.Bool("verbose") {
		lvl = log.LvlDebug
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(c.App.ErrWriter, log.TerminalFormat(false))))
}

func solverOptions(c *cli.Context) (isd.Options, error) {
	o := isd.DefaultOptions()
	m, err := isd.ParseSolver(c.String("method"))
	if err != nil {
		return o, err
	}
	o.Method = m
	o.Tolerance = c.Float64("tol")
	o.MaxIterations = c.Int("maxiter")
	o.Verbose = c.Bool("verbose")
	return o, nil
}

func parseVariants(s string) ([]isd.Variant, error) {
	if strings.EqualFold(s, "both") {
		return []isd.Variant{isd.Classical, isd.Quantum}, nil
	}
	v, err := isd.ParseVariant(s)
	if err != nil {
		return nil, err
	}
	return []isd.Variant{v}, nil
}

func runAlpha(c *cli.Context) error {
	setupLogging(c)
	v, err := isd.ParseVariant(c.String("variant"))
	if err != nil {
		return err
	}
	so, err := solverOptions(c)
	if err != nil {
		return err
	}
	est, err := isd.Alpha(v, c.Float64("k"), c.Float64("w"), so)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "variant=%s alpha=%.6f status=%q x=%v outer=%d\n",
		est.Variant, est.Alpha, est.Status, est.X, est.Outer)
	if len(est.Infeasible) > 0 {
		fmt.Fprintf(c.App.Writer, "initial guess violated constraints %v\n", est.Infeasible)
	}

	return nil
}

func runLevel(c *cli.Context) error {
	setupLogging(c)
	v, err := isd.ParseVariant(c.String("variant"))
	if err != nil {
		return err
	}
	so, err := solverOptions(c)
	if err != nil {
		return err
	}
	lvl, err := isd.SecurityLevel(c.Int("n"), c.Int("r"), c.Int("w"), v, so)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "n=%d r=%d w=%d variant=%s bits=%.2f alpha=%.6f status=%q\n",
		lvl.N, lvl.R, lvl.W, v, lvl.Bits, lvl.Estimate.Alpha, lvl.Estimate.Status)

	return nil
}

// searchOptions maps the shared search flags; the returned store, if any,
// must be closed by the caller.
func searchOptions(c *cli.Context) ([]search.Option, *store.Store, error) {
	so, err := solverOptions(c)
	if err != nil {
		return nil, nil, err
	}
	opts := []search.Option{search.WithSolver(so)}
	if c.Bool("strict") {
		opts = append(opts, search.WithStrict())
	}
	if k := c.Int("probe"); k > 0 {
		opts = append(opts, search.WithMonotoneProbe(k))
	}
	if path := c.String("db"); path != "" {
		st, err := store.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return append(opts, search.WithMemo(st)), st, nil
	}

	return opts, nil, nil
}

func runSearch(c *cli.Context, mode search.Mode) error {
	setupLogging(c)
	v, err := isd.ParseVariant(c.String("variant"))
	if err != nil {
		return err
	}
	opts, st, err := searchOptions(c)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}
	s, err := search.NewSession(append(opts, search.WithVariant(v))...)
	if err != nil {
		return err
	}

	q := search.Query{Mode: mode, Target: c.Float64("target"), Gap: c.Float64("gap")}
	p, err := s.Find(q)
	if err != nil {
		return err
	}
	bits, err := s.Level(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s variant=%s bits=%.2f\n", p, v, bits)
	if mode == search.Gap {
		right, err := gvbound.RightSpaceBits(p.N, p.W)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "left=%.2f right=%.2f difference=%.2f bits\n",
			gvbound.LeftSpaceBits(p.R), right, gvbound.LeftSpaceBits(p.R)-right)
	}

	if st != nil {
		rec, err := st.SaveResult(store.Record{
			Session: s.ID(), Mode: mode, Variant: v, Target: q.Target, Gap: q.Gap, Params: p,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "recorded %s\n", rec.ID)
	}
	stats := s.Stats()
	log.Info("Search finished", "session", s.ID(), "evaluations", stats.Evaluations, "cache", stats.CacheHits, "memo", stats.MemoHits)

	return nil
}

func runSweep(c *cli.Context) error {
	setupLogging(c)
	variants, err := parseVariants(c.String("variant"))
	if err != nil {
		return err
	}
	mode, err := search.ParseMode(c.String("mode"))
	if err != nil {
		return err
	}
	lengths, err := sweep.Lengths(c.Int("from"), c.Int("to"), c.Int("step"))
	if err != nil {
		return err
	}
	opts, st, err := searchOptions(c)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	pts, err := sweep.Run(context.Background(), sweep.Config{
		Lengths:  lengths,
		Mode:     mode,
		Gap:      c.Float64("gap"),
		Variants: variants,
		Workers:  c.Int("workers"),
		Search:   opts,
	})
	if err != nil {
		return err
	}
	for _, pt := range pts {
		fmt.Fprintf(c.App.Writer, "%s gap=%.2f", pt.Params, pt.GapBits)
		for _, l := range pt.Levels {
			fmt.Fprintf(c.App.Writer, " %s=%.2f", l.Variant, l.Bits)
		}
		fmt.Fprintln(c.App.Writer)
	}

	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err = sweep.RenderHTML(f, "ISD security vs. code length", pts); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	return nil
}
