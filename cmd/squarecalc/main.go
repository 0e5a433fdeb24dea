package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/squarecalc"
)

var logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

func main() {
	var (
		inname, lvl string
		with        [][2]string
		echo        bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return errors.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.StringVar(&lvl, "log.level", "info", "only log messages with the given severity or above: debug, info, warn, error")
	flag.Parse()

	lopt, err := levelOption(lvl)
	if err != nil {
		level.Error(logger).Log("msg", "invalid flag", "err", err)
		os.Exit(2)
	}
	logger = level.NewFilter(logger, lopt)

	vars, err := bind(with)
	if err != nil {
		level.Error(logger).Log("msg", "failed to set variables", "err", err)
		os.Exit(2)
	}

	var ins []string
	if inname != "" || flag.NArg() == 0 {
		lines, err := readLines(inname)
		if err != nil {
			level.Error(logger).Log("msg", "failed to read input", "err", err)
			os.Exit(1)
		}
		ins = append(ins, lines...)
	}
	ins = append(ins, flag.Args()...)

	if !run(os.Stdout, ins, vars, echo) {
		os.Exit(1)
	}
}

// run evaluates each input and writes one line of output for it. It reports
// whether every input evaluated successfully.
func run(w io.Writer, ins []string, vars squarecalc.Vars, echo bool) bool {
	ok := true
	for i, src := range ins {
		level.Debug(logger).Log("msg", "evaluating", "n", i+1, "expr", src)
		if echo {
			a, err := squarecalc.ParseString(src)
			if err == nil {
				fmt.Fprintf(w, "%v : ", a)
			}
		}
		r, err := squarecalc.Evaluate(src, vars)
		if err != nil {
			level.Warn(logger).Log("msg", "evaluation failed", "n", i+1, "err", err)
			fmt.Fprintln(w, squarecalc.Message(err))
			ok = false
			continue
		}
		fmt.Fprintln(w, squarecalc.Format(r))
	}
	return ok
}

// bind evaluates variable definitions in order. Each value may refer to the
// variables defined before it.
func bind(with [][2]string) (squarecalc.Vars, error) {
	vars := make(squarecalc.Vars, len(with))
	for _, d := range with {
		nm, vl := d[0], d[1]
		r, err := squarecalc.Evaluate(vl, vars)
		if err != nil {
			return nil, errors.Wrapf(err, "setting %s", nm)
		}
		vars[nm] = r
	}
	return vars, nil
}

// readLines reads the non-blank lines of the named file, or of stdin if the
// name is empty or "-".
func readLines(inname string) ([]string, error) {
	var f io.Reader = os.Stdin
	if inname != "" && inname != "-" {
		in, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer in.Close()
		f = in
	}
	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		if strings.TrimSpace(s.Text()) == "" {
			continue
		}
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", inname)
	}
	return lines, nil
}

func levelOption(lvl string) (level.Option, error) {
	switch lvl {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, errors.Errorf("unknown log level %q", lvl)
	}
}
