package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/zephyrtronium/infix"
)

// demo is parsed when there is no other input.
const demo = "3/2+2+5(8-9)*-6"

type config struct {
	in     string
	tokens bool
	vars   bool
	check  bool
}

func main() {
	log.SetFlags(0)
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	var cfg config
	return &cli.App{
		Name:      "infix",
		Usage:     "print the canonical form of arithmetic expressions",
		ArgsUsage: "[expression...]",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "in",
				Usage:       "input file with one expression per line, - for stdin",
				Destination: &cfg.in,
			},
			&cli.BoolFlag{
				Name:        "tokens",
				Usage:       "print the tokens of each expression",
				Destination: &cfg.tokens,
			},
			&cli.BoolFlag{
				Name:        "vars",
				Usage:       "print the variables used in each expression",
				Destination: &cfg.vars,
			},
			&cli.BoolFlag{
				Name:        "check",
				Usage:       "verify that each canonical form parses to itself",
				Destination: &cfg.check,
			},
		},
		Action: func(c *cli.Context) error {
			srcs, err := inputs(c.App.Reader, cfg.in, c.Args().Slice())
			if err != nil {
				return err
			}
			lg := log.New(c.App.ErrWriter, "", 0)
			if bad := run(c.App.Writer, lg, srcs, &cfg); bad > 0 {
				return fmt.Errorf("%d of %d expressions invalid", bad, len(srcs))
			}
			return nil
		},
	}
}

// inputs collects the expressions to parse: the non-blank lines of the input
// file, if any, followed by args. If there are none, the result is the demo.
func inputs(stdin io.Reader, in string, args []string) ([]string, error) {
	var srcs []string
	if in != "" {
		r := stdin
		if in != "-" {
			f, err := os.Open(in)
			if err != nil {
				return nil, errors.Wrap(err, "opening input")
			}
			defer f.Close()
			r = f
		}
		s := bufio.NewScanner(r)
		for s.Scan() {
			if strings.TrimSpace(s.Text()) == "" {
				continue
			}
			srcs = append(srcs, s.Text())
		}
		if err := s.Err(); err != nil {
			return nil, errors.Wrapf(err, "reading %s", in)
		}
	}
	srcs = append(srcs, args...)
	if len(srcs) == 0 {
		srcs = []string{demo}
	}
	return srcs, nil
}

// run parses each source and prints the results. The result is the number of
// sources which failed.
func run(w io.Writer, lg *log.Logger, srcs []string, cfg *config) int {
	bad := 0
	for i, src := range srcs {
		if cfg.tokens {
			fmt.Fprintf(w, "tokens: %q\n", infix.Tokens(src))
		}
		e, err := infix.Parse(src)
		if err != nil {
			lg.Printf("input %d: %v", i+1, err)
			bad++
			continue
		}
		c := e.String()
		fmt.Fprintln(w, c)
		if cfg.vars {
			fmt.Fprintf(w, "vars: %s\n", strings.Join(infix.Vars(e), " "))
		}
		if cfg.check {
			if err := check(c); err != nil {
				lg.Printf("input %d: %v", i+1, err)
				bad++
			}
		}
	}
	return bad
}

// check verifies that a canonical form is a fixed point of parsing.
func check(canon string) error {
	e, err := infix.Parse(canon)
	if err != nil {
		return errors.Wrapf(err, "canonical form %q", canon)
	}
	if got := e.String(); got != canon {
		return errors.Errorf("canonical form %q reparses as %q", canon, got)
	}
	return nil
}
