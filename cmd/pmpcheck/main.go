// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/pmpcheck/pmp"
	"github.com/ezrec/pmpcheck/translate"
)

var f = translate.From

var (
	ErrSourceCount = errors.New(f("exactly one of -config or -script is required"))
)

// ErrFlagMissing is a required flag that was not given.
type ErrFlagMissing string

func (ef ErrFlagMissing) Error() string {
	return f("-%v is required", string(ef))
}

// ErrArguments are unexpected positional arguments.
type ErrArguments []string

func (ea ErrArguments) Error() string {
	return f("unknown arguments: %v", []string(ea))
}

// Options are the parsed command line.
type Options struct {
	Config    string
	Script    string
	Address   string
	Privilege pmp.Privilege
	Operation pmp.Operation
	Dump      bool
	Verbose   bool

	set map[string]bool
}

func parseOptions(name string, args []string, output io.Writer) (opts *Options, err error) {
	opts = &Options{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	for _, alias := range []string{"c", "config"} {
		fs.StringVar(&opts.Config, alias, "", "Path to PMP configuration file")
	}
	for _, alias := range []string{"s", "script"} {
		fs.StringVar(&opts.Script, alias, "", "Path to PMP Starlark table script")
	}
	for _, alias := range []string{"a", "address"} {
		fs.StringVar(&opts.Address, alias, "", "Physical address in hexadecimal (0x prefix)")
	}
	for _, alias := range []string{"m", "mode"} {
		fs.Var(&opts.Privilege, alias, "Privilege mode (M, S, U)")
	}
	for _, alias := range []string{"o", "operation"} {
		fs.Var(&opts.Operation, alias, "Operation (R, W, X)")
	}
	for _, alias := range []string{"d", "dump"} {
		fs.BoolVar(&opts.Dump, alias, false, "Print the decoded PMP table")
	}
	fs.BoolVar(&opts.Verbose, "v", false, "Verbose mode")

	err = fs.Parse(args)
	if err != nil {
		return
	}

	if fs.NArg() != 0 {
		err = ErrArguments(fs.Args())
		return
	}

	opts.set = map[string]bool{}
	fs.Visit(func(fl *flag.Flag) {
		opts.set[fl.Name] = true
	})

	if opts.Given("c", "config") == opts.Given("s", "script") {
		err = ErrSourceCount
		return
	}

	if opts.Dump && !opts.Given("a", "address", "m", "mode", "o", "operation") {
		return
	}

	for _, req := range [][]string{{"a", "address"}, {"m", "mode"}, {"o", "operation"}} {
		if !opts.Given(req...) {
			err = ErrFlagMissing(req[1])
			return
		}
	}

	return
}

// Given is true if any of the named flags was on the command line.
func (opts *Options) Given(names ...string) bool {
	for _, name := range names {
		if opts.set[name] {
			return true
		}
	}
	return false
}

// Checking is true if an access request was given.
func (opts *Options) Checking() bool {
	return opts.Given("a", "address")
}

func (opts *Options) loadTable() (table *pmp.Table, err error) {
	if len(opts.Script) != 0 {
		var src []byte
		src, err = os.ReadFile(opts.Script)
		if err != nil {
			err = &pmp.ErrRead{Path: opts.Script, Err: err}
			return
		}
		return pmp.LoadScript(opts.Script, src)
	}

	ld := &pmp.Loader{Verbose: opts.Verbose}
	return ld.LoadFile(opts.Config)
}

func run(opts *Options, output io.Writer) (err error) {
	var req pmp.Request
	if opts.Checking() {
		req.Address, err = pmp.ParseAddress(opts.Address)
		if err != nil {
			return
		}
		req.Privilege = opts.Privilege
		req.Operation = opts.Operation
	}

	table, err := opts.loadTable()
	if err != nil {
		return
	}

	if opts.Dump {
		err = table.Dump(output)
		if err != nil {
			return
		}
	}

	if !opts.Checking() {
		return
	}

	dec := table.Decide(req)
	if opts.Verbose {
		if dec.Matched {
			r, _ := table.Range(dec.Index)
			entry, _ := table.Entry(dec.Index)
			log.Printf("%v: PMP:%.2d %v %v", req, dec.Index, entry.Config, r)
		} else {
			log.Printf("%v: no match, default policy", req)
		}
	}

	_, err = translate.Fprintln(output, "Access %v", dec.Result)

	return
}

func main() {
	opts, err := parseOptions(os.Args[0], os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	err = run(opts, os.Stdout)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
