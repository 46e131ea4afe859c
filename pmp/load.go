// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package pmp

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Loader reads the text form of a PMP table: one hexadecimal value per
// line, the first PMP_ENTRIES lines being pmpcfg bytes and the next
// PMP_ENTRIES lines the raw pmpaddr values. Later lines are ignored.
type Loader struct {
	Verbose bool // If set, log each value as it is read.
}

// parseValue parses a hex value, with any number of leading "0x".
// A bare "0x" is zero. Only a trailing carriage return is dropped; any
// other whitespace is a syntax error.
func parseValue(text string) (value uint64, err error) {
	digits := strings.TrimSuffix(text, "\r")
	if len(digits) == 0 {
		err = strconv.ErrSyntax
		return
	}

	prefixed := false
	for {
		var ok bool
		digits, ok = strings.CutPrefix(digits, "0x")
		if !ok {
			break
		}
		prefixed = true
	}

	if prefixed && len(digits) == 0 {
		return
	}

	value, err = strconv.ParseUint(digits, 16, 64)
	if err != nil {
		// Drop the strconv wrapper; the line is reported by ErrSyntax.
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return
	}

	return
}

// Load reads a table from input.
func (ld *Loader) Load(input io.Reader) (table *Table, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int

	configs := make([]Config, 0, PMP_ENTRIES)
	addresses := make([]uint64, 0, PMP_ENTRIES)

	for lineno < 2*PMP_ENTRIES && scanner.Scan() {
		line := scanner.Text()
		lineno += 1

		var value uint64
		value, err = parseValue(line)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}

		if lineno <= PMP_ENTRIES {
			config := DecodeConfig(uint8(value))
			if ld.Verbose {
				log.Printf("%v: pmpcfg%v = 0x%02x (%v)", lineno, lineno-1, uint8(value), config)
			}
			configs = append(configs, config)
		} else {
			if ld.Verbose {
				log.Printf("%v: pmpaddr%v = 0x%016x", lineno, lineno-1-PMP_ENTRIES, value)
			}
			addresses = append(addresses, value)
		}
	}

	err = scanner.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		err = &ErrSyntax{LineNo: lineno + 1, Err: err}
		return
	}
	if err != nil {
		err = &ErrRead{Err: err}
		return
	}

	table = NewTable(configs, addresses)

	return
}

// LoadFile reads a table from the named file.
func (ld *Loader) LoadFile(path string) (table *Table, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrRead{Path: path, Err: err}
		return
	}
	defer inf.Close()

	table, err = ld.Load(inf)
	if er, ok := err.(*ErrRead); ok {
		er.Path = path
	}

	return
}

// Load reads a table from input with a default Loader.
func Load(input io.Reader) (table *Table, err error) {
	return (&Loader{}).Load(input)
}

// LoadFile reads a table from the named file with a default Loader.
func LoadFile(path string) (table *Table, err error) {
	return (&Loader{}).LoadFile(path)
}
