// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package pmp

import (
	"fmt"
	"io"
	"iter"
)

const (
	PMP_ENTRIES = 64 // Maximum number of PMP entries.
)

// Entry is a PMP configuration paired with its raw pmpaddr value.
type Entry struct {
	Config
	Address uint64
}

func (entry Entry) String() string {
	return fmt.Sprintf("addr:%.16x A:%v R:%v W:%v X:%v L:%v",
		entry.Address, entry.Mode, entry.Read, entry.Write, entry.Exec, entry.Locked)
}

// Table is an ordered PMP table. Lower indices have priority, and a TOR
// entry starts at the raw address of the entry just below it.
//
// A table is not modified once built.
type Table struct {
	entries []Entry
}

// NewTable pairs configs with addresses. Only the common prefix of the
// two, up to PMP_ENTRIES, forms entries.
func NewTable(configs []Config, addresses []uint64) (table *Table) {
	count := min(len(configs), len(addresses), PMP_ENTRIES)

	table = &Table{
		entries: make([]Entry, count),
	}

	for n := range count {
		table.entries[n] = Entry{Config: configs[n], Address: addresses[n]}
	}

	return
}

// add appends an entry at the lowest priority, while a table is built.
func (table *Table) add(entry Entry) (err error) {
	if table.Full() {
		err = ErrTableFull
		return
	}

	table.entries = append(table.entries, entry)

	return
}

// Len is the number of entries.
func (table *Table) Len() int {
	return len(table.entries)
}

// Entry returns the entry at index, or false outside the table.
func (table *Table) Entry(index int) (entry Entry, ok bool) {
	if index < 0 || index >= len(table.entries) {
		return
	}

	return table.entries[index], true
}

// Full is true when no more entries can be added.
func (table *Table) Full() bool {
	return len(table.entries) >= PMP_ENTRIES
}

// All iterates over the entries in priority order.
func (table *Table) All() iter.Seq2[int, Entry] {
	return func(yield func(index int, entry Entry) bool) {
		for n, entry := range table.entries {
			if !yield(n, entry) {
				return
			}
		}
	}
}

// Range resolves the byte range of an entry. OFF entries, and indices
// outside the table, have no range.
func (table *Table) Range(index int) (r Range, ok bool) {
	if index < 0 || index >= len(table.entries) {
		return
	}

	var prev uint64
	if index > 0 {
		prev = table.entries[index-1].Address
	}

	entry := &table.entries[index]

	return ResolveRange(entry.Mode, entry.Address, prev)
}

// Match returns the index of the first enabled entry whose range contains
// addr.
func (table *Table) Match(addr uint64) (index int, ok bool) {
	for n := range table.entries {
		r, enabled := table.Range(n)
		if enabled && r.Contains(addr) {
			return n, true
		}
	}

	return -1, false
}

// Decision explains the result of a check.
type Decision struct {
	Result  Result
	Matched bool // Set if an entry decided the access.
	Index   int  // Index of the deciding entry, or -1.
}

// Decide checks a request against the table.
func (table *Table) Decide(req Request) (dec Decision) {
	index, ok := table.Match(req.Address)
	if !ok {
		dec = Decision{Result: Default(req.Privilege), Index: -1}
		return
	}

	dec = Decision{
		Result:  Evaluate(table.entries[index].Config, req.Privilege, req.Operation),
		Matched: true,
		Index:   index,
	}

	return
}

// Check returns only the result of Decide.
func (table *Table) Check(req Request) Result {
	return table.Decide(req).Result
}

// Dump writes one line per entry, with its resolved range.
func (table *Table) Dump(w io.Writer) (err error) {
	for n, entry := range table.All() {
		text := "-"
		if r, ok := table.Range(n); ok {
			text = r.String()
		}

		_, err = fmt.Fprintf(w, "PMP:%.2d %v %v\n", n, entry, text)
		if err != nil {
			return
		}
	}

	return
}
