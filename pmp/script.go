package pmp

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Script builds a Table from a Starlark program instead of raw hex.
//
// The program sees these predeclared names:
//
//	cfg(r=False, w=False, x=False, a=OFF, l=False)  pmpcfg byte
//	entry(cfg, addr)                                append an entry
//	napot(base, size)                               raw NAPOT value
//	na4(addr)                                       raw NA4 value
//	OFF, TOR, NA4, NAPOT, PMP_ENTRIES
//
// For example:
//
//	entry(cfg(a=OFF), 0x80000000)
//	entry(cfg(r=True, x=True, a=TOR), 0x80200000)
//	entry(cfg(r=True, w=True, a=NAPOT, l=True), napot(0x10000000, 0x1000))
type Script struct {
	Defines map[string]uint64 // Extra integer constants.

	table *Table
}

func (sc *Script) builtinCfg(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (rc starlark.Value, err error) {
	var r, w, x, l bool
	var a int
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "r?", &r, "w?", &w, "x?", &x, "a?", &a, "l?", &l)
	if err != nil {
		return
	}

	if a < int(A_OFF) || a > int(A_NAPOT) {
		err = ErrAddressMode
		return
	}

	config := Config{Read: r, Write: w, Exec: x, Mode: AddressMode(a), Locked: l}
	rc = starlark.MakeInt(int(config.Byte()))

	return
}

func (sc *Script) builtinEntry(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (rc starlark.Value, err error) {
	var cfg, addr starlark.Int
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &cfg, &addr)
	if err != nil {
		return
	}

	cfg64, ok := cfg.Uint64()
	if !ok || cfg64 > 0xff {
		err = ErrConfigByte
		return
	}

	addr64, ok := addr.Uint64()
	if !ok {
		err = ErrValueRange
		return
	}

	err = sc.table.add(Entry{Config: DecodeConfig(uint8(cfg64)), Address: addr64})
	if err != nil {
		return
	}

	rc = starlark.None

	return
}

func (sc *Script) builtinNapot(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (rc starlark.Value, err error) {
	var base, size starlark.Int
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &base, &size)
	if err != nil {
		return
	}

	baseValue, ok := base.Uint64()
	if !ok {
		err = ErrValueRange
		return
	}

	sizeValue, ok := size.Uint64()
	if !ok {
		err = ErrValueRange
		return
	}

	addr, err := EncodeNapot(baseValue, sizeValue)
	if err != nil {
		return
	}

	rc = starlark.MakeUint64(addr)

	return
}

func (sc *Script) builtinNa4(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (rc starlark.Value, err error) {
	var addr starlark.Int
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &addr)
	if err != nil {
		return
	}

	addr64, ok := addr.Uint64()
	if !ok {
		err = ErrValueRange
		return
	}

	rc = starlark.MakeUint64(EncodeNa4(addr64))

	return
}

func (sc *Script) predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{
		"cfg":         starlark.NewBuiltin("cfg", sc.builtinCfg),
		"entry":       starlark.NewBuiltin("entry", sc.builtinEntry),
		"napot":       starlark.NewBuiltin("napot", sc.builtinNapot),
		"na4":         starlark.NewBuiltin("na4", sc.builtinNa4),
		"OFF":         starlark.MakeInt(int(A_OFF)),
		"TOR":         starlark.MakeInt(int(A_TOR)),
		"NA4":         starlark.MakeInt(int(A_NA4)),
		"NAPOT":       starlark.MakeInt(int(A_NAPOT)),
		"PMP_ENTRIES": starlark.MakeInt(PMP_ENTRIES),
	}

	for key, value := range sc.Defines {
		pred[key] = starlark.MakeUint64(value)
	}

	return
}

// Exec runs the program and returns the table its entry() calls built.
// src is as for starlark.ExecFileOptions: nil reads filename, otherwise a
// string, []byte or io.Reader.
func (sc *Script) Exec(filename string, src any) (table *Table, err error) {
	sc.table = &Table{}
	defer func() {
		sc.table = nil
	}()

	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{TopLevelControl: true, GlobalReassign: true}
	_, err = starlark.ExecFileOptions(&opts, &thread, filename, src, sc.predeclared())
	if err != nil {
		err = &ErrScript{Err: err}
		return
	}

	table = sc.table

	return
}

// LoadScript runs a table script with no extra defines.
func LoadScript(filename string, src any) (table *Table, err error) {
	return (&Script{}).Exec(filename, src)
}
