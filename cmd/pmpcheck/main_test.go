package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/pmpcheck/pmp"
)

func writeConfig(t *testing.T, name string, lines ...string) (path string) {
	for len(lines) < pmp.PMP_ENTRIES {
		lines = append(lines, "0x0")
	}
	return writeFile(t, name, strings.Join(lines, "\n")+"\n")
}

func writeFile(t *testing.T, name string, text string) (path string) {
	path = filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestParseOptions(t *testing.T) {
	assert := assert.New(t)

	opts, err := parseOptions("pmpcheck", []string{"-c", "pmp.txt", "-a", "0x1000", "-m", "s", "-o", "w"}, io.Discard)
	assert.NoError(err)
	assert.Equal("pmp.txt", opts.Config)
	assert.Equal("0x1000", opts.Address)
	assert.Equal(pmp.PRIV_SUPERVISOR, opts.Privilege)
	assert.Equal(pmp.OP_WRITE, opts.Operation)
	assert.True(opts.Checking())

	opts, err = parseOptions("pmpcheck", []string{"-config", "pmp.txt", "-address", "0x1000", "-mode", "M", "-operation", "X"}, io.Discard)
	assert.NoError(err)
	assert.Equal(pmp.PRIV_MACHINE, opts.Privilege)
	assert.Equal(pmp.OP_EXEC, opts.Operation)

	opts, err = parseOptions("pmpcheck", []string{"-s", "pmp.star", "-d"}, io.Discard)
	assert.NoError(err)
	assert.True(opts.Dump)
	assert.False(opts.Checking())
}

func TestParseOptions_Error(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Args []string
		Err  error
	}){
		{Args: []string{"-a", "0x0", "-m", "m", "-o", "r"}, Err: ErrSourceCount},
		{Args: []string{"-c", "a", "-s", "b", "-a", "0x0", "-m", "m", "-o", "r"}, Err: ErrSourceCount},
		{Args: []string{"-c", "a", "-m", "m", "-o", "r"}, Err: ErrFlagMissing("address")},
		{Args: []string{"-c", "a", "-a", "0x0", "-o", "r"}, Err: ErrFlagMissing("mode")},
		{Args: []string{"-c", "a", "-a", "0x0", "-m", "m"}, Err: ErrFlagMissing("operation")},
		{Args: []string{"-c", "a", "-d", "-a", "0x0"}, Err: ErrFlagMissing("mode")},
	}

	for _, testcase := range table {
		_, err := parseOptions("pmpcheck", testcase.Args, io.Discard)
		assert.Equal(testcase.Err, err, strings.Join(testcase.Args, " "))
	}

	_, err := parseOptions("pmpcheck", []string{"-c", "a", "-a", "0x0", "-m", "h", "-o", "r"}, io.Discard)
	assert.Error(err)

	_, err = parseOptions("pmpcheck", []string{"-c", "a", "-a", "0x0", "-m", "m", "-o", "q"}, io.Discard)
	assert.Error(err)

	_, err = parseOptions("pmpcheck", []string{"-c", "a", "-a", "0x0", "-m", "m", "-o", "r", "extra"}, io.Discard)
	assert.Equal(ErrArguments{"extra"}, err)
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	config := writeFile(t, "pmp.txt", strings.Repeat("0x0\n", pmp.PMP_ENTRIES-1)+"0x9d\n"+
		strings.Repeat("0x0\n", pmp.PMP_ENTRIES-1)+"0x20000007\n")

	table := [](struct {
		Args   []string
		Output string
	}){
		{Args: []string{"-a", "0x20000004", "-m", "U", "-o", "R"}, Output: "Access allowed\n"},
		{Args: []string{"-a", "0x20000004", "-m", "M", "-o", "W"}, Output: "Access denied\n"},
		{Args: []string{"-a", "0x20000008", "-m", "M", "-o", "W"}, Output: "Access allowed\n"},
		{Args: []string{"-a", "0x20000008", "-m", "s", "-o", "r"}, Output: "Access denied\n"},
	}

	for _, testcase := range table {
		here := strings.Join(testcase.Args, " ")
		opts, err := parseOptions("pmpcheck", append([]string{"-c", config}, testcase.Args...), io.Discard)
		assert.NoError(err, here)

		buff := &bytes.Buffer{}
		assert.NoError(run(opts, buff), here)
		assert.Equal(testcase.Output, buff.String(), here)
	}
}

func TestRun_Script(t *testing.T) {
	assert := assert.New(t)

	script := writeFile(t, "pmp.star", "entry(cfg(r=True, w=True, a=NAPOT), napot(0x20000000, 8))\n")

	opts, err := parseOptions("pmpcheck", []string{"-s", script, "-d", "-v", "-a", "0x20000004", "-m", "u", "-o", "w"}, io.Discard)
	assert.NoError(err)

	buff := &bytes.Buffer{}
	assert.NoError(run(opts, buff))
	assert.Equal(
		"PMP:00 addr:0000000020000007 A:NAPOT R:true W:true X:false L:false [0x20000000, 0x20000008)\n"+
			"Access allowed\n",
		buff.String())
}

func TestRun_Error(t *testing.T) {
	assert := assert.New(t)

	config := writeConfig(t, "pmp.txt")

	opts, err := parseOptions("pmpcheck", []string{"-c", config, "-a", "20000004", "-m", "u", "-o", "r"}, io.Discard)
	assert.NoError(err)
	err = run(opts, io.Discard)
	assert.Equal(pmp.KIND_INPUT_FORMAT, pmp.Kind(err))

	opts, err = parseOptions("pmpcheck", []string{"-c", config + ".missing", "-a", "0x0", "-m", "u", "-o", "r"}, io.Discard)
	assert.NoError(err)
	err = run(opts, io.Discard)
	assert.Equal(pmp.KIND_IO, pmp.Kind(err))

	bad := writeFile(t, "bad.txt", "0x0\nnope\n")
	opts, err = parseOptions("pmpcheck", []string{"-c", bad, "-a", "0x0", "-m", "u", "-o", "r"}, io.Discard)
	assert.NoError(err)
	err = run(opts, io.Discard)
	assert.Equal(pmp.KIND_PARSE, pmp.Kind(err))
}
