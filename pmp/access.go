package pmp

import (
	"fmt"
	"strconv"
	"strings"
)

// Privilege is a RISC-V privilege mode.
type Privilege int

//go:generate go tool stringer -linecomment -type=Privilege
const (
	PRIV_USER       = Privilege(0) // U
	PRIV_SUPERVISOR = Privilege(1) // S
	PRIV_MACHINE    = Privilege(3) // M
)

// Operation is a memory access type.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_READ  = Operation(0) // R
	OP_WRITE = Operation(1) // W
	OP_EXEC  = Operation(2) // X
)

// Result is the outcome of an access check.
type Result int

//go:generate go tool stringer -linecomment -type=Result
const (
	ACCESS_DENIED  = Result(0) // denied
	ACCESS_ALLOWED = Result(1) // allowed
)

// Allowed is true for ACCESS_ALLOWED.
func (rc Result) Allowed() bool {
	return rc == ACCESS_ALLOWED
}

func resultOf(ok bool) Result {
	if ok {
		return ACCESS_ALLOWED
	}
	return ACCESS_DENIED
}

var privilegeMap = map[string]Privilege{
	"U": PRIV_USER,
	"S": PRIV_SUPERVISOR,
	"M": PRIV_MACHINE,
}

var operationMap = map[string]Operation{
	"R": OP_READ,
	"W": OP_WRITE,
	"X": OP_EXEC,
}

// ParsePrivilege parses a case-insensitive M, S or U.
func ParsePrivilege(text string) (priv Privilege, err error) {
	priv, ok := privilegeMap[strings.ToUpper(text)]
	if !ok {
		err = ErrPrivilege(text)
	}
	return
}

// Set implements flag.Value.
func (priv *Privilege) Set(text string) (err error) {
	value, err := ParsePrivilege(text)
	if err != nil {
		return
	}
	*priv = value
	return
}

// ParseOperation parses a case-insensitive R, W or X.
func ParseOperation(text string) (op Operation, err error) {
	op, ok := operationMap[strings.ToUpper(text)]
	if !ok {
		err = ErrOperation(text)
	}
	return
}

// Set implements flag.Value.
func (op *Operation) Set(text string) (err error) {
	value, err := ParseOperation(text)
	if err != nil {
		return
	}
	*op = value
	return
}

// ParseAddress parses a 0x prefixed 64-bit hexadecimal address.
func ParseAddress(text string) (addr uint64, err error) {
	digits, ok := strings.CutPrefix(text, "0x")
	if !ok {
		err = &ErrAddress{Address: text, Err: ErrPrefixMissing}
		return
	}

	addr, err = strconv.ParseUint(digits, 16, 64)
	if err != nil {
		err = &ErrAddress{Address: text, Err: err}
		return
	}

	return
}

// Request is a single physical memory access to check.
type Request struct {
	Address   uint64
	Privilege Privilege
	Operation Operation
}

// NewRequest builds a request from its textual address, mode and operation.
func NewRequest(address, mode, operation string) (req Request, err error) {
	req.Address, err = ParseAddress(address)
	if err != nil {
		return
	}

	req.Privilege, err = ParsePrivilege(mode)
	if err != nil {
		return
	}

	req.Operation, err = ParseOperation(operation)
	if err != nil {
		return
	}

	return
}

func (req Request) String() string {
	return fmt.Sprintf("%v %v 0x%016x", req.Privilege, req.Operation, req.Address)
}

// Evaluate decides an access that matched an entry with the given config.
// Machine mode bypasses unlocked entries; otherwise the permission bit for
// the operation decides.
func Evaluate(config Config, priv Privilege, op Operation) Result {
	if priv == PRIV_MACHINE && !config.Locked {
		return ACCESS_ALLOWED
	}

	return resultOf(config.Permits(op))
}

// Default decides an access that matched no entry.
func Default(priv Privilege) Result {
	return resultOf(priv == PRIV_MACHINE)
}
