package pmp

import (
	"errors"

	"github.com/ezrec/pmpcheck/translate"
)

var f = translate.From

var (
	// Error kinds
	ErrInputFormat = errors.New(f("input format"))
	ErrValidation  = errors.New(f("validation"))
	ErrIo          = errors.New(f("i/o"))
	ErrParse       = errors.New(f("parse"))

	// Table errors
	ErrTableFull = errors.New(f("pmp table full"))

	// Request errors
	ErrPrefixMissing = errors.New(f("must start with 0x"))

	// Encoding errors
	ErrNapotSize   = errors.New(f("napot size must be a power of two, at least 2"))
	ErrNapotAlign  = errors.New(f("napot base must be aligned to twice its size"))
	ErrAddressMode = errors.New(f("address mode must be 0..3"))
	ErrConfigByte  = errors.New(f("config must fit in a byte"))
	ErrValueRange  = errors.New(f("value must fit in 64 bits"))
)

// ErrorKind is the failure category of an error.
type ErrorKind int

//go:generate go tool stringer -linecomment -type=ErrorKind
const (
	KIND_NONE         = ErrorKind(0) // none
	KIND_INPUT_FORMAT = ErrorKind(1) // input format
	KIND_VALIDATION   = ErrorKind(2) // validation
	KIND_IO           = ErrorKind(3) // i/o
	KIND_PARSE        = ErrorKind(4) // parse
)

var kindSentinel = [...]struct {
	Kind ErrorKind
	Err  error
}{
	{KIND_INPUT_FORMAT, ErrInputFormat},
	{KIND_VALIDATION, ErrValidation},
	{KIND_IO, ErrIo},
	{KIND_PARSE, ErrParse},
}

// Kind returns the failure category of err, or KIND_NONE. The outermost
// categorized error in the chain decides.
func Kind(err error) ErrorKind {
	for ; err != nil; err = errors.Unwrap(err) {
		is, _ := err.(interface{ Is(error) bool })
		for _, ks := range kindSentinel {
			if err == ks.Err || (is != nil && is.Is(ks.Err)) {
				return ks.Kind
			}
		}
	}

	return KIND_NONE
}

// ErrAddress is a malformed target address.
type ErrAddress struct {
	Address string
	Err     error
}

func (err *ErrAddress) Error() string {
	return f("address '%v' %v", err.Address, err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}

func (err *ErrAddress) Is(target error) bool {
	return target == ErrInputFormat
}

// ErrRegion is a region that cannot be encoded.
type ErrRegion struct {
	Base uint64
	Size uint64
	Err  error
}

func (err *ErrRegion) Error() string {
	return f("region base 0x%x size 0x%x %v", err.Base, err.Size, err.Err)
}

func (err *ErrRegion) Unwrap() error {
	return err.Err
}

func (err *ErrRegion) Is(target error) bool {
	return target == ErrValidation
}

// ErrPrivilege is an unknown privilege mode character.
type ErrPrivilege string

func (ep ErrPrivilege) Error() string {
	return f("'%v' is not a privilege mode (M, S, U)", string(ep))
}

func (ep ErrPrivilege) Is(target error) bool {
	return target == ErrValidation
}

// ErrOperation is an unknown operation character.
type ErrOperation string

func (eo ErrOperation) Error() string {
	return f("'%v' is not an operation (R, W, X)", string(eo))
}

func (eo ErrOperation) Is(target error) bool {
	return target == ErrValidation
}

// ErrSyntax locates a bad line in a configuration file.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %v '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

func (err *ErrSyntax) Is(target error) bool {
	return target == ErrParse
}

// ErrRead is a configuration source that could not be opened or read.
type ErrRead struct {
	Path string
	Err  error
}

func (err *ErrRead) Error() string {
	if len(err.Path) == 0 {
		return f("read %v", err.Err)
	}
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrRead) Unwrap() error {
	return err.Err
}

func (err *ErrRead) Is(target error) bool {
	return target == ErrIo
}

// ErrScript is a failed table script.
type ErrScript struct {
	Err error
}

func (err *ErrScript) Error() string {
	return f("script %v", err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

func (err *ErrScript) Is(target error) bool {
	return target == ErrParse
}
