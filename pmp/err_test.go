package pmp

import (
	"errors"
	"io/fs"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Err  error
		Kind ErrorKind
	}){
		{Err: nil, Kind: KIND_NONE},
		{Err: errors.New("other"), Kind: KIND_NONE},
		{Err: ErrTableFull, Kind: KIND_NONE},
		{Err: ErrParse, Kind: KIND_PARSE},
		{Err: &ErrAddress{Address: "1", Err: ErrPrefixMissing}, Kind: KIND_INPUT_FORMAT},
		{Err: ErrPrivilege("h"), Kind: KIND_VALIDATION},
		{Err: ErrOperation("e"), Kind: KIND_VALIDATION},
		{Err: &ErrRegion{Err: ErrNapotSize}, Kind: KIND_VALIDATION},
		{Err: &ErrSyntax{LineNo: 1, Line: "zz", Err: strconv.ErrSyntax}, Kind: KIND_PARSE},
		{Err: &ErrRead{Path: "pmp.txt", Err: fs.ErrNotExist}, Kind: KIND_IO},
		{Err: &ErrScript{Err: &ErrRegion{Err: ErrNapotAlign}}, Kind: KIND_PARSE},
	}

	for _, testcase := range table {
		assert.Equal(testcase.Kind, Kind(testcase.Err), "%v", testcase.Err)
	}

	assert.Equal("input format", KIND_INPUT_FORMAT.String())
	assert.Equal("i/o", KIND_IO.String())
}

func TestErr_Error(t *testing.T) {
	assert := assert.New(t)

	assert.Contains((&ErrAddress{Address: "1234", Err: ErrPrefixMissing}).Error(), "'1234'")
	assert.Contains(ErrPrivilege("h").Error(), "'h'")
	assert.Contains(ErrOperation("e").Error(), "'e'")
	assert.Contains((&ErrSyntax{LineNo: 3, Line: "zz", Err: strconv.ErrSyntax}).Error(), "'zz'")
	assert.Contains((&ErrRead{Path: "pmp.txt", Err: fs.ErrNotExist}).Error(), "pmp.txt")
	assert.Contains((&ErrRead{Err: fs.ErrClosed}).Error(), fs.ErrClosed.Error())
	assert.Contains((&ErrRegion{Base: 0x1000, Size: 0x1000, Err: ErrNapotAlign}).Error(), "0x1000")
}
