package pmp

import (
	"strings"
)

// AddressMode is the address-matching mode (A field) of a PMP entry.
type AddressMode int

//go:generate go tool stringer -linecomment -type=AddressMode
const (
	A_OFF   = AddressMode(0) // OFF
	A_TOR   = AddressMode(1) // TOR
	A_NA4   = AddressMode(2) // NA4
	A_NAPOT = AddressMode(3) // NAPOT
)

const (
	CFG_R       = 0x01 // Read permission.
	CFG_W       = 0x02 // Write permission.
	CFG_X       = 0x04 // Execute permission.
	CFG_A_MASK  = 0x18 // Address-matching mode.
	CFG_A_SHIFT = 3
	CFG_L       = 0x80 // Lock.
)

// Config is a decoded pmpcfg byte.
type Config struct {
	Read   bool
	Write  bool
	Exec   bool
	Mode   AddressMode
	Locked bool
}

// DecodeConfig decodes a pmpcfg byte. Bits 5 and 6 are ignored.
func DecodeConfig(cfg uint8) (config Config) {
	config = Config{
		Read:   (cfg & CFG_R) != 0,
		Write:  (cfg & CFG_W) != 0,
		Exec:   (cfg & CFG_X) != 0,
		Mode:   AddressMode((cfg & CFG_A_MASK) >> CFG_A_SHIFT),
		Locked: (cfg & CFG_L) != 0,
	}

	return
}

// Byte encodes the configuration as a pmpcfg byte.
func (config Config) Byte() (cfg uint8) {
	if config.Read {
		cfg |= CFG_R
	}
	if config.Write {
		cfg |= CFG_W
	}
	if config.Exec {
		cfg |= CFG_X
	}
	cfg |= (uint8(config.Mode) << CFG_A_SHIFT) & CFG_A_MASK
	if config.Locked {
		cfg |= CFG_L
	}

	return
}

// Enabled is true unless the entry is OFF.
func (config Config) Enabled() bool {
	return config.Mode != A_OFF
}

// Permits returns the permission bit for an operation.
func (config Config) Permits(op Operation) bool {
	switch op {
	case OP_READ:
		return config.Read
	case OP_WRITE:
		return config.Write
	case OP_EXEC:
		return config.Exec
	}

	return false
}

// String returns the familiar rwx form, the mode, and 'L' when locked.
func (config Config) String() string {
	bits := [3]byte{'-', '-', '-'}
	if config.Read {
		bits[0] = 'r'
	}
	if config.Write {
		bits[1] = 'w'
	}
	if config.Exec {
		bits[2] = 'x'
	}

	words := []string{string(bits[:]), config.Mode.String()}
	if config.Locked {
		words = append(words, "L")
	}

	return strings.Join(words, " ")
}
