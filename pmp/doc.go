// Package pmp evaluates physical memory accesses against a RISC-V Physical
// Memory Protection (PMP) table.
//
// A Table holds up to PMP_ENTRIES entries, each a decoded configuration byte
// (R/W/X permissions, address-matching mode A, lock bit L) paired with a raw
// pmpaddr value. The raw value is interpreted by the entry's mode: TOR uses it
// as the exclusive top of a range starting at the preceding entry's raw value,
// NA4 aligns it down to a 4-byte word, and NAPOT encodes base and size jointly
// in its trailing one bits.
//
// Entries are scanned lowest index first and the first entry whose range
// contains the address decides the access. Machine mode bypasses unlocked
// entries. When nothing matches, Machine mode is allowed and every other mode
// is denied.
package pmp
