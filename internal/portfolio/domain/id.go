package domain

import "strconv"

// IDKind tags which backend an identifier belongs to.
type IDKind int

const (
	IDInvalid IDKind = iota
	IDDurable        // 24-char hex ObjectID, lives in Mongo
	IDMemory         // integer surrogate key, lives in the memory store
)

// RecordID is the parsed form of a path identifier. The shape is decided
// once at the route boundary and passed down, so the storage layers never
// sniff identifier formats themselves.
type RecordID struct {
	kind IDKind
	hex  string
	num  int64
}

// ParseRecordID classifies a raw identifier. A 24-character hex string is
// durable-shaped, a decimal integer is memory-shaped, everything else is
// invalid (which behaves like "not found" downstream).
func ParseRecordID(raw string) RecordID {
	if isObjectIDHex(raw) {
		return RecordID{kind: IDDurable, hex: raw}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
		return RecordID{kind: IDMemory, num: n}
	}
	return RecordID{}
}

// DurableID builds a durable-shaped RecordID from a known ObjectID hex.
func DurableID(hex string) RecordID { return RecordID{kind: IDDurable, hex: hex} }

// MemoryID builds a memory-shaped RecordID from a known surrogate key.
func MemoryID(n int64) RecordID { return RecordID{kind: IDMemory, num: n} }

func (id RecordID) Kind() IDKind { return id.kind }

// Hex returns the ObjectID hex; empty unless Kind is IDDurable.
func (id RecordID) Hex() string { return id.hex }

// Num returns the surrogate key; zero unless Kind is IDMemory.
func (id RecordID) Num() int64 { return id.num }

func (id RecordID) String() string {
	switch id.kind {
	case IDDurable:
		return id.hex
	case IDMemory:
		return strconv.FormatInt(id.num, 10)
	}
	return ""
}

func isObjectIDHex(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}
