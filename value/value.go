// Package value implements the typed value tree produced by the OVS flow
// decoders: a small tagged variant (Kind + payload) plus the leaf decoders
// that turn a substring of a flow line into one.
package value

import (
	"math/big"
	"net/netip"
)

// Kind tags the variant held in a Value.
type Kind byte

//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix Kind
const (
	KindInteger Kind = iota
	KindMasked
	KindEthMask
	KindIPMask
	KindIPAddress
	KindRange
	KindFlags
	KindEnum
	KindBool
	KindList
	KindRecord
	KindString
)

// Value is the tagged variant a decoder produces. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Int    uint64     // KindInteger
	Masked *MaskedInt // KindMasked
	Eth    *EthMask   // KindEthMask
	IP     *IPMask    // KindIPMask, KindIPAddress (Mask fields unset)
	Rng    *Range     // KindRange
	Flags  string     // KindFlags
	Enum   string     // KindEnum
	Bool   bool       // KindBool
	List   []Value    // KindList
	Record *Record    // KindRecord
	Str    string     // KindString
}

// Integer returns a plain-integer Value.
func Integer(v uint64) Value { return Value{Kind: KindInteger, Int: v} }

// BoolValue returns the Value produced by a bare flag key.
func BoolValue(v bool) Value { return Value{Kind: KindBool, Bool: v} }

// FlagsValue returns a Value holding a verbatim flag union string.
func FlagsValue(s string) Value { return Value{Kind: KindFlags, Flags: s} }

// EnumValue returns a Value holding a recognised bare identifier.
func EnumValue(s string) Value { return Value{Kind: KindEnum, Enum: s} }

// StringValue returns a Value holding an arbitrary identifier.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// ListValue returns a Value holding an ordered homogeneous list.
func ListValue(vs []Value) Value { return Value{Kind: KindList, List: vs} }

// RecordValue returns a Value wrapping a nested Record.
func RecordValue(r *Record) Value { return Value{Kind: KindRecord, Record: r} }

// MaskedInt is a fixed-width bitfield: a value paired with its mask.
// Width is one of 8, 16, 32, 64, 128. For Width <= 64 the Lo/MaskLo fields
// hold the value; for Width == 128 Big/MaskBig hold it.
type MaskedInt struct {
	Width   int
	Lo      uint64
	MaskLo  uint64
	Big     *big.Int
	MaskBig *big.Int
}

// Uint64 returns the value as a uint64, for Width <= 64.
func (m *MaskedInt) Uint64() uint64 { return m.Lo }

// MaskUint64 returns the mask as a uint64, for Width <= 64.
func (m *MaskedInt) MaskUint64() uint64 { return m.MaskLo }

// Equal reports whether m and other carry the same width/value/mask.
func (m *MaskedInt) Equal(other *MaskedInt) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Width != other.Width {
		return false
	}
	if m.Width == 128 {
		return bigEqual(m.Big, other.Big) && bigEqual(m.MaskBig, other.MaskBig)
	}
	return m.Lo == other.Lo && m.MaskLo == other.MaskLo
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// EthMask is a 48-bit MAC with an optional 48-bit mask.
type EthMask struct {
	MAC     [6]byte
	Mask    [6]byte // all-ones when !HasMask
	HasMask bool
}

func (e *EthMask) Equal(o *EthMask) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.MAC == o.MAC && e.effectiveMask() == o.effectiveMask()
}

func (e *EthMask) effectiveMask() [6]byte {
	if e.HasMask {
		return e.Mask
	}
	return [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
}

// IPMask is an IPv4/IPv6 address with an optional prefix length or explicit
// mask address. When Kind is KindIPAddress the mask
// fields are meaningless (bare address, used inside Range).
type IPMask struct {
	Addr    netip.Addr
	Prefix  int        // >=0: CIDR prefix length form (addr/N)
	MaskIP  netip.Addr // valid (.IsValid()): explicit mask-address form (addr/mask)
	HasMask bool       // false: no '/...' in source, mask defaults to host mask
}

func (m *IPMask) Equal(o *IPMask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Addr != o.Addr {
		return false
	}
	return m.Prefix == o.Prefix && m.MaskIP == o.MaskIP && m.HasMask == o.HasMask
}

// Range is a typed start-end range. Start and End share
// the element's natural order and are always KindInteger or KindIPAddress.
type Range struct {
	Start Value
	End   Value
}

// Record is an ordered key/value mapping: order is
// preserved for positional metadata, but Get/Has present it as a mapping.
// A duplicate key overwrites the earlier value and keeps the first
// occurrence's place in Keys(); both occurrences remain visible only in the
// section-level KeyValue list that schema.ParseRecord returns.
type Record struct {
	keys []string
	vals map[string]Value
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{vals: make(map[string]Value)}
}

// Set appends key=v to the record, or, if key is already present,
// overwrites its value in place, keeping the key's first-seen position.
func (r *Record) Set(key string, v Value) {
	if _, exists := r.vals[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = v
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.vals[key]
	return ok
}

// Len returns the number of distinct keys.
func (r *Record) Len() int { return len(r.keys) }

// Keys returns keys in first-seen source order.
func (r *Record) Keys() []string { return r.keys }
