// Package bysig implements the packed traits word that accompanies
// signed calls: a single 256-bit value carrying the nonce scoping mode,
// an execution deadline, an optional relayer restriction and the nonce
// itself.
package bysig

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/1inch/1inch-solidity-utils/stringutil"
)

// Bit layout of a traits word, most significant bits first:
//
//	[255..254] nonce type
//	[253..240] reserved, always zero
//	[239..208] deadline, unix seconds
//	[207..128] low 80 bits of the allowed relayer address
//	[127..0]   nonce
const (
	TypeBitShift     = 254
	DeadlineBitShift = 208
	DeadlineBitWidth = 32
	RelayerBitShift  = 128
	RelayerBitWidth  = 80
	NonceBitWidth    = 128

	deadlineMask = 1<<DeadlineBitWidth - 1
)

var (
	relayerMask = bitMask(RelayerBitWidth)
	nonceMask   = bitMask(NonceBitWidth)
)

var (
	// ErrWrongNonceType is returned when the two-bit nonce type field
	// holds the one encoding that has no meaning.
	ErrWrongNonceType = errors.New("bysig: wrong nonce type")

	// ErrNonceOverflow is returned by NewTraits when the nonce does not
	// fit the 128-bit field.
	ErrNonceOverflow = errors.New("bysig: nonce exceeds 128 bits")

	// ErrTraitsOverflow is returned by TraitsFromBig for nil, negative
	// and wider than 256-bit values.
	ErrTraitsOverflow = errors.New("bysig: traits value out of 256-bit range")
)

// bitMask returns (1<<width)-1 as a 256-bit value.
func bitMask(width uint) *uint256.Int {
	mask := new(uint256.Int).Lsh(uint256.NewInt(1), width)
	return mask.Sub(mask, uint256.NewInt(1))
}

// Traits is an immutable view over one packed traits word. The zero
// value is a valid word: account-scoped nonce zero, no deadline, no
// relayer restriction.
type Traits struct {
	v uint256.Int
}

// TraitsFromUint256 wraps a raw traits word. A nil value is treated as
// the zero word.
func TraitsFromUint256(v *uint256.Int) Traits {
	var t Traits
	if v != nil {
		t.v.Set(v)
	}
	return t
}

// TraitsFromBig wraps a raw traits word given as a big.Int, the form in
// which ABI-decoded uint256 arguments usually arrive.
func TraitsFromBig(v *big.Int) (Traits, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > 256 {
		return Traits{}, ErrTraitsOverflow
	}
	word, _ := uint256.FromBig(v)
	return TraitsFromUint256(word), nil
}

// NewTraits packs the four trait fields into a word. Only the low
// RelayerBitWidth bits of relayer are stored; the zero address leaves
// the call unrestricted. A nil nonce packs as zero, a nonce wider than
// NonceBitWidth bits is rejected.
func NewTraits(typ NonceType, deadline uint32, relayer common.Address, nonce *uint256.Int) (Traits, error) {
	if typ > NonceTypeUnique {
		return Traits{}, ErrWrongNonceType
	}
	if nonce != nil && nonce.BitLen() > NonceBitWidth {
		return Traits{}, ErrNonceOverflow
	}

	var t Traits
	t.v.SetUint64(uint64(typ))
	t.v.Lsh(&t.v, TypeBitShift)

	field := new(uint256.Int).SetUint64(uint64(deadline))
	field.Lsh(field, DeadlineBitShift)
	t.v.Or(&t.v, field)

	field.SetBytes(relayer.Bytes())
	field.And(field, relayerMask)
	field.Lsh(field, RelayerBitShift)
	t.v.Or(&t.v, field)

	if nonce != nil {
		t.v.Or(&t.v, nonce)
	}
	return t, nil
}

// NonceType extracts the nonce scoping mode. Three of the four encodable
// values are meaningful; the fourth yields ErrWrongNonceType.
func (t Traits) NonceType() (NonceType, error) {
	typ := new(uint256.Int).Rsh(&t.v, TypeBitShift).Uint64()
	if typ > uint64(NonceTypeUnique) {
		return 0, ErrWrongNonceType
	}
	return NonceType(typ), nil
}

// Deadline extracts the execution deadline as unix seconds. Zero means
// the signer set no deadline; enforcing a nonzero one against the clock
// is the caller's job.
func (t Traits) Deadline() uint32 {
	return uint32(new(uint256.Int).Rsh(&t.v, DeadlineBitShift).Uint64() & deadlineMask)
}

// Nonce extracts the nonce field. Whether it is a sequence number or a
// one-time token follows from NonceType.
func (t Traits) Nonce() *uint256.Int {
	return new(uint256.Int).And(&t.v, nonceMask)
}

// RelayerLowBits extracts the raw relayer fragment, zero when the word
// carries no relayer restriction.
func (t Traits) RelayerLowBits() *uint256.Int {
	bits := new(uint256.Int).Rsh(&t.v, RelayerBitShift)
	return bits.And(bits, relayerMask)
}

// IsRelayerAllowed reports whether relayer may submit the signed call.
// A zero fragment allows any relayer. Otherwise the stored fragment must
// equal the low RelayerBitWidth bits of the candidate address; the upper
// bits of the candidate take no part in the check.
func (t Traits) IsRelayerAllowed(relayer common.Address) bool {
	bits := t.RelayerLowBits()
	if bits.IsZero() {
		return true
	}
	candidate := new(uint256.Int).SetBytes(relayer.Bytes())
	candidate.And(candidate, relayerMask)
	return candidate.Eq(bits)
}

// Uint256 returns a copy of the raw word.
func (t Traits) Uint256() *uint256.Int {
	return new(uint256.Int).Set(&t.v)
}

// Hex renders the raw word as a full 32-byte hex string.
func (t Traits) Hex() string {
	return stringutil.ToHexUint256(&t.v)
}
