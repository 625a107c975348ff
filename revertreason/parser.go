// Package revertreason turns the raw return data of a failed EVM call
// into a printable reason, following the ABI encoding solc emits for
// revert data.
//
// Three shapes are recognized: Error(string) payloads produced by
// require and revert statements, Panic(uint256) payloads inserted by
// the compiler for assertion and arithmetic failures, and everything
// else, which is rendered verbatim as hex.
package revertreason

import (
	"bytes"
	"errors"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/1inch/1inch-solidity-utils/stringutil"
)

// ErrInvalidRevertReason is returned when a payload carries the
// Error(string) selector but its recorded string length points past the
// end of the payload.
var ErrInvalidRevertReason = errors.New("revertreason: invalid revert reason")

// Revert payloads use the function call ABI: a 4-byte selector followed
// by 32-byte words.
const (
	selectorLen = 4
	wordLen     = 32

	// minErrorLen is selector + offset word + length word, the shortest
	// possible Error("") encoding.
	minErrorLen = selectorLen + 2*wordLen
	// panicLen is selector + one code word, the only valid Panic length.
	panicLen = selectorLen + wordLen
)

// Selectors are derived the same way solc derives them.
var (
	errorSelector = crypto.Keccak256([]byte("Error(string)"))[:selectorLen]
	panicSelector = crypto.Keccak256([]byte("Panic(uint256)"))[:selectorLen]
)

// Kind labels the shape of one revert payload.
type Kind uint8

const (
	KindUnknown Kind = iota // unrecognized payload, rendered as hex
	KindError               // Error(string), a require or revert message
	KindPanic               // Panic(uint256), a compiler assertion code
)

// String returns a human-readable string for the payload kind.
func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindPanic:
		return "panic"
	}
	return "unknown"
}

// Reason is the decoded form of one revert payload. Raw references the
// original payload bytes.
type Reason struct {
	Kind    Kind
	Message string       // set for KindError
	Code    *uint256.Int // set for KindPanic
	Raw     []byte
}

// Decode classifies data into one of the three payload kinds. Every
// input classifies; the only error is ErrInvalidRevertReason for an
// Error(string) payload whose self-reported string length exceeds the
// bytes actually present. Trailing padding beyond the reported length
// is accepted, some encoders emit it.
func Decode(data []byte) (Reason, error) {
	if len(data) >= selectorLen {
		selector := data[:selectorLen]
		switch {
		case bytes.Equal(selector, errorSelector) && len(data) >= minErrorLen:
			// The string header sits at its canonical position: the
			// length word at [36:68), content from 68. The offset word
			// at [4:36) is not interpreted.
			length := new(uint256.Int).SetBytes(data[selectorLen+wordLen : minErrorLen])
			if !length.IsUint64() || length.Uint64() > uint64(len(data)-minErrorLen) {
				return Reason{}, ErrInvalidRevertReason
			}
			message := data[minErrorLen : minErrorLen+int(length.Uint64())]
			return Reason{Kind: KindError, Message: string(message), Raw: data}, nil

		case bytes.Equal(selector, panicSelector) && len(data) == panicLen:
			code := new(uint256.Int).SetBytes(data[selectorLen:])
			return Reason{Kind: KindPanic, Code: code, Raw: data}, nil
		}
	}
	return Reason{Kind: KindUnknown, Raw: data}, nil
}

// Render formats the reason with a display prefix:
//
//	{prefix}Error({message})   for string revert reasons
//	{prefix}Panic({code})      with the code as a full 32-byte hex word
//	{prefix}Unknown({data})    with the payload hex-encoded verbatim
func (r Reason) Render(prefix string) string {
	switch r.Kind {
	case KindError:
		return prefix + "Error(" + r.Message + ")"
	case KindPanic:
		return prefix + "Panic(" + stringutil.ToHexUint256(r.Code) + ")"
	}
	return prefix + "Unknown(" + stringutil.ToHex(r.Raw) + ")"
}

// Parse decodes and renders data without a display prefix.
func Parse(data []byte) (string, error) {
	return ParseWithPrefix(data, "")
}

// ParseWithPrefix decodes and renders data in one step.
func ParseWithPrefix(data []byte, prefix string) (string, error) {
	reason, err := Decode(data)
	if err != nil {
		return "", err
	}
	return reason.Render(prefix), nil
}
