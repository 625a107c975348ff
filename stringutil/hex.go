// Package stringutil provides the hex rendering helpers shared by the
// decoding code in this repository.
//
// All output is 0x-prefixed lowercase hexadecimal, two characters per
// byte, matching the canonical rendering used on-chain.
package stringutil

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// ToHex renders data verbatim. Empty input renders as "0x".
func ToHex(data []byte) string {
	return hexutil.Encode(data)
}

// ToHexUint256 renders v as a full 32-byte big-endian word, zero-padded
// to 64 hex characters.
func ToHexUint256(v *uint256.Int) string {
	word := v.Bytes32()
	return ToHex(word[:])
}

// ToHexAddress renders the 20 raw address bytes. Unlike
// common.Address.Hex it applies no checksum casing.
func ToHexAddress(addr common.Address) string {
	return ToHex(addr.Bytes())
}
