package bysig

// NonceType is a description of how the nonce of a signed call is scoped
// for replay protection.
type NonceType uint8

const (
	NonceTypeAccount  NonceType = iota // one sequence for all calls of the signer
	NonceTypeSelector                  // independent sequence per method selector
	NonceTypeUnique                    // one-time nonce, valid in any order
)

// String returns a human-readable string for the nonce type.
func (t NonceType) String() string {
	switch t {
	case NonceTypeAccount:
		return "account"
	case NonceTypeSelector:
		return "selector"
	case NonceTypeUnique:
		return "unique"
	}
	return "unknown"
}
