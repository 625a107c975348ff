// traitsdump decodes a packed by-signature traits word and prints its
// fields.
//
// The word may be passed as the only argument or piped on stdin, with
// or without a 0x prefix:
//
//	traitsdump 0x8000000000ff00000000000000000000000000000000000000000000000001
//	echo 0x8000... | traitsdump
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/1inch/1inch-solidity-utils/bysig"
	"github.com/1inch/1inch-solidity-utils/stringutil"
)

var app = &cli.App{
	Name:      "traitsdump",
	Usage:     "decode a packed by-signature traits word",
	ArgsUsage: "<hex word>",
	Action:    dump,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dump(ctx *cli.Context) error {
	input, err := readInput(ctx)
	if err != nil {
		return err
	}
	word, err := parseWord(input)
	if err != nil {
		return err
	}
	traits := bysig.TraitsFromUint256(word)

	fmt.Printf("word:       %s\n", traits.Hex())
	if typ, err := traits.NonceType(); err != nil {
		fmt.Println("nonce type: invalid")
	} else {
		fmt.Printf("nonce type: %s\n", typ)
	}

	if deadline := traits.Deadline(); deadline == 0 {
		fmt.Println("deadline:   none")
	} else {
		fmt.Printf("deadline:   %d (%s)\n", deadline, time.Unix(int64(deadline), 0).UTC().Format(time.RFC3339))
	}

	if bits := traits.RelayerLowBits(); bits.IsZero() {
		fmt.Println("relayer:    unrestricted")
	} else {
		fmt.Printf("relayer:    low %d bits %s\n", bysig.RelayerBitWidth, stringutil.ToHex(bits.PaddedBytes(bysig.RelayerBitWidth/8)))
	}

	fmt.Printf("nonce:      %s\n", traits.Nonce().Dec())
	return nil
}

func readInput(ctx *cli.Context) (string, error) {
	if ctx.NArg() > 0 {
		return ctx.Args().First(), nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(raw), nil
}

// parseWord accepts the word with or without a 0x prefix and with any
// number of leading zeroes, as block explorers print storage words.
func parseWord(s string) (*uint256.Int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return nil, fmt.Errorf("empty input")
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	if len(raw) > 32 {
		return nil, fmt.Errorf("word is %d bytes, want at most 32", len(raw))
	}
	return new(uint256.Int).SetBytes(raw), nil
}
