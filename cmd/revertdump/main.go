// revertdump renders the return data of a failed EVM call as a
// printable revert reason.
//
// The data may be passed as the only argument or piped on stdin, with
// or without a 0x prefix:
//
//	revertdump 0x08c379a0...
//	cast call ... | revertdump --prefix "swap failed: "
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/1inch/1inch-solidity-utils/revertreason"
)

var app = &cli.App{
	Name:      "revertdump",
	Usage:     "decode EVM revert return data",
	ArgsUsage: "<hex data>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "prepend `text` to the rendered reason",
		},
	},
	Action: dump,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// panicCodes maps the panic codes solc emits to their meaning.
var panicCodes = map[uint64]string{
	0x00: "generic compiler panic",
	0x01: "assertion failed",
	0x11: "arithmetic overflow or underflow",
	0x12: "division or modulo by zero",
	0x21: "conversion into an invalid enum value",
	0x22: "corrupted storage byte array",
	0x31: "pop on an empty array",
	0x32: "array index out of bounds",
	0x41: "allocation of too much memory",
	0x51: "call to an uninitialized internal function",
}

func dump(ctx *cli.Context) error {
	input, err := readInput(ctx)
	if err != nil {
		return err
	}
	data, err := parseData(input)
	if err != nil {
		return err
	}
	reason, err := revertreason.Decode(data)
	if err != nil {
		return err
	}
	fmt.Println(reason.Render(ctx.String("prefix")))

	if reason.Kind == revertreason.KindPanic && reason.Code.IsUint64() {
		if name, ok := panicCodes[reason.Code.Uint64()]; ok {
			fmt.Printf("panic code 0x%02x: %s\n", reason.Code.Uint64(), name)
		}
	}
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

// parseData accepts hex with or without a 0x prefix. Empty input is
// valid, calls can revert without a payload.
func parseData(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return data, nil
}
