package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
)

var heading = color.New(color.FgCyan, color.Bold)

// printPayload pretty-prints a raw registry payload. The registry answers
// with arbitrary JSON; anything that does not indent cleanly is printed
// as-is.
func printPayload(payload []byte) {
	var indented bytes.Buffer
	if err := json.Indent(&indented, payload, "", "  "); err != nil {
		fmt.Println(string(payload))

		return
	}

	fmt.Println(indented.String())
}
