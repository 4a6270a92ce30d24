// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	_ "github.com/tliron/commonlog/simple"
	"tern/cmd/tern-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrReported) {
			fmt.Fprintln(os.Stderr, color.RedString("error: %s", err))
		}
		os.Exit(1)
	}
}
