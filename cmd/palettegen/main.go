// palettegen - Material tonal palette generator
//
// palettegen matches a source colour against the Material golden palettes
// and interpolates a full tonal ramp around it.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/palettegen/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
