// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/viamapa/viamapa/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
