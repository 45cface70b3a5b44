// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package main

import (
	"os"
)

func isTerminal(file *os.File) bool {
	return false
}
