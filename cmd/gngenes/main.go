// Package main provides the gngenes CLI application.
// gngenes extracts genes per GO term from expression-result files,
// annotates them, and writes per-term and grouped reports.
package main

import (
	"github.com/gnames/gngenes/cmd"
)

func main() {
	cmd.Execute()
}
