// Package licet provides the command-line interface for the licet tool.
// It configures subcommands (detect, corpus), parses flags, and executes
// the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/licet/licet/cmd/licet"
//	func main() { licet.Execute() }
package licet
