// Package main provides the quill CLI.
//
// The CLI supports:
//   - fmt: Re-indent SQL statements from files or stdin
//   - config: Show the effective configuration
//   - version: Print version information
//
// Formatting configuration is discovered from quill.yaml (walking up from
// the working directory) and can be overridden per invocation with flags
// or QUILL_* environment variables.
package main

func main() {
	Execute()
}
