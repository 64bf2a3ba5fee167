package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quill-sql/quill/internal/cli"
	"github.com/quill-sql/quill/internal/sqlfmt"
)

var (
	fmtWrite     bool
	fmtIndent    int
	fmtLowercase bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file...]",
	Short: "Re-indent SQL statements",
	Long: `Re-indent SQL statements, one clause per line with uppercase keywords.

Reads from stdin when no files are given. Formatting only moves whitespace
and recases keywords outside string literals; statement semantics are
unchanged.`,
	Example: `  # Format stdin
  echo "select * from flights where origin = 'AMS'" | quill fmt

  # Format files to stdout
  quill fmt queries/report.sql

  # Rewrite files in place
  quill fmt --write queries/report.sql

  # Two-space indent, keep keyword case
  quill fmt --indent 2 --no-uppercase queries/report.sql`,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite files in place instead of printing")
	fmtCmd.Flags().IntVar(&fmtIndent, "indent", 0, "spaces per indent level (default: from config)")
	fmtCmd.Flags().BoolVar(&fmtLowercase, "no-uppercase", false, "keep keyword case as written")
	fmtCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"sql"}, cobra.ShellCompDirectiveFilterFileExt
	}
}

func runFmt(cmd *cobra.Command, args []string) error {
	opts := formatOptions(cmd)

	if len(args) == 0 {
		if fmtWrite {
			return cli.InputError("cannot use --write with stdin", nil)
		}
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return cli.InputError("reading stdin", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatText(string(input), opts))
		return nil
	}

	for _, path := range args {
		if err := formatFile(cmd, path, opts); err != nil {
			return err
		}
	}
	return nil
}

func formatOptions(cmd *cobra.Command) sqlfmt.Options {
	opts := sqlfmt.Options{
		Indent:    cfg.Format.IndentString(),
		Uppercase: cfg.Format.Uppercase,
	}
	if cmd.Flags().Changed("indent") && fmtIndent > 0 {
		opts.Indent = strings.Repeat(" ", fmtIndent)
	}
	if fmtLowercase {
		opts.Uppercase = false
	}
	return opts
}

func formatFile(cmd *cobra.Command, path string, opts sqlfmt.Options) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return cli.InputError("reading "+path, err)
	}

	out := formatText(string(input), opts)

	if fmtWrite {
		if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
			return cli.GeneralError("writing "+path, err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// formatText formats each semicolon-terminated statement independently so a
// file holding several statements keeps one blank line between them.
func formatText(input string, opts sqlfmt.Options) string {
	statements := strings.Split(input, ";")
	var formatted []string
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		formatted = append(formatted, sqlfmt.Format(stmt, opts)+";")
	}
	return strings.Join(formatted, "\n\n")
}
