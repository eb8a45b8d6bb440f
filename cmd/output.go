package cmd

import (
	"fmt"
	"io"
	"os"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Status lines share one layout, "  <icon>  [name] msg", so quill's output
// lines up across commands. Errors go to stderr, everything else to stdout.
//
// Icon semantics:
//
//	✓  success / healthy
//	✗  error / failure
//	⚠  warning
//	○  skipped / not applicable
//	-  not found / missing
//	~  neutral info / progress

// printSection prints a top-level section header, e.g. "=== Style Guide ===".
func printSection(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

// printStatus writes one status line; name is omitted when empty.
func printStatus(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
		return
	}
	fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
}

func printOK(name, msg string)   { printStatus(os.Stdout, "✓", name, msg) }
func printErr(name, msg string)  { printStatus(os.Stderr, "✗", name, msg) }
func printWarn(name, msg string) { printStatus(os.Stdout, "⚠", name, msg) }
func printSkip(name, msg string) { printStatus(os.Stdout, "○", name, msg) }
func printMiss(name, msg string) { printStatus(os.Stdout, "-", name, msg) }
func printInfo(name, msg string) { printStatus(os.Stdout, "~", name, msg) }
