package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2wiki <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Convert a markdown vault into one HTML wiki")
	fmt.Fprintln(w, "  check      List cross-references and where they lead")
	fmt.Fprintln(w, "  resolve    Show which note a reference opens")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2wiki help <command>' for details on a specific command.")
}

func printVaultFlags(w io.Writer) {
	fmt.Fprintln(w, "Vault:")
	fmt.Fprintln(w, "      --ignore <names>      Directory names to skip (repeatable)")
	fmt.Fprintln(w, "  -e, --engine <s>          Markdown engine: classic, goldmark")
	fmt.Fprintln(w, "      --lists <s>           List wrapping: first, all")
	fmt.Fprintln(w, "      --titles <s>          Display names: filename, heading, frontmatter")
	fmt.Fprintln(w, "      --front-matter        Strip YAML front matter before converting")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-note progress")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2wiki build <vault> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every note in a vault into one self-contained HTML file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  vault    Vault directory (optional if config has input.dir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (default wiki.html)")
	fmt.Fprintln(w, "  -t, --title <s>           Page title")
	fmt.Fprintln(w, "      --theme <s>           Initial theme: light, dark")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style for the goldmark engine")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory overriding embedded assets")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Watch:")
	fmt.Fprintln(w, "  -w, --watch               Rebuild when notes change")
	fmt.Fprintln(w, "      --debounce <d>        Quiet period before a rebuild (default 200ms)")
	fmt.Fprintln(w)
	printVaultFlags(w)
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2wiki check <vault> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resolve every cross-reference and print 'source -> reference: target'.")
	fmt.Fprintln(w, "Exits with status 4 when any reference finds no note.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report:")
	fmt.Fprintln(w, "  -u, --unresolved          List only unresolved references")
	fmt.Fprintln(w)
	printVaultFlags(w)
}

// printResolveUsage prints usage for the resolve command.
func printResolveUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2wiki resolve <vault> <reference> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the identifier, matching phase, and path of the note a")
	fmt.Fprintln(w, "reference opens. Exits with status 4 when nothing matches.")
	fmt.Fprintln(w)
	printVaultFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, w io.Writer) error {
	if len(args) == 0 {
		printUsage(w)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(w)
	case "check":
		printCheckUsage(w)
	case "resolve":
		printResolveUsage(w)
	case "version":
		fmt.Fprintln(w, "Usage: md2wiki version")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show version information.")
	case "help", "-h", "--help":
		fmt.Fprintln(w, "Usage: md2wiki help [command]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show help for a command.")
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	return nil
}
