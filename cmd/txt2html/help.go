package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2html [convert] <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert text files to HTML (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'txt2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2html [convert] <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert plain text files to minimal HTML documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Text file, directory, or - for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --title <s>           Document title (default: input file name)")
	fmt.Fprintln(w, "      --encoding <s>        Source encoding: utf-8, windows-1252, ...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Hooks:")
	fmt.Fprintln(w, "      --hook <stage=name>   Add a hook (repeatable)")
	fmt.Fprintln(w, "                            Stages: title, after_title, before_pre, pre, after_pre")
	fmt.Fprintln(w, "                            Names: linkify, url2img, style:NAME, snippet:NAME,")
	fmt.Fprintln(w, "                            or a command defined in the config file")
	fmt.Fprintln(w, "      --no-hooks            Ignore hooks from config")
	fmt.Fprintln(w, "      --linkify             Same as --hook pre=linkify")
	fmt.Fprintln(w, "      --images              Same as --hook pre=url2img")
	fmt.Fprintln(w, "      --style <name>        Same as --hook after_title=style:NAME")
	fmt.Fprintln(w, "      --date <s>            Date for snippets: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sync:")
	fmt.Fprintln(w, "  -f, --force               Convert even when output is up to date")
	fmt.Fprintln(w, "      --copy-other          Copy non-text files in directory mode")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: txt2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: txt2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
