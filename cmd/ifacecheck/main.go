// Command ifacecheck verifies the declarative contracts of a manifest file:
// it declares every interface, defines every candidate type, and reports each
// conformance failure in full.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"iface/iface-go/pkg/contract"
	"iface/iface-go/pkg/manifest"
)

const cliToolVersion = "ifacecheck 0.1.0"

const defaultManifest = "contracts.yml"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "verify":
		return runVerify(args[1:])
	case "doc":
		return runDoc(args[1:])
	default:
		return runVerify(args)
	}
}

func runVerify(args []string) int {
	path := defaultManifest
	for _, arg := range args {
		switch {
		case arg == "--verbose" || arg == "-v":
			enableDebugLogging()
		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n", arg)
			return 1
		default:
			path = arg
		}
	}

	declared, ok := loadAndDeclare(path)
	if !ok {
		return 1
	}

	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()
	failures := 0
	for _, result := range declared.Results {
		if result.Err == nil {
			fmt.Fprintf(os.Stdout, "%s  %s\n", pass("ok"), result.Type)
			continue
		}
		failures++
		fmt.Fprintf(os.Stdout, "%s  %s\n%s\n", fail("FAIL"), result.Type, indent(result.Err.Error()))
	}
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d types failed verification\n", failures, len(declared.Results))
		return 1
	}
	return 0
}

func runDoc(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "ifacecheck doc requires an interface name")
		return 1
	}
	name := args[0]
	path := defaultManifest
	if len(args) > 1 {
		path = args[1]
	}

	declared, ok := loadAndDeclare(path)
	if !ok {
		return 1
	}
	iface, found := declared.Interfaces[name]
	if !found {
		fmt.Fprintf(os.Stderr, "interface %s is not declared in %s\n", name, path)
		return 1
	}
	base, err := contract.Implements(iface)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	fmt.Fprintln(os.Stdout, base.Doc())
	return 0
}

func loadAndDeclare(path string) (*manifest.Declared, bool) {
	m, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return nil, false
	}
	declared, err := m.Declare()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return nil, false
	}
	return declared, true
}

func enableDebugLogging() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
	contract.SetLogger(logger)
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}

func printUsage() {
	fmt.Fprintln(os.Stderr, strings.TrimSpace(`
Usage: ifacecheck <command> [arguments]

Commands:
  verify [path] [--verbose]   verify every type in the manifest (default contracts.yml)
  doc <interface> [path]      print the generated documentation for an interface
  version                     print the tool version
  help                        show this message
`))
}
