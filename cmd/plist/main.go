// plist builds a persistent list from its arguments, applies edits to it and prints
// the result. Every edit derives a new list from the previous one; the CLI exists to
// explore the behaviour and the internal shape of persistent lists.
//
// Usage:
//
//	plist [flags] [ELEMENT...]
//
// Edits are applied in the fixed order insert, set, remove-at, remove, add, clear.
// Within each kind, edits are applied in the order given on the command line.
package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/npillmayer/immutable/persistent/list"
	"github.com/npillmayer/immutable/persistent/vector"
)

// tracer traces with key 'fp.plist'.
func tracer() tracing.Trace {
	return tracing.Select("fp.plist")
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// defaultDegree is the degree exponent lists are built with.
const defaultDegree = 5

type options struct {
	add, insert, set, remove []string
	removeAt                 []int
	clear                    bool
	degree                   int
	tree, digest, stdin      bool
	format                   string
	traceLevel               string
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("plist", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringArrayVar(&opts.add, "add", nil, "append `value` (repeatable)")
	flagSet.StringArrayVar(&opts.insert, "insert", nil, "insert at a position, given as `index=value` (repeatable)")
	flagSet.StringArrayVar(&opts.set, "set", nil, "replace at a position, given as `index=value` (repeatable)")
	flagSet.StringArrayVar(&opts.remove, "remove", nil, "remove first occurrence of `value` (repeatable)")
	flagSet.IntSliceVar(&opts.removeAt, "remove-at", nil, "remove element at `index` (repeatable)")
	flagSet.BoolVar(&opts.clear, "clear", false, "clear the list after all other edits")
	flagSet.IntVar(&opts.degree, "degree", defaultDegree, "degree exponent for --tree; other than 5 shows a rebuild, not the edited list (1…5)")
	flagSet.BoolVar(&opts.tree, "tree", false, "print the internal tree of the result")
	flagSet.BoolVar(&opts.digest, "digest", false, "print the BLAKE3 digest of the result")
	flagSet.BoolVar(&opts.stdin, "stdin", false, "read initial elements as a YAML or JSON array from stdin")
	flagSet.StringVar(&opts.format, "format", "text", "output format: text, json, yaml or cbor-hex")
	flagSet.StringVar(&opts.traceLevel, "trace-level", "error", "trace level: error, info or debug")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet, stdout)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet, stdout)
		return nil
	}
	if err := setTraceLevel(opts.traceLevel); err != nil {
		return err
	}

	l := list.Empty[string]()
	if opts.stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("cannot read stdin: %w", err)
		}
		if err := yaml.Unmarshal(data, &l); err != nil {
			return fmt.Errorf("cannot parse elements from stdin: %w", err)
		}
	}
	l = l.AddSlice(flagSet.Args()...)
	tracer().Debugf("initial list has %d elements", l.Len())

	l, err := edit(l, opts)
	if err != nil {
		return err
	}
	return render(stdout, l, opts)
}

func edit(l list.List[string], opts options) (list.List[string], error) {
	var err error
	for _, arg := range opts.insert {
		i, value, perr := indexed(arg)
		if perr != nil {
			return l, perr
		}
		if l, err = l.Insert(i, value); err != nil {
			return l, err
		}
	}
	for _, arg := range opts.set {
		i, value, perr := indexed(arg)
		if perr != nil {
			return l, perr
		}
		if l, err = l.Set(i, value); err != nil {
			return l, err
		}
	}
	for _, i := range opts.removeAt {
		if l, err = l.RemoveAt(i); err != nil {
			return l, err
		}
	}
	for _, value := range opts.remove {
		l = l.Remove(value)
	}
	for _, value := range opts.add {
		l = l.Add(value)
	}
	if opts.clear {
		l = l.Clear()
	}
	return l, nil
}

// indexed splits an argument of the form index=value.
func indexed(arg string) (int, string, error) {
	inx, value, found := strings.Cut(arg, "=")
	if !found {
		return 0, "", fmt.Errorf("malformed edit %q: expected index=value", arg)
	}
	i, err := strconv.Atoi(inx)
	if err != nil {
		return 0, "", fmt.Errorf("malformed index in %q: %w", arg, err)
	}
	return i, value, nil
}

func render(w io.Writer, l list.List[string], opts options) error {
	switch opts.format {
	case "text":
		fmt.Fprintln(w, l.String())
	case "json":
		data, err := json.Marshal(l)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		data, err := yaml.Marshal(l)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(data))
	case "cbor-hex":
		data, err := l.MarshalCBOR()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, hex.EncodeToString(data))
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
	if opts.digest {
		d, err := l.Digest()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "blake3:%x\n", d)
	}
	if opts.tree {
		if opts.degree == defaultDegree {
			fmt.Fprint(w, l.Dump())
		} else {
			tracer().Infof("tree is rebuilt with degree exponent %d", opts.degree)
			fmt.Fprint(w, vector.FromSlice(l.ToSlice(), vector.DegreeExponent(opts.degree)).Dump())
		}
	}
	return nil
}

func setTraceLevel(level string) error {
	var tl tracing.TraceLevel
	switch level {
	case "error":
		tl = tracing.LevelError
	case "info":
		tl = tracing.LevelInfo
	case "debug":
		tl = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	for _, key := range []string{"fp.plist", "fp.list", "fp.vector"} {
		tracing.Select(key).SetTraceLevel(tl)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `plist derives persistent lists from the command line.

Usage:
  plist [flags] [ELEMENT...]

Edits are applied in the order insert, set, remove-at, remove, add, clear.

Examples:
  plist --add z --set 0=y x
  echo '[a, b, c]' | plist --stdin --remove-at 1 --format json --digest

Flags:
%s`, flagSet.FlagUsages())
}
