// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"kmervec/internal/cliutil"
	"kmervec/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string
	Format   string // auto | fasta | fastq

	// Counting
	K        int
	Alphabet string // dna | rna | aa
	Type     string // element type of the counts
	Store    string // dense | sparse
	Layout   string // none | columns | rows
	Merge    bool

	// Performance
	Threads int

	// Output
	Output          string // text | tsv | json | jsonl
	NonZero         bool
	Top             int
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// Element types accepted by --type.
var ElementTypes = []string{"int64", "int32", "int16", "uint64", "uint32", "uint16", "uint8"}

// sliceValue appends each value to a *[]string (for --sequences/-s).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// NewFlagSet returns a ContinueOnError FlagSet with the kmervec usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { usage(fs.Output(), name, fs) }
	return fs
}

func usage(out io.Writer, name string, fs *flag.FlagSet) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}
	fmt.Fprintf(out, "%s – vectorized k-mer counting\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, "Usage:\n  %s -k K [options] seqs.fa [more.fa ...]\n", name)
	fmt.Fprintf(out, "  cat seqs.fa | %s -k 3 -\n", name)

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintln(out, "  -s, --sequences file        Sequence file(s) (repeatable) or '-' for STDIN")
	fmt.Fprintf(out, "      --format string         Input format: auto | fasta | fastq [%s]\n", def("format"))

	fmt.Fprintln(out, "\nCounting:")
	fmt.Fprintln(out, "  -k, --k int                 k-mer length (required)")
	fmt.Fprintf(out, "  -a, --alphabet string       Alphabet: dna | rna | aa [%s]\n", def("alphabet"))
	fmt.Fprintf(out, "      --type string           Count element type: %s [%s]\n", strings.Join(ElementTypes, " | "), def("type"))
	fmt.Fprintln(out, "                              Counts are not overflow-checked: a full counter wraps")
	fmt.Fprintln(out, "                              (unsigned to 0, signed ones go negative); prefer an unsigned type")
	fmt.Fprintf(out, "      --store string          Count storage: dense | sparse [%s]\n", def("store"))
	fmt.Fprintf(out, "      --layout string         Group all records in a count matrix: none | columns | rows [%s]\n", def("layout"))
	fmt.Fprintf(out, "      --merge                 Accumulate all records into a single profile [%s]\n", def("merge"))

	fmt.Fprintln(out, "\nPerformance:")
	fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Output: text | tsv | json | jsonl [%s]\n", def("output"))
	fmt.Fprintf(out, "      --nonzero               Omit k-mers with a zero count [%s]\n", def("nonzero"))
	fmt.Fprintf(out, "      --top int               Keep only the N most frequent k-mers (0=all) [%s]\n", def("top"))
	fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
	fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no records were read [%s]\n", def("no-match-exit-code"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
	fmt.Fprintln(out, "      --examples              Print usage examples and exit")
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are sequence files; globs are expanded.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, examples, noHeader bool

	// Input
	seq := &sliceValue{dst: &opt.SeqFiles}
	fs.Var(seq, "sequences", "sequence file(s) (repeatable) or '-'")
	fs.Var(seq, "s", "alias of --sequences")
	fs.StringVar(&opt.Format, "format", "auto", "input format: auto | fasta | fastq")

	// Counting
	fs.IntVar(&opt.K, "k", 0, "k-mer length")
	fs.StringVar(&opt.Alphabet, "alphabet", "dna", "alphabet: dna | rna | aa")
	fs.StringVar(&opt.Alphabet, "a", "dna", "alias of --alphabet")
	fs.StringVar(&opt.Type, "type", "int64", "count element type")
	fs.StringVar(&opt.Store, "store", "dense", "count storage: dense | sparse")
	fs.StringVar(&opt.Layout, "layout", "none", "count matrix layout: none | columns | rows")
	fs.BoolVar(&opt.Merge, "merge", false, "accumulate all records into one profile")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0=all CPUs)")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output: text | tsv | json | jsonl")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.NonZero, "nonzero", false, "omit zero counts")
	fs.IntVar(&opt.Top, "top", 0, "keep only the N most frequent k-mers (0=all)")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no records were read")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&examples, "examples", false, "print usage examples and exit")
	fs.BoolVar(&help, "h", false, "show help")
	fs.BoolVar(&help, "help", false, "show help")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if examples {
		return opt, ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader
	posArgs = append(posArgs, fs.Args()...)
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.SeqFiles = append(opt.SeqFiles, exp...)
	}
	return opt, Validate(opt)
}

// Validate applies the CLI invariants.
func Validate(o Options) error {
	if o.K < 1 {
		return errors.New("-k must be ≥ 1")
	}
	if len(o.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	stdin := 0
	for _, f := range o.SeqFiles {
		if f == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("'-' (STDIN) may be given only once")
	}
	switch o.Alphabet {
	case "dna", "rna", "aa":
	default:
		return fmt.Errorf("invalid --alphabet %q", o.Alphabet)
	}
	if !contains(ElementTypes, o.Type) {
		return fmt.Errorf("invalid --type %q", o.Type)
	}
	switch o.Store {
	case "dense", "sparse":
	default:
		return fmt.Errorf("invalid --store %q", o.Store)
	}
	switch o.Layout {
	case "none", "columns", "rows":
	default:
		return fmt.Errorf("invalid --layout %q", o.Layout)
	}
	if o.Merge && o.Layout != "none" {
		return errors.New("--merge conflicts with --layout")
	}
	if o.Layout != "none" && o.Store == "sparse" {
		return errors.New("--layout requires --store dense")
	}
	switch o.Format {
	case "auto", "fasta", "fastq":
	default:
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	switch o.Output {
	case "text", "tsv", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.Top < 0 {
		return errors.New("--top must be ≥ 0")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
