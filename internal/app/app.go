// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"kmervec-core/alphabet"
	"kmervec/internal/appcore"
	"kmervec/internal/cli"
	"kmervec/internal/cmdutil"
	"kmervec/internal/profile"
	"kmervec/internal/seqio"
	"kmervec/internal/version"
	"kmervec/internal/writers"
)

// flushCode flushes w and maps the result to an exit code.
func flushCode(w *bufio.Writer, stderr io.Writer, ok int) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return ok
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("kmervec")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		if errors.Is(err, cli.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw, "kmervec")
			return flushCode(outw, stderr, 0)
		}
		cmdutil.Errorf(stderr, "%v", err)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "kmervec version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	alpha, err := alphabet.Lookup(opts.Alphabet)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 2
	}

	coreOpts := appcore.Options{
		SeqFiles: opts.SeqFiles, Format: seqio.Format(opts.Format),
		Alphabet: alpha, K: opts.K,
		Sparse: opts.Store == "sparse", Layout: opts.Layout, Merge: opts.Merge,
		Threads: opts.Threads,
		Output:  opts.Output, Header: opts.Header,
		Profile: profile.Options{NonZero: opts.NonZero, Top: opts.Top},
		Quiet:   opts.Quiet, NoMatchExitCode: opts.NoMatchExitCode,
	}
	return runTyped(parent, opts.Type, stdout, stderr, coreOpts)
}

// runTyped picks the count element type named by --type.
func runTyped(ctx context.Context, typ string, stdout, stderr io.Writer, o appcore.Options) int {
	switch typ {
	case "int64":
		return appcore.Run[int64](ctx, stdout, stderr, o)
	case "int32":
		return appcore.Run[int32](ctx, stdout, stderr, o)
	case "int16":
		return appcore.Run[int16](ctx, stdout, stderr, o)
	case "uint64":
		return appcore.Run[uint64](ctx, stdout, stderr, o)
	case "uint32":
		return appcore.Run[uint32](ctx, stdout, stderr, o)
	case "uint16":
		return appcore.Run[uint16](ctx, stdout, stderr, o)
	case "uint8":
		return appcore.Run[uint8](ctx, stdout, stderr, o)
	}
	cmdutil.Errorf(stderr, "invalid --type %q", typ)
	return 2
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
