// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/uasm/asm"
	"github.com/ezrec/uasm/isa"
	"github.com/ezrec/uasm/translate"
)

var f = translate.From

// options are the command line settings of a run.
type options struct {
	output  string
	width   int
	defines []string
	dump    bool
	force   bool
}

// newRootCmd creates the uasm command.
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "uasm [flags] source.asm",
		Short: "Assembler for the μASM instruction set",
		Long: `Uasm assembles a μASM source file into a flat binary image.

The source '-' reads from standard input. The image is written to
standard output unless -o names a file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog refuses to log until the Go flags are parsed.
			return flag.CommandLine.Parse(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "-", "binary output file")
	flags.IntVar(&opts.width, "width", 8, "default operand width (8 or 16)")
	flags.StringArrayVarP(&opts.defines, "define", "D", nil, "predefine NAME=VALUE")
	flags.BoolVar(&opts.dump, "dump", false, "dump symbols and listing to stderr")
	flags.BoolVar(&opts.force, "force", false, "write the binary to a terminal")

	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	return cmd
}

// predefine applies a NAME=VALUE definition to the assembler.
func predefine(assembler *asm.Assembler, define string) (err error) {
	name, value, ok := strings.Cut(define, "=")
	if !ok || len(name) == 0 {
		err = errors.New(f("-D %v: expected NAME=VALUE", define))
		return
	}

	n, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		err = fmt.Errorf("-D %v: %w", define, err)
		return
	}

	err = assembler.Predefine(name, n)

	return
}

func run(cmd *cobra.Command, opts *options, source string) (err error) {
	width, err := isa.ParseWidth(opts.width)
	if err != nil {
		return
	}

	assembler := &asm.Assembler{Width: width}
	for _, define := range opts.defines {
		err = predefine(assembler, define)
		if err != nil {
			return
		}
	}

	var input io.Reader = cmd.InOrStdin()
	if source != "-" {
		inf, err := os.Open(source)
		if err != nil {
			return err
		}
		defer inf.Close()
		input = inf
	}

	prog, err := assembler.Assemble(input)
	if err != nil {
		return fmt.Errorf("%v: %w", source, err)
	}

	glog.V(1).Infof("%v: %d bytes, %d symbols", source, len(prog.Binary), len(prog.Symbols))

	if opts.dump {
		dump(cmd.ErrOrStderr(), prog)
	}

	if opts.output == "-" {
		out := cmd.OutOrStdout()
		if file, ok := out.(*os.File); ok && isTerminal(file) && !opts.force {
			return errors.New(f("refusing to write binary to a terminal, use --force"))
		}
		_, err = out.Write(prog.Binary)
		return
	}

	err = os.WriteFile(opts.output, prog.Binary, 0o644)

	return
}

// dump prints the symbol table and listing.
func dump(w io.Writer, prog *asm.Program) {
	pp.Fprintf(w, "Symbols: %v\n", prog.Symbols)
	for stmt, data := range prog.Listing() {
		fmt.Fprintf(w, "%04x  %-16x  %5d  %v\n", stmt.Offset, data, stmt.LineNo, stmt.Instruction)
	}
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		glog.Exitf("%v", err)
	}
}
