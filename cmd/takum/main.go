// Command takum encodes, decodes and converts takum words.
//
//	takum encode -e log16 3.14159 -1e-5
//	takum decode -e linear32 --exact 0x40000000
//	takum convert -e log32 --to log8 0x4243f6a8
//	takum consts -e log64
//	takum partition
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/avdva/takum"
	"github.com/avdva/takum/internal/codec"
)

type options struct {
	encoding string
	to       string
	exact    bool
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "takum",
		Short:         "Inspect takum numbers",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
		},
	}
	addGlobalFlags(root.PersistentFlags(), opts)

	decode := &cobra.Command{
		Use:   "decode WORD...",
		Short: "Decode words into fields and values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd.OutOrStdout(), opts, args)
		},
	}
	decode.Flags().BoolVar(&opts.exact, "exact", false, "print exact decimal values")

	convert := &cobra.Command{
		Use:   "convert WORD...",
		Short: "Convert words to another encoding",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), opts, args)
		},
	}
	convert.Flags().StringVar(&opts.to, "to", "log16", "destination encoding")

	root.AddCommand(
		&cobra.Command{
			Use:   "encode NUMBER...",
			Short: "Encode decimal or hexadecimal numbers",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runEncode(cmd.OutOrStdout(), opts, args)
			},
		},
		decode,
		convert,
		&cobra.Command{
			Use:   "consts",
			Short: "Print the named constants",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConsts(cmd.OutOrStdout(), opts)
			},
		},
		&cobra.Command{
			Use:   "partition",
			Short: "Print the characteristic interval of every direction and regime",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPartition(cmd.OutOrStdout())
			},
		},
	)
	return root
}

func addGlobalFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVarP(&opts.encoding, "encoding", "e", "log16", "takum encoding: log8..log64 or linear8..linear64")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
}

func (o *options) enc() (takum.Encoding, error) {
	e, err := takum.ParseEncoding(o.encoding)
	if err != nil {
		return e, err
	}
	log.Debugf("using encoding %s", e)
	return e, nil
}

// parseWord parses a word given in any base accepted by strconv with a 0 base.
// Negative numbers are taken as signed words.
func parseWord(e takum.Encoding, s string) (uint64, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		u, uerr := strconv.ParseUint(s, 0, 64)
		if uerr != nil {
			return 0, fmt.Errorf("bad word %q: %w", s, err)
		}
		v = int64(u)
	}
	w := e.Word(v)
	if e.Int64(w) != v && w != uint64(v) {
		return 0, fmt.Errorf("word %s doesn't fit %d bits", s, e.Width())
	}
	return w, nil
}

func hexWord(e takum.Encoding, w uint64) string {
	return fmt.Sprintf("0x%0*x", e.Width()/4, w)
}

func runEncode(out io.Writer, opts *options, args []string) error {
	e, err := opts.enc()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, arg := range args {
		w, err := e.Parse(arg)
		if err != nil {
			return err
		}
		if e.IsNaR(w) {
			log.Warningf("%q is not a real number", arg)
		}
		log.Debugf("%q encoded as %#x", arg, w)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", arg, hexWord(e, w), e.Text(w))
	}
	return tw.Flush()
}

func runDecode(out io.Writer, opts *options, args []string) error {
	e, err := opts.enc()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "word\tS\tD\tR\tC\tM\tc\tp\tvalue")
	for _, arg := range args {
		w, err := parseWord(e, arg)
		if err != nil {
			return err
		}
		value := e.Text(w)
		if opts.exact && !e.IsNaR(w) {
			d, err := e.Decimal(w)
			if err != nil {
				return err
			}
			value = d.String()
		}
		f, ok := e.Fields(w)
		if !ok {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t-\t-\t%s\n", hexWord(e, w), value)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n", hexWord(e, w),
			b2i(f.Sign), b2i(f.D), f.R, f.C, f.M, f.Characteristic(e.Width()), e.Precision(w), value)
	}
	return tw.Flush()
}

func runConvert(out io.Writer, opts *options, args []string) error {
	from, err := opts.enc()
	if err != nil {
		return err
	}
	to, err := takum.ParseEncoding(opts.to)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, arg := range args {
		w, err := parseWord(from, arg)
		if err != nil {
			return err
		}
		res := from.Convert(w, to)
		if back := to.Convert(res, from); back != w {
			log.Debugf("%s: conversion to %s is inexact", hexWord(from, w), to)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", hexWord(from, w), from.Text(w), hexWord(to, res), to.Text(res))
	}
	return tw.Flush()
}

func runConsts(out io.Writer, opts *options) error {
	e, err := opts.enc()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, c := range takum.Constants() {
		w := e.Constant(c)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c, hexWord(e, w), e.Text(w))
	}
	return tw.Flush()
}

func runPartition(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "D\tR\tr\tlo\thi")
	for _, iv := range codec.Partition() {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\n", b2i(iv.D), iv.R, codec.RegimeBits(iv.D, iv.R), iv.Lo, iv.Hi)
	}
	return tw.Flush()
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
