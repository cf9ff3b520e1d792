package main

import (
	"fmt"

	"github.com/bjaus/colfmt"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootFlags struct {
	verbosity int
	cfgFile   string
	spacer    string
	width     int
	widths    []int
	aligns    []string
	overflow  string
	asYAML    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "colfmt [file...]",
		Short: "Lay out lines of text in columns",
		Long: `colfmt reads one item per line from the given files, or from standard
input, and prints them in as many columns as fit the terminal width, filling
each column top to bottom before moving to the next.

With --yaml the input is a YAML document: a mapping prints as a key column
and a value column, a sequence is laid out like lines.

Settings can also come from a YAML file (--config) or COLFMT_* environment
variables such as COLFMT_SPACER and COLFMT_WIDTH. Flags win.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
	}

	cmd.Flags().CountVarP(&flags.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	cmd.Flags().StringVar(&flags.cfgFile, "config", "", "YAML config file")
	cmd.Flags().StringVarP(&flags.spacer, "spacer", "s", colfmt.DefaultSpacer, "String placed between columns")
	cmd.Flags().IntVarP(&flags.width, "width", "w", 0, "Maximum line width (default: terminal width)")
	cmd.Flags().IntSliceVar(&flags.widths, "widths", nil, "Fixed width per column, 0 for automatic")
	cmd.Flags().StringSliceVar(&flags.aligns, "align", nil, "Alignment per column: left, right or center")
	cmd.Flags().StringVar(&flags.overflow, "overflow", colfmt.OverflowTruncate.String(), "Over-wide values: truncate, extend or wrap")
	cmd.Flags().BoolVar(&flags.asYAML, "yaml", false, "Read input as a YAML document")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "colfmt version %s\n", version)
		},
	}
}

func run(cmd *cobra.Command, args []string, flags rootFlags) error {
	logger := newLogger(flags.verbosity, cmd.ErrOrStderr())

	s, err := loadSettings(flags.cfgFile)
	if err != nil {
		return err
	}
	changed := cmd.Flags().Changed
	if changed("spacer") {
		s.Spacer = flags.spacer
	}
	if changed("width") {
		s.Width = flags.width
	}
	if changed("widths") {
		s.Widths = flags.widths
	}
	if changed("align") {
		s.Align = flags.aligns
	}
	if changed("overflow") {
		s.Overflow = flags.overflow
	}
	if changed("yaml") {
		s.YAML = flags.asYAML
	}

	width := s.Width
	if width <= 0 {
		width = colfmt.TerminalWidth()
	}
	opts, err := s.options(width)
	if err != nil {
		return err
	}

	src, err := readSource(cmd.InOrStdin(), args, s.YAML)
	if err != nil {
		return err
	}
	logger.Info().
		Int("items", src.Len()).
		Bool("pairs", src.IsPairs()).
		Strs("files", args).
		Msg("Input read")

	layout, err := colfmt.Arrange(src, opts...)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("width", width).
		Int("columns", len(layout)).
		Int("rows", layout.Rows()).
		Int("used", layout.Width(s.Spacer)).
		Msg("Layout chosen")

	_, err = colfmt.NewScreen(layout, s.Spacer).WriteTo(cmd.OutOrStdout())
	return err
}
