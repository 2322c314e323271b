package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/bjaus/colfmt"
	"github.com/bjaus/colfmt/internal/version"
)

type rootOptions struct {
	Header      bool
	NoSep       bool
	Columns     bool
	Align       string
	Delimiter   string
	Spacer      string
	Demo        bool
	Config      string
	Verbose     bool
	ShowVersion bool
}

// Execute runs the root command with os defaults.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the colfmt command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "colfmt [file...]",
		Short: "Format delimited text into aligned columns",
		Long: "colfmt reads delimited text from stdin or files and prints it as visually\n" +
			"aligned columns, optionally with a header row and a separator line.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ShowVersion {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Detailed())
				return err
			}
			return run(cmd, opts, args)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.Header, "header", false, "Treat the first row (or first field per line with --columns) as headings")
	flags.BoolVar(&opts.NoSep, "no-sep", false, "Suppress the dash separator line under the header")
	flags.BoolVar(&opts.Columns, "columns", false, "Treat each input line as one column instead of one row")
	flags.StringVarP(&opts.Align, "align", "a", "left", "Column alignment: left, right, center, auto, or a comma-separated per-column list")
	flags.StringVarP(&opts.Delimiter, "delimiter", "d", ",", "Input field delimiter (single character)")
	flags.StringVarP(&opts.Spacer, "spacer", "s", colfmt.DefaultSpacer, "String printed between columns")
	flags.BoolVar(&opts.Demo, "demo", false, "Ignore input and render a built-in example dataset")
	flags.StringVar(&opts.Config, "config", "", "YAML file with default option values")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging on stderr")
	flags.BoolVar(&opts.ShowVersion, "version", false, "Print build metadata and exit")

	return rootCmd
}

func run(cmd *cobra.Command, opts *rootOptions, files []string) error {
	setupLogging(cmd.ErrOrStderr(), opts.Verbose)

	if opts.Config != "" {
		if err := applyConfig(cmd, opts); err != nil {
			return err
		}
	}

	delim, err := parseDelimiter(opts.Delimiter)
	if err != nil {
		return err
	}
	tokens, err := parseAlignTokens(opts.Align)
	if err != nil {
		return err
	}

	model, err := buildModel(cmd, opts, files, delim, tokens)
	if err != nil {
		return err
	}
	if len(tokens) > 1 {
		model, err = overrideAligns(model, tokens)
		if err != nil {
			return err
		}
	}
	slog.Debug("model built", "columns", model.ColumnCount(), "rows", model.RowCount())

	renderOpts := []colfmt.Option{colfmt.Spacer(opts.Spacer)}
	if opts.NoSep {
		renderOpts = append(renderOpts, colfmt.HideSeparator())
	}

	out := cmd.OutOrStdout()
	if opts.Header || opts.Demo {
		_, err = fmt.Fprintln(out, colfmt.NewTable(model, renderOpts...))
		return err
	}
	_, err = fmt.Fprintln(out, colfmt.NewScreen(model, renderOpts...))
	return err
}

func buildModel(cmd *cobra.Command, opts *rootOptions, files []string, delim rune, tokens []alignToken) (*colfmt.Model, error) {
	if opts.Demo {
		return colfmt.DemoModel(), nil
	}

	// Per-column overrides need the detected alignments as their "auto"
	// baseline, so multi-token specs always construct with AutoAlign.
	spec := colfmt.AutoAlign()
	if len(tokens) == 1 && !tokens[0].auto {
		spec = colfmt.AlignAll(tokens[0].align)
	}

	in, cleanup, err := openInput(cmd, files)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if opts.Columns {
		return colfmt.FromColumnLines(in, delim, opts.Header, spec)
	}
	return colfmt.FromCSV(in, delim, opts.Header, spec)
}

func openInput(cmd *cobra.Command, files []string) (io.Reader, func(), error) {
	if len(files) == 0 {
		return cmd.InOrStdin(), func() {}, nil
	}
	readers := make([]io.Reader, 0, len(files))
	closers := make([]io.Closer, 0, len(files))
	cleanup := func() {
		for _, c := range closers {
			c.Close()
		}
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		readers = append(readers, f)
		closers = append(closers, f)
	}
	return io.MultiReader(readers...), cleanup, nil
}

func parseDelimiter(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: delimiter must be a single character, got %q", colfmt.ErrConfig, s)
	}
	return r, nil
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	})))
}
