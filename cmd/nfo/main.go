// nfo renders text read from stdin as a framed block-letter banner in the
// style of scene NFO files.
//
// Usage:
//
//	echo "HELLO" | nfo
//	echo "RELEASE" | nfo --preset ascii --border single --gradient sunset
//	echo "ACME" | nfo --nfo --group ACME --release "Tool v1.0" --date 2024-01-01
//	echo "BBS" | nfo --network-safe
//
// Settings resolve as: --network-safe override, flags, NFO_* environment
// variables, the YAML config file (.nfo.yaml or $XDG_CONFIG_HOME/nfo/config.yaml),
// then built-in defaults.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/nfo/internal/config"
	"github.com/dkoosis/nfo/internal/logging"
	"github.com/dkoosis/nfo/internal/version"
	"github.com/dkoosis/nfo/pkg/render"
)

const emptyInputMessage = "nfo: no input. Pipe or type some text into stdin."

// exitError carries a process exit code through cobra's error return.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if !ee.reported {
			fmt.Fprintf(stderr, "nfo: %v\n", ee.err)
		}
		return ee.code
	}
	// Flag and argument errors come straight from cobra.
	fmt.Fprintf(stderr, "nfo: %v\n", err)
	return 2
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var flags config.CliFlags

	cmd := &cobra.Command{
		Use:           "nfo",
		Short:         "Render stdin as a framed NFO-style text banner",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			markSetFlags(cmd, &flags)
			return runBanner(flags, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.SetOut(stderr)
		_ = c.Usage()
		return &exitError{code: 2, err: err}
	})

	f := cmd.Flags()
	f.StringVar(&flags.Preset, "preset", config.DefaultPreset, "raster preset: unicode, ansi, ascii")
	f.StringVar(&flags.Border, "border", config.DefaultBorder, "border style: double, single, ascii, rounded, thick, none")
	f.StringVar(&flags.Align, "align", config.DefaultAlign, "alignment: left, center (center applies with --border none)")
	f.StringVar(&flags.Palette, "gradient", config.DefaultPalette, "color palette: none, mono, cyan, magenta, grey, gradient, sunset, aurora, ember")
	f.StringVar(&flags.Font, "figlet-font", "", "FIGlet font name or .flf file; empty uses the built-in block font")
	f.IntVar(&flags.Wrap, "wrap", 0, "word-wrap input to this many characters before rendering (0 disables)")
	f.BoolVar(&flags.VTSafe, "vt-safe", false, "restrict colors to 8 basic SGR codes")
	f.BoolVar(&flags.NFO, "nfo", false, "append the NFO metadata block")
	f.StringVar(&flags.Title, "title", "", "caption in the top border")
	f.StringVar(&flags.Charset, "charset", config.DefaultCharset, "border charset: unicode, ascii")
	f.BoolVar(&flags.NetworkSafe, "network-safe", false, "force ascii output without color for BBS and telnet")
	f.StringVar(&flags.ConfigFile, "config", "", "path to a YAML config file")
	f.BoolVar(&flags.Debug, "debug", false, "enable debug logging")
	f.CountVarP(&flags.Verbosity, "verbose", "v", "increase log verbosity (-v, -vv, -vvv)")

	m := &flags.Metadata
	f.StringVar(&m.Release, "release", "", "NFO release name (env RELEASE)")
	f.StringVar(&m.Date, "date", "", "NFO release date (env DATE)")
	f.StringVar(&m.Supplier, "supplier", "", "NFO supplier (env SUPPLIER)")
	f.StringVar(&m.CrackedBy, "cracked-by", "", "NFO cracked by (env CRACKED_BY)")
	f.StringVar(&m.Group, "group", "", "NFO group, also the default caption (env GROUP)")
	f.StringVar(&m.URL, "url", "", "NFO URL (env URL)")
	f.StringVar(&m.Greets, "greets", "", "NFO greets (env GREETS)")
	f.StringVar(&m.Notes, "notes", "", "NFO notes (env NOTES)")

	cmd.AddCommand(newVersionCmd(stdout))
	return cmd
}

// markSetFlags records which flags the user passed so resolution can tell
// an explicit value from a flag default.
func markSetFlags(cmd *cobra.Command, flags *config.CliFlags) {
	changed := cmd.Flags().Changed
	flags.PresetSet = changed("preset")
	flags.BorderSet = changed("border")
	flags.AlignSet = changed("align")
	flags.PaletteSet = changed("gradient")
	flags.FontSet = changed("figlet-font")
	flags.CharsetSet = changed("charset")
	flags.WrapSet = changed("wrap")
	flags.VTSafeSet = changed("vt-safe")
	flags.NFOSet = changed("nfo")
}

func runBanner(flags config.CliFlags, stdin io.Reader, stdout, stderr io.Writer) error {
	log := logging.New(stderr, flags.Verbosity, flags.Debug || os.Getenv("NFO_DEBUG") != "")

	resolved, err := config.Resolver{Log: log}.Resolve(flags)
	if err != nil {
		return &exitError{code: 2, err: err}
	}
	if resolved.ConfigPath != "" {
		log.Info().Str("path", resolved.ConfigPath).Msg("using config file")
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		return &exitError{code: 2, err: fmt.Errorf("reading stdin: %w", err)}
	}

	opts := resolved.Options
	opts.TermWidth = termWidth(stdout)

	lines, err := render.NewBanner(opts, log).Render(string(input))
	if err != nil {
		if errors.Is(err, render.ErrEmptyInput) {
			fmt.Fprintln(stderr, emptyInputMessage)
			return &exitError{code: 1, err: err, reported: true}
		}
		return &exitError{code: 1, err: err}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(stdout, line); err != nil {
			return &exitError{code: 2, err: fmt.Errorf("writing output: %w", err)}
		}
	}
	return nil
}

// termWidth returns the column count used for centering: COLUMNS when set,
// else the size of the terminal behind w, else the default.
func termWidth(w io.Writer) int {
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return render.DefaultTermWidth
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of nfo",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(stdout, version.String())
		},
	}
}
