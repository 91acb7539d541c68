// Package cli implements the pnmedit command line.
package cli

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"

	"github.com/roboco-io/pnmedit/internal/config"
	"github.com/roboco-io/pnmedit/internal/ir"
	"github.com/roboco-io/pnmedit/internal/pipeline"
	"github.com/roboco-io/pnmedit/internal/transform"
)

// ErrInvalidArgumentCount is returned when the positional arguments do not
// form a valid invocation.
var ErrInvalidArgumentCount = errors.New("invalid number of arguments")

var version = "dev"

var (
	configPath string
	outputDir  string
	verbose    bool
	quiet      bool

	// Legacy dashed spellings, e.g. "pnmedit --sepia --binary out in.ppm".
	opFlags  = map[transform.Operation]*bool{}
	encFlags = map[ir.Encoding]*bool{}
)

var rootCmd = &cobra.Command{
	Use:   "pnmedit [option] <outputtype> <basename> <inputfile>",
	Short: "Transform and re-encode NetPBM images",
	Long: `pnmedit reads a P2, P3, P5 or P6 image, applies at most one transform
and writes the result as ascii or binary NetPBM.

  Output Type   Output Description
  ascii         integer text numbers will be written for the data
  binary        integer numbers will be written in binary form

  Option Code   Option Description
  flipX         Flip the image on the X axis
  flipY         Flip the image on the Y axis
  rotateCW      Rotate the image clockwise
  rotateCCW     Rotate the image counter clockwise
  grayscale     Convert image to grayscale
  sepia         Antique a color image

Color output is written to <basename>.ppm, gray output to <basename>.pgm.
Options and output types may also be given with a leading "--".

Examples:
  pnmedit binary out photo.ppm
  pnmedit rotateCW ascii rotated photo.ppm
  pnmedit --sepia --binary antique photo.ppm`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pnmedit %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: ~/.pnmedit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet mode")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for relative output basenames")

	for _, name := range transform.List() {
		op, _ := transform.ParseOperation(name)
		opFlags[op] = rootCmd.Flags().Bool(name, false, "")
		_ = rootCmd.Flags().MarkHidden(name)
	}
	for _, enc := range []ir.Encoding{ir.EncodingASCII, ir.EncodingBinary} {
		encFlags[enc] = rootCmd.Flags().Bool(enc.String(), false, "")
		_ = rootCmd.Flags().MarkHidden(enc.String())
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if cmd == rootCmd {
			return fmt.Errorf("%w: %v", transform.ErrInvalidOption, err)
		}
		return err
	})

	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		if cmd == nil {
			cmd = rootCmd
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		if errors.Is(err, ErrInvalidArgumentCount) || errors.Is(err, transform.ErrInvalidOption) || errors.Is(err, ir.ErrInvalidEncoding) {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		}
	}
	return err
}

// invocation is a parsed "[option] <outputtype> <basename> <inputfile>".
type invocation struct {
	op       transform.Operation
	enc      ir.Encoding
	basename string
	input    string
}

// parseInvocation folds the legacy dashed flags back into the positional
// form and validates the result.
func parseInvocation(args []string) (*invocation, error) {
	var tokens []string
	for _, name := range transform.List() {
		op, _ := transform.ParseOperation(name)
		if *opFlags[op] {
			tokens = append(tokens, name)
		}
	}
	for _, enc := range []ir.Encoding{ir.EncodingASCII, ir.EncodingBinary} {
		if *encFlags[enc] {
			tokens = append(tokens, enc.String())
		}
	}
	tokens = append(tokens, args...)

	inv := &invocation{op: transform.OpNone}
	switch len(tokens) {
	case 3:
	case 4:
		op, err := transform.ParseOperation(tokens[0])
		if err != nil {
			return nil, err
		}
		inv.op = op
		tokens = tokens[1:]
	default:
		return nil, fmt.Errorf("%w: expected 3 or 4, got %d", ErrInvalidArgumentCount, len(tokens))
	}

	enc, err := ir.ParseEncoding(tokens[0])
	if err != nil {
		return nil, err
	}
	inv.enc = enc
	inv.basename = tokens[1]
	inv.input = tokens[2]
	return inv, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	inv, err := parseInvocation(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	dir := cfg.OutputDir
	if outputDir != "" {
		dir = outputDir
	}

	result, err := pipeline.Run(inv.input, pipeline.Options{
		Operation:  inv.op,
		Encoding:   inv.enc,
		Basename:   inv.basename,
		OutputDir:  dir,
		Extensions: cfg.Extensions,
		Decode:     cfg.DecodeOptions(),
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s, %dx%d)\n",
			result.OutputPath, result.Format, result.Width, result.Height)
	}
	return nil
}

// newLoader honours --config before falling back to the default location.
func newLoader() (*config.Loader, error) {
	if configPath != "" {
		return config.NewLoaderWithPath(configPath), nil
	}
	loader, err := config.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config loader: %w", err)
	}
	return loader, nil
}

func loadConfig() (*config.Config, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, err
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger writes to stderr; V(1) messages appear only in verbose mode.
func newLogger(cmd *cobra.Command, cfg *config.Config) logr.Logger {
	if quiet {
		return logr.Discard()
	}
	v := 0
	if verbose || cfg.Log.Verbose {
		v = 1
	}
	stdr.SetVerbosity(v)
	return stdr.New(log.New(cmd.ErrOrStderr(), "", 0)).WithName("pnmedit")
}
