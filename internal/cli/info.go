package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roboco-io/pnmedit/internal/ir"
	"github.com/roboco-io/pnmedit/internal/pipeline"
)

var (
	infoFormat      string
	infoPrettyPrint bool
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show the header of a NetPBM image",
	Long: `Decode a NetPBM image and print its format tag, comment, dimensions
and declared max value. The whole file is decoded, so truncated or
malformed bodies are reported as errors.

Examples:
  pnmedit info photo.ppm
  pnmedit info photo.ppm --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().StringVarP(&infoFormat, "format", "f", "text", "output format (text, json)")
	infoCmd.Flags().BoolVar(&infoPrettyPrint, "pretty", true, "indent JSON output")

	rootCmd.AddCommand(infoCmd)
}

// imageInfo is the summary printed by the info command.
type imageInfo struct {
	File     string `json:"file"`
	Format   string `json:"format"`
	Encoding string `json:"encoding"`
	Color    bool   `json:"color"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MaxValue int    `json:"max_value"`
	Comment  string `json:"comment,omitempty"`
}

func newImageInfo(path string, img *ir.Image) imageInfo {
	return imageInfo{
		File:     path,
		Format:   img.Format.String(),
		Encoding: img.Format.Encoding().String(),
		Color:    img.Format.IsColor(),
		Width:    img.Width,
		Height:   img.Height,
		MaxValue: img.MaxValue,
		Comment:  img.Comment,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	img, err := pipeline.Load(args[0], cfg.DecodeOptions())
	if err != nil {
		return err
	}

	return writeInfo(cmd.OutOrStdout(), newImageInfo(args[0], img), infoFormat)
}

func writeInfo(w io.Writer, info imageInfo, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		if infoPrettyPrint {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(info)

	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "File:\t%s\n", info.File)
		fmt.Fprintf(tw, "Format:\t%s (%s)\n", info.Format, info.Encoding)
		fmt.Fprintf(tw, "Size:\t%dx%d\n", info.Width, info.Height)
		fmt.Fprintf(tw, "Max value:\t%d\n", info.MaxValue)
		if info.Comment != "" {
			fmt.Fprintf(tw, "Comment:\t%s\n", info.Comment)
		}
		return tw.Flush()

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
