package netpbm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roboco-io/pnmedit/internal/ir"
)

// Header is the text preamble of a NetPBM file.
type Header struct {
	Format   ir.Format
	Comment  string
	Width    int
	Height   int
	MaxValue int // 0 when the max-value line is not numeric
}

// ReadHeader parses the header lines and leaves br positioned at the first
// body byte.
func ReadHeader(br *bufio.Reader) (*Header, error) {
	h := &Header{}

	// Format tag
	tag, err := readLine(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing format tag", ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("reading format tag: %w", err)
	}
	tag = strings.TrimSpace(tag)
	format, ok := ir.ParseMagic(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, tag)
	}
	h.Format = format

	// Comment block, then the dimensions line
	var comments []string
	var dims string
	for {
		line, err := readLine(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: missing dimensions", ErrMalformedHeader)
			}
			return nil, fmt.Errorf("reading header: %w", err)
		}
		if strings.HasPrefix(line, "#") {
			comments = append(comments, line)
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		dims = line
		break
	}
	h.Comment = strings.Join(comments, "\n")

	h.Width, h.Height, err = parseDimensions(dims)
	if err != nil {
		return nil, err
	}

	// Max value: read and kept for reference only
	maxLine, err := readLine(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing max value line", ErrTruncatedData)
		}
		return nil, fmt.Errorf("reading max value: %w", err)
	}
	if v, err := strconv.Atoi(strings.TrimSpace(maxLine)); err == nil {
		h.MaxValue = v
	}

	return h, nil
}

// WriteHeader writes the tag, comment, dimensions and a literal 255 max value.
func WriteHeader(w io.Writer, h *Header) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%d %d\n255\n", h.Format, h.Comment, h.Width, h.Height)
	return err
}

func parseDimensions(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected \"<width> <height>\", got %q", ErrMalformedHeader, line)
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("%w: invalid width %q", ErrMalformedHeader, fields[0])
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("%w: invalid height %q", ErrMalformedHeader, fields[1])
	}
	return width, height, nil
}

// readLine returns the next line without its terminator. A final line
// without '\n' is returned as is; io.EOF is only reported for no data.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
