package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/backend/raster"
	"github.com/go-theft-auto/overlay/backend/vector"
)

// Output formats.
const (
	FormatPNG = "png"
	FormatPDF = "pdf"
	FormatSVG = "svg"
)

// target is a backend surface the commands draw into before writing it out.
type target interface {
	overlay.DrawSurface
	Text() overlay.TextMeasurer
	Clear(c overlay.Color)
	View() overlay.Vec2
}

// sheet couples a target with its encoder.
type sheet struct {
	target
	write func(io.Writer) error
	close func() error
}

// resolveFormat returns format, or the output extension when format is empty.
func resolveFormat(format, path string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch format {
	case FormatPNG, FormatPDF, FormatSVG:
		return format, nil
	case "":
		return FormatPNG, nil
	}
	return "", fmt.Errorf("unsupported format %q (want png, pdf or svg)", format)
}

// newSheet creates a width x height target for format.
func newSheet(format string, width, height int) (*sheet, error) {
	switch format {
	case FormatPNG:
		s, err := raster.New(width, height)
		if err != nil {
			return nil, err
		}
		return &sheet{target: s, write: s.EncodePNG, close: s.Close}, nil
	case FormatPDF, FormatSVG:
		s, err := vector.New(float64(width), float64(height))
		if err != nil {
			return nil, err
		}
		write := s.WritePDF
		if format == FormatSVG {
			write = s.WriteSVG
		}
		return &sheet{target: s, write: write, close: func() error { return nil }}, nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// save writes the sheet to path.
func (s *sheet) save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return s.write(f)
}
