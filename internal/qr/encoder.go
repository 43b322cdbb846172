// Package qr renders QR codes as SVG markup.
package qr

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	qrcode "github.com/skip2/go-qrcode"
	rscqr "rsc.io/qr"
)

// minDimension is the smallest image the desktop UI can lay out.
const minDimension = 200

// Encoder turns a text payload into SVG markup.
type Encoder interface {
	Encode(payload string) (string, error)
}

// Options controls symbol rendering. Zero values are replaced by the defaults.
// The colors default to black on white; other values let the shell theme the
// symbol.
type Options struct {
	MinDimension    int    // minimum width and height of the image, never below 200
	QuietZone       int    // light border, in modules
	DarkColor       string // module color
	LightColor      string // background color
	MaxPayloadBytes int    // payloads longer than this are rejected; <= 0 leaves the check to the symbol capacity
}

// DefaultOptions matches the rendering the desktop UI expects.
func DefaultOptions() Options {
	return Options{
		MinDimension: minDimension,
		QuietZone:    4,
		DarkColor:    "#000000",
		LightColor:   "#ffffff",
	}
}

// SVGEncoder encodes at error-correction level H and renders one path per symbol.
// It is stateless and safe for concurrent use.
type SVGEncoder struct {
	opts Options
}

// NewSVGEncoder creates an SVGEncoder. MinDimension is raised to 200 when smaller.
func NewSVGEncoder(opts Options) *SVGEncoder {
	def := DefaultOptions()
	if opts.MinDimension < minDimension {
		opts.MinDimension = minDimension
	}
	if opts.QuietZone < 0 {
		opts.QuietZone = def.QuietZone
	}
	if opts.DarkColor == "" {
		opts.DarkColor = def.DarkColor
	}
	if opts.LightColor == "" {
		opts.LightColor = def.LightColor
	}
	return &SVGEncoder{opts: opts}
}

var _ Encoder = (*SVGEncoder)(nil)

// Encode returns the SVG document for payload. Output is deterministic for a given payload.
// A payload beyond the symbol capacity, or beyond MaxPayloadBytes when set,
// fails with an EncodingError matching ErrPayloadTooLarge.
func (e *SVGEncoder) Encode(payload string) (string, error) {
	if e.opts.MaxPayloadBytes > 0 && len(payload) > e.opts.MaxPayloadBytes {
		return "", &EncodingError{
			Length: len(payload),
			Cause:  fmt.Errorf("%w: limit is %d bytes", ErrPayloadTooLarge, e.opts.MaxPayloadBytes),
		}
	}

	bitmap, err := symbol(payload)
	if err != nil {
		return "", &EncodingError{Length: len(payload), Cause: err}
	}
	return e.render(bitmap), nil
}

// symbol encodes payload at level H and returns its modules without a border.
func symbol(payload string) ([][]bool, error) {
	// go-qrcode refuses empty input; rsc.io/qr encodes it as an empty
	// numeric segment in a version 1 symbol.
	if payload == "" {
		code, err := rscqr.Encode("", rscqr.H)
		if err != nil {
			return nil, err
		}
		bitmap := make([][]bool, code.Size)
		for y := range bitmap {
			bitmap[y] = make([]bool, code.Size)
			for x := range bitmap[y] {
				bitmap[y][x] = code.Black(x, y)
			}
		}
		return bitmap, nil
	}

	// Any other failure means no version 40 symbol holds the payload.
	code, err := qrcode.New(payload, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadTooLarge, err)
	}
	code.DisableBorder = true
	return code.Bitmap(), nil
}

// moduleSize is the smallest whole unit that makes the image at least MinDimension wide.
func (e *SVGEncoder) moduleSize(modules int) int {
	total := modules + 2*e.opts.QuietZone
	unit := (e.opts.MinDimension + total - 1) / total
	if unit < 1 {
		unit = 1
	}
	return unit
}

func (e *SVGEncoder) render(bitmap [][]bool) string {
	modules := len(bitmap)
	unit := e.moduleSize(modules)
	size := (modules + 2*e.opts.QuietZone) * unit
	offset := e.opts.QuietZone * unit

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(size, size, 0, 0, size, size)
	canvas.Rect(0, 0, size, size, attr("fill", e.opts.LightColor))
	canvas.Path(pathData(bitmap, unit, offset),
		attr("fill", e.opts.DarkColor),
		attr("shape-rendering", "crispEdges"),
	)
	canvas.End()
	return buf.String()
}

// pathData emits one closed rectangle per horizontal run of dark modules.
func pathData(bitmap [][]bool, unit, offset int) string {
	var d strings.Builder
	for y, row := range bitmap {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			w := (x - start) * unit
			d.WriteString("M")
			d.WriteString(strconv.Itoa(offset + start*unit))
			d.WriteString(",")
			d.WriteString(strconv.Itoa(offset + y*unit))
			d.WriteString("h")
			d.WriteString(strconv.Itoa(w))
			d.WriteString("v")
			d.WriteString(strconv.Itoa(unit))
			d.WriteString("h-")
			d.WriteString(strconv.Itoa(w))
			d.WriteString("z")
		}
	}
	return d.String()
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}
