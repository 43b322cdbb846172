package qr

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type svgDoc struct {
	XMLName xml.Name `xml:"svg"`
	Width   int      `xml:"width,attr"`
	Height  int      `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Rects   []struct {
		Fill string `xml:"fill,attr"`
	} `xml:"rect"`
	Paths []struct {
		D    string `xml:"d,attr"`
		Fill string `xml:"fill,attr"`
	} `xml:"path"`
}

func parseSVG(t *testing.T, markup string) svgDoc {
	t.Helper()
	var doc svgDoc
	require.NoError(t, xml.Unmarshal([]byte(markup), &doc))
	return doc
}

func TestSVGEncoder_Encode(t *testing.T) {
	enc := NewSVGEncoder(DefaultOptions())

	payloads := []string{
		"https://example.com",
		"a",
		"hello world, 你好",
		strings.Repeat("x", 1000),
	}
	for _, p := range payloads {
		out, err := enc.Encode(p)
		require.NoError(t, err)

		doc := parseSVG(t, out)
		assert.GreaterOrEqual(t, doc.Width, 200)
		assert.GreaterOrEqual(t, doc.Height, 200)
		assert.Equal(t, doc.Width, doc.Height)
		require.Len(t, doc.Rects, 1)
		assert.Equal(t, "#ffffff", doc.Rects[0].Fill)
		require.Len(t, doc.Paths, 1)
		assert.Equal(t, "#000000", doc.Paths[0].Fill)
		assert.NotEmpty(t, doc.Paths[0].D)
	}
}

func TestSVGEncoder_Deterministic(t *testing.T) {
	enc := NewSVGEncoder(DefaultOptions())

	a, err := enc.Encode("https://tauri.app")
	require.NoError(t, err)
	b, err := enc.Encode("https://tauri.app")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := enc.Encode("https://tauri.app/")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestSVGEncoder_CustomColors(t *testing.T) {
	enc := NewSVGEncoder(Options{MinDimension: 500, DarkColor: "#112233", LightColor: "#fafafa"})

	out, err := enc.Encode("colors")
	require.NoError(t, err)

	doc := parseSVG(t, out)
	assert.GreaterOrEqual(t, doc.Width, 500)
	assert.Equal(t, "#fafafa", doc.Rects[0].Fill)
	assert.Equal(t, "#112233", doc.Paths[0].Fill)
}

func TestSVGEncoder_PayloadTooLarge(t *testing.T) {
	enc := NewSVGEncoder(Options{MaxPayloadBytes: 16})

	_, err := enc.Encode(strings.Repeat("y", 17))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)

	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, 17, encErr.Length)

	_, err = enc.Encode(strings.Repeat("y", 16))
	assert.NoError(t, err)
}

func TestSVGEncoder_CapacityExceeded(t *testing.T) {
	// No configured limit: the symbol capacity decides.
	enc := NewSVGEncoder(Options{MaxPayloadBytes: 0})

	tests := []struct {
		name    string
		payload string
	}{
		{"bytes", strings.Repeat("z", 1274)},
		{"far beyond", strings.Repeat("z", 4000)},
		{"digits", strings.Repeat("7", 3058)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enc.Encode(tt.payload)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrPayloadTooLarge)

			var encErr *EncodingError
			require.True(t, errors.As(err, &encErr))
			assert.Equal(t, len(tt.payload), encErr.Length)
		})
	}
}

func TestSVGEncoder_UsesFullCapacity(t *testing.T) {
	enc := NewSVGEncoder(DefaultOptions())

	tests := []struct {
		name    string
		payload string
	}{
		{"bytes", strings.Repeat("z", 1273)},
		{"digits", strings.Repeat("0123456789", 300)},
		{"digits at the limit", strings.Repeat("7", 3057)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := enc.Encode(tt.payload)
			require.NoError(t, err)

			doc := parseSVG(t, out)
			assert.GreaterOrEqual(t, doc.Width, 200)
			assert.NotEmpty(t, doc.Paths[0].D)
		})
	}
}

func TestSVGEncoder_EmptyPayload(t *testing.T) {
	enc := NewSVGEncoder(DefaultOptions())

	out, err := enc.Encode("")
	require.NoError(t, err)

	doc := parseSVG(t, out)
	assert.GreaterOrEqual(t, doc.Width, 200)
	assert.Equal(t, doc.Width, doc.Height)
	require.Len(t, doc.Paths, 1)
	assert.NotEmpty(t, doc.Paths[0].D)

	again, err := enc.Encode("")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestSymbol_EmptyPayloadIsVersion1(t *testing.T) {
	bitmap, err := symbol("")
	require.NoError(t, err)

	require.Len(t, bitmap, 21)
	for _, row := range bitmap {
		assert.Len(t, row, 21)
	}
	// Finder pattern corners are dark.
	assert.True(t, bitmap[0][0])
	assert.True(t, bitmap[0][20])
	assert.True(t, bitmap[20][0])
}

func TestNewSVGEncoder_ClampsMinDimension(t *testing.T) {
	for _, dim := range []int{-1, 0, 10, 199} {
		enc := NewSVGEncoder(Options{MinDimension: dim})
		assert.Equal(t, 200, enc.opts.MinDimension)

		out, err := enc.Encode("tiny")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, parseSVG(t, out).Width, 200)
	}

	assert.Equal(t, 640, NewSVGEncoder(Options{MinDimension: 640}).opts.MinDimension)
}

func TestModuleSize(t *testing.T) {
	enc := NewSVGEncoder(DefaultOptions())

	// 21 modules + 8 quiet = 29; ceil(200/29) = 7
	assert.Equal(t, 7, enc.moduleSize(21))
	// 177 modules + 8 quiet = 185; ceil(200/185) = 2
	assert.Equal(t, 2, enc.moduleSize(177))

	large := NewSVGEncoder(Options{MinDimension: 1000})
	assert.Equal(t, 6, large.moduleSize(177))
}

func TestPathData(t *testing.T) {
	bitmap := [][]bool{
		{true, true, false},
		{false, false, true},
	}
	assert.Equal(t, "M4,4h4v2h-4zM8,6h2v2h-2z", pathData(bitmap, 2, 4))
	assert.Equal(t, "", pathData([][]bool{{false}}, 2, 0))
}
