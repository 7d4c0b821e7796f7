package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "lowercase extension", filename: "photo.png", want: "PNG"},
		{name: "uppercase extension", filename: "IMG_0001.JPG", want: "JPG"},
		{name: "mixed case extension", filename: "scan.TiFf", want: "TIFF"},
		{name: "multiple dots takes last", filename: "archive.backup.webp", want: "WEBP"},
		{name: "no extension", filename: "README", want: "FILE"},
		{name: "trailing dot", filename: "photo.", want: "FILE"},
		{name: "extension outside canonical set", filename: "doc.pdf", want: "PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SourceFormat(tt.filename))
		})
	}
}

func TestTargetFormats_ExcludesOwnFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		excluded Format
	}{
		{name: "jpg file", filename: "cat.jpg", excluded: FormatJPG},
		{name: "png file", filename: "photo.png", excluded: FormatPNG},
		{name: "gif file", filename: "anim.gif", excluded: FormatGIF},
		{name: "webp file", filename: "img.webp", excluded: FormatWEBP},
		{name: "bmp file", filename: "old.bmp", excluded: FormatBMP},
		{name: "tiff file", filename: "scan.tiff", excluded: FormatTIFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets := TargetFormats(tt.filename)

			require.Len(t, targets, len(Formats)-1)
			assert.NotContains(t, targets, tt.excluded)
		})
	}
}

func TestTargetFormats_UnknownSourceKeepsAll(t *testing.T) {
	assert.Equal(t, Formats, TargetFormats("document.pdf"))
	assert.Equal(t, Formats, TargetFormats("fara-extensie"))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Format
		wantOK bool
	}{
		{name: "lowercase", raw: "webp", want: FormatWEBP, wantOK: true},
		{name: "surrounding spaces", raw: " jpg ", want: FormatJPG, wantOK: true},
		{name: "already canonical", raw: "TIFF", want: FormatTIFF, wantOK: true},
		{name: "outside canonical set", raw: "pdf", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFormat(tt.raw)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestType(t *testing.T) {
	assert.Equal(t, "JPG_TO_WEBP", Type("cat.jpg", FormatWEBP))
	assert.Equal(t, "PNG_TO_JPG", Type("photo.png", FormatJPG))
	assert.Equal(t, "FILE_TO_PNG", Type("scan", FormatPNG))
}
