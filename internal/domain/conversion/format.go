package conversion

import (
	"path/filepath"
	"strings"
)

// Format - un format de imagine țintă.
type Format string

const (
	FormatJPG  Format = "JPG"
	FormatPNG  Format = "PNG"
	FormatGIF  Format = "GIF"
	FormatWEBP Format = "WEBP"
	FormatBMP  Format = "BMP"
	FormatTIFF Format = "TIFF"

	// SourceUnknown - format sursă pentru fișiere fără extensie.
	SourceUnknown = "FILE"
)

// Formats - mulțimea canonică de formate țintă, în ordinea de afișare.
var Formats = []Format{FormatJPG, FormatPNG, FormatGIF, FormatWEBP, FormatBMP, FormatTIFF}

// SourceFormat derivă formatul sursă din numele fișierului: extensia cu
// majuscule, sau FILE dacă fișierul nu are extensie.
func SourceFormat(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return SourceUnknown
	}
	return strings.ToUpper(ext)
}

// TargetFormats întoarce formatele în care fișierul poate fi convertit:
// mulțimea canonică minus propriul format al sursei. Un fișier nu poate fi
// "convertit" în propriul format - invariant, nu detaliu de interfață.
func TargetFormats(filename string) []Format {
	src := SourceFormat(filename)
	out := make([]Format, 0, len(Formats))
	for _, f := range Formats {
		if string(f) == src {
			continue
		}
		out = append(out, f)
	}
	return out
}

// ParseFormat validează un format introdus de utilizator.
func ParseFormat(raw string) (Format, bool) {
	candidate := Format(strings.ToUpper(strings.TrimSpace(raw)))
	for _, f := range Formats {
		if f == candidate {
			return f, true
		}
	}
	return "", false
}

// Type compune tipul de conversie raportat backend-ului: "<SRC>_TO_<DST>".
func Type(sourceFilename string, target Format) string {
	return SourceFormat(sourceFilename) + "_TO_" + string(target)
}
