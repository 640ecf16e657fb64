// Package report renders crawl results in the supported output formats.
// It consumes the crawl engine's page list as opaque input and has no
// influence on crawl behavior.
package report

import (
	"path/filepath"
	"strings"

	"github.com/jwach/adoc"
)

// Format identifies an output format.
type Format int

// Supported output formats.
const (
	FormatJSON Format = iota
	FormatPrettyJSON
	FormatText
	FormatMarkdown
)

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatPrettyJSON:
		return "pretty-json"
	case FormatText:
		return "text"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "pretty-json", "pretty":
		return FormatPrettyJSON, nil
	case "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return 0, adoc.Errorf(adoc.EINVALID, "unknown output format %q", s)
	}
}

// FormatFromPath infers a format from a file path's extension.
// The second result is false when the extension is not recognized.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".txt":
		return FormatText, true
	case ".md", ".markdown":
		return FormatMarkdown, true
	default:
		return 0, false
	}
}
