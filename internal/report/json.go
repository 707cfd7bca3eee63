// Package report renders a host snapshot for people (sectioned text)
// or machines (indented JSON).
package report

import (
	"encoding/json"
	"io"

	"github.com/bc-dunia/hostprobe/internal/sysinfo"
)

// WriteJSON encodes the snapshot with two-space indentation. HTML
// escaping is off so localized text passes through unmodified; null
// leaves are preserved rather than omitted.
func WriteJSON(w io.Writer, snap *sysinfo.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(snap)
}
