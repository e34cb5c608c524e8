package output

import (
	"fmt"
	"io"

	"motifmark-core/layout"
	"motifmark-core/motif"
)

// Formats lists every report format in the order the usage text shows them.
func Formats() []string {
	return []string{FormatNone, FormatText, FormatJSON, FormatJSONL}
}

// Known reports whether format is a valid --report value.
func Known(format string) bool {
	for _, f := range Formats() {
		if f == format {
			return true
		}
	}
	return false
}

// Write dispatches on format. FormatNone writes nothing.
func Write(format string, w io.Writer, rows []layout.Row, t *motif.Table, header bool) error {
	switch format {
	case FormatNone:
		return nil
	case FormatText:
		return WriteText(w, rows, header)
	case FormatJSON:
		return WriteJSON(w, rows, t)
	case FormatJSONL:
		return WriteJSONL(w, rows)
	}
	return fmt.Errorf("unsupported report %q", format)
}
