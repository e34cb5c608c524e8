package output

import (
	"bufio"
	"encoding/json"
	"io"

	"motifmark-core/layout"
)

// WriteJSONL writes one api.RecordV1 per line, in row order.
func WriteJSONL(w io.Writer, rows []layout.Row) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	enc := json.NewEncoder(bw)
	for _, r := range rows {
		if err := enc.Encode(ToAPIRecord(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
