package output

// Report formats.
const (
	FormatNone  = "none"
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader names the text report columns.
const TSVHeader = "record\tfeature\tlabel\tpattern\tstart\tend\tlength"
