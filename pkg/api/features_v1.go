// pkg/api/features_v1.go
package api

// ExonV1 is the uppercase run of a record. Length counts uppercase bases;
// it can be shorter than End-Start when lowercase bases interrupt the run.
type ExonV1 struct {
	Start  int `json:"start"`
	End    int `json:"end"`
	Length int `json:"length"`
}

// OccurrenceV1 is one motif match.
type OccurrenceV1 struct {
	Label   string `json:"label"`
	Pattern string `json:"pattern"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Length  int    `json:"length"`
}

// RecordV1 is the stable JSON schema for one annotated record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	Header string         `json:"header"`
	ID     string         `json:"id"`
	Length int            `json:"length"`
	Row    int            `json:"row"`
	Y      float64        `json:"y"`
	Exon   ExonV1         `json:"exon"`
	Motifs []OccurrenceV1 `json:"motifs"`
}

// LegendEntryV1 is one motif with its color and match patterns.
type LegendEntryV1 struct {
	Label    string   `json:"label"`
	Color    string   `json:"color"` // #rrggbb
	Patterns []string `json:"patterns"`
}

// ReportV1 is the full report document.
type ReportV1 struct {
	Records []RecordV1      `json:"records"`
	Legend  []LegendEntryV1 `json:"legend"`
}
