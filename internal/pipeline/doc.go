// Package pipeline pulls normalized FASTA records one at a time through
// feature location and layout, and calls a visit callback per placed row.
//
// It never touches files or drawing backends; callers hand it a reader and
// render the returned layout.Drawing themselves.
package pipeline
