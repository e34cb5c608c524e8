// Package output serializes located features as a report (TSV, JSON or JSONL).
// JSON goes through pkg/api (v1) for a stable wire format.
package output
