// Package writers turns retained motifs into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV rows, JSONL).
//   • The motif engine stays domain-only; the app only feeds channels.
//   • JSONL goes through pkg/api (v1) for a stable wire format.
package writers
