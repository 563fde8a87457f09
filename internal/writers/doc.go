// Package writers turns demux assignments and split segments into
// serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, FASTQ/FASTA, JSON/JSONL).
//   - Engine stays domain-only; Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
