// Package engine is the per-read core: it runs the matcher for each marker,
// resolves overlapping hits, picks the best barcode, and carves reads into
// adapter-bounded segments. It never imports app, writers, cli, or pipeline;
// keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
