// Package pipeline streams reads from every input, in file order, to a
// per-read visit callback. A single producer goroutine parses records into a
// bounded channel; the caller's visit runs on one consumer so reads are
// handled strictly one at a time and in input order.
package pipeline
