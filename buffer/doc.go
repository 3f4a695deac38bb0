// Package buffer implements the document model the selection menu observes.
//
// Coordinates are 0-based (Row, Col) where Col counts grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
//
// A Buffer is mutable; every effective change produces a new immutable State
// snapshot, so consumers can keep the previous State and compare it with the
// current one.
package buffer
