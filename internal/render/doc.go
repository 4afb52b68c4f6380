// Package render writes a decoder.Presentation to an output stream, either as
// plain text lines (optionally with the escape markers highlighted) or as a
// single JSON document.
package render
