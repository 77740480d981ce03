// Package layout owns the shared layout constants and the mapping from
// buffer offsets to two-dimensional coordinates.
//
// Every rendering layer (input surface, highlight layer, selection and
// search overlays, overview strip) positions itself with the same Metrics
// value. The line height in particular is derived from the font size and
// rounded to an integer pixel once, here; a layer deriving its own line
// height would drift visibly from the others over many rows.
package layout
