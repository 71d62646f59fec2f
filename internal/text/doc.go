// Package text provides the per-line Unicode text model.
//
// A Line owns its raw UTF-8 string plus a derived slice of grapheme
// cluster fragments carrying byte offsets, display widths and optional
// replacement glyphs. Edits address graphemes, not bytes or columns; the
// fragment cache is rebuilt in full after every mutation so the mapping
// between byte offsets, grapheme indices and display columns is
// consistent by construction.
package text
