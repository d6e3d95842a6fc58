// Package text stores and loads strings inside regions.
//
// Strings are encoded with golang.org/x/text and written through the checked
// region operations, so every call is bounds-checked like region.Write.
// Two layouts are supported:
//
//   - variable: WriteString writes the encoded bytes and reports how many,
//     ReadString decodes a known number of bytes.
//   - fixed: WriteFixed writes into a field of a set width, padding with
//     zeroes; ReadFixed stops at the first NUL code unit.
//
// Encodings are UTF8, UTF16LE, Windows1252 and Latin1.
package text
