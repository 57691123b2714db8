// Package point defines the 3-D integer Point and the loaders that turn text
// input into an ordered []Point for the clustering engine.
//
// What:
//
//   - Point is an immutable (X, Y, Z) triple of int64 values, compared by value.
//   - ParseLine/Parse/ParseString read one "x,y,z" triple per line.
//   - Open/Load read plain, gzip (.gz), zstd (.zst) or lz4 (.lz4) files.
//   - Locate picks the first existing input file among candidate paths.
//
// Points are never deduplicated: two equal triples on different lines are two
// distinct points, identified downstream by their input index.
//
// Errors:
//
//   - ErrArity:      a line does not hold exactly three comma-separated fields.
//   - ErrCoordinate: a field is not a base-10 integer.
//   - ErrRange:      |coordinate| exceeds MaxCoordinate.
//   - ErrNoInput:    none of the candidate paths exist.
package point
