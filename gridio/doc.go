// Package gridio is citaa's thin input-decoding collaborator. It reads a
// stream of newline-terminated text lines into a rectangular grid.Grid:
// lines need not have equal length, the grid width is the length of the
// longest line, and shorter lines are right-padded with spaces. Tabs and
// byte-order marks are not handled — the contract is defined only over
// printable ASCII, and gridio does not attempt to guess caller intent
// beyond that.
//
// Decoding is a line-by-line bufio.Scanner read, not a rune-at-a-time
// tokenizer: the target shape is a 2D character array, not a token stream,
// so there is nothing to tokenize within a line beyond reading it whole and
// padding it.
package gridio
