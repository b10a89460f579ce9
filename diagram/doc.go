// Package diagram chains the whole extraction pipeline behind one entry
// point, Extract: trace every component first, then compactify and extract
// each one in turn.
//
// Extract never touches io beyond the supplied io.Reader; there is nothing
// here that blocks on a network or a long-running resource, so it takes no
// context.Context.
package diagram
