// Package extract implements the branch and loop extractors: the branch
// extractor peels every degree-1 tail off a compacted component into its
// own LINE component, and the loop extractor walks the remaining junction
// graph face by face, turning every face but the outermost into a BOX
// component.
//
// Branches runs as a sequence of rounds — collect every current degree-1
// vertex, walk each to completion, drop whatever is left at degree 0 —
// rather than restarting the scan from the top after every single
// extraction. A full scan restart and this round-based approach give
// identical results, because extracting one branch never raises another
// vertex's degree, so a batch collected at the top of a round stays valid
// to process through to completion; the one exception (two degree-1
// endpoints joined by a single residual edge, e.g. a compacted two-vertex
// line) is handled by re-checking each leaf's degree immediately before
// walking it, since the first leaf's walk may already have consumed the
// second.
package extract
