// Package tdfile decodes the YAML on-disk representation of a nice tree
// decomposition (spec.md §6) into the []tdbuilder.BagSpec shape that
// package tdbuilder consumes. It performs no structural validation itself
// beyond what YAML unmarshaling requires — every bag-graph invariant
// (duplicate ids, mismatched vertex sets, more than two children, ...) is
// left to tdbuilder.Build, so a caller always sees exactly one validation
// pass regardless of whether the input came from a file or was
// constructed in memory.
package tdfile
