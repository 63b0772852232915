// Package tdbuilder is the input adapter: it turns a caller-supplied,
// flat description of a nice tree decomposition into a materialized
// *decomp.Decomposition — every decomp.Bag constructed, parent/child links
// resolved, every structural invariant checked, and every bag's initial
// state table (and, for join bags, its consistent-triple list) allocated.
//
// Build is the package's single orchestrator, mirroring the teacher's
// builder.BuildGraph(gopts, bopts, cons...) shape: one public entry point,
// functional options resolved into an immutable config, a fixed set of
// validation checks, and wrapped sentinel errors so callers can branch with
// errors.Is against the decomp package's error vocabulary.
package tdbuilder
