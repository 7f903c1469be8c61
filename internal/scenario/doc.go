// Package scenario drives a smallgraph.Graph from declarative HCL files.
//
// A scenario file is a flat list of operation blocks executed top to bottom
// against a fresh graph whose node values are cty.Values:
//
//	insert "a" { value = "alpha" }
//	insert "b" { value = { weight = 3 } }
//	connect { from = "a"  to = "b" }
//	remove "b" {}
//	expect {
//	  count  = 1
//	  absent = ["b"]
//	}
//
// Nodes are referred to by the name they were inserted under. A name stays
// bound to its original handle after the node is removed, which makes stale
// handles easy to exercise. A reference of the form "#index:generation" is a
// literal handle and bypasses names entirely.
//
// # Lifecycle
//
//  1. **Load** parses every file, decodes each block in source order and
//     checks that all names are declared before use.
//  2. **Run** replays the operations, logging each one, and stops at the
//     first failed expectation.
//  3. The returned Result exposes the final graph and name bindings for
//     reporting.
package scenario
