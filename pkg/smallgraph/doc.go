// Package smallgraph provides a compact, in-memory directed graph that stores
// arbitrary values as nodes and hands out generation-checked handles instead
// of raw indices.
//
// # Why Handles
//
// Nodes live in a slot arena. Removing a node tombstones its slot and queues
// it for reuse, so a raw index can end up naming a different value later on.
// Every slot therefore carries a generation counter, and a NodeHandle pairs
// the slot index with the generation it was issued under. A handle is valid
// only while both match:
//
//	valid(h) = 0 <= h.Index() < len(slots) &&
//	           slots[h.Index()].generation == h.Generation() &&
//	           slots[h.Index()] is occupied
//
// Every operation validates the handles it is given. An invalid handle (stale,
// foreign, or never allocated) produces an empty result and leaves the graph
// untouched. No operation returns an error or panics on bad input.
//
// # Architecture
//
// A Graph is two sub-structures that share one index space:
//
//	┌──────────────────────────────┐
//	│            Graph             │
//	└──────┬────────────────┬──────┘
//	       │                │
//	       ▼                ▼
//	┌─────────────┐  ┌─────────────┐
//	│ Node Arena  │  │ Edge Store  │
//	│ slots, free │  │ (src, dst)  │
//	└─────────────┘  └─────────────┘
//
// The edge store is a flat list of (source index, destination index) pairs.
// Membership and neighbor queries are linear scans; undirected edges are two
// directed edges. Removing a node strips every edge that touches it, so edges
// never outlive the node they refer to.
//
// Free slots are reused oldest first. A reused slot hands out the generation
// one past the removed handle's, so the old handle stays invalid forever.
//
// # Storage
//
// Slots, the free list and the edge list start in fixed buffers inside the
// Graph value and move to the heap only when they outgrow them. A Graph must
// therefore not be copied after first use; pass *Graph around instead.
//
// # Thread-Safety
//
// Graph performs no locking. Queries may run concurrently with each other but
// never with a mutation. Use Synced when a graph is shared between goroutines.
package smallgraph
