// SPDX-License-Identifier: MIT

// Package engine is the query facade over the S-Gram catalog. It is what the
// CLI, the report generator and the MCP server talk to.
//
// What:
//
//   - Structure / Structures: read access to the catalog.
//   - Resolve / Inform: one step forward or backward along a pattern.
//   - TracePath / Walk: multi-step paths, materialised or lazy.
//   - Transitions: every pattern holding a state, with its neighbours.
//   - Analyze: the per-structure analysis report, memoised per index.
//   - Compare: the cross-structure report; no indices means all twelve.
//   - Route: shortest mixed resolve/inform path between two states.
//
// An empty pattern key always selects the structure's primary pattern
// (longest cycle, then smallest key).
//
// Observability:
//
//   - Every query increments sgrams_queries_total{op,result}; trace lengths
//     feed the sgrams_trace_length histogram. Collectors are registered on
//     the Registerer given to WithRegisterer, or left unregistered.
//   - Every query is logged at debug level on the zap logger given to
//     WithLogger (a no-op logger by default).
//
// Concurrency:
//
//   - Catalog data is immutable. The analysis memo is guarded by a RWMutex
//     and concurrent misses for one index are collapsed with singleflight, so
//     an Engine is safe for any number of goroutines.
package engine
