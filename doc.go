// Package sgrams is an in-memory engine for S-Grams: a fixed catalog of
// twelve indexed structures (0 to 11), each pairing a Catalan number and a
// fraction with a set of cyclic "fraction patterns" whose states can be
// stepped forward (resolve) or backward (inform).
//
// 🚀 What is inside?
//
//   - Literal catalog: the definitional table, validated once and shared
//   - Cycle navigation: next/previous, distance and canonical rotation
//   - Traces: bounded paths and lazy iterator walks in either direction
//   - Analysis: primary pattern, cycle-length groups, state distribution
//   - Comparison: patterns by denominator, Catalan growth, shared divisors
//   - State space: shortest resolve/inform routes between two states
//
// ✨ Why sgrams?
//
//   - Immutable data: every structure is safe for concurrent readers
//   - Explicit errors: sentinel values for every failure mode
//   - Observable: zap logging and Prometheus counters in the engine
//
// Layout:
//
//	cycle/      immutable cyclic sequence and its navigation
//	catalog/    Structure, Pattern, Fraction and the literal table
//	trace/      Trace and Walk along one pattern
//	analysis/   per-structure analysis report
//	compare/    cross-structure comparison and Catalan growth
//	statespace/ BFS routes over the transition graph of one structure
//	engine/     query facade with memoised reports, logging and metrics
//	report/     ASCII/Markdown tables and YAML export
//	config/     YAML configuration with SGRAMS_* overrides
//	logging/    zap logger construction
//	mcpserver/  the engine as MCP tools
//	cmd/sgrams  the command-line interface
//
// Quick example:
//
//	s, _ := catalog.Get(3)             // s4, fraction 3/9
//	next, _ := s.Resolve("1/7", 1)     // 4
//	prev, _ := s.Inform("1/7", next)   // 1
//
//	go install github.com/katalvlaran/sgrams/cmd/sgrams@latest
package sgrams
