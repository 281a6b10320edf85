// Package dot renders an expression graph as Graphviz DOT, for
// visual inspection of structural sharing and the schedule's
// input/output pinning. It is a pure, derived view — it never mutates
// the graph it walks.
package dot
