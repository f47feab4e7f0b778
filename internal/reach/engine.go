// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package reach answers whether two cities are joined by any path in the
// edge list. It runs a depth-first search with a visited set that lives for a
// single query.
package reach

import (
	"context"
	"iter"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/specialistvlad/citylink/internal/ctxlog"
)

// Graph is the read side of an edge list. Incident yields, for every edge
// touching node, the edge's index and the node on its other side.
type Graph interface {
	Incident(node string) iter.Seq2[int, string]
}

// noEdge means no edge is excluded from the search.
const noEdge = -1

// frame is a node being expanded: its neighbors, materialized on entry, and
// the position of the next one to try.
type frame struct {
	hops []string
	next int
}

// Engine runs reachability queries against a Graph.
type Engine struct {
	graph Graph
}

// New creates an engine over g. The graph must not change while queries run.
func New(g Graph) *Engine {
	return &Engine{graph: g}
}

// IsConnected reports whether target can be reached from source over zero or
// more edges. Names that appear in no edge are simply not connected.
//
// A city is not trivially connected to itself. IsConnected(a, a) holds only
// if a has a self-loop or lies on a cycle: some route back to a that does not
// return over the edge it left by.
func (e *Engine) IsConnected(ctx context.Context, source, target string) bool {
	connected, _ := e.Explored(ctx, source, target)
	return connected
}

// Explored is IsConnected that also reports how many nodes the search marked
// visited before it finished.
func (e *Engine) Explored(ctx context.Context, source, target string) (bool, int) {
	visited := mapset.NewThreadUnsafeSet[string]()

	var connected bool
	if source == target {
		connected = e.loopsBack(source, visited)
	} else {
		connected = e.search(source, target, noEdge, visited)
	}

	ctxlog.FromContext(ctx).Debug("Reachability query finished.",
		"source", source,
		"target", target,
		"connected", connected,
		"visited", visited.Cardinality(),
	)
	return connected, visited.Cardinality()
}

// search walks depth-first from start until it meets target. A node is marked
// visited before it is expanded, so no node is expanded twice and cycles
// terminate. The start node itself is not pre-marked. Edges with index skip
// are never taken.
func (e *Engine) search(start, target string, skip int, visited mapset.Set[string]) bool {
	stack := []*frame{{hops: e.hops(start, skip)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.hops) {
			stack = stack[:len(stack)-1]
			continue
		}
		n := top.hops[top.next]
		top.next++

		if !visited.Add(n) {
			continue
		}
		if n == target {
			return true
		}
		stack = append(stack, &frame{hops: e.hops(n, skip)})
	}
	return false
}

// loopsBack reports whether node can leave over one of its edges and come
// back over a different one. A self-loop counts directly.
func (e *Engine) loopsBack(node string, visited mapset.Set[string]) bool {
	for i, other := range e.graph.Incident(node) {
		if other == node {
			visited.Add(node)
			return true
		}
		if !visited.Add(other) {
			continue
		}
		if e.search(other, node, i, visited) {
			return true
		}
	}
	return false
}

// hops lists the neighbors of node in edge order, leaving out edge skip.
func (e *Engine) hops(node string, skip int) []string {
	var hops []string
	for i, other := range e.graph.Incident(node) {
		if i == skip {
			continue
		}
		hops = append(hops, other)
	}
	return hops
}
