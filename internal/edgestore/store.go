// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package edgestore

import (
	"iter"
	"slices"
)

// Edge is an unordered pair of city names connected in one hop.
type Edge struct {
	A string
	B string
}

// Touches reports whether either side of the edge is node.
func (e Edge) Touches(node string) bool {
	return e.A == node || e.B == node
}

// Other returns the side of the edge opposite to node. For a self-loop it
// returns node itself. The result is meaningless if the edge does not touch node.
func (e Edge) Other(node string) string {
	if e.A == node {
		return e.B
	}
	return e.A
}

// Store is an append-only sequence of edges.
type Store struct {
	edges  []Edge
	frozen bool
}

// New creates a new, empty edge store.
func New() *Store {
	return &Store{}
}

// Add appends an edge. Duplicates and self-loops are kept as they are.
// Adding to a frozen store means the load and query phases overlapped, which
// is a programmer error, so Add panics.
func (s *Store) Add(e Edge) {
	if s.frozen {
		panic("edgestore: Add called on a frozen store")
	}
	s.edges = append(s.edges, e)
}

// Freeze ends the load phase. It is safe to call more than once.
func (s *Store) Freeze() {
	s.frozen = true
}

// Frozen reports whether the load phase has ended.
func (s *Store) Frozen() bool {
	return s.frozen
}

// Reset drops every edge and reopens the store for a new load.
func (s *Store) Reset() {
	s.edges = nil
	s.frozen = false
}

// Len returns the number of stored edges, duplicates included.
func (s *Store) Len() int {
	return len(s.edges)
}

// Edges returns a copy of the edge sequence in insertion order.
func (s *Store) Edges() []Edge {
	return slices.Clone(s.edges)
}

// Incident lazily yields, for every edge touching node, the edge's insertion
// index and the node on its other side. Results follow insertion order.
func (s *Store) Incident(node string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, e := range s.edges {
			if !e.Touches(node) {
				continue
			}
			if !yield(i, e.Other(node)) {
				return
			}
		}
	}
}

// Neighbors lazily yields the names directly connected to node, one per
// touching edge, in insertion order. A self-loop yields node itself.
func (s *Store) Neighbors(node string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, other := range s.Incident(node) {
			if !yield(other) {
				return
			}
		}
	}
}
