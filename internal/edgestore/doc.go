// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package edgestore holds the undirected edge list that describes the city
// graph.
//
// # Why a flat edge list
//
// Nodes have no registry of their own: a city exists only because some edge
// mentions it. The store keeps edges exactly as they were read, in insertion
// order, duplicates and self-loops included. There is no adjacency index;
// every neighbor lookup is a linear scan over the whole sequence.
//
// # Lifecycle
//
//  1. **Created** empty when a run starts
//  2. **Populated** edge by edge while the connections section is read
//  3. **Frozen** when the first request arrives; read-only from then on
//  4. **Reset** only if the caller wants to load a new graph
//
// Writes and reads never interleave. Once frozen, the read paths perform no
// mutation, so any number of goroutines may scan the store concurrently.
package edgestore
