// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package citysheet reads the line-oriented city file.
//
// The file has two sections. The first lists connections, one `<cityA> <cityB>`
// pair per line. The first line that does not parse as a pair (normally a
// blank line) ends that section and is itself discarded. Every later line is
// a request in the same `<cityA> <cityB>` form; request lines that do not
// parse are skipped.
//
//	London Paris
//	Paris Berlin
//
//	London Berlin
//	London Madrid
//
// The Parser models this as two states, ReadingEdges then ReadingQueries, and
// hands out tagged records. It knows nothing about graphs.
package citysheet
