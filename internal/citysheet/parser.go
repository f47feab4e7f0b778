// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package citysheet

import (
	"bufio"
	"io"
	"strings"
)

// State is the section the parser is currently reading.
type State int

const (
	// ReadingEdges is the initial state: lines are connections.
	ReadingEdges State = iota
	// ReadingQueries is the terminal state: lines are requests.
	ReadingQueries
)

func (s State) String() string {
	switch s {
	case ReadingEdges:
		return "reading-edges"
	case ReadingQueries:
		return "reading-queries"
	default:
		return "unknown"
	}
}

// Kind tags a record with the section it came from.
type Kind int

const (
	KindConnection Kind = iota + 1
	KindRequest
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Pair is the two city names on one line, in the order they were written.
type Pair struct {
	L string
	R string
}

// Record is one parsed line.
type Record struct {
	Kind Kind
	Pair Pair
	Line int // 1-based line number in the input
}

// ParseLine extracts a pair from a raw line. The line is trimmed and split on
// single spaces; the first two tokens must be non-empty and anything after
// them is ignored.
func ParseLine(line string) (Pair, bool) {
	parts := strings.Split(strings.TrimSpace(line), " ")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Pair{}, false
	}
	return Pair{L: parts[0], R: parts[1]}, true
}

// Parser walks the input line by line and switches from ReadingEdges to
// ReadingQueries on the first line that is not a pair.
type Parser struct {
	r          *bufio.Reader
	state      State
	line       int
	switchedAt int
	err        error
}

// NewParser creates a parser in the ReadingEdges state. Lines are not length
// limited.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: bufio.NewReader(r), state: ReadingEdges}
}

// Next returns the next record. It returns io.EOF once the input is
// exhausted, or the underlying read error if reading fails.
func (p *Parser) Next() (Record, error) {
	for {
		if p.err != nil {
			return Record{}, p.err
		}

		raw, err := p.r.ReadString('\n')
		if err != nil {
			p.err = err
			if raw == "" {
				continue
			}
		}
		p.line++

		pair, ok := ParseLine(raw)
		switch p.state {
		case ReadingEdges:
			if ok {
				return Record{Kind: KindConnection, Pair: pair, Line: p.line}, nil
			}
			p.state = ReadingQueries
			p.switchedAt = p.line
		case ReadingQueries:
			if ok {
				return Record{Kind: KindRequest, Pair: pair, Line: p.line}, nil
			}
		}
	}
}

// State returns the section the parser is in.
func (p *Parser) State() State {
	return p.state
}

// Line returns the number of lines read so far.
func (p *Parser) Line() int {
	return p.line
}

// SwitchedAt returns the line that ended the connections section, or 0 if the
// parser is still reading connections.
func (p *Parser) SwitchedAt() int {
	return p.switchedAt
}
