package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/citylink/internal/citysheet"
	"github.com/specialistvlad/citylink/internal/ctxlog"
	"github.com/specialistvlad/citylink/internal/edgestore"
)

// Summary counts what a run did.
type Summary struct {
	Edges     int
	Requests  int
	Connected int
}

// Run opens the configured input file and processes it. Failing to open or
// read the file is fatal and returned as an error.
func (a *App) Run(ctx context.Context) (Summary, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.settings.InputPath)

	f, err := os.Open(a.settings.InputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	summary, err := a.Process(ctx, f)
	if err != nil {
		return summary, err
	}

	a.logger.Debug("App.Run method finished.")
	return summary, nil
}

// Process reads connections into a fresh edge store, freezes it, then answers
// every request in order and reports each result.
func (a *App) Process(ctx context.Context, r io.Reader) (Summary, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.store.Reset()

	var summary Summary
	parser := citysheet.NewParser(r)
	for {
		rec, err := parser.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("failed to read input after line %d: %w", parser.Line(), err)
		}

		switch rec.Kind {
		case citysheet.KindConnection:
			if err := a.loadConnection(ctx, rec); err != nil {
				return summary, err
			}
		case citysheet.KindRequest:
			if !a.store.Frozen() {
				a.endLoad(ctx, parser)
			}
			connected, err := a.answer(ctx, rec)
			if err != nil {
				return summary, err
			}
			summary.Requests++
			if connected {
				summary.Connected++
			}
		}
	}
	if !a.store.Frozen() {
		a.endLoad(ctx, parser)
	}

	summary.Edges = a.store.Len()
	a.logger.Info("Run finished.",
		"edges", summary.Edges,
		"requests", summary.Requests,
		"connected", summary.Connected,
	)
	return summary, nil
}

func (a *App) loadConnection(ctx context.Context, rec citysheet.Record) error {
	a.store.Add(edgestore.Edge{A: rec.Pair.L, B: rec.Pair.R})
	ctxlog.FromContext(ctx).Debug("Connection loaded.", "line", rec.Line, "lval", rec.Pair.L, "rval", rec.Pair.R)

	if !a.settings.Echo() {
		return nil
	}
	if err := a.report.Connection(rec.Pair.L, rec.Pair.R); err != nil {
		return fmt.Errorf("failed to write connection: %w", err)
	}
	return nil
}

func (a *App) answer(ctx context.Context, rec citysheet.Record) (bool, error) {
	connected := a.engine.IsConnected(ctx, rec.Pair.L, rec.Pair.R)
	if err := a.report.Request(rec.Pair.L, rec.Pair.R, connected); err != nil {
		return connected, fmt.Errorf("failed to write request result: %w", err)
	}
	return connected, nil
}

// endLoad freezes the store; no connection may be added after this point.
func (a *App) endLoad(ctx context.Context, parser *citysheet.Parser) {
	a.store.Freeze()
	ctxlog.FromContext(ctx).Info("Connections loaded.",
		"edges", a.store.Len(),
		"section_end_line", parser.SwitchedAt(),
	)
}
