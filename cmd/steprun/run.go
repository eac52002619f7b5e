package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"gridstep/internal/config"
	"gridstep/internal/core"
	"gridstep/internal/kernel"
	"gridstep/internal/monitoring"
	"gridstep/internal/stats"
	"gridstep/internal/stream"
	pcore "gridstep/pkg/core"
)

// outputs are the optional sinks of a run.
type outputs struct {
	heatmap string
	serve   string
}

// result is the final state of a run.
type result struct {
	rule  string
	n     int
	steps int
	cells []float32
	stats stats.Summary
}

// run owns the buffers and the loop, calling the kernel once per step the
// way a foreign host drives the shared library.
func run(ctx context.Context, cfg *config.RunConfig, out outputs) (*result, error) {
	ctx, stop := context.WithCancel(ctx)
	defer stop()
	if timeout := cfg.GetTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	rule, err := core.Lookup(cfg.GetRule(), cfg.Params)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, core.Names())
	}
	n := cfg.GetN()
	count, err := kernel.CellCount(n)
	if err != nil {
		return nil, err
	}
	cur := make([]float32, count)
	nxt := make([]float32, count)
	if err := pcore.FillPattern(cfg.GetPattern(), pcore.NewRNG(cfg.GetSeed()), cur, n); err != nil {
		return nil, err
	}

	var hub *stream.Hub
	if out.serve != "" {
		hub, err = serve(ctx, out.serve)
		if err != nil {
			return nil, err
		}
		defer hub.Close()
		if _, err := hub.Broadcast(stream.NewFrame(0, rule.Name(), cur, n)); err != nil {
			return nil, err
		}
	}

	var summary stats.Summarizer
	monitoring.Logf("rule=%s n=%d steps=%d pattern=%s seed=%d", rule.Name(), n, cfg.GetSteps(), cfg.GetPattern(), cfg.GetSeed())
	if keys := cfg.ParamKeys(); len(keys) > 0 {
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = k + "=" + cfg.Params[k]
		}
		monitoring.Logf("params %s", strings.Join(pairs, " "))
	}
	monitoring.Logf("step 0 %s", summary.Summarize(cur))

	pacer := core.NewFixedStep(cfg.GetTPS())
	logEvery := cfg.GetLogEvery()
	steps := cfg.GetSteps()
	start := time.Now()
	for step := 1; step <= steps; step++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("stopped before step %d: %w", step, err)
		}
		pacer.Wait()
		if err := kernel.Apply(rule, nxt, cur, n); err != nil {
			return nil, fmt.Errorf("step %d: %w", step, err)
		}
		cur, nxt = nxt, cur

		if logEvery > 0 && step%logEvery == 0 {
			monitoring.Logf("step %d %s", step, summary.Summarize(cur))
		}
		if hub != nil {
			if _, err := hub.Broadcast(stream.NewFrame(step, rule.Name(), cur, n)); err != nil {
				return nil, err
			}
		}
	}
	elapsed := time.Since(start)
	if steps > 0 {
		monitoring.Logf("%d steps in %v (%v/step)", steps, elapsed, elapsed/time.Duration(steps))
	}

	if out.heatmap != "" {
		title := fmt.Sprintf("%s n=%d step=%d", rule.Name(), n, steps)
		if err := stats.WriteHeatmap(out.heatmap, title, cur, n); err != nil {
			return nil, err
		}
		monitoring.Logf("wrote %s", out.heatmap)
	}

	return &result{rule: rule.Name(), n: n, steps: steps, cells: cur, stats: summary.Summarize(cur)}, nil
}

// serve starts the websocket endpoint at addr and stops it when ctx ends.
func serve(ctx context.Context, addr string) (*stream.Hub, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	hub := stream.NewHub()
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			monitoring.Logf("serve: %v", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	monitoring.Logf("streaming frames on ws://%s/ws", ln.Addr())
	return hub, nil
}
