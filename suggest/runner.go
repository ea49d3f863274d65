// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suggest

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"cogentcore.org/artflow/document"
	"cogentcore.org/artflow/place"
	"cogentcore.org/artflow/scene"
)

// Result is the outcome of one request, to be delivered
// by the owner of the document on its own loop.
type Result struct {

	// Ticket identifies the request; only the result of the
	// latest request of a runner is delivered.
	Ticket uint64

	Request Request

	// Elements is the proposal of a [Layout] or [Style] request.
	Elements []*scene.Element

	// Payload is the image of an [Image] request, placed over the canvas.
	Payload place.Payload

	// Err is the advisor error, if any.
	Err error

	runner *Runner
}

// Current returns whether the result is from the latest request,
// and has not been discarded.
func (res *Result) Current() bool {
	return res.runner.Current(res.Ticket)
}

// Deliver applies the result to the document: layout and style proposals
// become the document suggestion, and images are placed with
// [place.Strict]. Results that are no longer current are dropped.
// It returns whether the document changed, and the advisor error.
func (res *Result) Deliver(doc *document.Document) (bool, error) {
	if res.Err != nil {
		return false, res.Err
	}
	if !res.Current() {
		slog.Debug("suggest: dropping stale result", "ticket", res.Ticket, "kind", res.Request.Kind)
		return false, nil
	}
	switch res.Request.Kind {
	case Image:
		doc.PlaceImage(res.Payload, place.Strict)
	default:
		doc.SetSuggestion(res.Elements)
	}
	return true, nil
}

// Runner runs advisor requests on goroutines and posts their results.
type Runner struct {
	Advisor Advisor

	results chan *Result
	ticket  atomic.Uint64
	wg      sync.WaitGroup
}

// NewRunner returns a runner for the advisor, whose results channel
// has the given buffer size.
func NewRunner(adv Advisor, buffer int) *Runner {
	return &Runner{Advisor: adv, results: make(chan *Result, buffer)}
}

// Results returns the channel the results are posted to.
func (r *Runner) Results() <-chan *Result {
	return r.results
}

// Current returns whether the ticket is that of the latest request.
func (r *Runner) Current(ticket uint64) bool {
	return ticket != 0 && r.ticket.Load() == ticket
}

// Discard makes the results of all outstanding requests inert.
// The requests themselves are not stopped; cancel their context for that.
func (r *Runner) Discard() {
	r.ticket.Add(1)
}

// Start runs the request on a new goroutine and returns its ticket,
// which supersedes all earlier tickets. The result is posted unless
// ctx is done first.
func (r *Runner) Start(ctx context.Context, req Request) uint64 {
	ticket := r.ticket.Add(1)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		res := r.run(ctx, req)
		res.Ticket = ticket
		select {
		case r.results <- res:
		case <-ctx.Done():
			slog.Debug("suggest: context done before result was posted", "ticket", ticket)
		}
	}()
	return ticket
}

func (r *Runner) run(ctx context.Context, req Request) *Result {
	res := &Result{Request: req, runner: r}
	if r.Advisor == nil {
		res.Err = errors.New("suggest: no advisor")
		return res
	}
	switch req.Kind {
	case Image:
		p, err := r.Advisor.Generate(ctx, req.Prompt)
		res.Payload, res.Err = Cover(p, req.Canvas), err
	default:
		res.Elements, res.Err = r.Advisor.Suggest(ctx, req)
	}
	if res.Err != nil {
		slog.Warn("suggest: advisor failed", "kind", req.Kind, "err", res.Err)
	}
	return res
}

// Close waits for all started requests to post their results
// (or for their contexts to be done) and closes the results channel.
func (r *Runner) Close() {
	r.wg.Wait()
	close(r.results)
}
