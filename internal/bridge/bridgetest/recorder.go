// Package bridgetest provides an in-memory bridge.Evaluator that records the
// scripts submitted to it.
package bridgetest

import (
	"context"
	"fmt"
	"strings"

	"github.com/themizzi/wpaccept/internal/bridge"
)

// Responder produces the value for one evaluation
type Responder func(script string) (any, error)

var _ bridge.Evaluator = (*Recorder)(nil)

// Recorder captures every script it is asked to evaluate
type Recorder struct {
	Scripts []string
	respond Responder
}

// NewRecorder creates a recorder; a nil respond evaluates every script to null
func NewRecorder(respond Responder) *Recorder {
	return &Recorder{respond: respond}
}

// Evaluate records script and returns the responder's value. Responder errors
// are wrapped in a BridgeError like a real session would.
func (r *Recorder) Evaluate(ctx context.Context, script string) (bridge.Result, error) {
	r.Scripts = append(r.Scripts, script)
	if err := ctx.Err(); err != nil {
		return bridge.Result{}, &bridge.BridgeError{Script: script, Err: err}
	}
	if r.respond == nil {
		return bridge.NewResult(nil), nil
	}

	v, err := r.respond(script)
	if err != nil {
		return bridge.Result{}, &bridge.BridgeError{Script: script, Err: err}
	}
	return bridge.NewResult(v), nil
}

// Calls returns the number of evaluations
func (r *Recorder) Calls() int {
	return len(r.Scripts)
}

// Last returns the most recently submitted script
func (r *Recorder) Last() string {
	if len(r.Scripts) == 0 {
		return ""
	}
	return r.Scripts[len(r.Scripts)-1]
}

// Editor answers like a block editor holding post postID: inserted blocks get
// sequential client IDs and saves finish immediately.
func Editor(postID int) Responder {
	blocks := 0
	return func(script string) (any, error) {
		switch {
		case strings.Contains(script, "createBlock("):
			blocks++
			return fmt.Sprintf("block-%d", blocks), nil
		case strings.Contains(script, "isSavingPost()"):
			return false, nil
		case strings.Contains(script, "getCurrentPostId()"):
			return float64(postID), nil
		case strings.Contains(script, "nux-dot-tip__disable"):
			return true, nil
		default:
			return nil, nil
		}
	}
}
