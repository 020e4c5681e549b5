// SPDX-License-Identifier: MPL-2.0

package trace

import "fmt"

// Event is one recorded sink call.
type Event struct {
	// Kind of event: "pass", "fail" or "error".
	Kind string
	// Tool is the tool kind for pass/fail events.
	Tool string
	// Detail is the resolved path (pass), attempted name (fail), or
	// formatted message (error).
	Detail string
}

// Recorder is a Sink that captures events for test assertions.
type Recorder struct {
	Events []Event
}

// Pass implements Sink.
func (r *Recorder) Pass(kind, path string) {
	r.Events = append(r.Events, Event{Kind: "pass", Tool: kind, Detail: path})
}

// Fail implements Sink.
func (r *Recorder) Fail(kind, name string) {
	r.Events = append(r.Events, Event{Kind: "fail", Tool: kind, Detail: name})
}

// Errorf implements Sink.
func (r *Recorder) Errorf(format string, args ...any) {
	r.Events = append(r.Events, Event{Kind: "error", Detail: fmt.Sprintf(format, args...)})
}

// Passes returns the tool kinds that passed, in order.
func (r *Recorder) Passes() []string {
	var out []string
	for _, ev := range r.Events {
		if ev.Kind == "pass" {
			out = append(out, ev.Tool)
		}
	}
	return out
}
