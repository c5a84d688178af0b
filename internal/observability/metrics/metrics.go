package metrics

import (
	"time"

	obserrors "github.com/smartwave/smartwave-go/internal/observability/errors"
	"github.com/smartwave/smartwave-go/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultNoop    = "noop"
)

// SessionTransition captures a session state change for metric emission.
type SessionTransition struct {
	Operation string
	Status    string
	Err       error
}

// EmitSessionTransition tags session.transition with the operation, the
// terminal status reached, and the error class when one applies.
func EmitSessionTransition(sink statsd.Sink, in SessionTransition) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"operation": in.Operation,
		"status":    in.Status,
	}
	if in.Err != nil {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}
	sink.Count("session.transition", 1, tags)
}

// ExportOutcome captures an export job result for metric emission.
type ExportOutcome struct {
	Variant  string
	Result   string
	Duration time.Duration
	Err      error
}

// EmitExportOutcome emits export.job counters and durations.
func EmitExportOutcome(sink statsd.Sink, in ExportOutcome) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"variant": in.Variant,
		"result":  in.Result,
	}
	if in.Err != nil && in.Result == ResultError {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("export.job", 1, tags)
	if in.Duration > 0 {
		sink.Timing("export.duration", in.Duration, tags)
	}
}
