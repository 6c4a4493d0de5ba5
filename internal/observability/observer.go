// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver implements observability for all pipeline stages.
// It replaces the ad hoc console tracing the extraction heuristics grew up
// with; stages receive it by injection and a nil observer is always safe.
type StandardObserver struct {
	level  ObservabilityLevel
	writer io.Writer
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates observability component
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		if o == nil {
			return
		}
		duration := time.Since(start)

		o.LogOperation(StageRecord{
			Component:  component,
			Operation:  operation,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation logs one stage record
func (o *StandardObserver) LogOperation(data StageRecord) {
	if o == nil || o.level == ObservabilityOff || o.writer == nil {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")

	// Only log JSON in debug mode
	if o.level == ObservabilityDebug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// StageRecord describes one pipeline stage invocation
type StageRecord struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	RequestID  string                 `json:"request_id"`
	DurationMs int64                  `json:"duration_ms,omitempty"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	LineCount  int                    `json:"line_count,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
