// Copyright 2025 The Itemlog Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package itemlog

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Registry tests share the process-wide slot, so none of them run in
// parallel. Each installs its own logger; there is no uninstall, so the
// last test's logger simply stays in place.

// swapLogger installs l and restores a drop-everything logger on cleanup
// so later tests start from a known slot.
func swapLogger(t *testing.T, l Logger) {
	t.Helper()
	SetLogger(l)
	t.Cleanup(func() {
		SetLogger(LoggerFunc(func(Item) {}))
	})
}

func TestDispatch_NoLoggerInstalled(t *testing.T) {
	SetLogger(nil)

	assert.NotPanics(t, func() {
		Trace(NewItem("dropped", nil))
		Debug(NewItem("dropped", nil))
		Info(NewItem("dropped", nil))
		Warn(NewItem("dropped", nil))
		Error(NewItem("dropped", nil))
		Fatal(NewItem("dropped", nil))
	})
}

func TestDispatch_StampsSeverity(t *testing.T) {
	tests := []struct {
		name     string
		dispatch func(Item)
		want     Severity
	}{
		{"trace", Trace, SeverityTrace},
		{"debug", Debug, SeverityDebug},
		{"info", Info, SeverityInfo},
		{"warn", Warn, SeverityWarn},
		{"error", Error, SeverityError},
		{"fatal", Fatal, SeverityFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Item
			swapLogger(t, LoggerFunc(func(item Item) { got = item }))

			// Caller-set severity is overwritten by the dispatch level.
			item := NewItem("ready", nil)
			item.Severity = SeverityFatal
			tt.dispatch(item)

			assert.Equal(t, tt.want, got.Severity)
		})
	}
}

func TestDispatch_StampsTimestamp(t *testing.T) {
	var got Item
	swapLogger(t, LoggerFunc(func(item Item) { got = item }))

	item := NewItem("ready", nil)
	item.Timestamp = time.Unix(0, 0) // caller-supplied value is overwritten

	before := time.Now()
	Info(item)
	after := time.Now()

	assert.False(t, got.Timestamp.Before(before))
	assert.False(t, got.Timestamp.After(after))
}

func TestSetLogger_Replacement(t *testing.T) {
	first := &CaptureWriter{}
	second := &CaptureWriter{}

	swapLogger(t, NewLogger(LTSVSerializer(), first))
	Info(NewItem("one", nil))

	SetLogger(NewLogger(LTSVSerializer(), second))
	Info(NewItem("two", nil))

	// The replaced logger is never invoked again.
	require.Equal(t, 1, first.Len())
	require.Equal(t, 1, second.Len())
	assert.Contains(t, second.Writes()[0].Serialized, "msg:two")
}

func TestDispatch_ConcurrentWithInstall(t *testing.T) {
	capture := &CaptureWriter{}
	swapLogger(t, NewLogger(LTSVSerializer(), capture))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				Info(NewItem("ready", nil))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			SetLogger(NewLogger(LTSVSerializer(), capture))
		}
	}()
	wg.Wait()

	// Every dispatch reached some installed logger; none panicked or
	// blocked.
	assert.Equal(t, 800, capture.Len())
}

func TestDispatch_ConcurrentRateLimited(t *testing.T) {
	capture := &CaptureWriter{}
	swapLogger(t, NewLogger(LTSVSerializer(), NewRateLimitWriter(capture, time.Minute)))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				Info(NewItem("ready", nil))
				Error(NewItem("boom", nil))
			}
		}()
	}
	wg.Wait()

	// One emission per severity within the cooldown window.
	assert.Equal(t, 2, capture.Len())
}
