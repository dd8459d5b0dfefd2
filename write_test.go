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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowerBound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		min   Severity
		level Severity
		want  bool
	}{
		{"below bound", SeverityInfo, SeverityDebug, false},
		{"at bound", SeverityInfo, SeverityInfo, true},
		{"above bound", SeverityInfo, SeverityError, true},
		{"trace bound accepts everything", SeverityTrace, SeverityTrace, true},
		{"fatal bound rejects error", SeverityFatal, SeverityError, false},
		{"fatal bound accepts fatal", SeverityFatal, SeverityFatal, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, LowerBound(tt.min)(tt.level))
		})
	}
}

func TestNewFilterWriter(t *testing.T) {
	t.Parallel()

	capture := &CaptureWriter{}
	w := NewFilterWriter(capture, LowerBound(SeverityWarn))

	w.Write("level:debug\tmsg:hidden", SeverityDebug)
	w.Write("level:info\tmsg:hidden", SeverityInfo)
	w.Write("level:warn\tmsg:kept", SeverityWarn)
	w.Write("level:fatal\tmsg:kept", SeverityFatal)

	writes := capture.Writes()
	require.Len(t, writes, 2)

	// Accepted calls pass text and severity through unchanged.
	assert.Equal(t, CapturedWrite{Serialized: "level:warn\tmsg:kept", Level: SeverityWarn}, writes[0])
	assert.Equal(t, CapturedWrite{Serialized: "level:fatal\tmsg:kept", Level: SeverityFatal}, writes[1])
}

func TestNewConsoleWriterTo_StreamRouting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level      Severity
		wantStdout bool
	}{
		{SeverityTrace, true},
		{SeverityDebug, true},
		{SeverityInfo, true},
		{SeverityWarn, false},
		{SeverityError, false},
		{SeverityFatal, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			w := NewConsoleWriterTo(&stdout, &stderr)
			w.Write("line", tt.level)

			if tt.wantStdout {
				assert.Equal(t, "line\n", stdout.String())
				assert.Empty(t, stderr.String())
			} else {
				assert.Empty(t, stdout.String())
				assert.Equal(t, "line\n", stderr.String())
			}
		})
	}
}

func TestFilterWriter_ConsoleComposition(t *testing.T) {
	t.Parallel()

	// The composition NewStdWriter uses, with injected buffers in place
	// of the process streams.
	var stdout, stderr bytes.Buffer
	w := NewFilterWriter(NewConsoleWriterTo(&stdout, &stderr), LowerBound(SeverityInfo))

	w.Write("debug line", SeverityDebug)
	w.Write("info line", SeverityInfo)
	w.Write("error line", SeverityError)

	assert.Equal(t, "info line\n", stdout.String())
	assert.Equal(t, "error line\n", stderr.String())
}

func TestWriterFunc(t *testing.T) {
	t.Parallel()

	var got string
	w := WriterFunc(func(serialized string, level Severity) {
		got = serialized + "/" + level.String()
	})
	w.Write("line", SeverityInfo)
	assert.Equal(t, "line/info", got)
}
