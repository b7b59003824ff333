// Copyright 2025 walteh LLC
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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/patchrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:         "page.tsx",
					Status:       status.StatusPatched,
					Replacements: 2,
				})
			},
			wantLogs: []string{
				"✓ page.tsx                                 2 patched",
			},
		},
		{
			name: "log_failed_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:   "missing.tsx",
					Status: status.StatusFailed,
					Err:    errors.New("file not found"),
				})
			},
			wantLogs: []string{
				"✗ missing.tsx                              0 failed",
				"file not found",
			},
		},
		{
			name: "log_run",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunOperation{
					Config:       ".patchrc.yaml",
					Targets:      2,
					AllOrNothing: true,
				})
			},
			wantLogs: []string{
				"◆ .patchrc.yaml • 2 target(s), all-or-nothing",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("applying patches")
			},
			wantLogs: []string{
				"patchrc • applying patches",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
		{
			name: "log_empty_diff",
			op: func(t *testing.T, logger *Logger) {
				logger.Diff("page.tsx", "")
			},
			wantLogs: []string{
				"--- page.tsx",
				"(no changes)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerStructuredEvents(t *testing.T) {
	zbuf := &bytes.Buffer{}
	logger := New(io.Discard, zerolog.New(zbuf))

	logger.StartRun(context.Background(), RunOperation{Config: "p.yaml", Targets: 2})
	logger.LogFileOperation(context.Background(), FileOperation{Path: "a.tsx", Status: status.StatusPatched, Replacements: 3})
	logger.LogFileOperation(context.Background(), FileOperation{Path: "b.tsx", Status: status.StatusFailed, Err: errors.New("boom")})
	ops := logger.EndRun(context.Background())

	require.Len(t, ops, 2, "end run should return logged operations")
	assert.Equal(t, "a.tsx", ops[0].Path)

	out := zbuf.String()
	assert.Contains(t, out, `"file":"a.tsx"`)
	assert.Contains(t, out, `"status":"patched"`)
	assert.Contains(t, out, `"replacements":3`)
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"failed":1`)

	assert.Nil(t, logger.EndRun(context.Background()), "ending twice returns nothing")
}

func TestLoggerSummary(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.Nop())

	err := logger.Summary([]FileOperation{
		{Path: "page.tsx", Status: status.StatusPatched, Replacements: 4},
		{Path: "panel.tsx", Status: status.StatusFailed, Err: errors.New("write failed")},
	})
	require.NoError(t, err)

	out := buf.String()
	for _, want := range []string{"File", "Status", "page.tsx", "patched", "4", "panel.tsx", "failed", "write failed"} {
		assert.Contains(t, out, want)
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}
