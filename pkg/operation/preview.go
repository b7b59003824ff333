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

package operation

import (
	"bytes"
	"context"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Diff is the preview of one target
type Diff struct {
	Target       config.Target
	Path         string
	Replacements int
	Text         string // changed lines prefixed with "-" or "+"; empty when nothing changes
	Err          error
}

// Preview computes what Run would change without writing anything.
func (r *Runner) Preview(ctx context.Context, cfg *config.Config) ([]Diff, error) {
	replacer := r.patcher.Replacer()
	fs := r.patcher.FileSystem()

	diffs := make([]Diff, 0, len(cfg.Targets))
	failed := 0
	for _, t := range cfg.Targets {
		d := Diff{Target: t, Path: cfg.ResolvePath(t.Path)}

		content, _, err := fs.ReadFile(d.Path)
		if err != nil {
			d.Err = &patch.FileNotFoundError{Path: d.Path, Err: err}
			failed++
			diffs = append(diffs, d)
			continue
		}

		res, err := replacer.ReplaceText(ctx, bytes.NewReader(content), cfg.BatchFor(t))
		if err != nil {
			d.Err = err
			failed++
			diffs = append(diffs, d)
			continue
		}

		d.Replacements = res.ReplacementCount
		if res.WasModified {
			d.Text = LineDiff(string(res.OriginalContent), string(res.ModifiedContent))
		}
		diffs = append(diffs, d)
	}

	if failed > 0 {
		return diffs, errors.Errorf("%d of %d targets could not be previewed", failed, len(cfg.Targets))
	}
	return diffs, nil
}

// LineDiff renders the lines that differ between before and after. Removed
// lines start with "-", added lines with "+"; unchanged lines are omitted.
func LineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}
