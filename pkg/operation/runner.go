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
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/patch"
	"github.com/walteh/patchrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner patches the targets of a config in order
type Runner struct {
	patcher   *patch.Patcher
	logger    *log.Logger
	formatter status.FileFormatter
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts Options) *Runner {
	p := opts.Patcher
	if p == nil {
		p = patch.New()
	}
	return &Runner{
		patcher:   p,
		logger:    opts.Logger,
		formatter: status.NewDefaultFileFormatter(),
	}
}

// 🏃 Run patches every target of cfg and returns one result per target, in
// config order. The error is non-nil when any target failed.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) ([]Result, error) {
	results := make([]Result, len(cfg.Targets))
	for i, t := range cfg.Targets {
		results[i] = Result{
			Target: t,
			Path:   cfg.ResolvePath(t.Path),
			Status: status.StatusSkipped,
		}
	}

	var err error
	if cfg.AllOrNothing {
		err = r.runAllOrNothing(ctx, cfg, results)
	} else {
		err = r.runIndependent(ctx, cfg, results)
	}

	if r.logger != nil {
		for _, res := range results {
			r.logger.LogFileOperation(ctx, res.FileOperation())
		}
	}

	return results, err
}

// 🔄 runIndependent attempts every target regardless of earlier failures
func (r *Runner) runIndependent(ctx context.Context, cfg *config.Config, results []Result) error {
	logger := zerolog.Ctx(ctx)

	var first error
	failed := 0
	for i := range results {
		if err := ctx.Err(); err != nil {
			if first != nil {
				return errors.Errorf("patch run cancelled after %d of %d targets, %d failed: %w: %w", i, len(results), failed, err, first)
			}
			return errors.Errorf("patch run cancelled after %d of %d targets: %w", i, len(results), err)
		}

		r.patchOne(ctx, cfg, &results[i])
		if results[i].Err != nil {
			if first == nil {
				first = results[i].Err
			}
			failed++
		}

		logger.Debug().Str("file", results[i].Path).Msg(r.formatter.FormatProgress(i+1, len(results)))
	}

	if failed > 0 {
		return errors.Errorf("%d of %d targets failed, first: %w", failed, len(results), first)
	}
	return nil
}

// 💾 backup pairs a result with the file holding its original content
type backup struct {
	index int
	path  string
}

// ⚛️ runAllOrNothing stops at the first failure and restores what was patched
func (r *Runner) runAllOrNothing(ctx context.Context, cfg *config.Config, results []Result) error {
	logger := zerolog.Ctx(ctx)
	fs := r.patcher.FileSystem()

	var backups []backup
	defer func() {
		for _, b := range backups {
			if dropErr := fs.DropBackup(b.path); dropErr != nil {
				r.warnf(ctx, "could not remove backup %s of %s: %v", b.path, results[b.index].Path, dropErr)
			}
		}
	}()

	var cause error
	for i := range results {
		if ctxErr := ctx.Err(); ctxErr != nil {
			cause = errors.Errorf("patch run cancelled: %w", ctxErr)
			break
		}

		saved, backupErr := fs.Backup(results[i].Path)
		if backupErr != nil {
			results[i].Status = status.StatusFailed
			results[i].Err = errors.Errorf("backing up %s: %w", results[i].Path, backupErr)
			cause = results[i].Err
			break
		}
		backups = append(backups, backup{index: i, path: saved})

		r.patchOne(ctx, cfg, &results[i])
		if results[i].Err != nil {
			cause = results[i].Err
			break
		}

		logger.Debug().Str("file", results[i].Path).Msg(r.formatter.FormatProgress(i+1, len(results)))
	}

	if cause == nil {
		return nil
	}

	rolledBack := 0
	remaining := backups[:0]
	for _, b := range backups {
		res := &results[b.index]
		if res.Status != status.StatusPatched {
			remaining = append(remaining, b)
			continue
		}
		if restoreErr := fs.Restore(res.Path, b.path); restoreErr != nil {
			res.Status = status.StatusFailed
			res.Err = errors.Errorf("rolling back %s: %w", res.Path, restoreErr)
			r.warnf(ctx, "rolling back %s failed, its original content is kept in %s", res.Path, b.path)
			continue
		}
		res.Status = status.StatusRolledBack
		rolledBack++
	}
	// restored backups are gone; unrestored ones are kept for manual recovery
	backups = remaining

	return errors.Errorf("all-or-nothing run aborted, %d target(s) rolled back: %w", rolledBack, cause)
}

// warnf reports a non-fatal problem on the console logger when there is one,
// and on the context logger otherwise.
func (r *Runner) warnf(ctx context.Context, format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Warningf(format, args...)
		return
	}
	zerolog.Ctx(ctx).Warn().Msgf(format, args...)
}

// 🩹 patchOne patches a single target and records the outcome in res
func (r *Runner) patchOne(ctx context.Context, cfg *config.Config, res *Result) {
	defer func() {
		zerolog.Ctx(ctx).Debug().
			Str("file", res.Path).
			Msg(r.formatter.FormatFileOperation(res.Target.Path, res.Status, res.Replacements))
	}()

	rules := cfg.BatchFor(res.Target)

	out, err := r.patcher.PatchFile(ctx, res.Path, rules)
	if err != nil {
		res.Status = status.StatusFailed
		res.Err = err
		return
	}

	res.Replacements = out.ReplacementCount
	if out.WasModified {
		res.Status = status.StatusPatched
	} else {
		res.Status = status.StatusUnchanged
	}
}
