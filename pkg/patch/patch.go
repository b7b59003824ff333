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

package patch

import (
	"bytes"
	"context"

	"github.com/walteh/patchrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🩹 Patcher applies replacement batches to files on a FileSystem
type Patcher struct {
	fs       FileSystem
	replacer text.TextReplacer
}

// Option configures a Patcher
type Option func(*Patcher)

// WithFileSystem swaps the filesystem a Patcher reads and writes through.
func WithFileSystem(fs FileSystem) Option {
	return func(p *Patcher) {
		p.fs = fs
	}
}

// 🏭 New creates a Patcher backed by the OS filesystem unless configured otherwise
func New(opts ...Option) *Patcher {
	p := &Patcher{
		fs:       NewOSFileSystem(),
		replacer: text.NewSimpleTextReplacer(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FileSystem returns the filesystem the Patcher works on.
func (p *Patcher) FileSystem() FileSystem {
	return p.fs
}

// Replacer returns the replacer the Patcher transforms content with.
func (p *Patcher) Replacer() text.TextReplacer {
	return p.replacer
}

// PatchFile reads path, applies rules in order and writes the result back
// atomically.
//
// Rules are validated before the file is touched; a bad rule yields a
// *text.InvalidRuleError. A read failure yields a *FileNotFoundError and a
// failed write yields a *FileWriteError with the original content intact.
// When no rule changes the content the file is not rewritten.
func (p *Patcher) PatchFile(ctx context.Context, path string, rules []text.ReplacementRule) (*text.ReplacementResult, error) {
	if err := p.replacer.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("patching %s: %w", path, err)
	}

	content, mode, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, &FileNotFoundError{Path: path, Err: err}
	}

	result, err := p.replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return nil, errors.Errorf("patching %s: %w", path, err)
	}

	if !result.WasModified {
		return result, nil
	}

	if err := p.fs.WriteFileAtomic(path, result.ModifiedContent, mode); err != nil {
		return nil, &FileWriteError{Path: path, Err: err}
	}

	return result, nil
}

// PatchFile patches path on the OS filesystem with a default Patcher.
func PatchFile(ctx context.Context, path string, rules []text.ReplacementRule) error {
	_, err := New().PatchFile(ctx, path, rules)
	return err
}
