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

package text

import (
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var _ TextReplacer = (*SimpleTextReplacer)(nil)

// SimpleTextReplacer implements TextReplacer using literal string replacement
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	if err := r.ValidateRules(rules); err != nil {
		return nil, err
	}

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	modified, count := apply(string(originalContent), rules)

	return &ReplacementResult{
		OriginalContent:  originalContent,
		ModifiedContent:  []byte(modified),
		ReplacementCount: count,
		WasModified:      modified != string(originalContent),
	}, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return &InvalidRuleError{Index: i, Rule: rule, Reason: "from_text is required"}
		}
	}
	return nil
}

// Apply runs every rule over content in order and returns the final text.
// Each rule replaces all non-overlapping occurrences, left to right, of its
// pattern in the output of the previous rule. The batch is rejected with an
// *InvalidRuleError before anything is replaced if any pattern is empty.
func Apply(content string, rules []ReplacementRule) (string, error) {
	if err := NewSimpleTextReplacer().ValidateRules(rules); err != nil {
		return "", err
	}
	out, _ := apply(content, rules)
	return out, nil
}

func apply(content string, rules []ReplacementRule) (string, int) {
	count := 0
	for _, rule := range rules {
		n := strings.Count(content, rule.FromText)
		if n == 0 {
			continue
		}
		count += n
		content = strings.ReplaceAll(content, rule.FromText, rule.ToText)
	}
	return content, count
}
