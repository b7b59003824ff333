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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestSimpleTextReplacer_ReplaceText(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		rules        []ReplacementRule
		want         string
		wantCount    int
		wantError    string
		wantModified bool
	}{
		{
			name:    "simple_replacement",
			content: "Hello World",
			rules: []ReplacementRule{
				{FromText: "World", ToText: "Universe"},
			},
			want:         "Hello Universe",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "multiple_replacements",
			content: "Hello World World",
			rules: []ReplacementRule{
				{FromText: "World", ToText: "Universe"},
			},
			want:         "Hello Universe Universe",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "multiple_rules",
			content: "Hello World",
			rules: []ReplacementRule{
				{FromText: "Hello", ToText: "Hi"},
				{FromText: "World", ToText: "Universe"},
			},
			want:         "Hi Universe",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "no_match",
			content: "Hello World",
			rules: []ReplacementRule{
				{FromText: "Goodbye", ToText: "Hi"},
			},
			want:         "Hello World",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:    "empty_content",
			content: "",
			rules: []ReplacementRule{
				{FromText: "World", ToText: "Universe"},
			},
			want:         "",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "empty_rules",
			content:      "Hello World",
			rules:        []ReplacementRule{},
			want:         "Hello World",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:    "replacement_equal_to_pattern",
			content: "keep keep",
			rules: []ReplacementRule{
				{FromText: "keep", ToText: "keep"},
			},
			want:         "keep keep",
			wantCount:    2,
			wantModified: false,
		},
		{
			name:    "empty_pattern",
			content: "Hello World",
			rules: []ReplacementRule{
				{FromText: "Hello", ToText: "Hi"},
				{FromText: "", ToText: "x"},
			},
			wantError: "invalid rule 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := NewSimpleTextReplacer()
			result, err := replacer.ReplaceText(
				context.Background(),
				strings.NewReader(tt.content),
				tt.rules,
			)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestSimpleTextReplacer_ValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []ReplacementRule
		wantIndex int
		wantError bool
	}{
		{
			name: "valid_rules",
			rules: []ReplacementRule{
				{FromText: "foo", ToText: "bar"},
				{FromText: "baz", ToText: ""},
			},
		},
		{
			name: "glob_is_optional",
			rules: []ReplacementRule{
				{FromText: "foo", ToText: "bar", FileFilterGlob: "**/*.tsx"},
				{FromText: "baz", ToText: "qux"},
			},
		},
		{
			name: "missing_from_text",
			rules: []ReplacementRule{
				{FromText: "foo", ToText: "bar"},
				{ToText: "bar"},
			},
			wantError: true,
			wantIndex: 1,
		},
		{
			name:  "empty_rules",
			rules: []ReplacementRule{},
		},
		{
			name: "nil_rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := NewSimpleTextReplacer()
			err := replacer.ValidateRules(tt.rules)

			if !tt.wantError {
				require.NoError(t, err)
				return
			}

			var ruleErr *InvalidRuleError
			require.True(t, errors.As(err, &ruleErr), "error should be an InvalidRuleError")
			assert.Equal(t, tt.wantIndex, ruleErr.Index)
			assert.Contains(t, err.Error(), "from_text is required")
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		content string
		rules   []ReplacementRule
		want    string
	}{
		{
			name:    "rules_run_in_sequence",
			content: "a",
			rules: []ReplacementRule{
				{FromText: "a", ToText: "b"},
				{FromText: "b", ToText: "c"},
			},
			want: "c",
		},
		{
			name:    "reversed_order_differs",
			content: "a",
			rules: []ReplacementRule{
				{FromText: "b", ToText: "c"},
				{FromText: "a", ToText: "b"},
			},
			want: "b",
		},
		{
			name:    "non_overlapping_left_to_right",
			content: "aaaa",
			rules: []ReplacementRule{
				{FromText: "aa", ToText: "a"},
			},
			want: "aa",
		},
		{
			name:    "odd_run_keeps_tail",
			content: "aaa",
			rules: []ReplacementRule{
				{FromText: "aa", ToText: "b"},
			},
			want: "ba",
		},
		{
			name:    "case_sensitive",
			content: "Rounded rounded ROUNDED",
			rules: []ReplacementRule{
				{FromText: "rounded", ToText: "square"},
			},
			want: "Rounded square ROUNDED",
		},
		{
			name:    "regex_metacharacters_are_literal",
			content: "a.b a*b (x)",
			rules: []ReplacementRule{
				{FromText: "a.b", ToText: "ok"},
				{FromText: "(x)", ToText: "[y]"},
			},
			want: "ok a*b [y]",
		},
		{
			name:    "whitespace_not_normalised",
			content: "px-6  py-5 px-6 py-5",
			rules: []ReplacementRule{
				{FromText: "px-6 py-5", ToText: "px-6 py-6"},
			},
			want: "px-6  py-5 px-6 py-6",
		},
		{
			name:    "tailwind_classes",
			content: `<div class="rounded-2xl rounded-xl">`,
			rules: []ReplacementRule{
				{FromText: "rounded-2xl", ToText: "rounded-sm"},
				{FromText: "rounded-xl", ToText: "rounded-sm"},
			},
			want: `<div class="rounded-sm rounded-sm">`,
		},
		{
			name:    "mojibake_repair",
			content: "<button>R�activer</button> <p>mettre � jour</p>",
			rules: []ReplacementRule{
				{FromText: "R�activer", ToText: "Reactiver"},
				{FromText: "mettre � jour", ToText: "mettre a jour"},
			},
			want: "<button>Reactiver</button> <p>mettre a jour</p>",
		},
		{
			name:    "invalid_utf8_bytes_are_matched_literally",
			content: "caf\xe9 ok",
			rules: []ReplacementRule{
				{FromText: "caf\xe9", ToText: "cafe"},
			},
			want: "cafe ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.content, tt.rules)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_Determinism(t *testing.T) {
	content := "mx-auto rounded-2xl rounded-xl px-6 py-5"
	rules := []ReplacementRule{
		{FromText: "rounded-2xl", ToText: "rounded-sm"},
		{FromText: "rounded-xl", ToText: "rounded-sm"},
		{FromText: "px-6 py-5", ToText: "px-6 py-6"},
	}

	first, err := Apply(content, rules)
	require.NoError(t, err)
	second, err := Apply(content, rules)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same input should always give the same output")
}

func TestApply_NoMatchIsNoop(t *testing.T) {
	content := "nothing to see here\n"
	got, err := Apply(content, []ReplacementRule{
		{FromText: "absent", ToText: "present"},
		{FromText: "also absent", ToText: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestApply_Idempotence(t *testing.T) {
	t.Run("stable_batch", func(t *testing.T) {
		rules := []ReplacementRule{
			{FromText: "rounded-2xl", ToText: "rounded-sm"},
			{FromText: "rounded-xl", ToText: "rounded-sm"},
		}
		once, err := Apply("rounded-2xl rounded-xl", rules)
		require.NoError(t, err)
		twice, err := Apply(once, rules)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "replacements contain no patterns, so a second pass is a no-op")
	})

	t.Run("growing_batch", func(t *testing.T) {
		// the replacement contains its own pattern, so every pass changes the text
		rules := []ReplacementRule{
			{FromText: "space-y-6", ToText: "space-y-6 space-y-8"},
		}
		once, err := Apply("space-y-6", rules)
		require.NoError(t, err)
		twice, err := Apply(once, rules)
		require.NoError(t, err)
		assert.Equal(t, "space-y-6 space-y-8", once)
		assert.Equal(t, "space-y-6 space-y-8 space-y-8", twice)
	})
}

func TestApply_EmptyPattern(t *testing.T) {
	got, err := Apply("content", []ReplacementRule{
		{FromText: "content", ToText: "changed"},
		{FromText: "", ToText: "x"},
	})

	var ruleErr *InvalidRuleError
	require.True(t, errors.As(err, &ruleErr), "error should be an InvalidRuleError")
	assert.Equal(t, 1, ruleErr.Index)
	assert.Empty(t, got, "no partial result should be returned")
}
