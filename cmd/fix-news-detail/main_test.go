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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/patchrc/pkg/oneshot"
)

func TestRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.tsx")

	before := `<article className="mx-auto max-w-5xl space-y-6 px-4 py-8 sm:px-6 lg:px-10">
  <header className="rounded-2xl border space-y-6 px-6 py-6 sm:px-8">
    <div className="rounded-xl bg-white px-6 py-5">{news.title}</div>
  </header>
</article>
`
	want := `<article className="mx-auto max-w-5xl space-y-10 px-6 py-12 sm:px-10 lg:px-16">
  <header className="rounded-sm border space-y-8 px-8 py-8 sm:px-12">
    <div className="rounded-sm bg-white px-6 py-6">{news.title}</div>
  </header>
</article>
`
	require.NoError(t, os.WriteFile(path, []byte(before), 0644))

	code := oneshot.Run(context.Background(), &bytes.Buffer{}, path, rules)
	require.Equal(t, 0, code)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}
