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

// Package oneshot runs a single hard-coded patch and turns the outcome into a
// process exit code.
package oneshot

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/patch"
	"github.com/walteh/patchrc/pkg/text"
)

// Run patches path with rules and returns 0 on success, 1 on any failure.
// Failures are reported on out with their kind and the offending path.
func Run(ctx context.Context, out io.Writer, path string, rules []text.ReplacementRule) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).With().Timestamp().Logger()

	result, err := patch.New().PatchFile(ctx, path, rules)
	if err != nil {
		logger.Error().
			Err(err).
			Str("kind", patch.ErrorKind(err)).
			Str("path", path).
			Msg("patch failed")
		return 1
	}

	logger.Info().
		Str("path", path).
		Int("replacements", result.ReplacementCount).
		Bool("modified", result.WasModified).
		Msg("patch applied")
	return 0
}
