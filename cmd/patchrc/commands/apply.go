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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/operation"
	"github.com/walteh/patchrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the configured replacements to every target",
		Long: `Apply patches every target listed in the config file.
It will:
1. Load and validate the config
2. Apply each target's replacements in order
3. Write each changed file atomically
4. Print a summary and exit non-zero if any target failed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := o.LoadConfig(ctx)
			if err != nil {
				return err
			}

			logger := log.FromContext(ctx)
			logger.Header("applying patches")
			logger.StartRun(ctx, log.RunOperation{
				Config:       cfg.Location(),
				Targets:      len(cfg.Targets),
				AllOrNothing: cfg.AllOrNothing,
			})

			results, runErr := operation.NewRunner(operation.Options{Logger: logger}).Run(ctx, cfg)

			ops := logger.EndRun(ctx)
			logger.LogNewline()
			if err := logger.Summary(ops); err != nil {
				return errors.Errorf("rendering summary: %w", err)
			}

			if runErr != nil {
				return errors.Errorf("applying %s: %w", o.ConfigFile, runErr)
			}

			patched, unchanged := 0, 0
			for _, res := range results {
				switch res.Status {
				case status.StatusPatched:
					patched++
				case status.StatusUnchanged:
					unchanged++
				}
			}
			if unchanged > 0 {
				logger.Infof("%d file(s) already up to date", unchanged)
			}
			logger.Successf("patched %d of %d file(s)", patched, len(results))

			return nil
		},
	}

	return cmd
}
