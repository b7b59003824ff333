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
	"github.com/walteh/patchrc/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

// NewDiffCmd creates a new diff command
func NewDiffCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show the lines apply would change, without writing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := o.LoadConfig(ctx)
			if err != nil {
				return err
			}

			logger := log.FromContext(ctx)

			diffs, previewErr := operation.NewRunner(operation.Options{}).Preview(ctx, cfg)
			for _, d := range diffs {
				if d.Err != nil {
					logger.Errorf("%s: %s: %v", d.Target.Path, patch.ErrorKind(d.Err), d.Err)
					continue
				}
				logger.Diff(d.Target.Path, d.Text)
			}

			if previewErr != nil {
				return errors.Errorf("previewing %s: %w", o.ConfigFile, previewErr)
			}
			return nil
		},
	}

	return cmd
}
