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
	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/patch"
	"github.com/walteh/patchrc/pkg/status"
)

// 📄 Result is the outcome for one target
type Result struct {
	Target       config.Target
	Path         string // Target path resolved against the config location
	Status       status.FileStatus
	Replacements int
	Err          error
}

// FileOperation converts the result for logging.
func (r Result) FileOperation() log.FileOperation {
	return log.FileOperation{
		Path:         r.Target.Path,
		Status:       r.Status,
		Replacements: r.Replacements,
		Err:          r.Err,
	}
}

// 🔧 Options contains configuration for the runner
type Options struct {
	// Patcher patches single files; defaults to one on the OS filesystem
	Patcher *patch.Patcher
	// Logger receives one line per target; optional
	Logger *log.Logger
}
