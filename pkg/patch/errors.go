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
	"fmt"

	"github.com/walteh/patchrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// FileNotFoundError reports a target that could not be read. Nothing has been
// written when it is returned.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s: %v", e.Path, e.Err)
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Err
}

// FileWriteError reports that patched content could not be persisted. The
// target still holds its previous content.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("writing file: %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}

// ErrorKind names the class of a patch failure for reporting: "invalid rule",
// "file not found", "file write", or "unknown".
func ErrorKind(err error) string {
	var (
		ruleErr  *text.InvalidRuleError
		readErr  *FileNotFoundError
		writeErr *FileWriteError
	)
	switch {
	case errors.As(err, &ruleErr):
		return "invalid rule"
	case errors.As(err, &readErr):
		return "file not found"
	case errors.As(err, &writeErr):
		return "file write"
	default:
		return "unknown"
	}
}
