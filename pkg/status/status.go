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

package status

// 📊 FileStatus represents the outcome of patching a file
type FileStatus int

const (
	StatusUnknown    FileStatus = iota
	StatusPatched               // Content changed and was written
	StatusUnchanged             // No rule matched; file left alone
	StatusFailed                // Patch failed; file holds its previous content
	StatusRolledBack            // Patched, then restored because another target failed
	StatusSkipped               // Not attempted
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusPatched:
		return "patched"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	case StatusRolledBack:
		return "rolled back"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// IsFailure reports whether the status should make a run fail.
func (s FileStatus) IsFailure() bool {
	return s == StatusFailed
}
