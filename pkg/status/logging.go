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

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	countWidth  = 6  // Width for replacement count
	statusWidth = 12 // Width for status text
)

// 🎯 FormatFileLine formats a file outcome as an aligned console line
func FormatFileLine(path string, status FileStatus, replacements int) string {
	var prefix string
	switch status {
	case StatusPatched:
		prefix = color.GreenString("✓")
	case StatusFailed:
		prefix = color.RedString("✗")
	case StatusRolledBack:
		prefix = color.YellowString("⟲")
	case StatusSkipped:
		prefix = color.HiBlackString("·")
	default:
		prefix = color.HiBlackString("-")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, path)
	countPart := fmt.Sprintf("%*d", countWidth, replacements)
	statusPart := fmt.Sprintf("%-*s", statusWidth, status)

	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		countPart,
		statusPart,
	)
}
