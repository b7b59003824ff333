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

// Command fix-admin-ascii replaces mis-decoded French words in the admin users
// panel with plain ASCII spellings.
package main

import (
	"context"
	"os"

	"github.com/walteh/patchrc/pkg/oneshot"
	"github.com/walteh/patchrc/pkg/text"
)

const target = "src/components/admin/AdminUsersPanel.tsx"

// each pattern holds U+FFFD where the accented letter was lost
var rules = []text.ReplacementRule{
	{FromText: "R�activer", ToText: "Reactiver"},
	{FromText: "mettre � jour", ToText: "mettre a jour"},
	{FromText: "r�activ�", ToText: "reactive"},
	{FromText: "d�finitivement", ToText: "definitivement"},
	{FromText: "supprim�", ToText: "supprime"},
}

func main() {
	os.Exit(oneshot.Run(context.Background(), os.Stderr, target, rules))
}
