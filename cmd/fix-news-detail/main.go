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

// Command fix-news-detail restyles the news detail page: wider spacing and
// small corner radii.
package main

import (
	"context"
	"os"

	"github.com/walteh/patchrc/pkg/oneshot"
	"github.com/walteh/patchrc/pkg/text"
)

const target = "src/app/news/[id]/page.tsx"

var rules = []text.ReplacementRule{
	{FromText: "mx-auto max-w-5xl space-y-6 px-4 py-8 sm:px-6 lg:px-10", ToText: "mx-auto max-w-5xl space-y-10 px-6 py-12 sm:px-10 lg:px-16"},
	{FromText: "rounded-2xl", ToText: "rounded-sm"},
	{FromText: "rounded-xl", ToText: "rounded-sm"},
	{FromText: "space-y-6 px-6 py-6 sm:px-8", ToText: "space-y-8 px-8 py-8 sm:px-12"},
	{FromText: "px-6 py-5", ToText: "px-6 py-6"},
}

func main() {
	os.Exit(oneshot.Run(context.Background(), os.Stderr, target, rules))
}
