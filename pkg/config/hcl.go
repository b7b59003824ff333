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

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL
//
//	all_or_nothing = true
//
//	replacement {
//	  old   = "rounded-2xl"
//	  new   = "rounded-sm"
//	  files = "**/*.tsx"
//	}
//
//	target "src/app/news/[id]/page.tsx" {
//	  replacement {
//	    old = "px-6 py-5"
//	    new = "px-6 py-6"
//	  }
//	}
func (p *HCLParser) Parse(ctx context.Context, filename string, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	type hclReplacement struct {
		Old   string `hcl:"old"`
		New   string `hcl:"new"`
		Files string `hcl:"files,optional"`
	}

	type hclConfig struct {
		AllOrNothing bool             `hcl:"all_or_nothing,optional"`
		Replacements []hclReplacement `hcl:"replacement,block"`
		Targets      []struct {
			Path         string           `hcl:"path,label"`
			Replacements []hclReplacement `hcl:"replacement,block"`
		} `hcl:"target,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	convert := func(in []hclReplacement) []Replacement {
		var out []Replacement
		for _, r := range in {
			out = append(out, Replacement{Old: r.Old, New: r.New, Files: r.Files})
		}
		return out
	}

	cfg := &Config{
		AllOrNothing: hclCfg.AllOrNothing,
		Replacements: convert(hclCfg.Replacements),
	}
	for _, t := range hclCfg.Targets {
		cfg.Targets = append(cfg.Targets, Target{
			Path:         t.Path,
			Replacements: convert(t.Replacements),
		})
	}

	return cfg, nil
}
