// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclBlueprint is the root of a blueprint authored in HCL. Entity blocks
// become array properties referencing the service Entity definition; field
// blocks become inferred generative properties.
type hclBlueprint struct {
	Class       string      `hcl:"class"`
	Description string      `hcl:"description,optional"`
	Entities    []hclEntity `hcl:"entity,block"`
	Fields      []hclField  `hcl:"field,block"`
}

type hclEntity struct {
	Name        string   `hcl:"name,label"`
	Instruction string   `hcl:"instruction"`
	Granularity []string `hcl:"granularity,optional"`
}

type hclField struct {
	Name        string   `hcl:"name,label"`
	Type        string   `hcl:"type"`
	Instruction string   `hcl:"instruction"`
	Granularity []string `hcl:"granularity,optional"`
}

// evalContext exposes the granularity keywords so authors can write
// granularity = [chapter] without quoting.
var evalContext = &hcl.EvalContext{
	Variables: map[string]cty.Value{
		"chapter": cty.StringVal(GranularityChapter),
		"video":   cty.StringVal(GranularityVideo),
	},
}

// ParseHCL compiles a blueprint authored in the HCL dialect:
//
//	class       = "media_search_video_analysis"
//	description = "Object detection for the media library"
//
//	entity "targeted-object-detection" {
//	  instruction = "Detect all the visually prominent objects in the video"
//	  granularity = [chapter]
//	}
//
//	field "object-verification" {
//	  type        = "boolean"
//	  instruction = "Are there zebras in this video?"
//	  granularity = [video]
//	}
func ParseHCL(filename string, data []byte) (*Blueprint, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}

	var root hclBlueprint
	if diags := gohcl.DecodeBody(file.Body, evalContext, &root); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", filename, diags)
	}

	b := New(root.Class, root.Description)
	for _, e := range root.Entities {
		b.AddEntity(e.Name, e.Instruction, e.Granularity...)
	}
	for _, f := range root.Fields {
		b.AddInferred(f.Name, f.Type, f.Instruction, f.Granularity...)
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return b, nil
}
