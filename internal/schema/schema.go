// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

// Package schema builds and validates the JSON schema documents that back
// custom output blueprints. Schemas can be supplied as JSON or authored in a
// small HCL dialect.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Draft07 is the JSON schema dialect the service accepts.
	Draft07 = "http://json-schema.org/draft-07/schema#"

	// EntityRef marks a property as an entity detection, which the service
	// resolves to detected objects with bounding boxes.
	EntityRef = "bedrock-data-automation#/definitions/Entity"
)

// Granularity values a video property may carry.
const (
	GranularityChapter = "chapter"
	GranularityVideo   = "video"
)

// Property is one extraction or inference the blueprint asks for.
type Property struct {
	Type          string    `json:"type,omitempty"`
	Items         *ItemsRef `json:"items,omitempty"`
	Instruction   string    `json:"instruction,omitempty"`
	Granularity   []string  `json:"granularity,omitempty"`
	InferenceType string    `json:"inferenceType,omitempty"`
}

// ItemsRef points array items at a service-defined entity type.
type ItemsRef struct {
	Ref string `json:"$ref"`
}

// Blueprint is the schema document registered with the service.
type Blueprint struct {
	Schema      string              `json:"$schema"`
	Description string              `json:"description,omitempty"`
	Class       string              `json:"class"`
	Type        string              `json:"type"`
	Properties  map[string]Property `json:"properties"`
}

// New returns an empty draft-07 blueprint of the given class.
func New(class string, description string) *Blueprint {
	return &Blueprint{
		Schema:      Draft07,
		Description: description,
		Class:       class,
		Type:        "object",
		Properties:  map[string]Property{},
	}
}

// AddEntity adds a chapter or video scoped entity detection property.
func (b *Blueprint) AddEntity(name string, instruction string, granularity ...string) {
	if len(granularity) == 0 {
		granularity = []string{GranularityChapter}
	}
	b.Properties[name] = Property{
		Type:        "array",
		Items:       &ItemsRef{Ref: EntityRef},
		Instruction: instruction,
		Granularity: granularity,
	}
}

// AddInferred adds a generative property of the given primitive type.
func (b *Blueprint) AddInferred(name string, typ string, instruction string, granularity ...string) {
	if len(granularity) == 0 {
		granularity = []string{GranularityVideo}
	}
	b.Properties[name] = Property{
		Type:          typ,
		Instruction:   instruction,
		Granularity:   granularity,
		InferenceType: "inferred",
	}
}

// Validate checks the document for the mistakes the service would otherwise
// reject with an opaque ValidationException.
func (b *Blueprint) Validate() error {
	if b.Class == "" {
		return fmt.Errorf("blueprint class is required")
	}
	if len(b.Properties) == 0 {
		return fmt.Errorf("blueprint has no properties")
	}

	for name, p := range b.Properties {
		if p.Instruction == "" {
			return fmt.Errorf("property %q has no instruction", name)
		}
		if p.Type == "array" && (p.Items == nil || p.Items.Ref == "") {
			return fmt.Errorf("array property %q needs an items $ref", name)
		}
		for _, g := range p.Granularity {
			if g != GranularityChapter && g != GranularityVideo {
				return fmt.Errorf("property %q has unknown granularity %q", name, g)
			}
		}
	}

	return nil
}

// Compile renders the document to the JSON string CreateBlueprint expects.
func (b *Blueprint) Compile() (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}

	out, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ParseJSON loads a blueprint from raw JSON.
func ParseJSON(data []byte) (*Blueprint, error) {
	var b Blueprint
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("invalid blueprint schema: %w", err)
	}
	if b.Schema == "" {
		b.Schema = Draft07
	}
	if b.Type == "" {
		b.Type = "object"
	}
	return &b, nil
}

// LoadFile reads a blueprint from disk, dispatching on extension. JSON
// documents pass through as-is; .hcl and .bp files go through the authoring
// dialect.
func LoadFile(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl", ".bp":
		return ParseHCL(path, data)
	default:
		return ParseJSON(data)
	}
}
