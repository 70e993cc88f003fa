package toc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// treeSchema constrains externally supplied TOC JSON before it reaches the
// splitting engine: titles are strings, pages are positive integers, and
// subtopics nest recursively.
const treeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["chapters"],
  "properties": {
    "chapters": {
      "type": "array",
      "items": {"$ref": "#/$defs/node"}
    }
  },
  "$defs": {
    "node": {
      "type": "object",
      "required": ["title"],
      "properties": {
        "title": {"type": "string"},
        "number": {"type": "string"},
        "page": {"type": "integer", "minimum": 1},
        "subtopics": {
          "type": "array",
          "items": {"$ref": "#/$defs/node"}
        }
      }
    }
  }
}`

var compiledTreeSchema = mustCompileTreeSchema()

func mustCompileTreeSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("toc.json", strings.NewReader(treeSchema)); err != nil {
		panic(fmt.Sprintf("failed to load toc schema: %v", err))
	}
	return compiler.MustCompile("toc.json")
}

// ValidateJSON checks raw TOC JSON against the tree schema.
func ValidateJSON(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid TOC JSON: %w", err)
	}
	if err := compiledTreeSchema.Validate(doc); err != nil {
		return fmt.Errorf("TOC does not match schema: %w", err)
	}
	return nil
}

// DecodeTree validates raw TOC JSON and unmarshals it into a Tree.
func DecodeTree(raw []byte) (*Tree, error) {
	if err := ValidateJSON(raw); err != nil {
		return nil, err
	}
	var tree Tree
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode TOC: %w", err)
	}
	return &tree, nil
}
