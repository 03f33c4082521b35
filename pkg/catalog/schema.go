// pkg/catalog/schema.go
package catalog

// File is the on-disk catalog document.
type File struct {
	Version     string        `json:"version"`
	LastUpdated string        `json:"lastUpdated,omitempty"`
	Sections    []SectionSpec `json:"sections"`
}

// SectionSpec is one catalog entry as written in the file.
type SectionSpec struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Group     string   `json:"group"`
	Kind      string   `json:"kind"`
	Mandatory bool     `json:"mandatory"`
	GoldOnly  bool     `json:"goldOnly,omitempty"`
	Fields    []string `json:"fields,omitempty"`
}

const fileSchema = `{
	"type": "object",
	"required": ["version", "sections"],
	"properties": {
		"version": {"type": "string", "minLength": 1},
		"lastUpdated": {"type": "string"},
		"sections": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "name", "group", "kind"],
				"additionalProperties": false,
				"properties": {
					"id": {"type": "string", "pattern": "^[a-z][a-z_]*$"},
					"name": {"type": "string", "minLength": 1},
					"group": {"type": "string", "enum": ["A", "B"]},
					"kind": {"type": "string", "enum": ["text", "list", "multi_field", "products"]},
					"mandatory": {"type": "boolean"},
					"goldOnly": {"type": "boolean"},
					"fields": {"type": "array", "items": {"type": "string", "minLength": 1}}
				}
			}
		}
	}
}`
