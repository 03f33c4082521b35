// internal/workers/profile/profile-manage-locales/models.go
package profilemanagelocales

type Input struct {
	ProfileID       string   `json:"profileId"`
	Add             []string `json:"add,omitempty"`
	Remove          []string `json:"remove,omitempty"`
	ExpectedVersion int64    `json:"expectedVersion,omitempty"`
}

type Output struct {
	ProfileID        string   `json:"profileId"`
	PrimaryLocale    string   `json:"primaryLocale"`
	SecondaryLocales []string `json:"secondaryLocales"`
	Version          int64    `json:"version"`
	OverallScore     int      `json:"overallScore"`
}

const inputSchema = `{
	"type": "object",
	"required": ["profileId"],
	"anyOf": [
		{"required": ["add"]},
		{"required": ["remove"]}
	],
	"properties": {
		"profileId": {"type": "string", "minLength": 1},
		"add": {"type": "array", "items": {"type": "string", "enum": ["de", "en", "fr"]}, "uniqueItems": true},
		"remove": {"type": "array", "items": {"type": "string", "enum": ["de", "en", "fr"]}, "uniqueItems": true},
		"expectedVersion": {"type": "integer", "minimum": 1}
	}
}`
