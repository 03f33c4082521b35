// internal/workers/profile/profile-toggle-not-relevant/models.go
package profiletogglenotrelevant

type Input struct {
	ProfileID       string `json:"profileId"`
	SectionID       string `json:"sectionId"`
	ExpectedVersion int64  `json:"expectedVersion,omitempty"`
}

type Output struct {
	ProfileID     string `json:"profileId"`
	SectionID     string `json:"sectionId"`
	Toggled       bool   `json:"toggled"`
	IsNotRelevant bool   `json:"isNotRelevant"`
	Version       int64  `json:"version"`
	OverallScore  int    `json:"overallScore"`
}

const inputSchema = `{
	"type": "object",
	"required": ["profileId", "sectionId"],
	"properties": {
		"profileId": {"type": "string", "minLength": 1},
		"sectionId": {"type": "string", "minLength": 1},
		"expectedVersion": {"type": "integer", "minimum": 1}
	}
}`
