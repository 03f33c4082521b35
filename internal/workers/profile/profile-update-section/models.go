// internal/workers/profile/profile-update-section/models.go
package profileupdatesection

import "exhibitor-profile/internal/models"

type Input struct {
	ProfileID string       `json:"profileId"`
	SectionID string       `json:"sectionId"`
	Locale    string       `json:"locale"`
	Value     models.Value `json:"value"`
	// Status overrides the status derived from Value when set.
	Status          string `json:"status,omitempty"`
	ExpectedVersion int64  `json:"expectedVersion,omitempty"`
}

type Output struct {
	ProfileID     string               `json:"profileId"`
	SectionID     string               `json:"sectionId"`
	Locale        string               `json:"locale"`
	LocaleStatus  models.SectionStatus `json:"localeStatus"`
	SectionStatus models.SectionStatus `json:"sectionStatus"`
	Version       int64                `json:"version"`
	OverallScore  int                  `json:"overallScore"`
}

const inputSchema = `{
	"type": "object",
	"required": ["profileId", "sectionId", "locale"],
	"properties": {
		"profileId": {"type": "string", "minLength": 1},
		"sectionId": {"type": "string", "minLength": 1},
		"locale": {"type": "string", "enum": ["de", "en", "fr"]},
		"value": {"type": ["string", "array", "null"], "items": {"type": "string"}},
		"status": {"type": "string", "enum": ["empty", "partial", "complete"]},
		"expectedVersion": {"type": "integer", "minimum": 1}
	}
}`
