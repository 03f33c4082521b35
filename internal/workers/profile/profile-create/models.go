// internal/workers/profile/profile-create/models.go
package profilecreate

type Input struct {
	CompanyName      string   `json:"companyName"`
	PrimaryLocale    string   `json:"primaryLocale"`
	SecondaryLocales []string `json:"secondaryLocales,omitempty"`
	PackageType      string   `json:"packageType"`
}

type Output struct {
	ProfileID     string `json:"profileId"`
	Version       int64  `json:"version"`
	SectionCount  int    `json:"sectionCount"`
	OverallScore  int    `json:"overallScore"`
	OpenStepCount int    `json:"openStepCount"`
}

const inputSchema = `{
	"type": "object",
	"required": ["companyName", "primaryLocale", "packageType"],
	"properties": {
		"companyName": {"type": "string", "minLength": 1},
		"primaryLocale": {"type": "string", "enum": ["de", "en"]},
		"secondaryLocales": {
			"type": ["array", "null"],
			"items": {"type": "string", "enum": ["de", "en", "fr"]},
			"uniqueItems": true
		},
		"packageType": {"type": "string", "enum": ["bronze", "silver", "gold"]}
	}
}`
