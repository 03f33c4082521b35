// internal/workers/profile/profile-sync-products/models.go
package profilesyncproducts

type Input struct {
	ProfileID    string `json:"profileId"`
	ProductCount int    `json:"productCount"`
}

type Output struct {
	ProfileID    string `json:"profileId"`
	ProductCount int    `json:"productCount"`
	HasProducts  bool   `json:"hasProducts"`
	Changed      bool   `json:"changed"`
	Version      int64  `json:"version"`
	OverallScore int    `json:"overallScore"`
}

const inputSchema = `{
	"type": "object",
	"required": ["profileId", "productCount"],
	"properties": {
		"profileId": {"type": "string", "minLength": 1},
		"productCount": {"type": "integer"}
	}
}`
