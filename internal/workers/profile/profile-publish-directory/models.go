// internal/workers/profile/profile-publish-directory/models.go
package profilepublishdirectory

type Input struct {
	ProfileID string `json:"profileId"`
}

type Output struct {
	ProfileID    string `json:"profileId"`
	Version      int64  `json:"version"`
	OverallScore int    `json:"overallScore"`
	Published    bool   `json:"published"`
	IndexResult  string `json:"indexResult"`
}

const inputSchema = `{
	"type": "object",
	"required": ["profileId"],
	"properties": {
		"profileId": {"type": "string", "minLength": 1}
	}
}`
