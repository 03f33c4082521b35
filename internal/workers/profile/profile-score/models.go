// internal/workers/profile/profile-score/models.go
package profilescore

import "exhibitor-profile/internal/profile"

type Input struct {
	ProfileID string `json:"profileId"`
}

type Output struct {
	ProfileID  string                   `json:"profileId"`
	Version    int64                    `json:"version"`
	Completion profile.CompletionResult `json:"completion"`
	Cached     bool                     `json:"cached"`
}

const inputSchema = `{
	"type": "object",
	"required": ["profileId"],
	"properties": {
		"profileId": {"type": "string", "minLength": 1}
	}
}`
