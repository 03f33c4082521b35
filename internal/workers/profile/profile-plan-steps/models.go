// internal/workers/profile/profile-plan-steps/models.go
package profileplansteps

import "exhibitor-profile/internal/profile"

type Input struct {
	ProfileID string `json:"profileId"`
	// IncludeSections adds the per-section status view to the output.
	IncludeSections bool `json:"includeSections,omitempty"`
}

type Output struct {
	ProfileID       string                   `json:"profileId"`
	Version         int64                    `json:"version"`
	Steps           []profile.Step           `json:"steps"`
	StepCount       int                      `json:"stepCount"`
	NextStep        *profile.Step            `json:"nextStep,omitempty"`
	ProfileComplete bool                     `json:"profileComplete"`
	Sections        []profile.SectionSummary `json:"sections,omitempty"`
}

const inputSchema = `{
	"type": "object",
	"required": ["profileId"],
	"properties": {
		"profileId": {"type": "string", "minLength": 1},
		"includeSections": {"type": "boolean"}
	}
}`
