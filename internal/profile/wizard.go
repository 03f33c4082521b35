package profile

import (
	"exhibitor-profile/internal/models"
)

// StepAction tells the UI what a wizard step asks the exhibitor to do.
type StepAction string

const (
	ActionCompleteSection StepAction = "complete_section"
	ActionAddProduct      StepAction = "add_product"
)

// Step is one entry of the remediation plan.
type Step struct {
	SectionID models.SectionID    `json:"sectionId"`
	Name      string              `json:"name"`
	Group     models.SectionGroup `json:"group"`
	Action    StepAction          `json:"action"`
}

// PlanSteps lists the relevant sections that are not yet complete, in
// catalog order. While the products section is relevant and no product
// exists, an add-product step is appended last; once a product exists the
// products section never appears. An empty plan means the profile is done.
func PlanSteps(p models.ExhibitorProfile) []Step {
	hasProducts := p.HasProducts()
	steps := make([]Step, 0)

	var productStep *Step
	for _, s := range relevantSections(p) {
		if s.IsProducts() {
			if !hasProducts && productStep == nil {
				productStep = &Step{SectionID: s.ID, Name: s.Name, Group: s.Group, Action: ActionAddProduct}
			}
			continue
		}
		if SectionStatusOf(s).IsComplete() {
			continue
		}
		steps = append(steps, Step{SectionID: s.ID, Name: s.Name, Group: s.Group, Action: ActionCompleteSection})
	}

	if productStep != nil {
		steps = append(steps, *productStep)
	}
	return steps
}
