// internal/models/status.go
package models

import (
	"fmt"
	"strings"
)

// SectionStatus is the completeness of a section, either for one locale or
// aggregated over all active locales.
type SectionStatus string

const (
	StatusEmpty    SectionStatus = "empty"
	StatusPartial  SectionStatus = "partial"
	StatusComplete SectionStatus = "complete"
)

// AllStatuses returns the statuses ordered from least to most complete.
func AllStatuses() []SectionStatus {
	return []SectionStatus{StatusEmpty, StatusPartial, StatusComplete}
}

// ParseSectionStatus parses a status, case-insensitive. An empty string is Empty.
func ParseSectionStatus(s string) (SectionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty", "":
		return StatusEmpty, nil
	case "partial":
		return StatusPartial, nil
	case "complete":
		return StatusComplete, nil
	default:
		return StatusEmpty, fmt.Errorf("invalid section status: %q", s)
	}
}

// Rank orders statuses: empty=0 < partial=1 < complete=2.
// Unknown values rank as empty.
func (s SectionStatus) Rank() int {
	switch s {
	case StatusComplete:
		return 2
	case StatusPartial:
		return 1
	default:
		return 0
	}
}

func (s SectionStatus) IsComplete() bool {
	return s == StatusComplete
}

func (s SectionStatus) IsEmpty() bool {
	return s.Rank() == 0
}

func (s SectionStatus) String() string {
	return string(s)
}

// SectionGroup is the weighting tier of a section.
type SectionGroup string

const (
	// GroupA holds the high impact, directory-facing sections.
	GroupA SectionGroup = "A"
	// GroupB holds the additional sections.
	GroupB SectionGroup = "B"
)

// Weight is the share of a locale score contributed by the group.
func (g SectionGroup) Weight() float64 {
	switch g {
	case GroupA:
		return 0.8
	case GroupB:
		return 0.2
	default:
		return 0
	}
}

func (g SectionGroup) IsValid() bool {
	return g == GroupA || g == GroupB
}

// PackageType is the exhibitor's booked package tier.
type PackageType string

const (
	PackageBronze PackageType = "bronze"
	PackageSilver PackageType = "silver"
	PackageGold   PackageType = "gold"
)

var ValidPackageTypes = map[PackageType]bool{
	PackageBronze: true,
	PackageSilver: true,
	PackageGold:   true,
}

func (p PackageType) IsValid() bool {
	return ValidPackageTypes[p]
}
