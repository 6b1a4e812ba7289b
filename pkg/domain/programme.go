package domain

import "time"

// DefaultVersion is the version string stamped on a freshly created mapping.
const DefaultVersion = "v0.1"

// ProgrammeDetails holds the free-text metadata describing the programme
// being mapped. All fields default to blank except MappingDate (today's
// local calendar date at creation) and Version.
type ProgrammeDetails struct {
	ProgrammeTitle string `json:"programmeTitle"`
	AwardLevel     string `json:"awardLevel"`
	Department     string `json:"department"`
	Institution    string `json:"institution"`
	MappingDate    string `json:"mappingDate"`
	Version        string `json:"version"`
}

// NewProgramme returns default programme details dated to now's calendar day.
func NewProgramme(now time.Time) ProgrammeDetails {
	return ProgrammeDetails{
		MappingDate: now.Format("2006-01-02"),
		Version:     DefaultVersion,
	}
}
