package model

import "regexp"

// ImportRecord is one normalized row produced by a schedule importer.
type ImportRecord struct {
	Dock               int    `json:"dock"`
	Carrier            string `json:"carrier"`
	Cargo              string `json:"cargo"`
	ScheduledArrival   string `json:"scheduled_arrival,omitempty"`
	ScheduledDeparture string `json:"scheduled_departure,omitempty"`
	Plate              string `json:"plate,omitempty"`
	Seal               string `json:"seal,omitempty"`
	Remarks            string `json:"remarks,omitempty"`
}

// ImportBatch groups the rows of one schedule file. Zone applies to every
// row and is zero when the source name carries no zone marker.
type ImportBatch struct {
	Source  string         `json:"source,omitempty"`
	Zone    int            `json:"zone,omitempty"`
	Records []ImportRecord `json:"records"`
}

// ImportSummary is the externally visible result of a batch import.
type ImportSummary struct {
	Applied   int `json:"applied"`
	Conflicts int `json:"conflicts"`
	Skipped   int `json:"skipped"`
}

var zonePattern = regexp.MustCompile(`(?i)zone[_\s-]?([1-9])`)

// ZoneFromSource extracts the zone digit from a schedule source name such as
// "zone_3_monday.xlsx". It returns 0 when no zone marker is found.
func ZoneFromSource(name string) int {
	m := zonePattern.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	return int(m[1][0] - '0')
}
