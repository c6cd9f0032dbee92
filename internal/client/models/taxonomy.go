package models

// Taxonomy is a three-tier controlled vocabulary:
// opportunity type -> domain -> specialization.

type OpportunityType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Domain struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	OpportunityType *OpportunityType `json:"opportunity_type"`
}

type Specialization struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Domain *Domain `json:"domain"`
}

// Location is one node of the region > subregion > city hierarchy.
// Parent is nil for root regions.
type Location struct {
	ID     int64     `json:"id"`
	Name   string    `json:"name"`
	Parent *Location `json:"parent"`
}
