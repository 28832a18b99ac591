package models

// RawRecord is the subset of the remote user shape the dashboard reads.
// Other fields in the payload are ignored.
type RawRecord struct {
	ID   *int    `json:"id"`
	Name *string `json:"name"`
}
