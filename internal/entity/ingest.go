package entity

// IngestEntry is one record destined for the vector index: a patient context
// and the therapist response it was answered with. Entries map 1:1 to vector
// entries and are immutable once read from source.
type IngestEntry struct {
	Context  string `json:"context"`
	Response string `json:"response"`
}

type IngestRequest struct {
	Entries []IngestEntry `json:"entries"`
}

type IngestResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}
