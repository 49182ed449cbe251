package entity

// VectorMetadata is stored alongside each vector and returned on query.
type VectorMetadata struct {
	Context  string `json:"context"`
	Response string `json:"response"`
}

// VectorEntry is one point in the hosted index. IDs must be unique per
// upsert: the index silently overwrites on collision.
type VectorEntry struct {
	ID       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata VectorMetadata `json:"metadata"`
}

type VectorMatch struct {
	ID       string         `json:"id"`
	Score    float64        `json:"score"`
	Metadata VectorMetadata `json:"metadata"`
}
