package entity

// Wire types for the hosted AI gateway.

type GatewayEmbedRequest struct {
	Text []string `json:"text"`
}

type GatewayEmbedResult struct {
	Data [][]float32 `json:"data"`
}

type GatewayEmbedResponse struct {
	Result  GatewayEmbedResult `json:"result"`
	Success bool               `json:"success"`
}

type GatewayGenerateRequest struct {
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream,omitempty"`
}

type GatewayGenerateResult struct {
	Response string `json:"response"`
}

type GatewayGenerateResponse struct {
	Result  GatewayGenerateResult `json:"result"`
	Success bool                  `json:"success"`
}

// Wire types for the hosted vector index.

type VectorUpsertRequest struct {
	Vectors []VectorEntry `json:"vectors"`
}

type VectorUpsertResponse struct {
	Mutated int `json:"mutated,omitempty"`
}

type VectorQueryRequest struct {
	Vector         []float32 `json:"vector"`
	TopK           int       `json:"topK"`
	ReturnMetadata bool      `json:"returnMetadata"`
}

type VectorQueryResponse struct {
	Matches []VectorMatch `json:"matches"`
}
