package models

// Category is a fixed topic tag used to select response content.
// The set is static; there is no lifecycle beyond build time.
type Category string

const (
	CategoryMIGConfig     Category = "mig_config"
	CategoryNVLink        Category = "nvlink"
	CategoryTensorRT      Category = "tensorrt"
	CategoryNeMo          Category = "nemo"
	CategoryTriton        Category = "triton"
	CategoryCUDAProfiling Category = "cuda_profiling"
	CategoryCUDAGeneral   Category = "cuda_general"
	CategoryGeneric       Category = "generic"
)

// RoutingRule maps a set of keywords to a category. Rules are evaluated in
// declaration order and the first rule with at least one keyword hit wins.
type RoutingRule struct {
	Category Category
	Keywords []string
	Tags     []string
}

// Classification is the result of routing a query. Confidence is in
// [0.5, 0.9] and grows with the number of matched keywords.
type Classification struct {
	Category        Category `json:"category"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords"`
	Tags            []string `json:"tags"`
}

// SourceReference points at a documentation page backing an answer.
type SourceReference struct {
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Relevance float64 `json:"relevance"`
}

// CodeExample links to a sample file in one of the official repositories.
type CodeExample struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Repo        string `json:"repo"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ProviderMeta records which backend produced the answer text.
type ProviderMeta struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// QueryResponse is the full answer returned to the caller. It is never
// persisted server-side.
type QueryResponse struct {
	RequestID       string            `json:"request_id"`
	Query           string            `json:"query"`
	Answer          string            `json:"answer"`
	Category        Category          `json:"query_type"`
	Confidence      float64           `json:"confidence"`
	Sources         []SourceReference `json:"sources"`
	CodeExamples    []CodeExample     `json:"code_examples"`
	MatchedKeywords []string          `json:"matched_keywords"`
	SuggestedTags   []string          `json:"suggested_tags"`
	Generation      ProviderMeta      `json:"generation"`
}
