package types

// EndpointDescriptor represents one API operation discovered in the documentation
type EndpointDescriptor struct {
	Path            string              `json:"path"`
	Method          string              `json:"method"`
	Purpose         string              `json:"purpose"`
	Parameters      *EndpointParameters `json:"parameters,omitempty"`
	Responses       EndpointResponses   `json:"responses"`
	SessionRequired bool                `json:"sessionRequired,omitempty"`
}

// EndpointParameters groups parameter descriptions by location.
// Each map goes from parameter name to a free-text type/constraint description.
type EndpointParameters struct {
	Query map[string]interface{} `json:"query,omitempty"`
	Path  map[string]interface{} `json:"path,omitempty"`
	Body  map[string]interface{} `json:"body,omitempty"`
}

// EndpointResponses describes the expected responses of an endpoint
type EndpointResponses struct {
	Success interface{}     `json:"success"`
	Error   []ErrorResponse `json:"error,omitempty"`
}

// ErrorResponse describes one documented error response
type ErrorResponse struct {
	Code    int         `json:"code,omitempty"`
	Example interface{} `json:"example,omitempty"`
	Schema  interface{} `json:"schema,omitempty"`
}

// EndpointCatalog is the validated result of a successful parse.
// Endpoints preserve extraction order and are never empty.
type EndpointCatalog struct {
	Endpoints      []EndpointDescriptor              `json:"endpoints"`
	DataModels     map[string]map[string]interface{} `json:"dataModels,omitempty"`
	BaseURL        string                            `json:"baseUrl,omitempty"`
	CommonPatterns *CommonPatterns                   `json:"commonPatterns,omitempty"`
}

// CommonPatterns captures API-wide conventions mentioned in the documentation
type CommonPatterns struct {
	Pagination        interface{} `json:"pagination,omitempty"`
	SessionManagement interface{} `json:"sessionManagement,omitempty"`
	ErrorHandling     []string    `json:"errorHandling,omitempty"`
}

// Key returns the "METHOD /path" identity of an endpoint
func (e *EndpointDescriptor) Key() string {
	return e.Method + " " + e.Path
}
