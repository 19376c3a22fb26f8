package utils

// ResponseData is the common envelope for API error responses emitted
// outside the regular handlers, such as the panic recovery path.
type ResponseData struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Results any    `json:"results,omitempty"`
}
