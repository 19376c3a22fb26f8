package error

import (
	"fmt"
	"net/http"
)

// ProviderError carries a non-success response from an external
// text-generation provider, including the provider-reported status
// when one is available.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (err ProviderError) Error() string {
	if err.Status > 0 {
		return fmt.Sprintf("%s API error %d: %s", err.Provider, err.Status, err.Message)
	}
	return fmt.Sprintf("%s API error: %s", err.Provider, err.Message)
}

func (err ProviderError) ErrCode() string {
	return "PROVIDER_ERROR"
}

func (err ProviderError) StatusCode() int {
	return http.StatusBadGateway
}
