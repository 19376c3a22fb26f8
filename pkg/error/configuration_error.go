package error

import "net/http"

// ConfigurationError reports a missing or invalid process-level setting,
// such as an absent provider API key. It is fatal to the operation that
// required the setting and is never silently defaulted.
type ConfigurationError string

func (err ConfigurationError) Error() string {
	return string(err)
}

func (err ConfigurationError) ErrCode() string {
	return "CONFIGURATION_ERROR"
}

func (err ConfigurationError) StatusCode() int {
	return http.StatusInternalServerError
}
