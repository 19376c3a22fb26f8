package error

// GenericError is implemented by every typed API error so the recovery
// middleware and handlers can map them to HTTP responses.
type GenericError interface {
	Error() string
	ErrCode() string
	StatusCode() int
}
