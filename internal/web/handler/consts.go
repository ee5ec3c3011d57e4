package handler

const (
	// RootPath is the root path of the route group.
	RootPath = "/"

	// ErrNilDepsFatalLogMsg is used if a handler is initialized with a nil
	// router, config or service.
	ErrNilDepsFatalLogMsg = "router, cfg or service is nil"
)

// Detail is the error body shape of the JSON API.
type Detail struct {
	Detail string `json:"detail"`
}
