package asset

// CreateRequest is the payload for creating a new asset.
type CreateRequest struct {
	Name string `json:"name" form:"name" validate:"required"`
}
