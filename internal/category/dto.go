package category

// CategoryResponse is what the entry form's picker consumes.
type CategoryResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
