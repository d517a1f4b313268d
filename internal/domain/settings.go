package domain

// UpdateAPIKeyRequest is the request body for storing a personal LLM key.
// An empty key clears the stored credential and falls back to the server's
// configured one.
type UpdateAPIKeyRequest struct {
	APIKey string `json:"api_key" validate:"omitempty,min=8,max=256" example:"sk-..."`
}

// SettingsResponse reports the stored-credential state without ever echoing
// the key itself.
// @Description Whether a personal LLM API key is stored.
type SettingsResponse struct {
	HasAPIKey bool `json:"has_api_key" example:"true"`
}
