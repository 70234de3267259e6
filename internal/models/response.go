package models

// HealthStatus is the liveness body served on GET /
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// SaveResponse is the body returned for every POSTed answer
type SaveResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message,omitempty"`
	SavedData *SavedData `json:"savedData,omitempty"`
	Error     string     `json:"error,omitempty"`
}
