package httphandlers

type HealthCheckResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type ConfigResponse struct {
	Version string      `json:"version"`
	Config  interface{} `json:"config"`
}
