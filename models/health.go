package models

import "time"

// ServiceName identifies this server in health and root responses.
const ServiceName = "trackflow-server"

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Welcome is the payload of GET /.
type Welcome struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
