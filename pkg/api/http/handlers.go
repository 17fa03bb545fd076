package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is the API version reported by the info and health endpoints
const Version = "0.1.0"

// ServiceName identifies this service in health check responses
const ServiceName = "3d-stadium-backend"

// RootInfo describes the service for the root endpoint
type RootInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// HealthStatus is the health check response
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// StadiumInfo holds stadium metadata
type StadiumInfo struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Capacity int      `json:"capacity"`
	Features []string `json:"features"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Response payloads are fixed at start-up; handlers never mutate them.
var (
	rootInfo = RootInfo{
		Message: "3D Stadium Website API",
		Version: Version,
		Status:  "operational",
	}

	healthStatus = HealthStatus{
		Status:  "healthy",
		Service: ServiceName,
		Version: Version,
	}

	stadiumInfo = StadiumInfo{
		Name:     "Interactive Football Stadium",
		Type:     "football",
		Capacity: 50000,
		Features: []string{
			"3D visualization",
			"Interactive camera controls",
			"Cinematic lighting effects",
			"Bloom post-processing",
			"Atmospheric particles",
		},
	}
)

// handleRoot handles GET / with basic API information
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, rootInfo)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthStatus)
}

// handleHealthHead answers HEAD probes from monitoring tools.
// Registered separately because gin renders JSON bodies for HEAD too.
func (s *Server) handleHealthHead(c *gin.Context) {
	c.Status(http.StatusOK)
}

// handleStadiumInfo handles GET /api/stadium/info.
// Query parameters are ignored; the payload is constant.
func (s *Server) handleStadiumInfo(c *gin.Context) {
	c.JSON(http.StatusOK, stadiumInfo)
}
