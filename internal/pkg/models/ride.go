package models

import "encoding/json"

// RideStatusRequested is the only status this service assigns
const RideStatusRequested = "requested"

// CollectionRideRequests is the document store collection for ride requests
const CollectionRideRequests = "rideRequests"

// Coordinates is a pickup or drop point
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// RideRequest is the persisted ride booking record
type RideRequest struct {
	UserID    string      `json:"userId" bson:"userId"`
	Pickup    Coordinates `json:"pickup" bson:"pickup"`
	Drop      Coordinates `json:"drop" bson:"drop"`
	Timestamp string      `json:"timestamp" bson:"timestamp"`
	Status    string      `json:"status" bson:"status"`
	CreatedAt string      `json:"createdAt" bson:"createdAt"`
	UpdatedAt string      `json:"updatedAt" bson:"updatedAt"`
}

// CreateRideRequest is the body of POST /ride-request.
// Locations and timestamp are kept raw so presence and shape can be checked
// before they are decoded.
type CreateRideRequest struct {
	UserID    string          `json:"userId"`
	Pickup    json.RawMessage `json:"pickup"`
	Drop      json.RawMessage `json:"drop"`
	Timestamp json.RawMessage `json:"timestamp"`
}

// RideResponse is returned after a ride request has been stored
type RideResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	RideID  string `json:"rideId"`
	RideRequest
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Service   string `json:"service,omitempty"`
	Timestamp string `json:"timestamp"`
}
