package response

import (
	"movecar/internal/domain/session"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

func OK() SuccessResponse {
	return SuccessResponse{Success: true}
}

type LocationView struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	AmapURL  string  `json:"amapUrl"`
	AppleURL string  `json:"appleUrl"`
}

// StatusResponse keeps ownerLocation present-but-null when the owner has
// not shared a location; polling clients test it for truthiness.
type StatusResponse struct {
	Status        string        `json:"status"`
	OwnerLocation *LocationView `json:"ownerLocation"`
}

type ProfileResponse struct {
	CarTitle    string `json:"carTitle"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

func FromPlacedLocation(loc *session.PlacedLocation) *LocationView {
	if loc == nil {
		return nil
	}
	return &LocationView{
		Lat:      loc.Lat,
		Lng:      loc.Lng,
		AmapURL:  loc.AmapURL,
		AppleURL: loc.AppleURL,
	}
}

func FromSnapshot(snap session.Snapshot) StatusResponse {
	return StatusResponse{
		Status:        string(snap.Status),
		OwnerLocation: FromPlacedLocation(snap.OwnerLocation),
	}
}
