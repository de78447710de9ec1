package request

// LocationDTO carries a raw device coordinate. Values come straight from
// the browser geolocation API; range validation happens in the domain.
type LocationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type NotifyRequest struct {
	Message   string       `json:"message"`
	Location  *LocationDTO `json:"location"`
	SessionID string       `json:"sessionId"`
}

type OwnerConfirmRequest struct {
	Location *LocationDTO `json:"location"`
}
