//go:build unit || e2e

package builder

import (
	reqdto "movecar/internal/handler/dto/request"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	Message   string
	Lat       float64
	Lng       float64
	HasLoc    bool
	SessionID string
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		Message:   "请尽快挪车，谢谢",
		Lat:       39.9042,
		Lng:       116.4074,
		HasLoc:    true,
		SessionID: uuid.NewString(),
	}
}

func (b *SessionBuilder) WithMessage(msg string) *SessionBuilder {
	b.Message = msg
	return b
}

func (b *SessionBuilder) WithLocation(lat, lng float64) *SessionBuilder {
	b.Lat = lat
	b.Lng = lng
	b.HasLoc = true
	return b
}

func (b *SessionBuilder) WithoutLocation() *SessionBuilder {
	b.HasLoc = false
	return b
}

func (b *SessionBuilder) WithSessionID(id string) *SessionBuilder {
	b.SessionID = id
	return b
}

func (b *SessionBuilder) BuildNotifyRequestDTO() reqdto.NotifyRequest {
	req := reqdto.NotifyRequest{
		Message:   b.Message,
		SessionID: b.SessionID,
	}
	if b.HasLoc {
		req.Location = &reqdto.LocationDTO{Lat: b.Lat, Lng: b.Lng}
	}
	return req
}

func (b *SessionBuilder) BuildOwnerConfirmRequestDTO() reqdto.OwnerConfirmRequest {
	req := reqdto.OwnerConfirmRequest{}
	if b.HasLoc {
		req.Location = &reqdto.LocationDTO{Lat: b.Lat, Lng: b.Lng}
	}
	return req
}
