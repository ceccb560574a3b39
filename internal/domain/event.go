package domain

import (
	"time"

	"github.com/google/uuid"
)

// StreamPlaceEvents - стрим по умолчанию для событий о местах
const StreamPlaceEvents = "stream:places:events"

type PlaceEventType string

const (
	PlaceCreated PlaceEventType = "place.created"
	PlaceDeleted PlaceEventType = "place.deleted"
)

// PlaceEvent публикуется после успешного коммита создания или удаления места
type PlaceEvent struct {
	ID         uuid.UUID      `json:"id"`
	Type       PlaceEventType `json:"type"`
	PlaceID    string         `json:"place_id"`
	CreatorID  string         `json:"creator_id"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func NewPlaceEvent(t PlaceEventType, place *Place) PlaceEvent {
	return PlaceEvent{
		ID:         uuid.New(),
		Type:       t,
		PlaceID:    place.ID,
		CreatorID:  place.Creator,
		OccurredAt: time.Now().UTC(),
	}
}
