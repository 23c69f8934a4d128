package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const subjectPrefix = "mesto."

const (
	UserCreated  = "user.created"
	CardCreated  = "card.created"
	CardDeleted  = "card.deleted"
	CardLiked    = "card.liked"
	CardDisliked = "card.disliked"
)

// Publisher is the subset of *nats.Conn the bus needs.
type Publisher interface {
	Publish(subj string, data []byte) error
}

type Event struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	Instance string      `json:"instance"`
	At       time.Time   `json:"at"`
	Data     interface{} `json:"data"`
}

// Bus publishes domain events. A nil *Bus or a Bus without a publisher
// drops events silently, so callers never have to check.
type Bus struct {
	pub      Publisher
	instance string
}

func NewBus(pub Publisher, instance string) *Bus {
	return &Bus{pub: pub, instance: instance}
}

// Emit is best effort: failures are logged and never returned.
func (b *Bus) Emit(eventType string, data interface{}) {
	if b == nil || b.pub == nil {
		return
	}

	ev := Event{
		ID:       uuid.NewString(),
		Type:     eventType,
		Instance: b.instance,
		At:       time.Now().UTC(),
		Data:     data,
	}

	raw, err := json.Marshal(ev)
	if err != nil {
		log.Errorf("failed to encode %s event: %v", eventType, err)
		return
	}

	if err := b.pub.Publish(subjectPrefix+eventType, raw); err != nil {
		log.Warnf("failed to publish %s event: %v", eventType, err)
		return
	}
	log.Debugf("published %s event %s", eventType, ev.ID)
}
