package events

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (r *recorder) Publish(subj string, data []byte) error {
	if r.err != nil {
		return r.err
	}
	r.subjects = append(r.subjects, subj)
	r.payloads = append(r.payloads, data)
	return nil
}

func TestEmitPublishesEnvelope(t *testing.T) {
	rec := &recorder{}
	bus := NewBus(rec, "instance-1")

	bus.Emit(CardLiked, map[string]string{"card": "c1"})

	require.Len(t, rec.subjects, 1)
	assert.Equal(t, "mesto.card.liked", rec.subjects[0])

	var ev struct {
		ID       string            `json:"id"`
		Type     string            `json:"type"`
		Instance string            `json:"instance"`
		Data     map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.payloads[0], &ev))
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, CardLiked, ev.Type)
	assert.Equal(t, "instance-1", ev.Instance)
	assert.Equal(t, "c1", ev.Data["card"])
}

func TestEmitSwallowsPublishErrors(t *testing.T) {
	bus := NewBus(&recorder{err: errors.New("nats: connection closed")}, "i")
	assert.NotPanics(t, func() { bus.Emit(CardCreated, nil) })
}

func TestNilBusIsNoop(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() { bus.Emit(UserCreated, nil) })
	assert.NotPanics(t, func() { NewBus(nil, "i").Emit(UserCreated, nil) })
}
