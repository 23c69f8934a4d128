package nats

import (
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyOptions(t *testing.T, opts []nats.Option) nats.Options {
	o := nats.GetDefaultOptions()
	for _, opt := range opts {
		require.NoError(t, opt(&o))
	}
	return o
}

func TestNewDefaultsURL(t *testing.T) {
	assert.Equal(t, nats.DefaultURL, New("", "").Url)
	assert.Equal(t, "nats://broker:4222", New("nats://broker:4222", "").Url)
}

func TestOptions(t *testing.T) {
	o := applyOptions(t, New("", "").Options("mesto-1"))
	assert.Equal(t, "mesto-1", o.Name)
	assert.Equal(t, -1, o.MaxReconnect)
	assert.Equal(t, 2*time.Second, o.ReconnectWait)
	assert.Empty(t, o.Token)

	o = applyOptions(t, New("", "secret").Options("mesto-1"))
	assert.Equal(t, "secret", o.Token)
}

func TestConnectUnreachable(t *testing.T) {
	n, err := Connect("nats://127.0.0.1:1", "secret", "mesto-test")
	assert.Error(t, err)
	assert.Nil(t, n)
}

func TestCloseNil(t *testing.T) {
	var n *Nats
	assert.NotPanics(t, n.Close)
	assert.NotPanics(t, New("", "").Close)
}
