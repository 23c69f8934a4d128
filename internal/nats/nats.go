package nats

import (
	"time"

	"github.com/nats-io/nats.go"
)

type Nats struct {
	Url   string
	Token string
	Conn  *nats.Conn
}

func New(url, token string) *Nats {
	n := &Nats{
		Url:   url,
		Token: token,
	}

	if n.Url == "" {
		n.Url = nats.DefaultURL
	}

	return n
}

// Options reconnects forever, so a broker restart never takes the HTTP
// service down.
func (n *Nats) Options(name string) []nats.Option {
	opts := []nats.Option{
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
	}

	// if token provided
	if n.Token != "" {
		opts = append(opts, nats.Token(n.Token))
	}

	return opts
}

// Connect dials the NATS server at url, or nats.DefaultURL when url is empty.
func Connect(url, token, name string) (*Nats, error) {
	n := New(url, token)

	conn, err := nats.Connect(n.Url, n.Options(name)...)
	if err != nil {
		return nil, err
	}

	n.Conn = conn

	return n, nil
}

func (n *Nats) Close() {
	if n != nil && n.Conn != nil {
		n.Conn.Close()
	}
}
