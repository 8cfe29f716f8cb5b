package driver

import (
	"time"

	"github.com/nats-io/nats.go"
)

const (
	natsMaxReconnects = 10
	natsReconnectWait = 2 * time.Second
	natsConnTimeout   = 5 * time.Second
)

// ConnectNATS connects to the NATS server carrying backend change events.
func ConnectNATS(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.MaxReconnects(natsMaxReconnects),
		nats.ReconnectWait(natsReconnectWait),
		nats.Timeout(natsConnTimeout),
	)
}
