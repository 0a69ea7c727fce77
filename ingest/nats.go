package ingest

import (
	"context"
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"

	"github.com/vignan-transit/shuttle-tracker/geo"
)

// NATSSubscriber consumes PositionMessages from a subject and applies them
// to the fleet store.
type NATSSubscriber struct {
	nc      *nats.Conn
	sub     *nats.Subscription
	store   Applier
	metrics Metrics
}

// NewNATSSubscriber connects to the NATS server and subscribes to subject.
func NewNATSSubscriber(ctx context.Context, url, subject string, store Applier, m Metrics) (*NATSSubscriber, error) {
	nc, err := nats.Connect(url,
		nats.Name("shuttle-tracker"),
		nats.DisconnectHandler(func(_ *nats.Conn) {
			if m != nil {
				m.SetNATSConnected(false)
			}
			log.Printf("nats disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			if m != nil {
				m.SetNATSConnected(true)
			}
			log.Printf("nats reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			if m != nil {
				m.SetNATSConnected(false)
			}
			log.Printf("nats closed")
		}),
	)
	if err != nil {
		return nil, err
	}
	if m != nil {
		m.SetNATSConnected(true)
	}

	s := &NATSSubscriber{nc: nc, store: store, metrics: m}
	sub, err := nc.Subscribe(subject, func(msg *nats.Msg) {
		s.handle(ctx, msg.Data)
	})
	if err != nil {
		nc.Close()
		return nil, err
	}
	s.sub = sub
	log.Printf("nats subscribed to %s", subject)
	return s, nil
}

func (s *NATSSubscriber) handle(ctx context.Context, data []byte) {
	var pm PositionMessage
	if err := json.Unmarshal(data, &pm); err != nil {
		s.errInc()
		log.Printf("nats ingest: bad message: %v", err)
		return
	}
	if pm.BusNumber == "" {
		s.errInc()
		return
	}
	loc := geo.Coordinate{Latitude: pm.Latitude, Longitude: pm.Longitude}
	if err := apply(ctx, s.store, pm.BusNumber, loc, pm.SpeedKMH); err != nil {
		s.errInc()
		log.Printf("nats ingest: bus %s: %v", pm.BusNumber, err)
		return
	}
	if s.metrics != nil {
		s.metrics.LocationUpdateInc()
	}
}

func (s *NATSSubscriber) errInc() {
	if s.metrics != nil {
		s.metrics.IngestErrInc("nats")
	}
}

// Close drains the subscription and closes the connection.
func (s *NATSSubscriber) Close() {
	if s.sub != nil {
		_ = s.sub.Drain()
	}
	if s.nc != nil {
		s.nc.Close()
	}
}
