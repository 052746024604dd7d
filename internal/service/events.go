package service

import ws "requisicoes/internal/websocket"

// EventPublisher pushes live queue events to connected clients
type EventPublisher interface {
	Publish(evt ws.Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(ws.Event) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}
