package webevents

import (
	"encoding/json"
	"net/http"

	gosse "github.com/alexandrevicenzi/go-sse"
)

type WebEvents interface {
	Handler() http.Handler
	Shutdown()
	Publish(event string, data any) error
}

type webEvents struct {
	s *gosse.Server
}

func New() WebEvents {
	return &webEvents{
		s: gosse.NewServer(&gosse.Options{}),
	}
}

// Handler streams published events to connected clients. Each request path is its own channel.
func (we *webEvents) Handler() http.Handler {
	return we.s
}

func (we *webEvents) Shutdown() {
	we.s.Shutdown()
}

// Publish broadcasts data, marshalled as json, to every open channel.
func (we *webEvents) Publish(event string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	message := gosse.NewMessage("", string(b), event)
	we.s.SendMessage("", message)

	return nil
}
