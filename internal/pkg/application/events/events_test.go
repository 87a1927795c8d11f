package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	test "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/diwise/waste-bin-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestConfig(t *testing.T) {
	is := setupTest(t)
	config := strings.NewReader(`
notifications:
  - id: bins
    name: Generated waste bins
    type: diwise.binsgenerated
    subscribers:
    - endpoint: http://api-notification:8990
`)
	cfg, err := LoadConfiguration(config)

	is.NoErr(err)
	is.Equal(len(cfg.Notifications), 1)
	is.Equal(cfg.Notifications[0].ID, "bins")
	is.Equal(cfg.Notifications[0].Subscribers[0].Endpoint, "http://api-notification:8990")
}

func TestThatSendWithoutSubscribersIsNoop(t *testing.T) {
	is := setupTest(t)

	err := New(nil).Send(context.Background(), types.BinsGenerated{Count: 1000, GeneratedAt: time.Now()})
	is.NoErr(err)
}

func TestThatEventIsDeliveredToSubscriber(t *testing.T) {
	is := setupTest(t)

	subscriber := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestMethod(http.MethodPost),
			expects.RequestBodyContaining(`"count":1000`),
			cloudEventType(BinsGeneratedEventType),
		),
		test.Returns(response.Code(http.StatusOK)),
	)
	defer subscriber.Close()

	sender := New(&Config{
		Notifications: []Notification{
			{ID: "bins", Type: BinsGeneratedEventType, Subscribers: []SubscriberConfig{{Endpoint: subscriber.URL()}}},
		},
	})

	err := sender.Send(context.Background(), types.BinsGenerated{Count: 1000, GeneratedAt: time.Now()})
	is.NoErr(err)
	is.Equal(subscriber.RequestCount(), 1)
}

func TestThatUnreachableSubscriberIsReported(t *testing.T) {
	is := setupTest(t)

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	sender := New(&Config{
		Notifications: []Notification{
			{ID: "bins", Type: BinsGeneratedEventType, Subscribers: []SubscriberConfig{{Endpoint: url}}},
		},
	})

	err := sender.Send(context.Background(), types.BinsGenerated{Count: 1000, GeneratedAt: time.Now()})
	is.True(err != nil)
}

func cloudEventType(eventType string) func(*is.I, *http.Request) {
	return func(is *is.I, r *http.Request) {
		is.Equal(r.Header.Get("Ce-Type"), eventType)
	}
}

func setupTest(t *testing.T) *is.I {
	is := is.New(t)

	return is
}
