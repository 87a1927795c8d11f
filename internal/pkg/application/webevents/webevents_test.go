package webevents

import (
	"testing"

	"github.com/matryer/is"
)

func TestThatPublishWithoutClientsSucceeds(t *testing.T) {
	is := is.New(t)

	we := New()
	defer we.Shutdown()

	err := we.Publish("binsGenerated", map[string]int{"count": 1000})
	is.NoErr(err)
}

func TestThatUnmarshallableDataIsRejected(t *testing.T) {
	is := is.New(t)

	we := New()
	defer we.Shutdown()

	err := we.Publish("binsGenerated", make(chan int))
	is.True(err != nil)
}
