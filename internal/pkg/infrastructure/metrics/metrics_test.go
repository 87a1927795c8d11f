package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestThatRegenerationsAreCountedByResult(t *testing.T) {
	is := is.New(t)
	Init()

	success := testutil.ToFloat64(regenerateTotal.WithLabelValues(resultSuccess))
	failure := testutil.ToFloat64(regenerateTotal.WithLabelValues(resultError))

	ObserveRegenerate(1000, nil, 10*time.Millisecond)
	ObserveRegenerate(0, errors.New("disk I/O error"), time.Millisecond)

	is.Equal(testutil.ToFloat64(regenerateTotal.WithLabelValues(resultSuccess)), success+1)
	is.Equal(testutil.ToFloat64(regenerateTotal.WithLabelValues(resultError)), failure+1)
	is.Equal(testutil.ToFloat64(storedBins), float64(1000))
}

func TestThatHandlerExposesMetrics(t *testing.T) {
	is := is.New(t)

	ObserveList(1000, nil, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	is.Equal(rec.Code, http.StatusOK)
	is.True(strings.Contains(rec.Body.String(), "waste_bins_list_total"))
}

func TestThatStoredBinsCanBeSet(t *testing.T) {
	is := is.New(t)

	SetStored(42)
	is.Equal(testutil.ToFloat64(storedBins), float64(42))

	SetStored(0)
	is.Equal(testutil.ToFloat64(storedBins), float64(0))
}
