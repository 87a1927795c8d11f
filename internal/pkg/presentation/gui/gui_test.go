package gui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/waste-bin-mgmt/internal/pkg/application/bins"
	"github.com/diwise/waste-bin-mgmt/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestFillCategory(t *testing.T) {
	is := is.New(t)

	is.Equal(FillCategory(0), FillLow)
	is.Equal(FillCategory(33), FillLow)
	is.Equal(FillCategory(34), FillMedium)
	is.Equal(FillCategory(66), FillMedium)
	is.Equal(FillCategory(67), FillHigh)
	is.Equal(FillCategory(100), FillHigh)
}

func TestThatBinsAreRendered(t *testing.T) {
	is := is.New(t)

	svc := &bins.BinServiceMock{
		ListBinsFunc: func(ctx context.Context) ([]types.Bin, error) {
			return []types.Bin{
				{ID: 1, Latitude: 52.5, Longitude: 13.4, FillLevel: 10},
				{ID: 2, Latitude: 52.4, Longitude: 13.2, FillLevel: 90},
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	NewGuiHandler(zerolog.Nop(), svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gui", nil))

	is.Equal(rec.Code, http.StatusOK)
	body := rec.Body.String()
	is.True(strings.Contains(body, `<tr class="green"><td>1</td>`))
	is.True(strings.Contains(body, `<tr class="red"><td>2</td>`))
}

func TestThatListErrorsGiveInternalServerError(t *testing.T) {
	is := is.New(t)

	svc := &bins.BinServiceMock{
		ListBinsFunc: func(ctx context.Context) ([]types.Bin, error) {
			return nil, errors.New("disk I/O error")
		},
	}

	rec := httptest.NewRecorder()
	NewGuiHandler(zerolog.Nop(), svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gui", nil))

	is.Equal(rec.Code, http.StatusInternalServerError)
}
