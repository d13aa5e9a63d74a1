// README: Tests for travel information and access-code handlers.
package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tollcents/internal/http/handlers"
	"tollcents/internal/maps"
	"tollcents/internal/service"
)

type fakePlanner struct {
	info  *service.TravelInformation
	err   error
	calls int

	start      string
	end        string
	hasTollTag bool
}

func (f *fakePlanner) TravelInformation(_ context.Context, start, end string, hasTollTag bool) (*service.TravelInformation, error) {
	f.calls++
	f.start, f.end, f.hasTollTag = start, end, hasTollTag
	return f.info, f.err
}

func newTravelRouter(planner handlers.Planner, mock bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewTravelHandler(planner, mock)
	r.GET("/api/route-information", h.Get)
	return r
}

func getTravel(r *gin.Engine, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/route-information"+query, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestTravelHandlerOK(t *testing.T) {
	planner := &fakePlanner{
		info: &service.TravelInformation{
			AvoidTollsRouteInformation: service.RouteInformation{
				DistanceInMiles: 18.2,
				DriveTime:       service.DriveTime{Minutes: 25},
				Description:     "US-75 S",
			},
		},
	}
	r := newTravelRouter(planner, false)

	rec := getTravel(r, "?startAddress=Plano%2C+TX&endAddress=Dallas%2C+TX&hasTollTag=false")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Plano, TX", planner.start)
	assert.Equal(t, "Dallas, TX", planner.end)
	assert.False(t, planner.hasTollTag)

	var got service.TravelInformation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "US-75 S", got.AvoidTollsRouteInformation.Description)
	assert.Nil(t, got.TollRouteInformation)
}

func TestTravelHandlerDefaultsTollTag(t *testing.T) {
	planner := &fakePlanner{info: &service.TravelInformation{}}
	r := newTravelRouter(planner, false)

	rec := getTravel(r, "?startAddress=a&endAddress=b")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, planner.hasTollTag)
}

func TestTravelHandlerMissingAddresses(t *testing.T) {
	for _, query := range []string{"", "?startAddress=a", "?endAddress=b"} {
		t.Run(fmt.Sprintf("query=%q", query), func(t *testing.T) {
			planner := &fakePlanner{}
			r := newTravelRouter(planner, false)

			rec := getTravel(r, query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, planner.calls)
		})
	}
}

func TestTravelHandlerBadTollTag(t *testing.T) {
	r := newTravelRouter(&fakePlanner{}, false)

	rec := getTravel(r, "?startAddress=a&endAddress=b&hasTollTag=maybe")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTravelHandlerNoRoute(t *testing.T) {
	planner := &fakePlanner{err: fmt.Errorf("toll route: %w", maps.ErrNoRoute)}
	r := newTravelRouter(planner, false)

	rec := getTravel(r, "?startAddress=a&endAddress=b")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestTravelHandlerPlannerError(t *testing.T) {
	planner := &fakePlanner{err: errors.New("directions unavailable")}
	r := newTravelRouter(planner, false)

	rec := getTravel(r, "?startAddress=a&endAddress=b")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestTravelHandlerMockMode(t *testing.T) {
	planner := &fakePlanner{err: errors.New("should not be called")}
	r := newTravelRouter(planner, true)

	rec := getTravel(r, "?startAddress=a&endAddress=b")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, planner.calls)

	var got service.TravelInformation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.TollRouteInformation)
	assert.True(t, got.TollRouteInformation.HasDynamicTolls)
}

type fakeValidator struct {
	valid bool
	err   error
	seen  string
}

func (f *fakeValidator) IsValid(_ context.Context, code string) (bool, error) {
	f.seen = code
	return f.valid, f.err
}

func newAccessRouter(codes handlers.CodeValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewAccessHandler(codes)
	r.GET("/api/access-code/validate", h.Validate)
	return r
}

func TestAccessValidate(t *testing.T) {
	for _, valid := range []bool{true, false} {
		t.Run(fmt.Sprintf("valid=%t", valid), func(t *testing.T) {
			codes := &fakeValidator{valid: valid}
			r := newAccessRouter(codes)

			req := httptest.NewRequest(http.MethodGet, "/api/access-code/validate?accessCode=beta42", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "beta42", codes.seen)

			var got map[string]bool
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, valid, got["isValidAccessCode"])
		})
	}
}

func TestAccessValidateStoreError(t *testing.T) {
	r := newAccessRouter(&fakeValidator{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/api/access-code/validate?accessCode=beta42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
