// README: Travel information handler.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tollcents/internal/maps"
	"tollcents/internal/service"
)

// Planner produces route options for an address pair.
type Planner interface {
	TravelInformation(ctx context.Context, startAddress, endAddress string, hasTollTag bool) (*service.TravelInformation, error)
}

type TravelHandler struct {
	planner Planner
	mock    bool
}

// NewTravelHandler wires the planner. With mock enabled the handler serves a
// canned response and never calls out, which keeps local frontend work off
// the metered directions API.
func NewTravelHandler(planner Planner, mock bool) *TravelHandler {
	return &TravelHandler{planner: planner, mock: mock}
}

func (h *TravelHandler) Get(c *gin.Context) {
	start := c.Query("startAddress")
	end := c.Query("endAddress")
	if start == "" || end == "" {
		writeError(c, http.StatusBadRequest, "startAddress and endAddress are required")
		return
	}
	hasTollTag := true
	if v := c.Query("hasTollTag"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(c, http.StatusBadRequest, "hasTollTag must be a boolean")
			return
		}
		hasTollTag = parsed
	}

	if h.mock {
		writeJSON(c, http.StatusOK, mockTravelInformation())
		return
	}

	info, err := h.planner.TravelInformation(c.Request.Context(), start, end, hasTollTag)
	if err != nil {
		if errors.Is(err, maps.ErrNoRoute) {
			c.Status(http.StatusNoContent)
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, info)
}

func mockTravelInformation() *service.TravelInformation {
	return &service.TravelInformation{
		AvoidTollsRouteInformation: service.RouteInformation{
			DistanceInMiles: 27.4,
			DriveTime:       service.DriveTime{Hours: 0, Minutes: 42},
			Description:     "I-35E N",
		},
		TollRouteInformation: &service.TollRouteInformation{
			RouteInformation: service.RouteInformation{
				DistanceInMiles: 25.1,
				DriveTime:       service.DriveTime{Hours: 0, Minutes: 31},
				Description:     "I-35E N and TEXpress",
			},
			EstimatedDynamicTollPrice: 5.75,
			HasDynamicTolls:           true,
			ProcessedAllDynamicTolls:  true,
		},
	}
}
