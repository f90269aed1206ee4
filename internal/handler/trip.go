package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/coastalops/launchtours/internal/service"
	"github.com/coastalops/launchtours/pkg/response"
	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	svc  service.TripService
	list *listview.Controller[model.Trip]
}

func NewTripHandler(svc service.TripService, env listview.Env) *TripHandler {
	src := listview.SourceFunc[model.Trip](func(ctx context.Context, skip, limit int) (listview.Page[model.Trip], error) {
		res, err := svc.ListTrips(ctx, repository.Page{Limit: limit, Offset: skip})
		if err != nil {
			return listview.Page[model.Trip]{}, err
		}
		return listview.Page[model.Trip]{Items: res.Items, Total: res.Total}, nil
	})
	return &TripHandler{
		svc:  svc,
		list: listview.NewController(model.EntityTrips, src, tripColumns, env),
	}
}

func (h *TripHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/trips")
	{
		g.POST("", h.create)
		g.GET("/:id", h.getByID)
		g.PUT("/:id", h.update)
		g.DELETE("/:id", h.delete)
		g.GET("", h.listPage)
	}
}

type createTripRequest struct {
	LaunchID   int64     `json:"launch_id"`
	BoatID     int64     `json:"boat_id"`
	Departure  time.Time `json:"departure"`
	PriceCents int64     `json:"price_cents"`
}

type updateTripRequest struct {
	LaunchID   int64     `json:"launch_id"`
	BoatID     int64     `json:"boat_id"`
	Departure  time.Time `json:"departure"`
	PriceCents int64     `json:"price_cents"`
	Capacity   int       `json:"capacity"`
	Status     string    `json:"status"`
}

func (h *TripHandler) create(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	trip, err := h.svc.CreateTrip(c.Request.Context(), req.LaunchID, req.BoatID, req.Departure, req.PriceCents)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, trip)
}

func (h *TripHandler) getByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	trip, err := h.svc.GetTrip(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, trip)
}

func (h *TripHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req updateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	trip, err := h.svc.UpdateTrip(c.Request.Context(), model.Trip{
		ID: id, LaunchID: req.LaunchID, BoatID: req.BoatID, Departure: req.Departure,
		PriceCents: req.PriceCents, Capacity: req.Capacity, Status: req.Status,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, trip)
}

func (h *TripHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if err := h.svc.DeleteTrip(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TripHandler) listPage(c *gin.Context) {
	serveList(c, h.list)
}
