package handler

import (
	"context"
	"net/http"

	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/coastalops/launchtours/internal/service"
	"github.com/coastalops/launchtours/pkg/response"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	svc  service.BookingService
	list *listview.Controller[model.Booking]
}

func NewBookingHandler(svc service.BookingService, env listview.Env) *BookingHandler {
	src := listview.SourceFunc[model.Booking](func(ctx context.Context, skip, limit int) (listview.Page[model.Booking], error) {
		res, err := svc.ListBookings(ctx, repository.Page{Limit: limit, Offset: skip})
		if err != nil {
			return listview.Page[model.Booking]{}, err
		}
		return listview.Page[model.Booking]{Items: res.Items, Total: res.Total}, nil
	})
	return &BookingHandler{
		svc:  svc,
		list: listview.NewController(model.EntityBookings, src, bookingColumns, env),
	}
}

// Register mounts staff-facing booking routes.
func (h *BookingHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/bookings")
	{
		g.GET("", h.listPage)
		g.GET("/:id", h.getByID)
		g.DELETE("/:id", h.cancel)
	}
}

// RegisterPublic mounts the unauthenticated customer flow.
func (h *BookingHandler) RegisterPublic(r *gin.RouterGroup) {
	g := r.Group("/public/bookings")
	{
		g.POST("", h.create)
		g.GET("/:code", h.lookup)
	}
}

type bookingRequest struct {
	TripID       int64  `json:"trip_id"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Tickets      int    `json:"tickets"`
	DiscountCode string `json:"discount_code"`
}

func (h *BookingHandler) create(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	booking, err := h.svc.CreateBooking(c.Request.Context(), service.BookingRequest{
		TripID:       req.TripID,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Tickets:      req.Tickets,
		DiscountCode: req.DiscountCode,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, booking)
}

func (h *BookingHandler) lookup(c *gin.Context) {
	booking, err := h.svc.LookupConfirmation(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, booking)
}

func (h *BookingHandler) getByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	booking, err := h.svc.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, booking)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	booking, err := h.svc.CancelBooking(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, booking)
}

func (h *BookingHandler) listPage(c *gin.Context) {
	serveList(c, h.list)
}
