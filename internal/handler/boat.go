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

type BoatHandler struct {
	svc  service.BoatService
	list *listview.Controller[model.Boat]
}

func NewBoatHandler(svc service.BoatService, env listview.Env) *BoatHandler {
	src := listview.SourceFunc[model.Boat](func(ctx context.Context, skip, limit int) (listview.Page[model.Boat], error) {
		res, err := svc.ListBoats(ctx, repository.Page{Limit: limit, Offset: skip})
		if err != nil {
			return listview.Page[model.Boat]{}, err
		}
		return listview.Page[model.Boat]{Items: res.Items, Total: res.Total}, nil
	})
	return &BoatHandler{
		svc:  svc,
		list: listview.NewController(model.EntityBoats, src, boatColumns, env),
	}
}

func (h *BoatHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/boats")
	{
		g.POST("", h.create)
		g.GET("/:id", h.getByID)
		g.PUT("/:id", h.update)
		g.DELETE("/:id", h.delete)
		g.GET("", h.listPage)
	}
}

type boatRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

func (h *BoatHandler) create(c *gin.Context) {
	var req boatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	boat, err := h.svc.CreateBoat(c.Request.Context(), req.Name, req.Capacity)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, boat)
}

func (h *BoatHandler) getByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	boat, err := h.svc.GetBoat(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, boat)
}

func (h *BoatHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req boatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	boat, err := h.svc.UpdateBoat(c.Request.Context(), model.Boat{ID: id, Name: req.Name, Capacity: req.Capacity})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, boat)
}

func (h *BoatHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if err := h.svc.DeleteBoat(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BoatHandler) listPage(c *gin.Context) {
	serveList(c, h.list)
}
