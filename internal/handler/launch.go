package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/coastalops/launchtours/internal/service"
	"github.com/coastalops/launchtours/pkg/response"
	"github.com/gin-gonic/gin"
)

type LaunchHandler struct {
	svc  service.LaunchService
	list *listview.Controller[model.Launch]
}

func NewLaunchHandler(svc service.LaunchService, env listview.Env) *LaunchHandler {
	src := listview.SourceFunc[model.Launch](func(ctx context.Context, skip, limit int) (listview.Page[model.Launch], error) {
		res, err := svc.ListLaunches(ctx, repository.Page{Limit: limit, Offset: skip})
		if err != nil {
			return listview.Page[model.Launch]{}, err
		}
		return listview.Page[model.Launch]{Items: res.Items, Total: res.Total}, nil
	})
	return &LaunchHandler{
		svc:  svc,
		list: listview.NewController(model.EntityLaunches, src, launchColumns, env),
	}
}

func (h *LaunchHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/launches")
	{
		g.POST("", h.create)
		g.GET("/:id", h.getByID)
		g.PUT("/:id", h.update)
		g.DELETE("/:id", h.delete)
		g.GET("", h.listPage)
	}
}

type launchRequest struct {
	Name    string    `json:"name"`
	Vehicle string    `json:"vehicle"`
	Pad     string    `json:"pad"`
	Window  time.Time `json:"window"`
	Status  string    `json:"status"`
}

func (h *LaunchHandler) create(c *gin.Context) {
	var req launchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // don't leak parser internals
		return
	}
	launch, err := h.svc.CreateLaunch(c.Request.Context(), req.Name, req.Vehicle, req.Pad, req.Window, req.Status)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, launch)
}

func (h *LaunchHandler) getByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	launch, err := h.svc.GetLaunch(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, launch)
}

func (h *LaunchHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req launchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	launch, err := h.svc.UpdateLaunch(c.Request.Context(), model.Launch{
		ID: id, Name: req.Name, Vehicle: req.Vehicle, Pad: req.Pad, Window: req.Window, Status: req.Status,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, launch)
}

func (h *LaunchHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if err := h.svc.DeleteLaunch(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LaunchHandler) listPage(c *gin.Context) {
	serveList(c, h.list)
}

// parseID reads the :id path parameter shared by all entity routes.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}})
	}
	return id, nil
}
