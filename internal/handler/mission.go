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

type MissionHandler struct {
	svc  service.MissionService
	list *listview.Controller[model.Mission]
}

func NewMissionHandler(svc service.MissionService, env listview.Env) *MissionHandler {
	src := listview.SourceFunc[model.Mission](func(ctx context.Context, skip, limit int) (listview.Page[model.Mission], error) {
		res, err := svc.ListMissions(ctx, repository.Page{Limit: limit, Offset: skip})
		if err != nil {
			return listview.Page[model.Mission]{}, err
		}
		return listview.Page[model.Mission]{Items: res.Items, Total: res.Total}, nil
	})
	return &MissionHandler{
		svc:  svc,
		list: listview.NewController(model.EntityMissions, src, missionColumns, env),
	}
}

func (h *MissionHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/missions")
	{
		g.POST("", h.create)
		g.GET("/:id", h.getByID)
		g.PUT("/:id", h.update)
		g.DELETE("/:id", h.delete)
		g.GET("", h.listPage)
	}
}

type missionRequest struct {
	Name        string `json:"name"`
	Agency      string `json:"agency"`
	Description string `json:"description"`
}

func (h *MissionHandler) create(c *gin.Context) {
	var req missionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	mission, err := h.svc.CreateMission(c.Request.Context(), req.Name, req.Agency, req.Description)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, mission)
}

func (h *MissionHandler) getByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	mission, err := h.svc.GetMission(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, mission)
}

func (h *MissionHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req missionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	mission, err := h.svc.UpdateMission(c.Request.Context(), model.Mission{
		ID: id, Name: req.Name, Agency: req.Agency, Description: req.Description,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, mission)
}

func (h *MissionHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if err := h.svc.DeleteMission(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MissionHandler) listPage(c *gin.Context) {
	serveList(c, h.list)
}
