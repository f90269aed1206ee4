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

type MerchandiseHandler struct {
	svc  service.MerchandiseService
	list *listview.Controller[model.MerchandiseItem]
}

func NewMerchandiseHandler(svc service.MerchandiseService, env listview.Env) *MerchandiseHandler {
	src := listview.SourceFunc[model.MerchandiseItem](func(ctx context.Context, skip, limit int) (listview.Page[model.MerchandiseItem], error) {
		res, err := svc.ListItems(ctx, repository.Page{Limit: limit, Offset: skip})
		if err != nil {
			return listview.Page[model.MerchandiseItem]{}, err
		}
		return listview.Page[model.MerchandiseItem]{Items: res.Items, Total: res.Total}, nil
	})
	return &MerchandiseHandler{
		svc:  svc,
		list: listview.NewController(model.EntityMerchandise, src, merchandiseColumns, env),
	}
}

func (h *MerchandiseHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/merchandise")
	{
		g.POST("", h.create)
		g.GET("/:id", h.getByID)
		g.PUT("/:id", h.update)
		g.DELETE("/:id", h.delete)
		g.GET("", h.listPage)
	}
}

type merchandiseRequest struct {
	Name       string `json:"name"`
	SKU        string `json:"sku"`
	PriceCents int64  `json:"price_cents"`
	Stock      int    `json:"stock"`
}

func (h *MerchandiseHandler) create(c *gin.Context) {
	var req merchandiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	item, err := h.svc.CreateItem(c.Request.Context(), req.Name, req.SKU, req.PriceCents, req.Stock)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, item)
}

func (h *MerchandiseHandler) getByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	item, err := h.svc.GetItem(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, item)
}

func (h *MerchandiseHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req merchandiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	item, err := h.svc.UpdateItem(c.Request.Context(), model.MerchandiseItem{
		ID: id, Name: req.Name, SKU: req.SKU, PriceCents: req.PriceCents, Stock: req.Stock,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, item)
}

func (h *MerchandiseHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if err := h.svc.DeleteItem(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MerchandiseHandler) listPage(c *gin.Context) {
	serveList(c, h.list)
}
