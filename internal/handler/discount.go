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

type DiscountHandler struct {
	svc  service.DiscountService
	list *listview.Controller[model.DiscountCode]
}

func NewDiscountHandler(svc service.DiscountService, env listview.Env) *DiscountHandler {
	src := listview.SourceFunc[model.DiscountCode](func(ctx context.Context, skip, limit int) (listview.Page[model.DiscountCode], error) {
		res, err := svc.ListDiscounts(ctx, repository.Page{Limit: limit, Offset: skip})
		if err != nil {
			return listview.Page[model.DiscountCode]{}, err
		}
		return listview.Page[model.DiscountCode]{Items: res.Items, Total: res.Total}, nil
	})
	return &DiscountHandler{
		svc:  svc,
		list: listview.NewController(model.EntityDiscounts, src, discountColumns, env),
	}
}

func (h *DiscountHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/discounts")
	{
		g.POST("", h.create)
		g.GET("/:id", h.getByID)
		g.PUT("/:id", h.update)
		g.DELETE("/:id", h.delete)
		g.GET("", h.listPage)
	}
}

type discountRequest struct {
	Code       string     `json:"code"`
	PercentOff int        `json:"percent_off"`
	Active     bool       `json:"active"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

func (h *DiscountHandler) create(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	dc, err := h.svc.CreateDiscount(c.Request.Context(), req.Code, req.PercentOff, req.Active, req.ExpiresAt)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, dc)
}

func (h *DiscountHandler) getByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	dc, err := h.svc.GetDiscount(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, dc)
}

func (h *DiscountHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	dc, err := h.svc.UpdateDiscount(c.Request.Context(), model.DiscountCode{
		ID: id, Code: req.Code, PercentOff: req.PercentOff, Active: req.Active, ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, dc)
}

func (h *DiscountHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if err := h.svc.DeleteDiscount(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DiscountHandler) listPage(c *gin.Context) {
	serveList(c, h.list)
}
