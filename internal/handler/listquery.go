package handler

import (
	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/pkg/response"
	"github.com/gin-gonic/gin"
)

// serveList resolves a list request through an entity's shared controller.
// Malformed URL state falls back to defaults inside ParseQuery, so this path
// never 400s. A failed fetch still renders the last-known-good page (marked
// stale); only a failure with nothing to show becomes an error response.
func serveList[T any](c *gin.Context, ctrl *listview.Controller[T]) {
	q := listview.ParseQuery(c.Request.URL.Query())
	view, err := ctrl.Load(c.Request.Context(), q)
	if err != nil && len(view.Items) == 0 {
		response.WriteError(c, err)
		return
	}
	response.WriteView(c, view)
}
