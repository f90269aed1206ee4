package handler

import (
	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/service"
	"github.com/gin-gonic/gin"
)

// Services groups the per-entity services the router needs.
type Services struct {
	Launches    service.LaunchService
	Missions    service.MissionService
	Boats       service.BoatService
	Trips       service.TripService
	Merchandise service.MerchandiseService
	Discounts   service.DiscountService
	Bookings    service.BookingService
}

// Register mounts all public routes on the given engine. Each entity handler
// builds its own list-view controller from the shared environment, so every
// list route goes through the same pagination/sort/cache machinery.
func Register(r *gin.Engine, repo Pinger, svcs Services, env listview.Env) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewLaunchHandler(svcs.Launches, env).Register(api)
		NewMissionHandler(svcs.Missions, env).Register(api)
		NewBoatHandler(svcs.Boats, env).Register(api)
		NewTripHandler(svcs.Trips, env).Register(api)
		NewMerchandiseHandler(svcs.Merchandise, env).Register(api)
		NewDiscountHandler(svcs.Discounts, env).Register(api)
		bookings := NewBookingHandler(svcs.Bookings, env)
		bookings.Register(api)
		bookings.RegisterPublic(api)
	}
}
