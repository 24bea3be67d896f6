package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups the HTTP handlers mounted by RegisterRoutes
type Handlers struct {
	Health        *HealthCheckHandler
	UtilityBills  *UtilityBillHandler
	FilterSession *FilterSessionHandler
	Audit         *AuditHandler
}

// RegisterRoutes mounts the API. auth guards every /api/v1 route.
func RegisterRoutes(e *echo.Echo, h Handlers, auth echo.MiddlewareFunc) {
	e.GET("/health", h.Health.HealthCheck)

	api := e.Group("/api/v1", auth)

	bills := api.Group("/utility-bills")
	bills.GET("", h.UtilityBills.GetPageData)
	bills.GET("/options", h.UtilityBills.GetFilterOptions)
	bills.POST("", h.UtilityBills.CreateBill)
	bills.PUT("/:id/paid", h.UtilityBills.SetLandlordPaid)
	bills.POST("/:id/payments", h.UtilityBills.RecordPayment)
	bills.GET("/:id/history", h.Audit.GetBillHistory)

	api.GET("/activity", h.Audit.GetActivity)

	sessions := api.Group("/filter-sessions")
	sessions.POST("", h.FilterSession.CreateSession)
	sessions.GET("/:id", h.FilterSession.GetSession)
	sessions.DELETE("/:id", h.FilterSession.DeleteSession)
	sessions.PATCH("/:id/filters", h.FilterSession.UpdateFilters)
	sessions.DELETE("/:id/filters", h.FilterSession.ResetFilters)
	sessions.POST("/:id/refresh", h.FilterSession.RefreshSession)
}
