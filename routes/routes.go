package routes

import (
	"groupmeet/handlers"
	"groupmeet/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the router wires up.
type HandlerBundle struct {
	Auth         *handlers.AuthHandler
	Groups       *handlers.GroupHandler
	Timetables   *handlers.TimetableHandler
	Availability *handlers.AvailabilityHandler
	Bookings     *handlers.BookingHandler
}

// RegisterRoutes registers all endpoints. Reads are open; anything that
// writes group data sits behind the coordinator session.
func RegisterRoutes(r *gin.Engine, h *HandlerBundle) {
	r.GET("/health", handlers.HealthHandler)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", h.Auth.LoginHandler)
		auth.POST("/logout", middleware.CoordinatorAuthMiddleware(), h.Auth.LogoutHandler)
	}

	groups := r.Group("/api/groups")
	{
		groups.GET("", h.Groups.ListGroupsHandler)
		groups.GET("/:groupID", h.Groups.GetGroupHandler)
		groups.GET("/:groupID/members/:member/timetable", h.Timetables.GetMemberTimetableHandler)
		groups.GET("/:groupID/availability/grid", h.Availability.GetWeekGridHandler)
		groups.GET("/:groupID/availability/slots", h.Availability.GetFreeSlotsHandler)

		edit := groups.Group("", middleware.CoordinatorAuthMiddleware())
		{
			edit.POST("", h.Groups.CreateGroupHandler)
			edit.PUT("/:groupID/members", h.Groups.SetMembersHandler)
			edit.PUT("/:groupID/members/:member/timetable", h.Timetables.UpdateMemberTimetableHandler)
			edit.DELETE("/:groupID/members/:member/timetable", h.Timetables.DeleteMemberTimetableHandler)
		}
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.GET("", h.Bookings.ListBookingsHandler)
		bookings.PUT("", middleware.CoordinatorAuthMiddleware(), h.Bookings.ReplaceBookingsHandler)
	}
}
