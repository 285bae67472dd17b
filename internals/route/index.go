package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"frontdesk_backend/internals/constants"
	authMw "frontdesk_backend/internals/middlewares/auth"
	routeDetails "frontdesk_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, d routeDetails.Deps) {
	startTime = time.Now()
	log := d.Log.Named("routes")

	BaseRoutes(app, d)

	authSvc := routeDetails.NewAuthService(d)
	authenticated := authMw.AuthJWT(authSvc)

	api := app.Group("/api")

	// ===================== AUTH =====================
	log.Info("setting up auth routes")
	routeDetails.AuthRoutes(api, d, authSvc, authenticated)

	// ===================== PUBLIC (kiosk, no auth) =====================
	public := api.Group("/public")

	// ===================== RECRUITER (self or management) =====================
	recruiter := api.Group("/recruiter/:rid",
		authenticated,
		authMw.OnlyRoles(constants.RoleErrorStaff("recruiter dashboards"), constants.AllRoles...),
		authMw.RequireSelfOrRoles("rid", constants.ManagementAndAbove...),
	)

	// ===================== ADMIN / MANAGEMENT =====================
	admin := api.Group("/admin",
		authenticated,
		authMw.OnlyRoles(constants.RoleErrorAdmin("the admin area"), constants.ManagementAndAbove...),
	)

	log.Info("setting up intake routes")
	routeDetails.IntakeRoutes(public, recruiter, admin, d)
	routeDetails.StaffRoutes(recruiter, admin, d)
	routeDetails.TemplateRoutes(admin, d)

	log.Info("routes ready", zap.Int("handlers", int(app.HandlersCount())))
}
