package svr

import (
	"github.com/gofiber/fiber/v2"

	"mutabaah.dev/backend/internal/app/appconfig"
	"mutabaah.dev/backend/internal/pkg/cachectrl"
	"mutabaah.dev/backend/internal/pkg/middlewares"
)

// V1 routes act on behalf of the user identified by the gateway header.
type V1 struct {
	fiber.Router
}

type Admin struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, conf *appconfig.Config) (*V1, *Admin, *Meta) {
	v1 := app.Group("/api/v1", middlewares.RequireUser(), cachectrl.NoStore())
	admin := app.Group("/api/_/admin", middlewares.RequireAdmin(conf.AdminKey))
	meta := app.Group("/api/_")

	return &V1{Router: v1}, &Admin{Router: admin}, &Meta{Router: meta}
}
