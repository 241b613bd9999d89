package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/poetracikal/backend/internal/service"
)

type Deps struct {
	Auth     *AuthHTTP
	Catalog  *CatalogHTTP
	System   *SystemHTTP
	Sessions *service.SessionService
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewValidator()

	e.GET("/", d.System.Root)
	e.GET("/test", d.System.Test)

	auth := e.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)

	products := e.Group("/products")
	products.GET("", d.Catalog.ListProducts)

	admin := products.Group("", RequireAdmin(d.Sessions))
	admin.POST("", d.Catalog.CreateProduct)
	admin.PUT("/:id", d.Catalog.UpdateProduct)
	admin.DELETE("/:id", d.Catalog.DeleteProduct)
}
