package routers

import (
	"login-service/internal/app/delivery/http/controllers"
	"login-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachLoginRoutes(router chi.Router, loginController *controllers.LoginController) {
	router.Get(constvars.RouteLogin, loginController.ShowLogin)
	router.Post(constvars.RouteLogin, loginController.Submit)
	router.Post(constvars.RouteValidate, loginController.Validate)
	router.Get(constvars.RouteVerify, loginController.ShowVerify)
}
