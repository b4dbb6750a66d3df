package router

import (
	"net/http"

	"github.com/api-sage/money-transfer-service/internal/adapter/http/middleware"
)

type AccountRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

func New(accountController AccountRouteRegistrar) http.Handler {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	if accountController != nil {
		accountController.RegisterRoutes(mux)
	}

	return middleware.RequestLogger(mux)
}
