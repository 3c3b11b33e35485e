package server

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	v1 "github.com/devgrid/boardhub/internal/api/v1"
	"github.com/devgrid/boardhub/internal/api/ws"
	"github.com/devgrid/boardhub/internal/auth"
	"github.com/devgrid/boardhub/internal/board"
)

func registerAuthRoutes(api huma.API, authSvc *auth.Service) {
	v1.RegisterAuthRoutes(api, authSvc)
}

func registerAPIRoutes(api huma.API, svc *board.Service) {
	v1.RegisterProjectRoutes(api, svc)
	v1.RegisterColumnRoutes(api, svc)
	v1.RegisterTaskRoutes(api, svc)
	v1.RegisterTaskChildRoutes(api, svc)
	v1.RegisterMemberRoutes(api, svc)
	v1.RegisterNotificationRoutes(api, svc)
}

func registerWSRoutes(r chi.Router, hub *ws.Hub) {
	r.Get("/", hub.Serve)
}
