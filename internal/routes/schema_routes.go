package routes

import (
	"github.com/go-chi/chi/v5"

	"sbcatalog/internal/handlers"
)

func RegisterSchemaRoutes(router chi.Router, base *handlers.BaseHandler) {
	schemaHandler := handlers.NewSchemaHandler(base)

	router.Route("/schemas", func(r chi.Router) {
		r.Get("/", schemaHandler.ListSchemas)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", schemaHandler.GetSchema)
			r.Post("/decode", schemaHandler.Decode)
		})
	})
}
