// Package api provides the HTTP API layer for the Late Night Lake Show backend.
// It uses the Huma framework on a chi router for OpenAPI documentation and
// request validation.
//
// # Architecture
//
// - server.go: Huma API configuration, middleware and route registration
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging and per-IP rate limiting
//
// # Endpoints
//
// Most routes are Huma operations and appear in /openapi.json with the docs
// UI at /docs. The hero diagnostic endpoint, GET /api/debug/hero, is a plain
// chi route: it answers only GET and reports failures as
//
//	{"error": "Hero selection failed", "message": "..."}
//
// instead of Huma's RFC 7807 problem documents.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    Flags:      flags,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	api.RegisterRoutes(humaAPI, router, api.Services{Hero: heroService}, flags)
//	http.ListenAndServe(":8080", router)
//
// Domain errors are mapped to HTTP status codes by the handlers.
package api
