// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Request Logging

WithLogging wraps a handler and logs the request start and completion
with a generated request id, method, path, client address and duration:

	mux.HandleFunc("GET /api/proposals", middleware.WithLogging(h.List))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusNotFound, "Proposal not found")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse emits models.ErrorResponse with the standard status text
and an optional detail message.

# CORS

CORS wraps the whole mux and answers preflight OPTIONS requests,
allowing the admin frontend to call the API cross-origin.
*/
package middleware
