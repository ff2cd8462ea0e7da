package handler

import (
	"bytes"
	"errors"
	"net/http"

	"stockroom/internal/model"
	"stockroom/internal/view"

	"github.com/rs/zerolog"
)

// errorPage is the data for the shared error template.
type errorPage struct {
	Title   string
	Message string
}

// render executes a page template into a buffer first so a template failure
// never leaks a half-written page; it falls back to a plain 500.
func render(w http.ResponseWriter, renderer *view.Renderer, logger zerolog.Logger, status int, page string, data any) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, page, data); err != nil {
		logger.Error().Err(err).Str("page", page).Msg("failed to render template")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderNotFound writes the shared 404 page.
func renderNotFound(w http.ResponseWriter, renderer *view.Renderer, logger zerolog.Logger, message string) {
	render(w, renderer, logger, http.StatusNotFound, "error", errorPage{
		Title:   "Not Found",
		Message: message,
	})
}

// renderBadRequest writes the shared 400 page.
func renderBadRequest(w http.ResponseWriter, renderer *view.Renderer, logger zerolog.Logger, message string) {
	render(w, renderer, logger, http.StatusBadRequest, "error", errorPage{
		Title:   "Invalid Input",
		Message: message,
	})
}

// renderInternalError writes the shared 500 page without exposing details.
func renderInternalError(w http.ResponseWriter, renderer *view.Renderer, logger zerolog.Logger, err error) {
	logger.Error().Err(err).Msg("handler error")
	render(w, renderer, logger, http.StatusInternalServerError, "error", errorPage{
		Title:   "Something Went Wrong",
		Message: "An unexpected error occurred. Please try again.",
	})
}

// renderMutationError maps a mutation failure to a response: every domain
// error on a form submit is the submitter's input problem, anything else is
// infrastructure.
func renderMutationError(w http.ResponseWriter, renderer *view.Renderer, logger zerolog.Logger, err error) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		renderBadRequest(w, renderer, logger, domainErr.Message)
		return
	}
	renderInternalError(w, renderer, logger, err)
}
