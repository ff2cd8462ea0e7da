package handler

import (
	"errors"
	"net/http"
	"strconv"

	"stockroom/internal/model"
	"stockroom/internal/service"
	"stockroom/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CategoryHandler serves the category pages and form mutations.
type CategoryHandler struct {
	categories service.CategoryService
	renderer   *view.Renderer
	logger     zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categories service.CategoryService, renderer *view.Renderer, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		renderer:   renderer,
		logger:     logger.With().Str("handler", "category").Logger(),
	}
}

// categoryListPage is the template data for the category list.
type categoryListPage struct {
	Query      string
	Categories []model.CategoryWithCount
}

// categoryDetailPage is the template data for the category detail page.
type categoryDetailPage struct {
	Category *model.Category
	Summary  model.CategorySummary
}

// List handles GET /categories?q=.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	categories, err := h.categories.List(r.Context(), q)
	if err != nil {
		renderInternalError(w, h.renderer, h.logger, err)
		return
	}

	render(w, h.renderer, h.logger, http.StatusOK, "category_list", categoryListPage{
		Query:      q,
		Categories: categories,
	})
}

// Detail handles GET /categories/{id}.
func (h *CategoryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		renderNotFound(w, h.renderer, h.logger, "The requested category does not exist.")
		return
	}

	category, summary, err := h.categories.Detail(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			renderNotFound(w, h.renderer, h.logger, "The requested category does not exist.")
			return
		}
		renderInternalError(w, h.renderer, h.logger, err)
		return
	}

	render(w, h.renderer, h.logger, http.StatusOK, "category_detail", categoryDetailPage{
		Category: category,
		Summary:  summary,
	})
}

// NewForm handles GET /categories/new.
func (h *CategoryHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	render(w, h.renderer, h.logger, http.StatusOK, "category_form", nil)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderBadRequest(w, h.renderer, h.logger, "The submitted form could not be read.")
		return
	}

	form := model.CategoryForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
	}

	if _, err := h.categories.Create(r.Context(), form); err != nil {
		renderMutationError(w, h.renderer, h.logger, err)
		return
	}

	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}
