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

// ItemHandler serves the item pages and form mutations.
type ItemHandler struct {
	items      service.ItemService
	categories service.CategoryService
	renderer   *view.Renderer
	logger     zerolog.Logger
}

// NewItemHandler creates a new item handler.
func NewItemHandler(items service.ItemService, categories service.CategoryService, renderer *view.Renderer, logger zerolog.Logger) *ItemHandler {
	return &ItemHandler{
		items:      items,
		categories: categories,
		renderer:   renderer,
		logger:     logger.With().Str("handler", "item").Logger(),
	}
}

// itemListPage is the template data for the item list.
type itemListPage struct {
	Query string
	Items []model.Item
}

// itemDetailPage is the template data for the item detail page.
type itemDetailPage struct {
	Item *model.Item
}

// itemFormPage is the template data for the creation form.
type itemFormPage struct {
	Categories  []model.Category
	Preselected uint
}

// List handles GET /items?q=.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	items, err := h.items.List(r.Context(), q)
	if err != nil {
		renderInternalError(w, h.renderer, h.logger, err)
		return
	}

	render(w, h.renderer, h.logger, http.StatusOK, "item_list", itemListPage{
		Query: q,
		Items: items,
	})
}

// Detail handles GET /items/{id}.
func (h *ItemHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		renderNotFound(w, h.renderer, h.logger, "The requested item does not exist.")
		return
	}

	item, err := h.items.Get(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, model.ErrItemNotFound) {
			renderNotFound(w, h.renderer, h.logger, "The requested item does not exist.")
			return
		}
		renderInternalError(w, h.renderer, h.logger, err)
		return
	}

	render(w, h.renderer, h.logger, http.StatusOK, "item_detail", itemDetailPage{Item: item})
}

// NewForm handles GET /items/new?categoryId=.
func (h *ItemHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetAll(r.Context())
	if err != nil {
		renderInternalError(w, h.renderer, h.logger, err)
		return
	}

	// A malformed categoryId just loses the preselection.
	var preselected uint
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			preselected = uint(id)
		}
	}

	render(w, h.renderer, h.logger, http.StatusOK, "item_form", itemFormPage{
		Categories:  categories,
		Preselected: preselected,
	})
}

// Create handles POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderBadRequest(w, h.renderer, h.logger, "The submitted form could not be read.")
		return
	}

	form := model.ItemForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
		Stock:       r.PostFormValue("stock"),
		CategoryID:  r.PostFormValue("categoryId"),
	}

	if _, err := h.items.Create(r.Context(), form); err != nil {
		renderMutationError(w, h.renderer, h.logger, err)
		return
	}

	http.Redirect(w, r, "/items", http.StatusSeeOther)
}

// Delete handles POST /items/delete.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderBadRequest(w, h.renderer, h.logger, "The submitted form could not be read.")
		return
	}

	if err := h.items.Delete(r.Context(), r.PostFormValue("id")); err != nil {
		renderMutationError(w, h.renderer, h.logger, err)
		return
	}

	http.Redirect(w, r, "/items", http.StatusSeeOther)
}
