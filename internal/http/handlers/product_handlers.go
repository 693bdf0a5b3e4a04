package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"estoque-api/internal/auth"
	"estoque-api/internal/inventory"
	"estoque-api/internal/metrics"
	"estoque-api/internal/models"
	"estoque-api/internal/repo"
)

// GetProductsHandler godoc
// @Summary List the authenticated user's products
// @Description Returns all products owned by the current session, newest first
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProductResponse
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	lc := listControllerFor(session)
	if err := lc.Refresh(); err != nil {
		logger.Error().Err(err).Int("owner", session.UserID).Msg("could not fetch products")
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	products := lc.Products()
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, response)
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the authenticated user's inventory
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} inventory.ValidationError
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal error"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	lc := listControllerFor(session)
	form := lc.RequestCreate()
	seedForm(form, req)

	created, err := form.Submit()
	if err != nil {
		writeSubmitError(w, err)
		return
	}
	metrics.ProductsCreated.Inc()

	if err := lc.Refresh(); err != nil {
		logger.Warn().Err(err).Msg("refresh after create failed, collection is stale")
	}

	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Replaces all editable fields of the product wholesale
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} inventory.ValidationError
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	lc := listControllerFor(session)
	if err := lc.Refresh(); err != nil {
		logger.Error().Err(err).Msg("could not fetch products")
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	target, found := findProduct(lc, id)
	if !found {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	form := lc.RequestEdit(target)
	seedForm(form, req)

	updated, err := form.Submit()
	if err != nil {
		writeSubmitError(w, err)
		return
	}
	metrics.ProductsUpdated.Inc()

	if err := lc.Refresh(); err != nil {
		logger.Warn().Err(err).Msg("refresh after update failed, collection is stale")
	}

	// id, owner and creation time survive the wholesale field replacement
	updated.CreatedAt = target.CreatedAt
	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}

	lc := listControllerFor(session)
	if err := lc.RequestDelete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("id", id).Msg("could not delete product")
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	metrics.ProductsDeleted.Inc()

	w.WriteHeader(http.StatusNoContent)
}

func seedForm(form *inventory.FormController, req ProductRequest) {
	// fields come from a typed DTO, so none of these can fail coercion
	form.SetField("name", req.Name)
	form.SetField("description", req.Description)
	form.SetField("quantity", req.Quantity)
	form.SetField("cost_value", req.CostValue)
	form.SetField("sale_value", req.SaleValue)
}

func findProduct(lc *inventory.ListController, id string) (models.Product, bool) {
	for _, p := range lc.Products() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func writeSubmitError(w http.ResponseWriter, err error) {
	var ve *inventory.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ve.Violations)
	case errors.Is(err, auth.ErrUnauthenticated):
		http.Error(w, "not authenticated", http.StatusUnauthorized)
	case errors.Is(err, repo.ErrProductNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrDuplicatedValueUnique):
		http.Error(w, "could not save product: duplicated value", http.StatusConflict)
	default:
		logger.Error().Err(err).Msg("could not save product")
		http.Error(w, "could not save product", http.StatusInternalServerError)
	}
}
