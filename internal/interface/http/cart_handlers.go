package http

import (
	"net/http"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.mapCart(a.storeSvc.Snapshot()))
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}

	snap, err := a.storeSvc.AddToCart(r.Context(), req.ProductID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeSnapshot(w, http.StatusCreated, snap)
}

func (a *API) handleAddSelected(w http.ResponseWriter, r *http.Request) {
	snap, err := a.storeSvc.AddSelected()
	if err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeSnapshot(w, http.StatusCreated, snap)
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	a.writeSnapshot(w, http.StatusOK, a.storeSvc.ClearCart())
}
