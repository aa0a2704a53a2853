package http

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/crypto/blake2b"

	"example.com/storefront/internal/domain/screen"
	storeuc "example.com/storefront/internal/usecase/store"
)

type navigateRequest struct {
	Screen    string `json:"screen" validate:"required"`
	ProductID string `json:"product_id" validate:"required_if=Screen details"`
}

func (a *API) handleGetState(w http.ResponseWriter, r *http.Request) {
	snap := a.storeSvc.Snapshot()
	body := a.mapSnapshot(snap)

	tag, err := etag(body)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	if etagMatches(r.Header.Get("If-None-Match"), tag) {
		w.Header().Set("ETag", tag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", tag)
	writeJSON(w, http.StatusOK, body)
}

func (a *API) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}

	name, err := screen.ParseName(req.Screen)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	var snap storeuc.Snapshot
	switch name {
	case screen.NameWelcome:
		snap = a.storeSvc.Start()
	case screen.NameProducts:
		snap = a.storeSvc.ViewProducts()
	case screen.NameDetails:
		snap, err = a.storeSvc.ViewDetails(r.Context(), req.ProductID)
	case screen.NameCart:
		snap = a.storeSvc.ViewCart()
	}
	if err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeSnapshot(w, http.StatusOK, snap)
}

func (a *API) writeSnapshot(w http.ResponseWriter, status int, snap storeuc.Snapshot) {
	body := a.mapSnapshot(snap)
	if tag, err := etag(body); err == nil {
		w.Header().Set("ETag", tag)
	}
	writeJSON(w, status, body)
}

// etag fingerprints the encoded state, so it only changes when something a
// client can see changes.
func etag(body map[string]any) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)
	return `"` + hex.EncodeToString(sum[:16]) + `"`, nil
}

func etagMatches(header, tag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == tag {
			return true
		}
	}
	return false
}
