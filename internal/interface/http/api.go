package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domcart "example.com/storefront/internal/domain/cart"
	"example.com/storefront/internal/domain/money"
	domproduct "example.com/storefront/internal/domain/product"
	"example.com/storefront/internal/domain/screen"
	productuc "example.com/storefront/internal/usecase/product"
	storeuc "example.com/storefront/internal/usecase/store"
)

type API struct {
	productSvc *productuc.Service
	storeSvc   *storeuc.Service
	formatter  *money.Formatter
	logger     *zap.Logger
	validator  *validator.Validate
}

type Dependencies struct {
	ProductService *productuc.Service
	StoreService   *storeuc.Service
	Formatter      *money.Formatter
	Logger         *zap.Logger
}

func NewAPI(deps Dependencies) *API {
	formatter := deps.Formatter
	if formatter == nil {
		formatter = money.Default()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		productSvc: deps.ProductService,
		storeSvc:   deps.StoreService,
		formatter:  formatter,
		logger:     logger,
		validator:  validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", a.handleListProducts)
		r.Get("/products/{id}", a.handleGetProduct)

		r.Get("/state", a.handleGetState)
		r.Post("/navigation", a.handleNavigate)

		r.Get("/cart", a.handleGetCart)
		r.Delete("/cart", a.handleClearCart)
		r.Post("/cart/items", a.handleAddCartItem)
		r.Post("/cart/items/selected", a.handleAddSelected)
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// respondBadRequest reports decoding and validation failures, listing the
// offending fields when the validator produced them.
func respondBadRequest(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Details: details})
}

func (a *API) mapProduct(p domproduct.Product) map[string]any {
	return map[string]any{
		"id":            p.ID,
		"name":          p.Name,
		"price":         p.Price,
		"price_display": a.formatter.Format(p.Price),
		"category":      p.Category,
		"rating":        p.Rating,
		"description":   p.Description,
	}
}

func (a *API) mapEntries(entries []domcart.Entry) []map[string]any {
	items := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		items = append(items, map[string]any{
			"entry_id": e.ID,
			"product":  a.mapProduct(e.Product),
		})
	}
	return items
}

func (a *API) mapCart(s storeuc.Snapshot) map[string]any {
	return map[string]any{
		"items":         a.mapEntries(s.Entries),
		"count":         s.CartCount,
		"total":         s.CartTotal,
		"total_display": a.formatter.Format(s.CartTotal),
	}
}

func mapNav(items []screen.NavItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, map[string]any{
			"tab":    item.Tab,
			"label":  item.Label,
			"active": item.Active,
		})
	}
	return out
}

func (a *API) mapSnapshot(s storeuc.Snapshot) map[string]any {
	var selected any
	if p, ok := s.SelectedProduct(); ok {
		selected = a.mapProduct(p)
	}
	return map[string]any{
		"screen":             s.Screen.Name(),
		"selected_product":   selected,
		"cart":               a.mapEntries(s.Entries),
		"cart_count":         s.CartCount,
		"cart_total":         s.CartTotal,
		"cart_total_display": a.formatter.Format(s.CartTotal),
		"active_tab":         s.ActiveTab,
		"nav":                mapNav(s.Nav),
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, storeuc.ErrNoProductSelected):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, screen.ErrUnknownScreen):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
