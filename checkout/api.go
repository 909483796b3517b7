package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hostedpay/payments-go/checkout/models"
	"github.com/hostedpay/payments-go/payment"
)

// API is a HTTP API for the checkout service
type API struct {
	checkout *Service
}

func NewAPI(checkout *Service) *API {
	return &API{
		checkout: checkout,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", a.createSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", a.getSession)
			r.Post("/card-params", a.registerCardParams)
			r.Get("/card-params", a.getCardParams)
		})
	})
	r.Post("/card-checks", a.checkCardField)
}

func (a *API) createSession(w http.ResponseWriter, r *http.Request) {
	create := models.CreateSession{}
	err := json.NewDecoder(r.Body).Decode(&create)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := a.checkout.CreateSession(create)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(session)
}

func (a *API) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := a.checkout.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(session)
}

func (a *API) registerCardParams(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	req := models.RegisterCardParams{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reg, err := a.checkout.RegisterCardParams(sessionID, req)
	if err != nil {
		a.writeRegistrationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(reg)
}

// validationError is the JSON body for rejected card parameters; the
// description is meant to be shown to the shopper as-is.
type validationError struct {
	Code        string `json:"code"`
	Field       string `json:"field,omitempty"`
	Description string `json:"description"`
}

func (a *API) writeRegistrationError(w http.ResponseWriter, err error) {
	var paramsErr *payment.Error
	switch {
	case errors.As(err, &paramsErr):
		writeJSONError(w, http.StatusUnprocessableEntity, validationError{
			Code:        string(paramsErr.Code),
			Field:       paramsErr.Field,
			Description: paramsErr.Description,
		})
	case errors.Is(err, ErrCardExpired):
		writeJSONError(w, http.StatusUnprocessableEntity, validationError{
			Code:        "card-expired",
			Description: ErrCardExpired.Error(),
		})
	case errors.Is(err, ErrInvalidCountryCode), errors.Is(err, ErrInvalidMobilePhone):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSONError(w http.ResponseWriter, status int, body validationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (a *API) getCardParams(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	reg, err := a.checkout.GetRegistration(sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(reg)
}

func (a *API) checkCardField(w http.ResponseWriter, r *http.Request) {
	check := models.CardCheck{}
	if err := json.NewDecoder(r.Body).Decode(&check); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	valid, err := a.checkout.CheckCardField(check)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.CardCheckResult{Field: check.Field, Valid: valid})
}
