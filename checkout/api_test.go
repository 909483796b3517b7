package checkout_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hostedpay/payments-go/checkout"
	"github.com/hostedpay/payments-go/checkout/models"
	"github.com/stretchr/testify/require"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	api := checkout.NewAPI(checkout.NewService(checkout.NewRepository(), checkout.DefaultConfig()))
	api.AppendRoutes(router)
	return router
}

func createTestSession(t *testing.T, router chi.Router, create models.CreateSession) models.Session {
	t.Helper()

	jsonReq, _ := json.Marshal(create)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/sessions", bytes.NewBuffer(jsonReq))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	session := models.Session{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	return session
}

func postCardParams(router chi.Router, sessionID string, reg models.RegisterCardParams) *httptest.ResponseRecorder {
	jsonReq, _ := json.Marshal(reg)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/sessions/"+sessionID+"/card-params", bytes.NewBuffer(jsonReq))
	router.ServeHTTP(w, req)
	return w
}

func TestAPI(t *testing.T) {
	router := newTestRouter()

	t.Run("create session", func(t *testing.T) {
		session := createTestSession(t, router, models.CreateSession{Amount: 10_00, Currency: "USD"})

		require.NotEmpty(t, session.ID)
		require.Equal(t, int64(10_00), session.Amount)
		require.Equal(t, "USD", session.Currency)
		require.False(t, session.BrandDetectionEnabled)
	})

	t.Run("register card params", func(t *testing.T) {
		session := createTestSession(t, router, models.CreateSession{Amount: 10_00, Currency: "USD"})

		w := postCardParams(router, session.ID, models.RegisterCardParams{
			PaymentBrand: "VISA",
			Holder:       "John Smith",
			Number:       "4200 0000 0000 0000",
			ExpiryMonth:  "12",
			ExpiryYear:   "2030",
			CVV:          "123",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		reg := models.Registration{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
		require.Equal(t, session.ID, reg.SessionID)
		require.Equal(t, "VISA", reg.PaymentBrand)
		require.Equal(t, "John Smith", reg.Holder)
		require.Equal(t, "0000", reg.Last4)
		require.Equal(t, "12", reg.ExpiryMonth)
		require.Equal(t, "2030", reg.ExpiryYear)
		require.Empty(t, reg.Token)

		// the registration can be fetched back
		w2 := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/sessions/"+session.ID+"/card-params", nil)
		router.ServeHTTP(w2, req)
		require.Equal(t, http.StatusOK, w2.Code)

		// a second registration for the same session conflicts
		w3 := postCardParams(router, session.ID, models.RegisterCardParams{
			PaymentBrand: "VISA",
			Holder:       "John Smith",
			Number:       "4200 0000 0000 0000",
			ExpiryMonth:  "12",
			ExpiryYear:   "2030",
			CVV:          "123",
		})
		require.Equal(t, http.StatusConflict, w3.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		w := postCardParams(router, "no-such-session", models.RegisterCardParams{
			PaymentBrand: "VISA",
			Holder:       "John Smith",
			Number:       "4200 0000 0000 0000",
			ExpiryMonth:  "12",
			ExpiryYear:   "2030",
		})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("tokenization mints a token", func(t *testing.T) {
		session := createTestSession(t, router, models.CreateSession{Amount: 10_00, Currency: "USD"})

		w := postCardParams(router, session.ID, models.RegisterCardParams{
			PaymentBrand: "VISA",
			Holder:       "John Smith",
			Number:       "4242424242424242",
			ExpiryMonth:  "12",
			ExpiryYear:   "2030",
			CVV:          "123",
			Tokenize:     true,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		reg := models.Registration{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
		require.NotEmpty(t, reg.Token)
	})
}

func TestAPI_ValidationErrors(t *testing.T) {
	router := newTestRouter()
	session := createTestSession(t, router, models.CreateSession{Amount: 10_00, Currency: "USD"})

	type validationError struct {
		Code        string `json:"code"`
		Field       string `json:"field"`
		Description string `json:"description"`
	}

	cases := []struct {
		name      string
		req       models.RegisterCardParams
		wantCode  string
		wantField string
	}{
		{
			name: "short holder",
			req: models.RegisterCardParams{
				PaymentBrand: "VISA", Holder: "Jo", Number: "4200 0000 0000 0000",
				ExpiryMonth: "12", ExpiryYear: "2030", CVV: "123",
			},
			wantCode: "invalid-holder", wantField: "holder",
		},
		{
			name: "month 13",
			req: models.RegisterCardParams{
				PaymentBrand: "VISA", Holder: "John Smith", Number: "4200 0000 0000 0000",
				ExpiryMonth: "13", ExpiryYear: "2030", CVV: "123",
			},
			wantCode: "invalid-expiry-month", wantField: "expiryMonth",
		},
		{
			name: "bad number",
			req: models.RegisterCardParams{
				PaymentBrand: "VISA", Holder: "John Smith", Number: "4200 0000 0000 0001",
				ExpiryMonth: "12", ExpiryYear: "2030", CVV: "123",
			},
			wantCode: "invalid-number", wantField: "number",
		},
		{
			name: "expired card",
			req: models.RegisterCardParams{
				PaymentBrand: "VISA", Holder: "John Smith", Number: "4200 0000 0000 0000",
				ExpiryMonth: "12", ExpiryYear: "2020", CVV: "123",
			},
			wantCode: "card-expired",
		},
		{
			name: "brand required without detection",
			req: models.RegisterCardParams{
				Holder: "John Smith", Number: "4200 0000 0000 0000",
				ExpiryMonth: "12", ExpiryYear: "2030", CVV: "123",
			},
			wantCode: "invalid-brand", wantField: "paymentBrand",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := postCardParams(router, session.ID, c.req)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)

			ve := validationError{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ve))
			require.Equal(t, c.wantCode, ve.Code)
			require.Equal(t, c.wantField, ve.Field)
			require.NotEmpty(t, ve.Description)
		})
	}
}

func TestAPI_BrandDetection(t *testing.T) {
	router := newTestRouter()
	session := createTestSession(t, router, models.CreateSession{Amount: 10_00, Currency: "USD", BrandDetection: true})
	require.True(t, session.BrandDetectionEnabled)

	w := postCardParams(router, session.ID, models.RegisterCardParams{
		Holder:      "John Smith",
		Number:      "4200 0000 0000 0000",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
		CVV:         "123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	reg := models.Registration{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	require.Empty(t, reg.PaymentBrand)
}

func TestAPI_CardChecks(t *testing.T) {
	router := newTestRouter()

	check := func(t *testing.T, body models.CardCheck) models.CardCheckResult {
		t.Helper()
		jsonReq, _ := json.Marshal(body)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/card-checks", bytes.NewBuffer(jsonReq))
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		result := models.CardCheckResult{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		return result
	}

	require.True(t, check(t, models.CardCheck{Field: "number", Value: "4200 0000 0000 0000"}).Valid)
	require.False(t, check(t, models.CardCheck{Field: "number", Value: "4200 0000 0000 0001"}).Valid)
	require.False(t, check(t, models.CardCheck{Field: "holder", Value: "Jo"}).Valid)
	require.True(t, check(t, models.CardCheck{Field: "cvv", Value: "1234"}).Valid)
	require.True(t, check(t, models.CardCheck{Field: "expiry", Month: "12", Year: "2099"}).Valid)
	require.False(t, check(t, models.CardCheck{Field: "expiry", Month: "12", Year: "2020"}).Valid)

	// luhn check can be switched off for partial input
	off := false
	require.True(t, check(t, models.CardCheck{Field: "number", Value: "1234567890", LuhnCheck: &off}).Valid)

	// unknown fields are a bad request
	jsonReq, _ := json.Marshal(models.CardCheck{Field: "pin", Value: "1234"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/card-checks", bytes.NewBuffer(jsonReq))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
