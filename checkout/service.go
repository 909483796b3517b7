package checkout

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hostedpay/payments-go/checkout/models"
	"github.com/hostedpay/payments-go/internal/cardsec"
	"github.com/hostedpay/payments-go/payment"
	"github.com/hostedpay/payments-go/payment/validate"
)

var (
	ErrCardExpired        = fmt.Errorf("card is expired")
	ErrInvalidCountryCode = fmt.Errorf("country code must contain digits only")
	ErrInvalidMobilePhone = fmt.Errorf("mobile phone must contain digits only")
)

type Service struct {
	repo *Repository
	cfg  *Config
}

func NewService(repo *Repository, cfg *Config) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Service{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *Service) CreateSession(req models.CreateSession) (*models.Session, error) {
	session := &models.Session{
		ID:                    uuid.New().String(),
		Amount:                req.Amount,
		Currency:              req.Currency,
		BrandDetectionEnabled: req.BrandDetection || s.cfg.BrandDetection,
		CreatedAt:             time.Now().UTC(),
	}

	err := s.repo.CreateSession(session)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return session, nil
}

func (s *Service) GetSession(sessionID string) (*models.Session, error) {
	session, err := s.repo.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("finding session: %w", err)
	}

	return session, nil
}

// RegisterCardParams validates the supplied card fields against the session
// and stores the sanitized registration. Validation failures surface as
// *payment.Error; an expired card returns ErrCardExpired.
func (s *Service) RegisterCardParams(sessionID string, req models.RegisterCardParams) (*models.Registration, error) {
	session, err := s.repo.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("finding session: %w", err)
	}

	var params *payment.CardParams
	if req.PaymentBrand == "" {
		if !session.BrandDetectionEnabled {
			return nil, &payment.Error{
				Code:        payment.ErrorCodeInvalidBrand,
				Field:       "paymentBrand",
				Description: "payment brand is required unless brand detection is enabled",
			}
		}
		params, err = payment.NewCardParamsAutoBrand(session.ID, req.Holder, req.Number, req.ExpiryMonth, req.ExpiryYear, req.CVV)
	} else {
		params, err = payment.NewCardParams(session.ID, req.PaymentBrand, req.Holder, req.Number, req.ExpiryMonth, req.ExpiryYear, req.CVV)
	}
	if err != nil {
		return nil, err
	}

	if validate.IsExpired(params.ExpiryMonth(), params.ExpiryYear()) {
		return nil, ErrCardExpired
	}
	if req.CountryCode != "" && !validate.IsCountryCodeValid(req.CountryCode) {
		return nil, ErrInvalidCountryCode
	}
	if req.MobilePhone != "" && !validate.IsMobilePhoneValid(req.MobilePhone) {
		return nil, ErrInvalidMobilePhone
	}

	params.CountryCode = req.CountryCode
	params.MobilePhone = req.MobilePhone
	params.TokenizationEnabled = req.Tokenize
	params.NumberOfInstallments = req.NumberOfInstallments

	number := validate.NormalizeNumber(params.Number())
	reg := &models.Registration{
		ID:           uuid.New().String(),
		SessionID:    session.ID,
		PaymentBrand: params.PaymentBrand(),
		Holder:       params.Holder(),
		Last4:        cardsec.LastN(number, 4),
		ExpiryMonth:  params.ExpiryMonth(),
		ExpiryYear:   params.ExpiryYear(),
		CountryCode:  params.CountryCode,
		MobilePhone:  params.MobilePhone,
		Installments: params.NumberOfInstallments,
		NumberHash:   cardsec.HashNumberHMAC(number, []byte(s.cfg.HashKey)),
		CreatedAt:    time.Now().UTC(),
	}
	if params.TokenizationEnabled {
		reg.Token = uuid.New().String()
	}

	if err := s.repo.CreateRegistration(reg); err != nil {
		return nil, fmt.Errorf("storing card params: %w", err)
	}

	return reg, nil
}

func (s *Service) GetRegistration(sessionID string) (*models.Registration, error) {
	reg, err := s.repo.GetRegistration(sessionID)
	if err != nil {
		return nil, fmt.Errorf("finding card params: %w", err)
	}

	return reg, nil
}

// CheckCardField answers a single live form-validation request. It returns
// an error only for unknown field names.
func (s *Service) CheckCardField(req models.CardCheck) (bool, error) {
	switch req.Field {
	case "holder":
		return validate.IsHolderValid(req.Value), nil
	case "number":
		luhn := true
		if req.LuhnCheck != nil {
			luhn = *req.LuhnCheck
		}
		return validate.IsNumberValid(req.Value, luhn), nil
	case "expiryMonth":
		return validate.IsExpiryMonthValid(req.Value), nil
	case "expiryYear":
		return validate.IsExpiryYearValid(req.Value), nil
	case "expiry":
		if !validate.IsExpiryMonthValid(req.Month) || !validate.IsExpiryYearValid(req.Year) {
			return false, nil
		}
		return !validate.IsExpired(req.Month, req.Year), nil
	case "cvv":
		return validate.IsCvvValid(req.Value), nil
	case "countryCode":
		return validate.IsCountryCodeValid(req.Value), nil
	case "mobilePhone":
		return validate.IsMobilePhoneValid(req.Value), nil
	default:
		return false, fmt.Errorf("unknown field: %s", req.Field)
	}
}
