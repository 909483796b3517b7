package checkout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/hostedpay/payments-go/checkout/models"
	"github.com/jackc/pgconn"
	"github.com/lib/pq"
)

var (
	ErrNotFound = fmt.Errorf("not found")
	ErrConflict = fmt.Errorf("conflict")
)

// Repository stores checkout sessions and card parameter registrations.
// Without a db it keeps everything in memory (tests); with a db it is
// backed by Postgres.
type Repository struct {
	Sessions      []*models.Session
	Registrations []*models.Registration

	mu       sync.RWMutex
	regIndex map[string]struct{}
	db       *sql.DB
}

func NewRepository() *Repository {
	return &Repository{
		Sessions:      make([]*models.Session, 0),
		Registrations: make([]*models.Registration, 0),
		regIndex:      make(map[string]struct{}),
	}
}

// NewPGRepository constructs a db-backed repository.
func NewPGRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateSession(session *models.Session) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.Sessions = append(r.Sessions, session)
		return nil
	}
	_, err := r.db.ExecContext(context.Background(), `
        INSERT INTO checkout.sessions(session_id, amount, currency, brand_detection, created_at)
        VALUES ($1,$2,$3,$4,$5)
    `, session.ID, session.Amount, strings.ToUpper(session.Currency), session.BrandDetectionEnabled, session.CreatedAt)
	return err
}

func (r *Repository) GetSession(sessionID string) (*models.Session, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		for _, session := range r.Sessions {
			if session.ID == sessionID {
				return session, nil
			}
		}
		return nil, ErrNotFound
	}
	row := r.db.QueryRowContext(context.Background(), `
        SELECT session_id, amount, currency, brand_detection, created_at
          FROM checkout.sessions WHERE session_id=$1
    `, sessionID)
	s := models.Session{}
	if err := row.Scan(&s.ID, &s.Amount, &s.Currency, &s.BrandDetectionEnabled, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// CreateRegistration stores a registration. A session can hold at most one
// registration; a second attempt returns ErrConflict.
func (r *Repository) CreateRegistration(reg *models.Registration) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.regIndex[reg.SessionID]; ok {
			return fmt.Errorf("card params already registered: %w", ErrConflict)
		}
		r.Registrations = append(r.Registrations, reg)
		r.regIndex[reg.SessionID] = struct{}{}
		return nil
	}
	_, err := r.db.ExecContext(context.Background(), `
        INSERT INTO checkout.card_params(registration_id, session_id, payment_brand, holder, last4,
                                         expiry_month, expiry_year, country_code, mobile_phone,
                                         token, installments, number_hash, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    `, reg.ID, reg.SessionID, reg.PaymentBrand, reg.Holder, reg.Last4,
		reg.ExpiryMonth, reg.ExpiryYear, reg.CountryCode, reg.MobilePhone,
		reg.Token, reg.Installments, reg.NumberHash, reg.CreatedAt)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *Repository) GetRegistration(sessionID string) (*models.Registration, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		for _, reg := range r.Registrations {
			if reg.SessionID == sessionID {
				return reg, nil
			}
		}
		return nil, ErrNotFound
	}
	row := r.db.QueryRowContext(context.Background(), `
        SELECT registration_id, session_id, payment_brand, holder, last4,
               expiry_month, expiry_year, country_code, mobile_phone,
               token, installments, number_hash, created_at
          FROM checkout.card_params WHERE session_id=$1
    `, sessionID)
	reg := models.Registration{}
	if err := row.Scan(&reg.ID, &reg.SessionID, &reg.PaymentBrand, &reg.Holder, &reg.Last4,
		&reg.ExpiryMonth, &reg.ExpiryYear, &reg.CountryCode, &reg.MobilePhone,
		&reg.Token, &reg.Installments, &reg.NumberHash, &reg.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// Ping returns DB readiness
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var pe *pq.Error
	if errors.As(err, &pe) && pe.Code == "23505" {
		return true
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == "23505" {
		return true
	}
	return false
}
