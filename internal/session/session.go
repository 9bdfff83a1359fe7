package session

import (
	"context"
	"time"

	"blueace_booking_client/internal/api"
	"blueace_booking_client/platform/apperr"
	"blueace_booking_client/platform/logger"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the resolved identity handed to the booking flow.
type Session struct {
	UserID      string
	FullName    string
	Email       string
	PhoneNumber string
	HouseNo     string
	Pincode     string
	Token       string
}

// Resolver turns a stored token into a Session via /find_me.
type Resolver struct {
	client *api.Client
	store  TokenStore
	log    *logger.Logger
	now    func() time.Time
}

// NewResolver creates a resolver over the given client and token store.
func NewResolver(client *api.Client, store TokenStore, log *logger.Logger) *Resolver {
	return &Resolver{
		client: client,
		store:  store,
		log:    log,
		now:    time.Now,
	}
}

// Resolve loads the stored token, rejects it locally when expired, and asks
// the backend for the matching profile.
func (r *Resolver) Resolve(ctx context.Context) (Session, error) {
	token, err := r.store.Load()
	if err != nil {
		r.log.SessionEvent("resolve", false, "no stored token")
		return Session{}, apperr.Wrap(apperr.KindUnauthorized, "not signed in", err)
	}

	if expired, expiry := tokenExpired(token, r.now()); expired {
		r.log.SessionEvent("resolve", false, "token expired")
		_ = r.store.Clear()
		return Session{}, apperr.Unauthorized("session expired at " + expiry.Format(time.RFC3339))
	}

	profile, err := r.client.WithToken(token).FindMe(ctx)
	if err != nil {
		r.log.SessionEvent("resolve", false, "find_me failed")
		return Session{}, err
	}

	r.log.SessionEvent("resolve", true, "")

	return Session{
		UserID:      profile.ID,
		FullName:    profile.FullName,
		Email:       profile.Email,
		PhoneNumber: profile.ContactNumber,
		HouseNo:     profile.HouseNo,
		Pincode:     profile.Pincode,
		Token:       token,
	}, nil
}

// SignIn exchanges credentials for a token, persists it, and resolves the session.
func (r *Resolver) SignIn(ctx context.Context, email, password, contactNumber string) (Session, error) {
	token, err := r.client.Login(ctx, email, password, contactNumber)
	if err != nil {
		r.log.SessionEvent("sign_in", false, "login rejected")
		return Session{}, err
	}
	if token == "" {
		r.log.SessionEvent("sign_in", false, "empty token")
		return Session{}, apperr.Unauthorized("login did not return a token")
	}

	if err := r.store.Save(token); err != nil {
		return Session{}, apperr.Wrap(apperr.KindInternal, "persist token", err)
	}

	r.log.SessionEvent("sign_in", true, "")
	return r.Resolve(ctx)
}

// SignOut discards the stored token.
func (r *Resolver) SignOut() error {
	return r.store.Clear()
}

// tokenExpired checks the exp claim without verifying the signature; the
// backend remains the authority, this only avoids a doomed round trip.
func tokenExpired(token string, now time.Time) (bool, time.Time) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false, time.Time{}
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false, time.Time{}
	}

	return expiry.Time.Before(now), expiry.Time
}
