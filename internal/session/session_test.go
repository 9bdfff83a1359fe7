package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"blueace_booking_client/internal/api"
	"blueace_booking_client/platform/apperr"
	"blueace_booking_client/platform/config"
	"blueace_booking_client/platform/logger"

	"github.com/golang-jwt/jwt/v5"
)

type memStore struct {
	token   string
	cleared bool
}

func (s *memStore) Load() (string, error) {
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *memStore) Save(token string) error {
	s.token = token
	return nil
}

func (s *memStore) Clear() error {
	s.token = ""
	s.cleared = true
	return nil
}

func signedToken(t *testing.T, expiry time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "u1",
		"exp": expiry.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func testResolver(t *testing.T, handler http.Handler, store TokenStore) *Resolver {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		APIBaseURL:          server.URL,
		APITimeout:          5 * time.Second,
		LookupRatePerSecond: 1000,
		LookupBurst:         1000,
	}
	client := api.New(cfg, logger.New("development"))
	return NewResolver(client, store, logger.New("development"))
}

func TestResolveWithoutStoredTokenIsUnauthorized(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	resolver := testResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}), &memStore{})

	_, err := resolver.Resolve(context.Background())
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("no token must mean no network call")
	}
}

func TestResolveRejectsExpiredTokenLocally(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	store := &memStore{}
	resolver := testResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}), store)

	store.token = signedToken(t, time.Now().Add(-time.Hour))

	_, err := resolver.Resolve(context.Background())
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized for expired token, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("expired token must be rejected without a round trip")
	}
	if !store.cleared {
		t.Fatalf("expired token must be cleared from the store")
	}
}

func TestResolveFetchesProfileWithBearerToken(t *testing.T) {
	t.Parallel()

	store := &memStore{token: signedToken(t, time.Now().Add(time.Hour))}

	var gotAuth string
	resolver := testResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/find_me" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"_id":"u1","FullName":"Anish Kumar","Email":"anish@example.com","ContactNumber":"7217619794","HouseNo":"D-44","PinCode":"110086"}}`))
	}), store)

	sess, err := resolver.Resolve(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if gotAuth != "Bearer "+store.token {
		t.Fatalf("expected stored token on the wire, got %q", gotAuth)
	}
	if sess.UserID != "u1" || sess.FullName != "Anish Kumar" || sess.Pincode != "110086" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if sess.Token != store.token {
		t.Fatalf("session must carry the resolved token")
	}
}

func TestSignInPersistsTokenAndResolves(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	token := signedToken(t, time.Now().Add(time.Hour))

	resolver := testResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Login":
			w.Write([]byte(`{"success":true,"token":"` + token + `"}`))
		case "/find_me":
			w.Write([]byte(`{"success":true,"data":{"_id":"u1","FullName":"Anish Kumar"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}), store)

	sess, err := resolver.SignIn(context.Background(), "anish@example.com", "secret", "7217619794")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if store.token != token {
		t.Fatalf("token must be persisted")
	}
	if sess.UserID != "u1" {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestSignInWithEmptyTokenFails(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	resolver := testResolver(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
	}), store)

	_, err := resolver.SignIn(context.Background(), "anish@example.com", "wrong", "")
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if store.token != "" {
		t.Fatalf("rejected login must not persist a token")
	}
}

func TestFileTokenStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileTokenStore(path)

	if _, err := store.Load(); err != ErrNoToken {
		t.Fatalf("expected ErrNoToken before save, got %v", err)
	}

	if err := store.Save("tok-123"); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok-123" {
		t.Fatalf("unexpected token %q", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Load(); err != ErrNoToken {
		t.Fatalf("expected ErrNoToken after clear, got %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clearing twice must be fine: %v", err)
	}
}
