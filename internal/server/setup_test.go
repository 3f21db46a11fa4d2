package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/config"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-for-handler-tests-only"

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

// newTestServer builds a server on the in-memory store with the full route
// map, no database and no Redis.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	cfg := &config.Config{
		Env:         "test",
		Port:        "0",
		JWTSecret:   testJWTSecret,
		PageSize:    20,
		OfflineMode: true,
		StorageType: "local",
		StoragePath: t.TempDir(),
	}
	s, err := NewServerWithDeps(cfg, nil, nil, NewMemoryRepositories())
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// authToken signs a bearer token for the given user ID.
func authToken(t *testing.T, userID uint) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

// itoa formats a uint for building request paths.
func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

// seedUser creates a user directly in the repository.
func seedUser(t *testing.T, s *Server, user models.User) uint {
	t.Helper()
	require.NoError(t, s.repos.Users.Create(context.Background(), &user))
	return user.ID
}

func seedOwner(t *testing.T, s *Server, email string) uint {
	return seedUser(t, s, models.User{
		Email:     email,
		FirstName: "Anna",
		LastName:  "Schmidt",
		UserType:  models.UserTypeOwner,
		Phone:     "+49 151 1234567",
		City:      "Berlin",
		PLZ:       "10115",
	})
}

func seedCaretaker(t *testing.T, s *Server, email string) uint {
	id := seedUser(t, s, models.User{
		Email:     email,
		FirstName: "Max",
		LastName:  "Müller",
		UserType:  models.UserTypeCaretaker,
		City:      "Berlin",
		PLZ:       "10115",
	})
	require.NoError(t, s.repos.Caretakers.Save(context.Background(), &models.CaretakerProfile{
		UserID:     id,
		ShortAbout: "Erfahrener Hundesitter",
		HourlyRate: 20,
		Services:   []string{"Gassi-Service"},
	}))
	return id
}

func seedAdmin(t *testing.T, s *Server, email string) uint {
	return seedUser(t, s, models.User{
		Email:     email,
		FirstName: "Clara",
		LastName:  "Weber",
		UserType:  models.UserTypeOwner,
		IsAdmin:   true,
		AdminRole: "moderator",
	})
}

// doJSON runs a request with an optional JSON body and auth header.
func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes a JSON response body into a generic map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
