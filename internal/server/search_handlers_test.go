package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCaretakers(t *testing.T) {
	s, app := newTestServer(t)
	seedCaretaker(t, s, "max@example.com")

	katzenID := seedUser(t, s, models.User{
		Email:     "lisa@example.com",
		FirstName: "Lisa",
		LastName:  "Becker",
		UserType:  models.UserTypeCaretaker,
		City:      "Hamburg",
		PLZ:       "20095",
	})
	require.NoError(t, s.repos.Caretakers.Save(context.Background(), &models.CaretakerProfile{
		UserID:     katzenID,
		HourlyRate: 15,
		Services:   []string{"Katzenbetreuung"},
	}))

	resp := doJSON(t, app, http.MethodGet, "/api/caretakers/search", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["total"])
	assert.Equal(t, float64(1), body["page"])

	// Service filter narrows the result set.
	resp = doJSON(t, app, http.MethodGet, "/api/caretakers/search?services=Katzenbetreuung", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	caretakers := body["caretakers"].([]any)
	require.Len(t, caretakers, 1)
	assert.Equal(t, "Lisa B.", caretakers[0].(map[string]any)["name"])
}

func TestSearchCaretakers_LocationFilter(t *testing.T) {
	s, app := newTestServer(t)
	seedCaretaker(t, s, "max@example.com") // Berlin, 10115

	hamburgID := seedUser(t, s, models.User{
		Email:     "lisa@example.com",
		FirstName: "Lisa",
		LastName:  "Becker",
		UserType:  models.UserTypeCaretaker,
		City:      "Hamburg",
		PLZ:       "20095",
	})
	require.NoError(t, s.repos.Caretakers.Save(context.Background(), &models.CaretakerProfile{
		UserID:     hamburgID,
		HourlyRate: 15,
		Services:   []string{"Katzenbetreuung"},
	}))

	// City substring, case-insensitive.
	resp := doJSON(t, app, http.MethodGet, "/api/caretakers/search?location=hamBURG", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	caretakers := body["caretakers"].([]any)
	require.Len(t, caretakers, 1)
	assert.Equal(t, "Lisa B.", caretakers[0].(map[string]any)["name"])

	// Postal code works as a location too.
	resp = doJSON(t, app, http.MethodGet, "/api/caretakers/search?location=10115", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	caretakers = body["caretakers"].([]any)
	require.Len(t, caretakers, 1)
	assert.Equal(t, "Max M.", caretakers[0].(map[string]any)["name"])

	// No caretaker in that city.
	resp = doJSON(t, app, http.MethodGet, "/api/caretakers/search?location=Bremen", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(0), body["total"])
}

func TestSearchCaretakers_PriceAndServiceFilter(t *testing.T) {
	s, app := newTestServer(t)
	seedCaretaker(t, s, "max@example.com") // 20 EUR/h, Gassi-Service

	// Right service, priced out of range.
	expensiveID := seedUser(t, s, models.User{
		Email:     "vera@example.com",
		FirstName: "Vera",
		LastName:  "Teuer",
		UserType:  models.UserTypeCaretaker,
		City:      "Berlin",
		PLZ:       "10115",
	})
	require.NoError(t, s.repos.Caretakers.Save(context.Background(), &models.CaretakerProfile{
		UserID:     expensiveID,
		HourlyRate: 35,
		Services:   []string{"Gassi-Service"},
	}))

	// Right price, wrong service.
	katzenID := seedUser(t, s, models.User{
		Email:     "lisa@example.com",
		FirstName: "Lisa",
		LastName:  "Becker",
		UserType:  models.UserTypeCaretaker,
		City:      "Berlin",
		PLZ:       "10115",
	})
	require.NoError(t, s.repos.Caretakers.Save(context.Background(), &models.CaretakerProfile{
		UserID:     katzenID,
		HourlyRate: 15,
		Services:   []string{"Katzenbetreuung"},
	}))

	resp := doJSON(t, app, http.MethodGet,
		"/api/caretakers/search?min_price=10&max_price=20&services=Gassi-Service", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	caretakers := body["caretakers"].([]any)
	require.Len(t, caretakers, 1)
	// The 20 EUR/h rate sits exactly on max_price and stays included.
	assert.Equal(t, "Max M.", caretakers[0].(map[string]any)["name"])
}

func TestSearchCaretakers_InvalidPriceFilter(t *testing.T) {
	_, app := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/caretakers/search?min_price=abc", "", nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchCaretakers_PageBeyondResults(t *testing.T) {
	s, app := newTestServer(t)
	seedCaretaker(t, s, "max@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/caretakers/search?page=5", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["total"])
	caretakers, ok := body["caretakers"].([]any)
	if ok {
		assert.Empty(t, caretakers)
	}
}
