package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	_, app := newTestServer(t)

	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]any{
				"email":      "anna@example.com",
				"first_name": "Anna",
				"last_name":  "Schmidt",
				"user_type":  "owner",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate email",
			body: map[string]any{
				"email":     "anna@example.com",
				"user_type": "caretaker",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing email",
			body: map[string]any{
				"user_type": "owner",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid user type",
			body: map[string]any{
				"email":     "bert@example.com",
				"user_type": "superhero",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/users", "", tt.body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGetMyProfile(t *testing.T) {
	s, app := newTestServer(t)
	ownerID := seedOwner(t, s, "anna@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/users/me", authToken(t, ownerID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "anna@example.com", body["email"])
	assert.Equal(t, "owner", body["user_type"])
}

func TestGetMyProfile_Unauthenticated(t *testing.T) {
	_, app := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/users/me", "", nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateMyProfile_ImmutableFieldsIgnored(t *testing.T) {
	s, app := newTestServer(t)
	ownerID := seedOwner(t, s, "anna@example.com")

	resp := doJSON(t, app, http.MethodPut, "/api/users/me", authToken(t, ownerID), map[string]any{
		"email":     "evil@example.com",
		"user_type": "caretaker",
		"is_admin":  true,
		"city":      "Hamburg",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "anna@example.com", body["email"])
	assert.Equal(t, "owner", body["user_type"])
	assert.Equal(t, false, body["is_admin"])
	assert.Equal(t, "Hamburg", body["city"])
}

func TestDeleteMyAccount(t *testing.T) {
	s, app := newTestServer(t)
	ownerID := seedOwner(t, s, "anna@example.com")

	resp := doJSON(t, app, http.MethodDelete, "/api/users/me", authToken(t, ownerID), nil)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/users/me", authToken(t, ownerID), nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetCaretakerProfile_Public(t *testing.T) {
	s, app := newTestServer(t)
	caretakerID := seedCaretaker(t, s, "max@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/caretakers/"+itoa(caretakerID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	summary, ok := body["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Max M.", summary["name"])
	assert.Equal(t, float64(20), summary["display_rate"])
}

func TestGetCaretakerProfile_NotFound(t *testing.T) {
	_, app := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/caretakers/999", "", nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSaveMyCaretakerProfile_RejectsOwner(t *testing.T) {
	s, app := newTestServer(t)
	ownerID := seedOwner(t, s, "anna@example.com")

	resp := doJSON(t, app, http.MethodPut, "/api/caretakers/me/profile", authToken(t, ownerID), map[string]any{
		"hourly_rate": 25,
	})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterUser_CityAutofilledFromPLZ(t *testing.T) {
	s, app := newTestServer(t)
	require.NoError(t, s.repos.PLZ.Upsert(context.Background(), "20095", "Hamburg"))

	resp := doJSON(t, app, http.MethodPost, "/api/users", "", map[string]any{
		"email":     "jonas@example.com",
		"user_type": "owner",
		"plz":       "20095",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Hamburg", body["city"])
}

func TestRegisterUser_UnknownPLZLeavesCityEmpty(t *testing.T) {
	_, app := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/users", "", map[string]any{
		"email":     "mia@example.com",
		"user_type": "owner",
		"plz":       "99999",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "", body["city"])
}
