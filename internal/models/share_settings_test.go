package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareSettings_UnmarshalCoercion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ShareSettings
	}{
		{
			name: "plain booleans",
			in:   `{"phoneNumber":true,"email":false}`,
			want: ShareSettings{PhoneNumber: true},
		},
		{
			name: "string booleans from legacy rows",
			in:   `{"phoneNumber":"true","email":"false","address":"TRUE"}`,
			want: ShareSettings{PhoneNumber: true, Address: true},
		},
		{
			name: "numeric strings",
			in:   `{"vetInfo":"1","emergencyContact":"0"}`,
			want: ShareSettings{VetInfo: true},
		},
		{
			name: "json numbers",
			in:   `{"petDetails":1,"carePreferences":0}`,
			want: ShareSettings{PetDetails: true},
		},
		{
			name: "missing keys default to false",
			in:   `{}`,
			want: ShareSettings{},
		},
		{
			name: "garbage coerces to false",
			in:   `{"phoneNumber":"yes","email":null,"address":[1]}`,
			want: ShareSettings{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ShareSettings
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShareSettings_ScanLegacyColumn(t *testing.T) {
	var s ShareSettings
	require.NoError(t, s.Scan([]byte(`{"phoneNumber":"1","petDetails":true}`)))
	assert.True(t, s.PhoneNumber)
	assert.True(t, s.PetDetails)
	assert.False(t, s.Email)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, ShareSettings{}, s)
}

func TestShareSettings_ValueRoundTrip(t *testing.T) {
	s := ShareSettings{PhoneNumber: true, CarePreferences: true}
	v, err := s.Value()
	require.NoError(t, err)

	var back ShareSettings
	require.NoError(t, back.Scan(v))
	assert.Equal(t, s, back)
}

func TestUser_DisplayName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Anna", "Schmidt", "Anna S."},
		{"Anna", "Öztürk", "Anna Ö."},
		{"Anna", "", "Anna"},
		{"", "Schmidt", "Unbekannt"},
		{"", "", "Unbekannt"},
	}
	for _, tt := range tests {
		u := User{FirstName: tt.first, LastName: tt.last}
		assert.Equal(t, tt.want, u.DisplayName())
	}
}
