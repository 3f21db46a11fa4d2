package service

import (
	"testing"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveBestPrice(t *testing.T) {
	tests := []struct {
		name    string
		profile models.CaretakerProfile
		want    float64
	}{
		{
			name: "cheapest positive price wins",
			profile: models.CaretakerProfile{
				Prices:     map[string]any{"gassi": 15.0, "betreuung": 25.0},
				HourlyRate: 30,
			},
			want: 15,
		},
		{
			name: "mixed numbers and numeric strings",
			profile: models.CaretakerProfile{
				Prices: map[string]any{"a": "10", "b": "", "c": 5},
			},
			want: 5,
		},
		{
			name: "non-numeric entries skipped",
			profile: models.CaretakerProfile{
				Prices:     map[string]any{"a": "auf Anfrage", "b": nil},
				HourlyRate: 20,
			},
			want: 20,
		},
		{
			name: "zero prices fall through to hourly rate",
			profile: models.CaretakerProfile{
				Prices:     map[string]any{"a": 0, "b": "0"},
				HourlyRate: 18.5,
			},
			want: 18.5,
		},
		{
			name: "negative prices never surface",
			profile: models.CaretakerProfile{
				Prices: map[string]any{"a": -5.0},
			},
			want: 0,
		},
		{
			name:    "no data at all",
			profile: models.CaretakerProfile{},
			want:    0,
		},
		{
			name: "json numbers arrive as float64",
			profile: models.CaretakerProfile{
				Prices: map[string]any{"a": float64(12), "b": float64(9)},
			},
			want: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBestPrice(&tt.profile))
		})
	}
}
