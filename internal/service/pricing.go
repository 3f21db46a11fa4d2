package service

import (
	"strconv"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
)

// ResolveBestPrice computes the price shown in search results for a
// caretaker. The cheapest positive per-service price wins; when the price map
// holds no usable value the hourly rate is the fallback, and 0 means no price
// information at all. Non-numeric and empty map entries are skipped, never an
// error: the map is stored as clients sent it.
func ResolveBestPrice(profile *models.CaretakerProfile) float64 {
	best := 0.0
	for _, raw := range profile.Prices {
		price, ok := toPrice(raw)
		if !ok || price <= 0 {
			continue
		}
		if best == 0 || price < best {
			best = price
		}
	}
	if best > 0 {
		return best
	}
	if profile.HourlyRate > 0 {
		return profile.HourlyRate
	}
	return 0
}

func toPrice(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if v == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
