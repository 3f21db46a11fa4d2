package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// ShareSettings controls which categories of an owner's data are visible to
// their connected caretakers. Each flag gates one category independently.
//
// Legacy rows store the flags in mixed representations (actual booleans,
// "true"/"false" strings, "1"/"0" strings, numeric 1/0); UnmarshalJSON coerces
// all of them to strict booleans. Missing rows and missing keys default to
// false, so nothing is shared until the owner opts in.
type ShareSettings struct {
	PhoneNumber      bool `json:"phoneNumber"`
	Email            bool `json:"email"`
	Address          bool `json:"address"`
	VetInfo          bool `json:"vetInfo"`
	EmergencyContact bool `json:"emergencyContact"`
	PetDetails       bool `json:"petDetails"`
	CarePreferences  bool `json:"carePreferences"`
}

// CoerceBool normalizes the storage representations a share flag may arrive
// in. Unknown types coerce to false.
func CoerceBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.TrimSpace(strings.ToLower(t))
		return s == "true" || s == "1"
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case json.Number:
		return t.String() != "0" && t.String() != ""
	default:
		return false
	}
}

// UnmarshalJSON accepts lenient flag representations and coerces them.
func (s *ShareSettings) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.PhoneNumber = CoerceBool(raw["phoneNumber"])
	s.Email = CoerceBool(raw["email"])
	s.Address = CoerceBool(raw["address"])
	s.VetInfo = CoerceBool(raw["vetInfo"])
	s.EmergencyContact = CoerceBool(raw["emergencyContact"])
	s.PetDetails = CoerceBool(raw["petDetails"])
	s.CarePreferences = CoerceBool(raw["carePreferences"])
	return nil
}

// Value implements driver.Valuer so the settings persist as a JSON column.
func (s ShareSettings) Value() (driver.Value, error) {
	type plain ShareSettings
	b, err := json.Marshal(plain(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner, tolerating legacy mixed-type payloads.
func (s *ShareSettings) Scan(value any) error {
	if value == nil {
		*s = ShareSettings{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return s.UnmarshalJSON(v)
	case string:
		return s.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("unsupported share settings column type %T", value)
	}
}
