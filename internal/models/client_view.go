package models

// SharedString is one redacted text field in a client view. Shared=false means
// the owner withheld the category: Value is always empty then, and the UI
// renders the "Nicht freigegeben" label. Shared=true with an empty Value means
// the owner simply has no data there. Both states withhold the same
// information but must render differently.
type SharedString struct {
	Shared bool   `json:"shared"`
	Value  string `json:"value,omitempty"`
}

// ClientView is the caretaker-facing projection of one owner's data after the
// owner's ShareSettings have been applied. Pets and care preferences are
// all-or-nothing categories.
type ClientView struct {
	OwnerID   uint   `json:"owner_id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`

	Phone   SharedString `json:"phone"`
	Email   SharedString `json:"email"`
	Street  SharedString `json:"street"`
	PLZ     SharedString `json:"plz"`
	City    SharedString `json:"city"`

	VetName    SharedString `json:"vet_name"`
	VetAddress SharedString `json:"vet_address"`
	VetPhone   SharedString `json:"vet_phone"`

	EmergencyName  SharedString `json:"emergency_name"`
	EmergencyPhone SharedString `json:"emergency_phone"`

	PetsShared bool  `json:"pets_shared"`
	Pets       []Pet `json:"pets,omitempty"`

	CarePreferencesShared bool     `json:"care_preferences_shared"`
	ServiceWishes         []string `json:"service_wishes,omitempty"`
	OtherWishes           string   `json:"other_wishes,omitempty"`
	CareInstructions      string   `json:"care_instructions,omitempty"`
}
