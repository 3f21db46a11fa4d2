package service

import (
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
)

// ProjectClientView applies an owner's share settings to their data and
// returns the caretaker-facing view. prefs may be nil (owner never saved
// preferences); everything is withheld then. The projection is pure: the
// same inputs always yield the same view, and unshared values never appear
// in the output, not even as empty placeholders with Shared=true.
func ProjectClientView(owner *models.User, prefs *models.OwnerPreferences, pets []models.Pet) models.ClientView {
	view := models.ClientView{
		OwnerID:   owner.ID,
		Name:      owner.DisplayName(),
		AvatarURL: owner.ProfilePhotoURL,
	}

	var settings models.ShareSettings
	if prefs != nil {
		settings = prefs.ShareSettings
	}

	view.Phone = share(settings.PhoneNumber, owner.Phone)
	view.Email = share(settings.Email, owner.Email)
	view.Street = share(settings.Address, owner.Street)
	view.PLZ = share(settings.Address, owner.PLZ)
	view.City = share(settings.Address, owner.City)

	if prefs != nil {
		view.VetName = share(settings.VetInfo, prefs.VetInfo.Name)
		view.VetAddress = share(settings.VetInfo, prefs.VetInfo.Address)
		view.VetPhone = share(settings.VetInfo, prefs.VetInfo.Phone)

		view.EmergencyName = share(settings.EmergencyContact, prefs.EmergencyContact.Name)
		view.EmergencyPhone = share(settings.EmergencyContact, prefs.EmergencyContact.Phone)

		if settings.CarePreferences {
			view.CarePreferencesShared = true
			view.ServiceWishes = prefs.Services
			view.OtherWishes = prefs.OtherServices
			view.CareInstructions = prefs.CareInstructions
		}
	}

	if settings.PetDetails {
		view.PetsShared = true
		view.Pets = pets
	}

	return view
}

func share(shared bool, value string) models.SharedString {
	if !shared {
		return models.SharedString{}
	}
	return models.SharedString{Shared: true, Value: value}
}
