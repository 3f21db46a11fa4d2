// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var (
	careServices = []string{
		"Gassi-Service", "Hundetagesbetreuung", "Katzenbetreuung",
		"Hausbesuche", "Übernachtung beim Betreuer", "Kleintierbetreuung",
		"Medikamentengabe", "Hundetraining",
	}

	petTypes = map[string][]string{
		"dog":    {"Labrador", "Dackel", "Golden Retriever", "Mischling", "Schäferhund", "Pudel"},
		"cat":    {"Europäisch Kurzhaar", "Maine Coon", "BKH", "Siam"},
		"rabbit": {"Zwergkaninchen", "Löwenkopf"},
		"bird":   {"Wellensittich", "Kanarienvogel"},
	}

	cityPLZ = map[string]string{
		"Berlin":    "10115",
		"Hamburg":   "20095",
		"München":   "80331",
		"Köln":      "50667",
		"Stuttgart": "70173",
		"Leipzig":   "04109",
		"Konstanz":  "78462",
	}
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	// #nosec G404: acceptable for seeding
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Factory{db: db, opts: opts, rng: rng, nextID: 1000}
}

func (f *Factory) pickCity() (string, string) {
	cities := make([]string, 0, len(cityPLZ))
	for city := range cityPLZ {
		cities = append(cities, city)
	}
	city := cities[f.rng.Intn(len(cities))]
	return city, cityPLZ[city]
}

func (f *Factory) pickServices(min, max int) []string {
	n := min
	if max > min {
		n += f.rng.Intn(max - min + 1)
	}
	picked := make([]string, 0, n)
	seen := map[string]bool{}
	for len(picked) < n {
		svc := careServices[f.rng.Intn(len(careServices))]
		if !seen[svc] {
			seen[svc] = true
			picked = append(picked, svc)
		}
	}
	return picked
}

// spreadCreatedAt returns a timestamp up to opts.MaxDays in the past so
// seeded data does not all share one creation instant.
func (f *Factory) spreadCreatedAt() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateOwner constructs and persists a sample owner `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateOwner(overrides ...func(*models.User)) (*models.User, error) {
	city, plz := f.pickCity()
	user := &models.User{
		Email:           gofakeit.Email(),
		FirstName:       gofakeit.FirstName(),
		LastName:        gofakeit.LastName(),
		UserType:        models.UserTypeOwner,
		Phone:           gofakeit.Phone(),
		Street:          gofakeit.Street(),
		City:            city,
		PLZ:             plz,
		ProfilePhotoURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	user.CreatedAt = f.spreadCreatedAt()

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateOwner: %s %s <%s>", user.FirstName, user.LastName, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCaretaker constructs and persists a caretaker user together with a
// populated caretaker profile. Roughly a third of the generated profiles carry
// legacy-style mixed price representations so price resolution stays exercised.
func (f *Factory) CreateCaretaker(overrides ...func(*models.User, *models.CaretakerProfile)) (*models.User, error) {
	city, plz := f.pickCity()
	user := &models.User{
		Email:           gofakeit.Email(),
		FirstName:       gofakeit.FirstName(),
		LastName:        gofakeit.LastName(),
		UserType:        models.UserTypeCaretaker,
		Phone:           gofakeit.Phone(),
		Street:          gofakeit.Street(),
		City:            city,
		PLZ:             plz,
		ProfilePhotoURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	user.CreatedAt = f.spreadCreatedAt()

	services := f.pickServices(1, 4)
	hourly := float64(10 + f.rng.Intn(30))
	prices := map[string]any{}
	for _, svc := range services {
		price := hourly + float64(f.rng.Intn(10)) - 5
		if price < 5 {
			price = 5
		}
		switch f.rng.Intn(3) {
		case 0:
			prices[svc] = price
		case 1:
			prices[svc] = fmt.Sprintf("%.0f", price)
		default:
			prices[svc] = ""
		}
	}

	profile := &models.CaretakerProfile{
		Services:        services,
		Prices:          prices,
		HourlyRate:      hourly,
		ServiceRadius:   5 + f.rng.Intn(25),
		ShortAbout:      gofakeit.Sentence(8),
		LongAbout:       gofakeit.Paragraph(1, 3, 8, "\n"),
		ExperienceYears: f.rng.Intn(15),
		Languages:       []string{"Deutsch"},
		Rating:          1 + f.rng.Float64()*4,
		ReviewCount:     f.rng.Intn(40),
		IsVerified:      f.rng.Intn(3) == 0,
	}
	if f.rng.Intn(2) == 0 {
		profile.Languages = append(profile.Languages, "Englisch")
	}

	for _, override := range overrides {
		override(user, profile)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		profile.UserID = user.ID
		log.Printf("[dry-run] CreateCaretaker: %s %s, %d services", user.FirstName, user.LastName, len(services))
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	profile.UserID = user.ID
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePet constructs and persists a sample `models.Pet` for the given owner.
func (f *Factory) CreatePet(owner *models.User, overrides ...func(*models.Pet)) (*models.Pet, error) {
	types := make([]string, 0, len(petTypes))
	for t := range petTypes {
		types = append(types, t)
	}
	petType := types[f.rng.Intn(len(types))]
	breeds := petTypes[petType]

	pet := &models.Pet{
		OwnerID:  owner.ID,
		Name:     gofakeit.PetName(),
		Type:     petType,
		Breed:    breeds[f.rng.Intn(len(breeds))],
		Age:      1 + f.rng.Intn(14),
		Weight:   1 + f.rng.Float64()*35,
		Gender:   []string{"male", "female"}[f.rng.Intn(2)],
		Neutered: f.rng.Intn(2) == 0,
		PhotoURL: fmt.Sprintf("https://picsum.photos/seed/%s/400/400", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(pet)
	}

	if f.opts.DryRun {
		f.nextID++
		pet.ID = f.nextID
		log.Printf("[dry-run] CreatePet: %s (%s) for owner %d", pet.Name, pet.Type, pet.OwnerID)
		return pet, nil
	}

	if err := f.db.Create(pet).Error; err != nil {
		return nil, err
	}
	return pet, nil
}

// CreatePreferences persists a preferences row for the given owner with a
// random share-settings mix.
func (f *Factory) CreatePreferences(owner *models.User, overrides ...func(*models.OwnerPreferences)) (*models.OwnerPreferences, error) {
	prefs := &models.OwnerPreferences{
		OwnerID:          owner.ID,
		Services:         f.pickServices(1, 3),
		CareInstructions: gofakeit.Paragraph(1, 2, 6, "\n"),
		VetInfo: models.VetInfo{
			Name:    "Dr. " + gofakeit.LastName(),
			Address: gofakeit.Street() + ", " + owner.City,
			Phone:   gofakeit.Phone(),
		},
		EmergencyContact: models.EmergencyContact{
			Name:  gofakeit.Name(),
			Phone: gofakeit.Phone(),
		},
		ShareSettings: models.ShareSettings{
			PhoneNumber:      f.rng.Intn(2) == 0,
			Email:            f.rng.Intn(2) == 0,
			Address:          f.rng.Intn(3) == 0,
			VetInfo:          f.rng.Intn(2) == 0,
			EmergencyContact: f.rng.Intn(2) == 0,
			PetDetails:       f.rng.Intn(4) != 0,
			CarePreferences:  f.rng.Intn(2) == 0,
		},
	}

	for _, override := range overrides {
		override(prefs)
	}

	if f.opts.DryRun {
		f.nextID++
		prefs.ID = f.nextID
		log.Printf("[dry-run] CreatePreferences: owner %d", prefs.OwnerID)
		return prefs, nil
	}

	if err := f.db.Create(prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}

// CreateConnection persists a connection between an owner and a caretaker.
func (f *Factory) CreateConnection(owner, caretaker *models.User, connType models.ConnectionType) error {
	conn := &models.Connection{
		OwnerID:     owner.ID,
		CaretakerID: caretaker.ID,
		Type:        connType,
	}
	if f.opts.DryRun {
		log.Printf("[dry-run] CreateConnection: %d -> %d (%s)", owner.ID, caretaker.ID, connType)
		return nil
	}
	return f.db.Create(conn).Error
}

// CreatePostalCodes persists the built-in PLZ/city mappings.
func (f *Factory) CreatePostalCodes() error {
	for city, plz := range cityPLZ {
		row := &models.PostalCode{PLZ: plz, City: city}
		if f.opts.DryRun {
			log.Printf("[dry-run] CreatePostalCode: %s %s", plz, city)
			continue
		}
		if err := f.db.Where("plz = ? AND city = ?", plz, city).
			FirstOrCreate(row).Error; err != nil {
			return err
		}
	}
	return nil
}
