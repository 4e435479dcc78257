package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"sihati/config"
	"sihati/database"
	"sihati/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database with doctors and donation-ready patients
// spread around Khenchela, so booking and broadcast flows can be exercised
// by hand.
func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	profileColl := db.Collection("profiles")
	doctorColl := db.Collection("doctors")
	patientColl := db.Collection("patients")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, coll := range []string{"profiles", "doctors", "patients", "doctor_schedules", "appointments", "blood_donation_requests", "notifications"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	// Anchor point for the simulation (Khenchela).
	centerLat, centerLon := 35.4269, 7.1460

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	specializations := []string{"généraliste", "cardiologue", "dentiste", "pédiatre"}
	bloodTypes := []string{"O-", "O+", "A+", "B+"}

	rand.Seed(time.Now().UnixNano())

	var profiles []interface{}
	var doctors []interface{}
	var patients []interface{}

	// Doctors: one per specialization, each with a distinct pricing model.
	for i, spec := range specializations {
		id := uuid.New().String()
		profiles = append(profiles, models.Profile{
			ID:           id,
			FullName:     fmt.Sprintf("Dr. Seed %d", i+1),
			Phone:        fmt.Sprintf("066600%04d", i),
			Role:         models.RoleDoctor,
			Wilaya:       "Khenchela",
			Commune:      "Khenchela",
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		})

		doctor := models.Doctor{
			ID:              id,
			Specialization:  spec,
			SessionDuration: 30,
		}
		switch i % 3 {
		case 0:
			doctor.PricingType = models.PricingFixed
			doctor.FixedPrice = 1000
		case 1:
			doctor.PricingType = models.PricingVariable
			doctor.PriceRangeMin = 800
			doctor.PriceRangeMax = 2000
		case 2:
			doctor.PricingType = models.PricingMulti
			doctor.SessionTypes = []models.SessionType{
				{Label: "consultation", Price: 1000},
				{Label: "suivi", Price: 500},
			}
		}
		doctors = append(doctors, doctor)
	}

	// Patients: 20 spread within ~12 km of the anchor, so some fall inside
	// and some outside the 10 km broadcast radius.
	for i := 0; i < 20; i++ {
		id := uuid.New().String()
		distanceKm := rand.Float64() * 12
		angle := rand.Float64() * 2 * math.Pi

		// Approximate degree offsets at this latitude.
		lat := centerLat + distanceKm*math.Sin(angle)/111.0
		lon := centerLon + distanceKm*math.Cos(angle)/(111.0*math.Cos(centerLat*math.Pi/180))

		profiles = append(profiles, models.Profile{
			ID:           id,
			FullName:     fmt.Sprintf("Patient Seed %d", i+1),
			Phone:        fmt.Sprintf("055500%04d", i),
			Role:         models.RolePatient,
			Wilaya:       "Khenchela",
			Commune:      "Khenchela",
			Location:     models.NewCoordinate(lat, lon),
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		})
		patients = append(patients, models.Patient{
			ID:        id,
			BloodType: bloodTypes[rand.Intn(len(bloodTypes))],
		})
	}

	if _, err := profileColl.InsertMany(ctx, profiles); err != nil {
		log.Fatalf("Failed to seed profiles: %v", err)
	}
	if _, err := doctorColl.InsertMany(ctx, doctors); err != nil {
		log.Fatalf("Failed to seed doctors: %v", err)
	}
	if _, err := patientColl.InsertMany(ctx, patients); err != nil {
		log.Fatalf("Failed to seed patients: %v", err)
	}

	fmt.Printf("Seeded %d doctors and %d patients around Khenchela\n", len(doctors), len(patients))
}
