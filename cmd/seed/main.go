package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"ballroomly/internal/ballrooms"
	"ballroomly/internal/bookings"
	"ballroomly/internal/shared/config"
	"ballroomly/internal/shared/database"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Ballroomly Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"bookings",
		"ballrooms",
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := s.db.PostgreSQL.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return nil
}

// SeedAll seeds demo ballrooms and bookings.
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	ballroomIDs, err := s.SeedBallrooms()
	if err != nil {
		return fmt.Errorf("failed to seed ballrooms: %w", err)
	}

	if err := s.SeedBookings(ballroomIDs); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedBallrooms creates a handful of demo ballrooms.
func (s *Seeder) SeedBallrooms() ([]uint, error) {
	fmt.Println("  🏛️ Seeding ballrooms...")

	ballroomsData := []ballrooms.Ballroom{
		{
			Name:        "Grand Crystal Hall",
			Description: "Our flagship ballroom with crystal chandeliers and a sprung dance floor.",
			Dimensions:  "40m x 25m",
			Capacity:    500,
			IsAvailable: true,
		},
		{
			Name:        "Garden Pavilion",
			Description: "Glass-walled pavilion overlooking the rose garden, ideal for daytime receptions.",
			Dimensions:  "25m x 18m",
			Capacity:    200,
			IsAvailable: true,
		},
		{
			Name:        "Heritage Room",
			Description: "Intimate wood-panelled room for smaller celebrations and corporate dinners.",
			Dimensions:  "15m x 12m",
			Capacity:    80,
			IsAvailable: true,
		},
		{
			Name:        "Skyline Terrace",
			Description: "Rooftop venue with panoramic city views, currently closed for renovation.",
			Dimensions:  "30m x 20m",
			Capacity:    300,
			IsAvailable: false,
		},
	}

	var ids []uint
	for i := range ballroomsData {
		if err := s.db.PostgreSQL.Create(&ballroomsData[i]).Error; err != nil {
			return nil, fmt.Errorf("failed to create ballroom %s: %w", ballroomsData[i].Name, err)
		}
		ids = append(ids, ballroomsData[i].ID)
		fmt.Printf("    ✅ Created ballroom: %s (capacity %d)\n", ballroomsData[i].Name, ballroomsData[i].Capacity)
	}

	return ids, nil
}

// SeedBookings creates demo bookings across the seeded ballrooms.
func (s *Seeder) SeedBookings(ballroomIDs []uint) error {
	fmt.Println("  📅 Seeding bookings...")

	now := time.Now()
	bookingsData := []bookings.Booking{
		{
			BallroomID:      ballroomIDs[0],
			CustomerName:    "Priya Sharma",
			CustomerEmail:   "priya.sharma@example.com",
			CustomerPhone:   "+91 98765 43210",
			EventDate:       now.AddDate(0, 1, 0),
			EventType:       "Wedding Reception",
			GuestCount:      350,
			SpecialRequests: "Vegetarian catering only, stage for live band.",
			Status:          bookings.StatusConfirmed,
		},
		{
			BallroomID:      ballroomIDs[1],
			CustomerName:    "Daniel Okafor",
			CustomerEmail:   "d.okafor@example.com",
			CustomerPhone:   "+44 7700 900123",
			EventDate:       now.AddDate(0, 0, 14),
			EventType:       "Product Launch",
			GuestCount:      120,
			SpecialRequests: "Projector and PA system required.",
			Status:          bookings.StatusPending,
		},
		{
			BallroomID:      ballroomIDs[2],
			CustomerName:    "Elena Petrova",
			CustomerEmail:   "elena.petrova@example.com",
			CustomerPhone:   "+7 912 345 6789",
			EventDate:       now.AddDate(0, 2, 5),
			EventType:       "Anniversary Dinner",
			GuestCount:      60,
			Status:          bookings.StatusPending,
		},
	}

	for i := range bookingsData {
		if err := s.db.PostgreSQL.Create(&bookingsData[i]).Error; err != nil {
			return fmt.Errorf("failed to create booking for %s: %w", bookingsData[i].CustomerName, err)
		}
		fmt.Printf("    ✅ Created booking: %s (%s, %d guests)\n",
			bookingsData[i].CustomerName, bookingsData[i].EventType, bookingsData[i].GuestCount)
	}

	return nil
}
