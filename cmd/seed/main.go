// Command main runs the database seeder for Creel.
package main

import (
	"flag"
	"log"

	"creel/internal/bootstrap"
	"creel/internal/config"
	"creel/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numCatches := flag.Int("catches", 150, "Number of catches to create")
	numSpots := flag.Int("spots", 40, "Number of fishing spots to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d catches, %d spots, clean=%v\n",
		*numUsers, *numCatches, *numSpots, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{
		RunSeed: true,
		Seed: seed.Options{
			NumUsers:    *numUsers,
			NumCatches:  *numCatches,
			NumSpots:    *numSpots,
			ShouldClean: *shouldClean,
		},
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
