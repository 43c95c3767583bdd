package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"rentguide/internal/database"
	"rentguide/internal/listing"
	"rentguide/internal/qa"
	"rentguide/internal/review"
)

// Seeds a local database with demo community content so the frontend has
// something to show on a fresh checkout.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "database.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Msg("cleaning old data")
	db.Exec("DELETE FROM answers")
	db.Exec("DELETE FROM questions")
	db.Exec("DELETE FROM rent_reviews")
	db.Exec("DELETE FROM property_listings")
	db.Exec("DELETE FROM saved_listings")

	reviews := []review.RentReview{
		{City: "Bengaluru", ReviewText: "Koramangala is lively but pricey. Worth it for the food scene.", Rating: 4, Likes: 12},
		{City: "Bengaluru", ReviewText: "Traffic on Outer Ring Road eats an hour of your day. Rent accordingly.", Rating: 3, Likes: 7},
		{City: "Hyderabad", ReviewText: "Gachibowli has great value flats near the tech parks.", Rating: 5, Likes: 9},
		{City: "Chennai", ReviewText: "Coastal humidity is real. Pick a place with good ventilation.", Rating: 4, Likes: 3},
	}
	for i := range reviews {
		if err := db.Create(&reviews[i]).Error; err != nil {
			log.Fatal().Err(err).Msg("seeding reviews failed")
		}
	}

	questions := []qa.Question{
		{Text: "Is a broker mandatory in Bengaluru or can I rent directly?", UserName: "Anonymous", Upvotes: 5},
		{Text: "How much deposit is normal in Hyderabad?", UserName: "Priya", Upvotes: 8},
	}
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			log.Fatal().Err(err).Msg("seeding questions failed")
		}
	}

	answers := []qa.Answer{
		{QuestionID: questions[0].ID, Text: "Plenty of owner-direct listings exist, check society notice boards.", UserName: "Community Member", IsVerified: true},
		{QuestionID: questions[1].ID, Text: "Usually 2-3 months, unlike Bengaluru's 5-10.", UserName: "Ravi", IsVerified: false},
	}
	for i := range answers {
		if err := db.Create(&answers[i]).Error; err != nil {
			log.Fatal().Err(err).Msg("seeding answers failed")
		}
	}

	demoListing := listing.PropertyListing{
		OwnerName: "Demo Owner",
		Contact:   "demo@rentguide.local",
		Type:      listing.TypeFlat,
		City:      "Bengaluru",
		Area:      "HSR Layout",
		Status:    listing.StatusPending,
	}
	if err := db.Create(&demoListing).Error; err != nil {
		log.Fatal().Err(err).Msg("seeding listings failed")
	}

	log.Info().
		Int("reviews", len(reviews)).
		Int("questions", len(questions)).
		Int("answers", len(answers)).
		Msg("seed complete")
}
