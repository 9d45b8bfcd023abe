package main

import (
	"fmt"
	"log"

	"movie-tinder/config"
	"movie-tinder/internal/model"
	dbPkg "movie-tinder/pkg/db"
)

// Seeds the database with a starter catalog: streaming services and a
// handful of movies so the swipe deck is not empty on first run.
// Safe to run repeatedly, existing titles are skipped.

type seedMovie struct {
	Title       string
	Genre       string
	Rating      string
	Description string
	ReleaseYear int
	IMDBRating  string
	Services    []string
}

var seedServices = []string{
	"Netflix",
	"Hulu",
	"Amazon Prime Video",
	"Disney+",
	"HBO Max",
	"Apple TV+",
	"Peacock",
	"Paramount+",
}

var seedMovies = []seedMovie{
	{"The Shawshank Redemption", "Drama", "R", "Two imprisoned men bond over a number of years, finding solace and eventual redemption.", 1994, "9.3", []string{"Netflix", "HBO Max"}},
	{"Inception", "Sci-Fi", "PG-13", "A thief who steals corporate secrets through dream-sharing technology is given an inverse task.", 2010, "8.8", []string{"Netflix", "Amazon Prime Video"}},
	{"The Dark Knight", "Action", "PG-13", "Batman faces the Joker, a criminal mastermind who wants to plunge Gotham into anarchy.", 2008, "9.0", []string{"HBO Max"}},
	{"Pulp Fiction", "Crime", "R", "The lives of two mob hitmen, a boxer and a pair of diner bandits intertwine.", 1994, "8.9", []string{"Amazon Prime Video"}},
	{"Spirited Away", "Animation", "PG", "A young girl wanders into a world ruled by gods, witches and spirits.", 2001, "8.6", []string{"HBO Max", "Netflix"}},
	{"Parasite", "Thriller", "R", "Greed and class discrimination threaten the symbiotic relationship between two families.", 2019, "8.5", []string{"Hulu"}},
	{"Interstellar", "Sci-Fi", "PG-13", "A team of explorers travel through a wormhole in space to ensure humanity's survival.", 2014, "8.7", []string{"Paramount+", "Amazon Prime Video"}},
	{"The Grand Budapest Hotel", "Comedy", "R", "The adventures of a legendary concierge and his most trusted lobby boy.", 2014, "8.1", []string{"Disney+", "Hulu"}},
	{"Everything Everywhere All at Once", "Sci-Fi", "R", "A laundromat owner is swept into an insane adventure across the multiverse.", 2022, "7.8", []string{"Netflix"}},
	{"Knives Out", "Mystery", "PG-13", "A detective investigates the death of the patriarch of an eccentric family.", 2019, "7.9", []string{"Amazon Prime Video", "Peacock"}},
	{"Soul", "Animation", "PG", "A middle-school band teacher's soul is separated from his body before his big break.", 2020, "8.0", []string{"Disney+"}},
	{"Dune", "Sci-Fi", "PG-13", "A noble family becomes embroiled in a war for the galaxy's most valuable asset.", 2021, "8.0", []string{"HBO Max"}},
	{"CODA", "Drama", "PG-13", "The hearing child of deaf parents is torn between family obligations and her dreams.", 2021, "8.0", []string{"Apple TV+"}},
	{"The Social Network", "Drama", "PG-13", "The founding of Facebook and the lawsuits that followed.", 2010, "7.8", []string{"Netflix", "Amazon Prime Video"}},
	{"Get Out", "Horror", "R", "A young man visits his girlfriend's family estate and uncovers a disturbing secret.", 2017, "7.8", []string{"Peacock", "Hulu"}},
}

func main() {
	cfg := config.LoadConfig()

	db, err := dbPkg.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer dbPkg.CloseDB()

	if err := dbPkg.AutoMigrate(
		&model.Movie{},
		&model.StreamingService{},
		&model.MovieStreamingService{},
	); err != nil {
		log.Fatalf("Auto migration failed: %v", err)
	}

	// Streaming services
	serviceIDs := make(map[string]uint, len(seedServices))
	for _, name := range seedServices {
		var svc model.StreamingService
		if err := db.Where("name = ?", name).First(&svc).Error; err != nil {
			svc = model.StreamingService{Name: name}
			if err := db.Create(&svc).Error; err != nil {
				log.Fatalf("Creating streaming service %q failed: %v", name, err)
			}
			fmt.Printf("Created streaming service: %s\n", name)
		}
		serviceIDs[name] = svc.ID
	}

	// Movies
	created := 0
	for _, m := range seedMovies {
		var existing model.Movie
		if err := db.Where("title = ?", m.Title).First(&existing).Error; err == nil {
			continue
		}

		year := m.ReleaseYear
		movie := model.Movie{
			Title:       m.Title,
			Genre:       m.Genre,
			Rating:      m.Rating,
			Description: m.Description,
			ReleaseYear: &year,
			IMDBRating:  m.IMDBRating,
		}
		if err := db.Create(&movie).Error; err != nil {
			log.Fatalf("Creating movie %q failed: %v", m.Title, err)
		}

		for _, svcName := range m.Services {
			link := model.MovieStreamingService{
				MovieID:            movie.ID,
				StreamingServiceID: serviceIDs[svcName],
			}
			if err := db.Create(&link).Error; err != nil {
				log.Fatalf("Linking %q to %q failed: %v", m.Title, svcName, err)
			}
		}

		fmt.Printf("Created movie: %s (%d)\n", m.Title, m.ReleaseYear)
		created++
	}

	fmt.Printf("\nSeed completed: %d movies created, %d streaming services available\n", created, len(serviceIDs))
}
