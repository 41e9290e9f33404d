package seed

import (
	"fmt"
	"log"

	"gameshelf/internal/models"

	"gorm.io/gorm"
)

// gameFixture references its genre and developer by name; the ids are
// resolved in memory after the reference rows are inserted.
type gameFixture struct {
	Title         string
	Description   string
	GenreName     string
	DeveloperName string
	Platform      string
	ReleaseYear   *int
	Status        models.GameStatus
	PricePaid     *float64
}

// Run wipes and repopulates the three tables with the fixed sample data.
// Deletes run child-first (games, developers, genres) to respect the
// foreign keys.
func Run(db *gorm.DB) error {
	log.Println("Reset data.")

	if err := db.Exec("DELETE FROM games").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM developers").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM genres").Error; err != nil {
		return err
	}

	log.Println("Genre data.")

	genres := genreFixtures()
	if err := db.Create(&genres).Error; err != nil {
		return err
	}
	genreIDByName := make(map[string]uint, len(genres))
	for _, g := range genres {
		genreIDByName[g.Name] = g.ID
	}

	log.Println("Developer data.")

	developers := developerFixtures()
	if err := db.Create(&developers).Error; err != nil {
		return err
	}
	developerIDByName := make(map[string]uint, len(developers))
	for _, d := range developers {
		developerIDByName[d.Name] = d.ID
	}

	log.Println("Game data.")

	for _, fixture := range gameFixtures() {
		genreID, ok := genreIDByName[fixture.GenreName]
		if !ok {
			return fmt.Errorf("genre not found for game %q: %s", fixture.Title, fixture.GenreName)
		}

		var developerID *uint
		if fixture.DeveloperName != "" {
			id, ok := developerIDByName[fixture.DeveloperName]
			if !ok {
				return fmt.Errorf("developer not found for game %q: %s", fixture.Title, fixture.DeveloperName)
			}
			developerID = &id
		}

		description := fixture.Description
		game := models.Game{
			Title:       fixture.Title,
			Description: &description,
			GenreID:     genreID,
			DeveloperID: developerID,
			Platform:    fixture.Platform,
			ReleaseYear: fixture.ReleaseYear,
			Status:      fixture.Status,
			PricePaid:   fixture.PricePaid,
		}
		if err := db.Create(&game).Error; err != nil {
			return err
		}
	}

	log.Println("Seed complete.")
	return nil
}

func genreFixtures() []models.Genre {
	return []models.Genre{
		{Name: "Action", Description: "Fast-paced games focused on combat or reflexes."},
		{Name: "RPG", Description: "Character progression, stories, and builds."},
		{Name: "JRPG", Description: "Japanese-style role-playing games."},
		{Name: "Adventure", Description: "Story-driven exploration and quests."},
		{Name: "Strategy", Description: "Tactics, planning, and long-term decisions."},
		{Name: "Simulation", Description: "Simulating systems, worlds, or daily life."},
		{Name: "Indie", Description: "Independent games with unique ideas."},
		{Name: "Roguelike", Description: "Randomized runs with permadeath elements."},
		{Name: "Soulslike", Description: "Challenging action RPGs inspired by Dark Souls."},
		{Name: "Metroidvania", Description: "Exploration-heavy platformers with ability gating."},
	}
}

func developerFixtures() []models.Developer {
	return []models.Developer{
		{Name: "FromSoftware", Website: ptr("https://www.fromsoftware.jp"), Country: ptr("Japan")},
		{Name: "Nintendo", Website: ptr("https://www.nintendo.com"), Country: ptr("Japan")},
		{Name: "CD Projekt Red", Website: ptr("https://cdprojektred.com"), Country: ptr("Poland")},
		{Name: "ConcernedApe", Website: ptr("https://www.concernedape.com"), Country: ptr("USA")},
		{Name: "Supergiant Games", Website: ptr("https://www.supergiantgames.com"), Country: ptr("USA")},
		{Name: "Larian Studios", Website: ptr("https://larian.com"), Country: ptr("Belgium")},
		{Name: "Valve", Website: ptr("https://www.valvesoftware.com"), Country: ptr("USA")},
		{Name: "Team Cherry", Website: ptr("https://www.teamcherry.com.au"), Country: ptr("Australia")},
		{Name: "Hello Games", Website: ptr("https://www.nomanssky.com"), Country: ptr("UK")},
		{Name: "Mojang Studios", Website: ptr("https://www.minecraft.net"), Country: ptr("Sweden")},
		{Name: "Atlus", Website: ptr("https://atlus.com"), Country: ptr("Japan")},
		{Name: "Square Enix", Website: ptr("https://square-enix-games.com"), Country: ptr("Japan")},
		{Name: "Unknown Indie Dev"},
	}
}

func gameFixtures() []gameFixture {
	return []gameFixture{
		{
			Title:         "Elden Ring",
			Description:   "Open-world Soulslike full of exploration and bosses.",
			GenreName:     "Soulslike",
			DeveloperName: "FromSoftware",
			Platform:      "PC",
			ReleaseYear:   ptr(2022),
			Status:        models.StatusOwned,
			PricePaid:     ptr(59.99),
		},
		{
			Title:         "Dark Souls III",
			Description:   "Challenging action RPG with tight level design.",
			GenreName:     "Soulslike",
			DeveloperName: "FromSoftware",
			Platform:      "PC",
			ReleaseYear:   ptr(2016),
			Status:        models.StatusCompleted,
			PricePaid:     ptr(29.99),
		},
		{
			Title:         "Sekiro: Shadows Die Twice",
			Description:   "Precise, parry-focused action game by FromSoftware.",
			GenreName:     "Soulslike",
			DeveloperName: "FromSoftware",
			Platform:      "PC",
			ReleaseYear:   ptr(2019),
			Status:        models.StatusBacklog,
			PricePaid:     ptr(39.99),
		},
		{
			Title:         "Bloodborne",
			Description:   "Aggressive Gothic Soulslike set in Yharnam.",
			GenreName:     "Soulslike",
			DeveloperName: "FromSoftware",
			Platform:      "PS4",
			ReleaseYear:   ptr(2015),
			Status:        models.StatusBacklog,
			PricePaid:     ptr(19.99),
		},
		{
			Title:         "Hollow Knight",
			Description:   "Atmospheric Metroidvania with tight controls.",
			GenreName:     "Metroidvania",
			DeveloperName: "Team Cherry",
			Platform:      "PC",
			ReleaseYear:   ptr(2017),
			Status:        models.StatusCompleted,
			PricePaid:     ptr(14.99),
		},
		{
			Title:         "Hollow Knight: Silksong",
			Description:   "Upcoming sequel to Hollow Knight (wishlist).",
			GenreName:     "Metroidvania",
			DeveloperName: "Team Cherry",
			Platform:      "PC",
			Status:        models.StatusWishlist,
		},
		{
			Title:         "Celeste",
			Description:   "Precision platformer about climbing a mountain.",
			GenreName:     "Indie",
			DeveloperName: "Unknown Indie Dev",
			Platform:      "PC",
			ReleaseYear:   ptr(2018),
			Status:        models.StatusCompleted,
			PricePaid:     ptr(19.99),
		},
		{
			Title:         "The Witcher 3: Wild Hunt",
			Description:   "Story-rich open-world RPG about Geralt of Rivia.",
			GenreName:     "RPG",
			DeveloperName: "CD Projekt Red",
			Platform:      "PC",
			ReleaseYear:   ptr(2015),
			Status:        models.StatusCompleted,
			PricePaid:     ptr(19.99),
		},
		{
			Title:         "Cyberpunk 2077",
			Description:   "Futuristic open-world RPG in Night City.",
			GenreName:     "RPG",
			DeveloperName: "CD Projekt Red",
			Platform:      "PC",
			ReleaseYear:   ptr(2020),
			Status:        models.StatusOwned,
			PricePaid:     ptr(39.99),
		},
		{
			Title:         "Baldur's Gate 3",
			Description:   "Dice-based RPG with deep choices and party systems.",
			GenreName:     "RPG",
			DeveloperName: "Larian Studios",
			Platform:      "PC",
			ReleaseYear:   ptr(2023),
			Status:        models.StatusBacklog,
			PricePaid:     ptr(59.99),
		},
		{
			Title:         "Hades",
			Description:   "Action roguelike set in the Greek underworld.",
			GenreName:     "Roguelike",
			DeveloperName: "Supergiant Games",
			Platform:      "PC",
			ReleaseYear:   ptr(2020),
			Status:        models.StatusCompleted,
			PricePaid:     ptr(24.99),
		},
		{
			Title:         "Hades II",
			Description:   "Sequel expanding on the Hades formula.",
			GenreName:     "Roguelike",
			DeveloperName: "Supergiant Games",
			Platform:      "PC",
			ReleaseYear:   ptr(2024),
			Status:        models.StatusWishlist,
		},
		{
			Title:         "Stardew Valley",
			Description:   "Farming and life sim in a small town.",
			GenreName:     "Simulation",
			DeveloperName: "ConcernedApe",
			Platform:      "PC",
			ReleaseYear:   ptr(2016),
			Status:        models.StatusCompleted,
			PricePaid:     ptr(14.99),
		},
		{
			Title:         "Minecraft",
			Description:   "Sandbox building and survival in blocky worlds.",
			GenreName:     "Simulation",
			DeveloperName: "Mojang Studios",
			Platform:      "PC",
			ReleaseYear:   ptr(2011),
			Status:        models.StatusOwned,
			PricePaid:     ptr(26.95),
		},
		{
			Title:         "No Man's Sky",
			Description:   "Procedurally generated space exploration game.",
			GenreName:     "Simulation",
			DeveloperName: "Hello Games",
			Platform:      "PC",
			ReleaseYear:   ptr(2016),
			Status:        models.StatusOwned,
			PricePaid:     ptr(19.99),
		},
		{
			Title:         "The Legend of Zelda: Breath of the Wild",
			Description:   "Open-world adventure redefining exploration.",
			GenreName:     "Adventure",
			DeveloperName: "Nintendo",
			Platform:      "Switch",
			ReleaseYear:   ptr(2017),
			Status:        models.StatusCompleted,
			PricePaid:     ptr(59.99),
		},
		{
			Title:         "The Legend of Zelda: Tears of the Kingdom",
			Description:   "Sequel with sky islands and underground exploration.",
			GenreName:     "Adventure",
			DeveloperName: "Nintendo",
			Platform:      "Switch",
			ReleaseYear:   ptr(2023),
			Status:        models.StatusOwned,
			PricePaid:     ptr(69.99),
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
