package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gameshelf/internal/models"
)

// GameForm carries the raw submitted values of the create/edit form so a
// failed validation can echo them back verbatim.
type GameForm struct {
	Title          string `form:"title"`
	Description    string `form:"description"`
	GenreID        string `form:"genre_id"`
	DeveloperID    string `form:"developer_id"`
	Platform       string `form:"platform"`
	ReleaseYear    string `form:"release_year"`
	Status         string `form:"status"`
	PricePaid      string `form:"price_paid"`
	SecretPassword string `form:"secret_password"`
}

// Validate runs every field check and returns the accumulated list of
// failures. Checks are not short-circuited; the user sees all problems
// at once.
func (f *GameForm) Validate() []string {
	var errs []string

	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, "Title is required.")
	}

	if f.GenreID == "" {
		errs = append(errs, "Genre is required.")
	} else if _, err := strconv.ParseUint(f.GenreID, 10, 32); err != nil {
		errs = append(errs, "Genre is required.")
	}

	if f.Platform == "" {
		errs = append(errs, "Platform is required.")
	}

	if f.ReleaseYear != "" {
		currentYear := time.Now().Year()
		year, err := strconv.Atoi(strings.TrimSpace(f.ReleaseYear))
		if err != nil || year < 1970 || year > currentYear {
			errs = append(errs, fmt.Sprintf("Released year must be between 1970 and %d.", currentYear))
		}
	}

	if f.PricePaid != "" {
		price, err := strconv.ParseFloat(strings.TrimSpace(f.PricePaid), 64)
		if err != nil || price < 0 {
			errs = append(errs, "Price paid must be a non-negative number.")
		}
	}

	if f.Status != "" && !models.GameStatus(f.Status).Valid() {
		errs = append(errs, "Status must be one of: owned, completed, backlog, wishlist.")
	}

	return errs
}

// Game converts a validated form into a Game record. Blank optional
// fields become NULLs and a blank status defaults to owned.
func (f *GameForm) Game() models.Game {
	game := models.Game{
		Title:    strings.TrimSpace(f.Title),
		Platform: f.Platform,
		Status:   models.StatusOwned,
	}

	if f.Description != "" {
		description := f.Description
		game.Description = &description
	}

	if id, err := strconv.ParseUint(f.GenreID, 10, 32); err == nil {
		game.GenreID = uint(id)
	}

	if f.DeveloperID != "" {
		if id, err := strconv.ParseUint(f.DeveloperID, 10, 32); err == nil {
			developerID := uint(id)
			game.DeveloperID = &developerID
		}
	}

	if f.ReleaseYear != "" {
		if year, err := strconv.Atoi(strings.TrimSpace(f.ReleaseYear)); err == nil {
			game.ReleaseYear = &year
		}
	}

	if f.Status != "" {
		game.Status = models.GameStatus(f.Status)
	}

	if f.PricePaid != "" {
		if price, err := strconv.ParseFloat(strings.TrimSpace(f.PricePaid), 64); err == nil {
			game.PricePaid = &price
		}
	}

	return game
}

// formFromGame pre-fills the edit form from a stored record.
func formFromGame(game models.Game) GameForm {
	form := GameForm{
		Title:    game.Title,
		GenreID:  strconv.FormatUint(uint64(game.GenreID), 10),
		Platform: game.Platform,
		Status:   string(game.Status),
	}

	if game.Description != nil {
		form.Description = *game.Description
	}
	if game.DeveloperID != nil {
		form.DeveloperID = strconv.FormatUint(uint64(*game.DeveloperID), 10)
	}
	if game.ReleaseYear != nil {
		form.ReleaseYear = strconv.Itoa(*game.ReleaseYear)
	}
	if game.PricePaid != nil {
		form.PricePaid = strconv.FormatFloat(*game.PricePaid, 'f', 2, 64)
	}

	return form
}
