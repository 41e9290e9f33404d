package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gameshelf/internal/auth"
	"gameshelf/internal/database"
	"gameshelf/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Home renders the landing page.
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title": "GameShelf",
	})
}

// ListGames renders every game with its genre and developer inlined,
// ordered by title. The collection is small enough that there is no
// pagination.
func ListGames(c *gin.Context) {
	var games []models.Game
	err := database.DB.Preload("Genre").Preload("Developer").
		Order("title ASC").Find(&games).Error
	if err != nil {
		serverError(c)
		return
	}

	c.HTML(http.StatusOK, "game_list.html", gin.H{
		"Title": "View games",
		"Games": games,
	})
}

// GameDetail renders a single joined row. A non-numeric or unknown id
// silently falls back to the list view.
func GameDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/games")
		return
	}

	var game models.Game
	err = database.DB.Preload("Genre").Preload("Developer").First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Redirect(http.StatusFound, "/games")
		return
	}
	if err != nil {
		serverError(c)
		return
	}

	c.HTML(http.StatusOK, "game_detail.html", gin.H{
		"Title": game.Title,
		"Game":  &game,
	})
}

// NewGame renders an empty create form with the reference lists.
func NewGame(c *gin.Context) {
	genres, developers, ok := loadReferenceLists(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "game_form.html", gin.H{
		"Title":      "Add a new game",
		"Form":       GameForm{},
		"Genres":     genres,
		"Developers": developers,
		"Statuses":   models.GameStatuses(),
		"Action":     "/games/create",
		"IsEdit":     false,
		"Errors":     []string{},
	})
}

// CreateGame validates the submission and inserts a new game. On any
// validation failure the form is re-rendered with the submitted values
// and the full error list.
func CreateGame(c *gin.Context) {
	var form GameForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad request.")
		return
	}

	formErrors := form.Validate()

	genres, developers, ok := loadReferenceLists(c)
	if !ok {
		return
	}

	if len(formErrors) > 0 {
		c.HTML(http.StatusOK, "game_form.html", gin.H{
			"Title":      "Add a new game",
			"Form":       form,
			"Genres":     genres,
			"Developers": developers,
			"Statuses":   models.GameStatuses(),
			"Action":     "/games/create",
			"IsEdit":     false,
			"Errors":     formErrors,
		})
		return
	}

	game := form.Game()
	if err := database.DB.Omit(clause.Associations).Create(&game).Error; err != nil {
		serverError(c)
		return
	}

	c.Redirect(http.StatusFound, "/games")
}

// EditGame renders the form pre-filled from the stored record.
func EditGame(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/games")
		return
	}

	var game models.Game
	err = database.DB.First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Redirect(http.StatusFound, "/games")
		return
	}
	if err != nil {
		serverError(c)
		return
	}

	genres, developers, ok := loadReferenceLists(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "game_form.html", gin.H{
		"Title":      "Edit " + game.Title,
		"Form":       formFromGame(game),
		"Genres":     genres,
		"Developers": developers,
		"Statuses":   models.GameStatuses(),
		"Action":     fmt.Sprintf("/games/%d/edit", id),
		"IsEdit":     true,
		"Errors":     []string{},
	})
}

// UpdateGame validates the submission plus the admin secret, then updates
// every mutable column by id. The wrong secret joins the error list like
// any field failure and nothing is written.
func UpdateGame(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/games")
		return
	}

	var form GameForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad request.")
		return
	}

	formErrors := form.Validate()
	if !auth.CheckAdminSecret(form.SecretPassword) {
		formErrors = append(formErrors, "Invalid admin password.")
	}

	genres, developers, ok := loadReferenceLists(c)
	if !ok {
		return
	}

	if len(formErrors) > 0 {
		form.SecretPassword = "" // never echo the password back
		c.HTML(http.StatusOK, "game_form.html", gin.H{
			"Title":      "Edit " + form.Title,
			"Form":       form,
			"Genres":     genres,
			"Developers": developers,
			"Statuses":   models.GameStatuses(),
			"Action":     fmt.Sprintf("/games/%d/edit", id),
			"IsEdit":     true,
			"Errors":     formErrors,
		})
		return
	}

	game := form.Game()
	updates := map[string]interface{}{
		"title":        game.Title,
		"description":  game.Description,
		"genre_id":     game.GenreID,
		"developer_id": game.DeveloperID,
		"platform":     game.Platform,
		"release_year": game.ReleaseYear,
		"status":       game.Status,
		"price_paid":   game.PricePaid,
	}
	if err := database.DB.Model(&models.Game{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		serverError(c)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/games/%d", id))
}

// DeleteGame removes a game after checking the admin secret. The joined
// row is fetched first so a failed check can re-render the detail view;
// the detail page is public anyway, so this reveals nothing new.
func DeleteGame(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/games")
		return
	}

	var game models.Game
	err = database.DB.Preload("Genre").Preload("Developer").First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.HTML(http.StatusOK, "game_detail.html", gin.H{
			"Title":    "Game not found",
			"MsgError": "Sorry, the game you're looking for is not in our database.",
		})
		return
	}
	if err != nil {
		serverError(c)
		return
	}

	if !auth.CheckAdminSecret(c.PostForm("secret_password")) {
		c.HTML(http.StatusOK, "game_detail.html", gin.H{
			"Title":    game.Title,
			"Game":     &game,
			"MsgError": "Invalid password.",
		})
		return
	}

	if err := database.DB.Delete(&models.Game{}, id).Error; err != nil {
		serverError(c)
		return
	}

	c.Redirect(http.StatusFound, "/games")
}

// loadReferenceLists fetches the genre and developer select options,
// ordered by name. On a database failure it writes the error response
// itself and returns ok=false.
func loadReferenceLists(c *gin.Context) ([]models.Genre, []models.Developer, bool) {
	var genres []models.Genre
	if err := database.DB.Order("name ASC").Find(&genres).Error; err != nil {
		serverError(c)
		return nil, nil, false
	}

	var developers []models.Developer
	if err := database.DB.Order("name ASC").Find(&developers).Error; err != nil {
		serverError(c)
		return nil, nil, false
	}

	return genres, developers, true
}

func serverError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "Something went wrong.")
}
