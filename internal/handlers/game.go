package handlers

import (
	"net/http"
	"strconv"

	"github.com/IoneseiGabriel/DavaQuiz/internal/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// ListGames godoc
// @Summary      List games
// @Description  Paginated game listing, filterable by status, title and creation/update day
// @Tags         games
// @Produce      json
// @Param        page query int false "Page number" default(0)
// @Param        size query int false "Page size" default(10)
// @Param        status query string false "Exact status match (DRAFT or PUBLISHED)"
// @Param        title query string false "Case-insensitive title substring"
// @Param        createdAt query string false "Creation day, YYYY-MM-DD (UTC)"
// @Param        updatedAt query string false "Update day, YYYY-MM-DD (UTC)"
// @Success      200 {object} services.GamePage
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	page, err := parseIntQuery(c, "page", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page number"})
		return
	}
	size, err := parseIntQuery(c, "size", 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid size number"})
		return
	}

	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	pageResponse, err := h.gameService.ListGames(page, size, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pageResponse)
}

// CreateGame godoc
// @Summary      Create a game
// @Description  Create a game together with all of its questions
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CreateGameRequest true "Game data"
// @Success      201 {object} models.Game
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req services.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	game, err := h.gameService.CreateGame(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// UpdateGameMetadata godoc
// @Summary      Update game metadata
// @Description  Partially update title, description or status. Only the creator may update a game.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Param        request body services.UpdateGameRequest true "Fields to update"
// @Success      200 {object} models.Game
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/games/{id} [patch]
func (h *GameHandler) UpdateGameMetadata(c *gin.Context) {
	userID := c.GetUint("user_id")

	gameID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		return
	}

	var req services.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	game, err := h.gameService.UpdateGameMetadata(uint(gameID), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func parseIntQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
