package handlers

import (
	"net/http"
	"strconv"

	"github.com/IoneseiGabriel/DavaQuiz/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	gameService *services.GameService
}

func NewQuestionHandler(gameService *services.GameService) *QuestionHandler {
	return &QuestionHandler{gameService: gameService}
}

// CreateQuestion godoc
// @Summary      Add a question to a draft game
// @Description  Attach a question to a game. The game must exist, be in DRAFT and belong to the caller.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Param        request body services.QuestionInput true "Question data"
// @Success      201 {object} models.Question
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/games/{id}/questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	userID := c.GetUint("user_id")

	gameID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		return
	}

	var input services.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.gameService.AddQuestion(uint(gameID), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}
