package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/MedQuest/internal/controller"
	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/lshigami/MedQuest/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	questionService service.QuestionService
	draftService    service.QuestionDraftService
}

func NewAdminQuestionController(qs service.QuestionService, ds service.QuestionDraftService) *AdminQuestionController {
	return &AdminQuestionController{questionService: qs, draftService: ds}
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to the bank
// @Description correct_answer is a zero-based index and must point at one of the options.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.CreateQuestionRequest true "Question fields"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or correct_answer out of range"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /questions [post]
func (ac *AdminQuestionController) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(c, err)
		return
	}
	id, err := ac.questionService.CreateQuestion(req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

// ListAllQuestions godoc
// @Summary (Admin) Whole question bank
// @Description Every active question, newest first, unpaginated.
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuestionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/questions [get]
func (ac *AdminQuestionController) ListAllQuestions(c *gin.Context) {
	questions, err := ac.questionService.ListAllQuestions()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// DeleteQuestion godoc
// @Summary (Admin) Retire a question
// @Description Hides the question from every listing. Past attempts keep counting in analytics. Deleting an unknown or already deleted id succeeds.
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (ac *AdminQuestionController) DeleteQuestion(c *gin.Context) {
	id, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ac.questionService.DeleteQuestion(id); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// DraftQuestion godoc
// @Summary (Admin) Draft a question with Gemini
// @Description Proposes a question for the given specialty and format. Nothing is saved; submit the draft to POST /questions after review.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DraftQuestionRequest true "Specialty and format"
// @Success 200 {object} dto.CreateQuestionRequest
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse "Model answer could not be parsed"
// @Failure 503 {object} dto.ErrorResponse "GEMINI_API_KEY not configured"
// @Router /admin/questions/draft [post]
func (ac *AdminQuestionController) DraftQuestion(c *gin.Context) {
	var req dto.DraftQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(c, err)
		return
	}
	draft, err := ac.draftService.Draft(c.Request.Context(), req)
	if err != nil {
		log.Warn().Err(err).Str("specialty", req.Specialty).Msg("Admin DraftQuestion: service error")
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}
