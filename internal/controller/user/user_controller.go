package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/MedQuest/internal/controller"
	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/lshigami/MedQuest/internal/service"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	userService      service.UserService
	questionService  service.QuestionService
	attemptService   service.AttemptService
	analyticsService service.AnalyticsService
}

func NewUserController(
	us service.UserService,
	qs service.QuestionService,
	as service.AttemptService,
	ans service.AnalyticsService,
) *UserController {
	return &UserController{
		userService:      us,
		questionService:  qs,
		attemptService:   as,
		analyticsService: ans,
	}
}

// Me godoc
// @Summary (User) Current account
// @Description Returns the caller's stored profile, including the current subscription status.
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "User no longer exists"
// @Router /me [get]
func (uc *UserController) Me(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	profile, err := uc.userService.Profile(userID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListQuestions godoc
// @Summary (User) Draw a random quiz
// @Description Returns at most `limit` randomly ordered questions, optionally from one specialty. Each call draws afresh.
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param specialty query string false "Specialty filter, e.g. Surgery"
// @Param limit query int false "Maximum number of questions (default 10, max 100)"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse
// @Router /questions [get]
func (uc *UserController) ListQuestions(c *gin.Context) {
	var query dto.ListQuestionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		controller.RespondBindError(c, err)
		return
	}
	questions, err := uc.questionService.ListQuestions(query.Specialty, query.Limit)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// ListSpecialties godoc
// @Summary (User) Specialties in the bank
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 401 {object} dto.ErrorResponse
// @Router /specialties [get]
func (uc *UserController) ListSpecialties(c *gin.Context) {
	specialties, err := uc.questionService.ListSpecialties()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, specialties)
}

// RecordAttempt godoc
// @Summary (User) Record an answer
// @Description Grades the selected option against the stored question and appends an attempt. An is_correct that disagrees with the grade is rejected.
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt body dto.RecordAttemptRequest true "Answered question"
// @Success 200 {object} dto.RecordAttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body, option out of range or correctness mismatch"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /attempts [post]
func (uc *UserController) RecordAttempt(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	var req dto.RecordAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(c, err)
		return
	}
	resp, err := uc.attemptService.RecordAttempt(userID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Analytics godoc
// @Summary (User) Accuracy analytics
// @Description Totals and per-specialty breakdown of the caller's attempts. total_questions counts the whole active bank.
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /analytics [get]
func (uc *UserController) Analytics(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	stats, err := uc.analyticsService.ComputeAnalytics(userID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Subscribe godoc
// @Summary (User) Activate subscription
// @Description Marks the caller's subscription active. No payment is taken; repeating the call is harmless.
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /subscribe [post]
func (uc *UserController) Subscribe(c *gin.Context) {
	userID, ok := controller.CallerID(c)
	if !ok {
		return
	}
	if err := uc.userService.Subscribe(userID); err != nil {
		controller.RespondError(c, err)
		return
	}
	log.Info().Uint("userID", userID).Msg("Subscribe request served")
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
