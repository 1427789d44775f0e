package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saramhq/aegis/pkg/generators"
)

// handleFAQGenerate serves POST /ai/faq/generate.
func (s *Server) handleFAQGenerate(c *gin.Context) {
	var req generators.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, "invalid JSON body: "+err.Error())
		return
	}
	result, err := s.deps.FAQ.Generate(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type faqBatchRequest struct {
	Items []generators.FAQRequest `json:"items"`
}

// handleFAQGenerateBatch serves POST /ai/faq/generate/batch. Item failures
// are reported per item; the batch itself is always 200.
func (s *Server) handleFAQGenerateBatch(c *gin.Context) {
	var req faqBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, "invalid JSON body: "+err.Error())
		return
	}
	if len(req.Items) == 0 {
		failValidation(c, "items are required")
		return
	}
	items := s.deps.FAQ.GenerateBatch(c.Request.Context(), req.Items)
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// handleQuizGenerate serves POST /ai/quiz/generate.
func (s *Server) handleQuizGenerate(c *gin.Context) {
	var req generators.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, "invalid JSON body: "+err.Error())
		return
	}
	result, err := s.deps.Quiz.Generate(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type gapRequest struct {
	Questions []generators.GapQuestion `json:"questions"`
}

// handleGapSuggestions serves POST /ai/gap/policy-edu/suggestions.
func (s *Server) handleGapSuggestions(c *gin.Context) {
	var req gapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, "invalid JSON body: "+err.Error())
		return
	}
	if len(req.Questions) == 0 {
		failValidation(c, "questions are required")
		return
	}
	result, err := s.deps.Gap.Suggest(c.Request.Context(), req.Questions)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
