package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yraj/offerdesk/internal/app/models/dto"
	"github.com/yraj/offerdesk/internal/app/services"
	"github.com/yraj/offerdesk/internal/metrics"
	"github.com/yraj/offerdesk/internal/middleware"
)

// LetterController handles offer letter generation endpoints
type LetterController struct {
	letterService  services.LetterService
	studentService services.StudentService
	metrics        *metrics.Metrics
}

// NewLetterController creates a new LetterController
func NewLetterController(
	letterService services.LetterService,
	studentService services.StudentService,
	m *metrics.Metrics,
) *LetterController {
	return &LetterController{
		letterService:  letterService,
		studentService: studentService,
		metrics:        m,
	}
}

// GenerateOfferLetter renders and streams the offer letter PDF
// @Summary Generate an offer letter
// @Description Renders the student's offer letter and streams it as an A4 PDF with a watermark
// @Tags letters
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Success 200 {file} binary "Offer letter PDF"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Document generation failed"
// @Failure 504 {object} dto.ErrorResponse "Document generation timed out"
// @Router /students/{id}/offer-letter [post]
func (c *LetterController) GenerateOfferLetter(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student record ID").WithDetails("Student record ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	start := time.Now()
	pdf, filename, err := c.letterService.GenerateForStudent(ctx, student)
	if err != nil {
		c.metrics.RecordLetter("error", time.Since(start).Seconds(), 0)
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.metrics.RecordLetter("success", time.Since(start).Seconds(), len(pdf))

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
