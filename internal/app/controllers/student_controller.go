package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yraj/offerdesk/internal/app/models"
	"github.com/yraj/offerdesk/internal/app/models/dto"
	"github.com/yraj/offerdesk/internal/app/services"
	"github.com/yraj/offerdesk/internal/metrics"
	"github.com/yraj/offerdesk/internal/middleware"
	"github.com/yraj/offerdesk/internal/pkg/studentid"
)

// StudentController handles student admission record endpoints
type StudentController struct {
	studentService services.StudentService
	metrics        *metrics.Metrics
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, m *metrics.Metrics) *StudentController {
	return &StudentController{studentService: studentService, metrics: m}
}

func studentFromRequest(req *dto.StudentRequest) *models.Student {
	return &models.Student{
		StudentID:                       req.StudentID,
		StudentName:                     req.StudentName,
		CountryName:                     req.CountryName,
		Qualification:                   req.Qualification,
		CourseOfStudy:                   req.CourseOfStudy,
		Duration:                        req.Duration,
		TotalAnnualTuitionFee:           req.TotalAnnualTuitionFee,
		HostelMessAndOtherFees:          req.HostelMessAndOtherFees,
		TotalAnnualFees:                 req.TotalAnnualFees,
		SpecialScholarshipFromInstitute: req.SpecialScholarshipFromInstitute,
		MUPresidentsSpecialScholarship:  req.MUPresidentsSpecialScholarship,
		NetAnnualFeePayable:             req.NetAnnualFeePayable,
	}
}

// GetNextStudentID computes the next identifier in the series
// @Summary Get the next student ID
// @Description Computes the next academic-year scoped identifier; nothing is persisted until the student is created
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.NextIDResponse} "Next ID computed"
// @Failure 500 {object} dto.ErrorResponse "Stored last ID is malformed"
// @Router /students/next-id [get]
func (c *StudentController) GetNextStudentID(ctx *gin.Context) {
	now := time.Now()
	id, err := c.studentService.NextStudentID(ctx, now)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NextIDResponse{
			StudentID:    id.String(),
			AcademicYear: studentid.AcademicYear(now),
		},
		Timestamp: time.Now(),
	})
}

// GetHighestStudent returns the record with the highest identifier
// @Summary Get the student with the highest ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 404 {object} dto.ErrorResponse "No students exist"
// @Router /students/highest [get]
func (c *StudentController) GetHighestStudent(ctx *gin.Context) {
	student, err := c.studentService.GetHighestStudent(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student, Timestamp: time.Now()})
}

// CreateStudent creates a student admission record
// @Summary Create a student
// @Description Persists the admission record and advances the last issued ID
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Student ID already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student := studentFromRequest(&req)
	id, err := c.studentService.CreateStudent(ctx, student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.metrics.RecordStudentIDIssued()

	student.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: student, Timestamp: time.Now()})
}

// GetStudentByID retrieves a student record
// @Summary Get student details
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student, Timestamp: time.Now()})
}

// GetAllStudents lists all student records
// @Summary Get all students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: students, Timestamp: time.Now()})
}

// UpdateStudent updates a student record
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Param request body dto.StudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student ID already exists"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student record ID").WithDetails("Student record ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student := studentFromRequest(&req)
	student.ID = id
	if err := c.studentService.UpdateStudent(ctx, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student, Timestamp: time.Now()})
}

// DeleteStudent deletes a student record
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Success 200 {object} dto.SuccessResponse "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student record ID").WithDetails("Student record ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}
