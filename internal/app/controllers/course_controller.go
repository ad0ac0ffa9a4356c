package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yraj/offerdesk/internal/app/models"
	"github.com/yraj/offerdesk/internal/app/models/dto"
	"github.com/yraj/offerdesk/internal/app/services"
	"github.com/yraj/offerdesk/internal/middleware"
)

// CourseController handles course template endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

func courseFromRequest(req *dto.CourseRequest) *models.Course {
	return &models.Course{
		Qualification:                   req.Qualification,
		CourseName:                      req.CourseName,
		Duration:                        req.Duration,
		TotalAnnualTuitionFee:           req.TotalAnnualTuitionFee,
		HostelMessAndOtherFees:          req.HostelMessAndOtherFees,
		SpecialScholarshipFromInstitute: req.SpecialScholarshipFromInstitute,
		MUPresidentsSpecialScholarship:  req.MUPresidentsSpecialScholarship,
	}
}

// CreateCourse handles course template creation
// @Summary Create a course template
// @Description Creates a course fee template; derived fee fields are computed server-side
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Course already exists"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course := courseFromRequest(&req)
	id, err := c.courseService.CreateCourse(ctx, course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: course, Timestamp: time.Now()})
}

// GetCourseByID retrieves a course template
// @Summary Get course details
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID").WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course, Timestamp: time.Now()})
}

// GetAllCourses lists all course templates
// @Summary Get all courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: courses, Timestamp: time.Now()})
}

// GetFeePreview returns a course's fee snapshot by course name,
// pre-filling the add-student form when a course is selected.
// @Summary Preview fee snapshot for a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param name query string true "Course name"
// @Success 200 {object} dto.APIResponse{data=dto.FeePreviewResponse} "Snapshot retrieved"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/fee-preview [get]
func (c *CourseController) GetFeePreview(ctx *gin.Context) {
	name := ctx.Query("name")
	course, err := c.courseService.GetCourseByName(ctx, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	snap := course.Snapshot()
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FeePreviewResponse{
			CourseName:                      course.CourseName,
			Duration:                        snap.Duration,
			TotalAnnualTuitionFee:           snap.TotalAnnualTuitionFee,
			HostelMessAndOtherFees:          snap.HostelMessAndOtherFees,
			TotalAnnualFees:                 snap.TotalAnnualFees,
			SpecialScholarshipFromInstitute: snap.SpecialScholarshipFromInstitute,
			MUPresidentsSpecialScholarship:  snap.MUPresidentsSpecialScholarship,
			NetAnnualFeePayable:             snap.NetAnnualFeePayable,
		},
		Timestamp: time.Now(),
	})
}

// UpdateCourse updates a course template
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CourseRequest true "Updated course information"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID").WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course := courseFromRequest(&req)
	course.ID = id
	if err := c.courseService.UpdateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course, Timestamp: time.Now()})
}

// DeleteCourse deletes a course template
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.SuccessResponse "Course deleted"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID").WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Course deleted successfully"})
}
