package dto

// CourseRequest creates or updates a course fee template. The two
// derived fields (totalAnnualFees, netAnnualFeePayable) are computed
// server-side and ignored if supplied.
type CourseRequest struct {
	Qualification                   string  `json:"qualification" binding:"required" example:"B.Tech"`
	CourseName                      string  `json:"courseName" binding:"required" example:"Computer Science"`
	Duration                        int     `json:"duration" binding:"required,gt=0" example:"4"`
	TotalAnnualTuitionFee           float64 `json:"totalAnnualTuitionFee" binding:"gte=0"`
	HostelMessAndOtherFees          float64 `json:"hostelMessAndOtherFees" binding:"gte=0"`
	SpecialScholarshipFromInstitute float64 `json:"specialScholarshipFromInstitute" binding:"gte=0"`
	MUPresidentsSpecialScholarship  float64 `json:"MUPresidentsSpecialScholarship" binding:"gte=0"`
}
