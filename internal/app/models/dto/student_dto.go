package dto

// StudentRequest creates or updates a student admission record. The
// studentId is issued beforehand via the next-id endpoint and comes
// back with the submitted form; fee fields arrive pre-filled from the
// course snapshot but are independently editable.
type StudentRequest struct {
	StudentID                       string  `json:"studentId" binding:"required,studentid"`
	StudentName                     string  `json:"studentName" binding:"required"`
	CountryName                     string  `json:"countryName" binding:"required"`
	Qualification                   string  `json:"qualification" binding:"required"`
	CourseOfStudy                   string  `json:"courseOfStudy" binding:"required"`
	Duration                        int     `json:"duration" binding:"required,gt=0"`
	TotalAnnualTuitionFee           float64 `json:"totalAnnualTuitionFee" binding:"gte=0"`
	HostelMessAndOtherFees          float64 `json:"hostelMessAndOtherFees" binding:"gte=0"`
	TotalAnnualFees                 float64 `json:"totalAnnualFees" binding:"gte=0"`
	SpecialScholarshipFromInstitute float64 `json:"specialScholarshipFromInstitute" binding:"gte=0"`
	MUPresidentsSpecialScholarship  float64 `json:"MUPresidentsSpecialScholarship" binding:"gte=0"`
	NetAnnualFeePayable             float64 `json:"netAnnualFeePayable"`
}

// NextIDResponse returns the next identifier in the academic-year
// series. Nothing is persisted until the student record is created.
type NextIDResponse struct {
	StudentID    string `json:"studentId" example:"INT/INT-KV/2024-25/046"`
	AcademicYear string `json:"academicYear" example:"2024-25"`
}

// FeePreviewResponse carries a course's fee snapshot for pre-filling
// the add-student form.
type FeePreviewResponse struct {
	CourseName                      string  `json:"courseName"`
	Duration                        int     `json:"duration"`
	TotalAnnualTuitionFee           float64 `json:"totalAnnualTuitionFee"`
	HostelMessAndOtherFees          float64 `json:"hostelMessAndOtherFees"`
	TotalAnnualFees                 float64 `json:"totalAnnualFees"`
	SpecialScholarshipFromInstitute float64 `json:"specialScholarshipFromInstitute"`
	MUPresidentsSpecialScholarship  float64 `json:"MUPresidentsSpecialScholarship"`
	NetAnnualFeePayable             float64 `json:"netAnnualFeePayable"`
}
