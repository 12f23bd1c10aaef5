package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/service"
)

type EmployerHandler struct {
	employerService service.EmployerService
	tokens          *service.TokenService
}

func NewEmployerHandler(employerService service.EmployerService, tokens *service.TokenService) *EmployerHandler {
	return &EmployerHandler{
		employerService: employerService,
		tokens:          tokens,
	}
}

// Register handles POST /api/employer/register.
func (h *EmployerHandler) Register(c *gin.Context) {
	var employer domain.Employer
	if err := c.ShouldBindJSON(&employer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	registered, err := h.employerService.Register(c.Request.Context(), &employer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, registered)
}

// Login handles POST /api/employer/login. An empty result map from the
// service means the credentials did not match; that is a 401, not an error.
func (h *EmployerHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := h.employerService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(response) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if id, ok := response["id"].(int64); ok {
		if token, err := h.tokens.Issue(id, domain.RoleEmployer); err == nil {
			response["token"] = token
		}
	}
	c.JSON(http.StatusOK, response)
}

// UpdatePassword handles PUT /api/employer/forgot-password.
func (h *EmployerHandler) UpdatePassword(c *gin.Context) {
	var req passwordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.employerService.UpdatePassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"message": "Email not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// CheckEmail handles GET /api/employer/update-email?email=...
func (h *EmployerHandler) CheckEmail(c *gin.Context) {
	exists, err := h.employerService.EmailExists(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// GetProfile handles GET /api/employer/emp-profile/:id.
func (h *EmployerHandler) GetProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	employer, err := h.employerService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, employer)
}

// UpdateProfile handles PUT /api/employer/update-employee-profile/:id.
func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var employer domain.Employer
	if err := c.ShouldBindJSON(&employer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.employerService.UpdateProfile(c.Request.Context(), id, &employer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PostJob handles POST /api/employer/post-jobs/:id where :id is the owning
// employer.
func (h *EmployerHandler) PostJob(c *gin.Context) {
	employerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var posting domain.JobPosting
	if err := c.ShouldBindJSON(&posting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	posting.EmployerID = employerID

	saved, err := h.employerService.SaveJobPosting(c.Request.Context(), &posting)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// ListJobPostings handles GET /api/jobseeker/list-jobpostings/:page/:size.
func (h *EmployerHandler) ListJobPostings(c *gin.Context) {
	page, ok := pathID(c, "page")
	if !ok {
		return
	}
	size, ok := pathID(c, "size")
	if !ok {
		return
	}

	postings, totalCount, err := h.employerService.PaginatedJobPostings(c.Request.Context(), int(page), int(size))
	if err != nil {
		writeError(c, err)
		return
	}
	if postings == nil {
		postings = []*domain.JobPosting{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       postings,
		"totalCount": totalCount,
	})
}

// ViewJobPostings handles GET /api/employer/view-jobpostings/:id.
func (h *EmployerHandler) ViewJobPostings(c *gin.Context) {
	employerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	postings, err := h.employerService.JobPostingsByEmployer(c.Request.Context(), employerID)
	if err != nil {
		writeError(c, err)
		return
	}
	if postings == nil {
		postings = []*domain.JobPosting{}
	}
	c.JSON(http.StatusOK, postings)
}

// UpdateJobPosting handles PUT /api/employer/update-jobposting/:id.
func (h *EmployerHandler) UpdateJobPosting(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var posting domain.JobPosting
	if err := c.ShouldBindJSON(&posting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.employerService.UpdateJobPosting(c.Request.Context(), id, &posting)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteJobPosting handles DELETE /api/delete-jobposting/:id. Applications
// referencing the posting go first; a missing posting is a 404 even though
// the cleanup already ran.
func (h *EmployerHandler) DeleteJobPosting(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.employerService.DeleteJobPosting(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplicantCount handles GET /api/employer/applied-counts/:jobPostingId.
func (h *EmployerHandler) ApplicantCount(c *gin.Context) {
	jobPostingID, ok := pathID(c, "jobPostingId")
	if !ok {
		return
	}

	count, err := h.employerService.ApplicantCount(c.Request.Context(), jobPostingID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ResumesByJobPosting handles GET /api/employer/resume-details/:jobPostingId.
func (h *EmployerHandler) ResumesByJobPosting(c *gin.Context) {
	jobPostingID, ok := pathID(c, "jobPostingId")
	if !ok {
		return
	}

	resumes, err := h.employerService.ResumesByJobPosting(c.Request.Context(), jobPostingID)
	if err != nil {
		writeError(c, err)
		return
	}
	if resumes == nil {
		resumes = []*domain.Resume{}
	}
	c.JSON(http.StatusOK, resumes)
}

// ApplicationsByJobPosting handles GET /api/employer/application-details/:jobPostingId.
func (h *EmployerHandler) ApplicationsByJobPosting(c *gin.Context) {
	jobPostingID, ok := pathID(c, "jobPostingId")
	if !ok {
		return
	}

	applications, err := h.employerService.ApplicationsByJobPosting(c.Request.Context(), jobPostingID)
	if err != nil {
		writeError(c, err)
		return
	}
	if applications == nil {
		applications = []*domain.Application{}
	}
	c.JSON(http.StatusOK, applications)
}

// UpdateApplication handles PUT /api/employer/update-application/:id, the
// call that actually sets the application status. Notifying the seeker is a
// separate Shortlist call.
func (h *EmployerHandler) UpdateApplication(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var application domain.Application
	if err := c.ShouldBindJSON(&application); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.employerService.UpdateApplication(c.Request.Context(), id, &application)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Shortlist handles POST /api/applications/:jobPostingId/:jobSeekerId/:applicationId.
func (h *EmployerHandler) Shortlist(c *gin.Context) {
	jobPostingID, ok := pathID(c, "jobPostingId")
	if !ok {
		return
	}
	jobSeekerID, ok := pathID(c, "jobSeekerId")
	if !ok {
		return
	}
	applicationID, ok := pathID(c, "applicationId")
	if !ok {
		return
	}

	if err := h.employerService.Shortlist(c.Request.Context(), jobPostingID, jobSeekerID, applicationID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification sent"})
}
