package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/service"
)

type JobSeekerHandler struct {
	seekerService service.JobSeekerService
	tokens        *service.TokenService
}

func NewJobSeekerHandler(seekerService service.JobSeekerService, tokens *service.TokenService) *JobSeekerHandler {
	return &JobSeekerHandler{
		seekerService: seekerService,
		tokens:        tokens,
	}
}

// Register handles POST /api/jobseeker/register.
func (h *JobSeekerHandler) Register(c *gin.Context) {
	var seeker domain.JobSeeker
	if err := c.ShouldBindJSON(&seeker); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	registered, err := h.seekerService.Register(c.Request.Context(), &seeker)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, registered)
}

// Login handles POST /api/jobseeker/frontpage.
func (h *JobSeekerHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := h.seekerService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(response) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if id, ok := response["id"].(int64); ok {
		if token, err := h.tokens.Issue(id, domain.RoleJobSeeker); err == nil {
			response["token"] = token
		}
	}
	c.JSON(http.StatusOK, response)
}

// UpdatePassword handles PUT /api/jobseeker/forgot-password.
func (h *JobSeekerHandler) UpdatePassword(c *gin.Context) {
	var req passwordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.seekerService.UpdatePassword(c.Request.Context(), req.Email, req.Password)
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

// CheckEmail handles GET /api/jobseeker/update-emails?email=...
func (h *JobSeekerHandler) CheckEmail(c *gin.Context) {
	exists, err := h.seekerService.EmailExists(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// GetProfile handles GET /api/jobseeker/view-profile/:id.
func (h *JobSeekerHandler) GetProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	seeker, err := h.seekerService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, seeker)
}

// UpdateProfile handles PUT /api/jobseeker/update-profile/:id.
func (h *JobSeekerHandler) UpdateProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var seeker domain.JobSeeker
	if err := c.ShouldBindJSON(&seeker); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.seekerService.UpdateProfile(c.Request.Context(), id, &seeker)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AddResume handles POST /api/jobseeker/resume/:id where :id is the owning
// seeker.
func (h *JobSeekerHandler) AddResume(c *gin.Context) {
	jobSeekerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var resume domain.Resume
	if err := c.ShouldBindJSON(&resume); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	resume.JobSeekerID = jobSeekerID

	saved, err := h.seekerService.SaveResume(c.Request.Context(), &resume)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// CheckResumeExistence handles GET /api/jobseeker/resume/check/:jobseekerId.
// Failures collapse into a 500 with a bare false body.
func (h *JobSeekerHandler) CheckResumeExistence(c *gin.Context) {
	jobSeekerID, err := strconv.ParseInt(c.Param("jobseekerId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, false)
		return
	}

	exists, err := h.seekerService.ResumeExists(c.Request.Context(), jobSeekerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, false)
		return
	}
	c.JSON(http.StatusOK, exists)
}

// ResumeByJobSeeker handles GET /api/jobseeker/homepage/:id.
func (h *JobSeekerHandler) ResumeByJobSeeker(c *gin.Context) {
	jobSeekerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	resume, err := h.seekerService.ResumeByJobSeekerID(c.Request.Context(), jobSeekerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

// ViewResume handles GET /api/jobseeker/view-resume/:id.
func (h *JobSeekerHandler) ViewResume(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resume, err := h.seekerService.ResumeByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

// UpdateResume handles PUT /api/jobseeker/update-resume/:id.
func (h *JobSeekerHandler) UpdateResume(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var resume domain.Resume
	if err := c.ShouldBindJSON(&resume); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.seekerService.UpdateResume(c.Request.Context(), id, &resume)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Apply handles POST /api/jobseeker/job-details/:jobPostingId/:jobSeekerId/:resumeId.
func (h *JobSeekerHandler) Apply(c *gin.Context) {
	jobPostingID, ok := pathID(c, "jobPostingId")
	if !ok {
		return
	}
	jobSeekerID, ok := pathID(c, "jobSeekerId")
	if !ok {
		return
	}
	resumeID, ok := pathID(c, "resumeId")
	if !ok {
		return
	}

	var application domain.Application
	if err := c.ShouldBindJSON(&application); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	submitted, err := h.seekerService.SubmitApplication(c.Request.Context(), jobSeekerID, jobPostingID, resumeID, &application)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submitted)
}

// CheckApplicationStatus handles GET /api/applications/status?jobId=&userId=.
// Like the resume check, failures collapse into a 500 with false.
func (h *JobSeekerHandler) CheckApplicationStatus(c *gin.Context) {
	jobID, err1 := strconv.ParseInt(c.Query("jobId"), 10, 64)
	userID, err2 := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusInternalServerError, false)
		return
	}

	applied, err := h.seekerService.HasApplied(c.Request.Context(), jobID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, false)
		return
	}
	c.JSON(http.StatusOK, applied)
}

// AppliedJobs handles GET /api/jobseeker/applyjobs/:jobSeekerId.
func (h *JobSeekerHandler) AppliedJobs(c *gin.Context) {
	jobSeekerID, ok := pathID(c, "jobSeekerId")
	if !ok {
		return
	}

	applications, err := h.seekerService.ApplicationsByJobSeeker(c.Request.Context(), jobSeekerID)
	if err != nil {
		writeError(c, err)
		return
	}
	if applications == nil {
		applications = []*domain.Application{}
	}
	c.JSON(http.StatusOK, applications)
}

// Withdraw handles DELETE /api/jobseeker/:jobSeekerId/applications/:applicationId.
// The body is the plain boolean outcome; a non-matching pair is false, not an
// error.
func (h *JobSeekerHandler) Withdraw(c *gin.Context) {
	jobSeekerID, ok := pathID(c, "jobSeekerId")
	if !ok {
		return
	}
	applicationID, ok := pathID(c, "applicationId")
	if !ok {
		return
	}

	withdrawn, err := h.seekerService.WithdrawApplication(c.Request.Context(), jobSeekerID, applicationID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, withdrawn)
}

// SearchJobs handles GET /api/jobseeker/search-job/:jobTitle/:location/:experience.
func (h *JobSeekerHandler) SearchJobs(c *gin.Context) {
	postings, err := h.seekerService.SearchJobs(
		c.Request.Context(),
		c.Param("jobTitle"),
		c.Param("location"),
		c.Param("experience"),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	if postings == nil {
		postings = []*domain.JobPosting{}
	}
	c.JSON(http.StatusOK, postings)
}
