package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/domain"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/service"
)

// ProfileHandler serves the token-authenticated profile endpoint. The role
// claim decides which account table the id resolves against.
type ProfileHandler struct {
	employerService service.EmployerService
	seekerService   service.JobSeekerService
}

func NewProfileHandler(employerService service.EmployerService, seekerService service.JobSeekerService) *ProfileHandler {
	return &ProfileHandler{
		employerService: employerService,
		seekerService:   seekerService,
	}
}

// Me handles GET /api/profile.
func (h *ProfileHandler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := c.GetString("role")
	if userID == 0 || role == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	switch role {
	case domain.RoleEmployer:
		employer, err := h.employerService.GetByID(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, employer)
	case domain.RoleJobSeeker:
		seeker, err := h.seekerService.GetByID(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, seeker)
	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown role"})
	}
}
