package api

import (
	"errors"
	"net/http"

	"voting-platform/internal/domain/candidate"
	reqdto "voting-platform/internal/handler/dto/request"
	resdto "voting-platform/internal/handler/dto/response"
	"voting-platform/internal/handler/httperr"
	"voting-platform/internal/handler/middleware"
	"voting-platform/internal/usecase/commands"
	"voting-platform/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	cmds commands.CandidateCommands
	q    queries.CandidateQueries
}

func NewCandidateHandler(cmds commands.CandidateCommands, q queries.CandidateQueries) *CandidateHandler {
	return &CandidateHandler{cmds: cmds, q: q}
}

// List is the ballot every voter sees. It never includes vote counts;
// standings are served separately behind the admin gate.
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCandidateViews(candidates))
}

func (h *CandidateHandler) Create(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), role, commands.CreateCandidateParams{
		Name:        req.Name,
		LinkedinURL: req.LinkedinURL,
		TeamID:      req.TeamID,
		Description: req.GetDescription(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin privileges required", nil)
		case errors.Is(err, candidate.ErrEmptyName),
			errors.Is(err, candidate.ErrInvalidLinkedinURL),
			errors.Is(err, candidate.ErrInvalidTeamID):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCandidateView(view))
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	candidateID, err := uuid.Parse(c.Param("candidate_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid candidate ID format", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), role, candidateID); err != nil {
		switch {
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin privileges required", nil)
		case errors.Is(err, commands.ErrCandidateNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Candidate not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
