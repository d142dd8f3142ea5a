package api

import (
	"errors"
	"net/http"

	resdto "voting-platform/internal/handler/dto/response"
	"voting-platform/internal/handler/httperr"
	"voting-platform/internal/handler/middleware"
	"voting-platform/internal/pkg/errs"
	"voting-platform/internal/usecase/commands"
	"voting-platform/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingAuthContext = errs.New("missing auth context")

type VoteHandler struct {
	cmds commands.VoteCommands
	q    queries.VoteQueries
}

func NewVoteHandler(cmds commands.VoteCommands, q queries.VoteQueries) *VoteHandler {
	return &VoteHandler{cmds: cmds, q: q}
}

// Cast records the caller's single vote for the candidate in the path.
// Voting twice gets the same answer whether the first vote happened an hour
// ago or in a racing request one millisecond earlier.
func (h *VoteHandler) Cast(c *gin.Context) {
	voterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	candidateID, err := uuid.Parse(c.Param("candidate_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid candidate ID format", nil)
		return
	}

	view, err := h.cmds.CastVote(c.Request.Context(), voterID, candidateID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAlreadyVoted):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "You have already voted. Each user can vote only once.", nil)
		case errors.Is(err, commands.ErrCandidateNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Candidate not found", nil)
		case errors.Is(err, commands.ErrVoterNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unknown voter", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVoteView(view))
}

func (h *VoteHandler) HasVoted(c *gin.Context) {
	voterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	hasVoted, err := h.q.HasVoted(c.Request.Context(), voterID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.HasVotedResponse{HasVoted: hasVoted})
}

// Results is admin-only; standings stay hidden from voters while the
// election runs.
func (h *VoteHandler) Results(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	rows, err := h.q.Results(c.Request.Context(), role)
	if err != nil {
		if errors.Is(err, queries.ErrForbidden) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin privileges required", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResultRows(rows))
}

// Statistics is deliberately public; no auth middleware guards this route.
func (h *VoteHandler) Statistics(c *gin.Context) {
	report, err := h.q.Statistics(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatisticsReport(report))
}

func (h *VoteHandler) Voters(c *gin.Context) {
	voters, err := h.q.Voters(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVoterListItems(voters))
}

func (h *VoteHandler) Reset(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	if err := h.cmds.ResetVotes(c.Request.Context(), callerID, role); err != nil {
		if errors.Is(err, commands.ErrForbidden) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin privileges required", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All votes have been reset"})
}
