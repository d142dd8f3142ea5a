//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"voting-platform/internal/domain/user"
	"voting-platform/internal/handler/api"
	resdto "voting-platform/internal/handler/dto/response"
	"voting-platform/internal/usecase/commands"
	"voting-platform/internal/usecase/queries"
	"voting-platform/tests/common/builder"
	"voting-platform/tests/common/httptest"
	commandsmock "voting-platform/tests/mock/commands"
	queriesmock "voting-platform/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVoteCommands
	mockQueries  *queriesmock.MockVoteQueries
	handler      *api.VoteHandler

	voterID uuid.UUID
	adminID uuid.UUID
}

func (s *VoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVoteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVoteQueries(s.mockCtrl)
	s.handler = api.NewVoteHandler(s.mockCommands, s.mockQueries)

	s.voterID = uuid.New()
	s.adminID = uuid.New()

	// Mock authentication middleware for testing
	voterAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.voterID)
		c.Set("user_role", user.RoleVoter)
		c.Next()
	}
	adminAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.adminID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/votes/:candidate_id", voterAuth, s.handler.Cast)
	s.router.GET("/votes/has_voted", voterAuth, s.handler.HasVoted)
	s.router.GET("/votes/voters", voterAuth, s.handler.Voters)
	s.router.GET("/votes/statistics", s.handler.Statistics)
	s.router.GET("/votes/results", voterAuth, s.handler.Results)
	s.router.GET("/admin/results", adminAuth, s.handler.Results)
	s.router.POST("/admin/reset", adminAuth, s.handler.Reset)
}

func (s *VoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(VoteHandlerTestSuite))
}

// ================================================================================
// TestCast
// ================================================================================

func (s *VoteHandlerTestSuite) TestCast() {
	candidateID := uuid.New()
	url := "/votes/" + candidateID.String()

	returnView := builder.NewVoteBuilder().
		WithVoterID(s.voterID).
		WithCandidateID(candidateID).
		BuildView()

	s.Run("success: returns 201 Created with VoteResponse", func() {
		s.mockCommands.EXPECT().CastVote(gomock.Any(), s.voterID, candidateID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.VoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(candidateID, response.CandidateID)
		s.Equal(s.voterID, response.VoterID)
	})

	s.Run("success: response keys are snake_case like the rest of the API", func() {
		s.mockCommands.EXPECT().CastVote(gomock.Any(), s.voterID, candidateID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		body := rec.Body.String()
		s.Contains(body, `"candidate_id"`)
		s.Contains(body, `"voter_id"`)
		s.Contains(body, `"cast_at"`)
		s.NotContains(body, `"candidateId"`)
	})

	s.Run("error: 400 Bad Request for invalid candidate UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/votes/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid candidate ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "already voted",
				commandsError:  commands.ErrAlreadyVoted,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "already voted",
			},
			{
				name:           "candidate not found",
				commandsError:  commands.ErrCandidateNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Candidate not found",
			},
			{
				name:           "voter not found",
				commandsError:  commands.ErrVoterNotFound,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Unknown voter",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CastVote(gomock.Any(), s.voterID, candidateID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: already voted after losing a concurrent race", func() {
		// The handler cannot tell a stale duplicate from a lost race and must
		// answer both the same way.
		s.mockCommands.EXPECT().CastVote(gomock.Any(), s.voterID, candidateID).
			Return(nil, commands.ErrAlreadyVoted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already voted")
	})
}

// ================================================================================
// TestHasVoted
// ================================================================================

func (s *VoteHandlerTestSuite) TestHasVoted() {
	url := "/votes/has_voted"

	s.Run("success: returns has_voted true", func() {
		s.mockQueries.EXPECT().HasVoted(gomock.Any(), s.voterID).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.HasVotedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.HasVoted)
	})

	s.Run("success: returns has_voted false", func() {
		s.mockQueries.EXPECT().HasVoted(gomock.Any(), s.voterID).
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.HasVotedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.HasVoted)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().HasVoted(gomock.Any(), s.voterID).
			Return(false, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestResults
// ================================================================================

func (s *VoteHandlerTestSuite) TestResults() {
	rows := []*queries.ResultRow{
		builder.NewVoteBuilder().BuildResultRow(5),
		builder.NewVoteBuilder().BuildResultRow(3),
		builder.NewVoteBuilder().BuildResultRow(0),
	}

	s.Run("success: admin sees full standings including zero-vote candidates", func() {
		s.mockQueries.EXPECT().Results(gomock.Any(), user.RoleAdmin).
			Return(rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/results", nil, "bearer-token")

		var response []*resdto.ResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 3)
		s.Equal(int64(5), response[0].VoteCount)
		s.Equal(int64(0), response[2].VoteCount)
	})

	s.Run("error: 403 Forbidden for non-admin", func() {
		s.mockQueries.EXPECT().Results(gomock.Any(), user.RoleVoter).
			Return(nil, queries.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/votes/results", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Admin privileges required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().Results(gomock.Any(), user.RoleAdmin).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/results", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestStatistics
// ================================================================================

func (s *VoteHandlerTestSuite) TestStatistics() {
	url := "/votes/statistics"

	report := builder.NewVoteBuilder().BuildStatisticsReport(10)

	s.Run("success: returns 200 OK without authentication", func() {
		s.mockQueries.EXPECT().Statistics(gomock.Any()).
			Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.StatisticsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(10), response.TotalVotes)
		s.Len(response.CandidateStatistics, 1)
		s.Equal(float64(100), response.CandidateStatistics[0].Percentage)
		s.Equal(int64(10), response.RecentVotes.Last24Hours)
		s.Len(response.VotesByAuthProvider, 1)
	})

	s.Run("success: zero votes means empty breakdowns, not an error", func() {
		empty := &queries.StatisticsReport{
			TotalVotes:          0,
			CandidateStatistics: []*queries.CandidateStat{},
			VotesByAuthProvider: []*queries.ProviderCount{},
		}
		s.mockQueries.EXPECT().Statistics(gomock.Any()).
			Return(empty, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.StatisticsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(0), response.TotalVotes)
		s.Empty(response.CandidateStatistics)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().Statistics(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestVoters
// ================================================================================

func (s *VoteHandlerTestSuite) TestVoters() {
	url := "/votes/voters"

	items := []*queries.VoterListItem{
		builder.NewVoteBuilder().BuildVoterListItem(),
		builder.NewVoteBuilder().BuildVoterListItem(),
	}

	s.Run("success: returns voter roster", func() {
		s.mockQueries.EXPECT().Voters(gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.VoterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: roster rows never carry a candidate reference", func() {
		s.mockQueries.EXPECT().Voters(gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var raw []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &raw)
		for _, row := range raw {
			s.NotContains(row, "candidate_id")
			s.NotContains(row, "candidate_name")
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().Voters(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestReset
// ================================================================================

func (s *VoteHandlerTestSuite) TestReset() {
	url := "/admin/reset"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().ResetVotes(gomock.Any(), s.adminID, user.RoleAdmin).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Contains(response["message"], "reset")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 403 Forbidden when usecase rejects role", func() {
		s.mockCommands.EXPECT().ResetVotes(gomock.Any(), s.adminID, user.RoleAdmin).
			Return(commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Admin privileges required")
	})

	s.Run("error: 500 Internal Server Error on command failure", func() {
		s.mockCommands.EXPECT().ResetVotes(gomock.Any(), s.adminID, user.RoleAdmin).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
