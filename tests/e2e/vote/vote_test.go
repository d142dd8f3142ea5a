//go:build e2e

package vote_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"voting-platform/tests/common/authtest"
	"voting-platform/tests/common/dbtest"
	"voting-platform/tests/common/httptest"
	"voting-platform/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	votesURL      = "/api/votes/"
	hasVotedURL   = "/api/votes/has_voted"
	resultsURL    = "/api/votes/results"
	statisticsURL = "/api/votes/statistics"
	votersURL     = "/api/votes/voters"
	resetURL      = "/api/votes/reset"
)

type voteSuite struct {
	e2e.SharedSuite

	candidateA uuid.UUID
	candidateB uuid.UUID
	candidateC uuid.UUID
}

func TestVoteSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(voteSuite))
}

func (s *voteSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.candidateA = dbtest.CreateTestCandidate(s.T(), s.DB, "Grace Hopper", 1)
	s.candidateB = dbtest.CreateTestCandidate(s.T(), s.DB, "Alan Turing", 2)
	s.candidateC = dbtest.CreateTestCandidate(s.T(), s.DB, "Ada Lovelace", 3)
}

func (s *voteSuite) TestCastVote() {
	s.Run("valid vote returns 201 and flips has_voted", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "voter1@example.com", "voter")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateA.String(), nil, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var voteBody map[string]any
		httptest.DecodeResponseBody(t, w.Body, &voteBody)
		require.Equal(t, s.candidateA.String(), voteBody["candidate_id"])

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, hasVotedURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var flag map[string]bool
		httptest.DecodeResponseBody(t, w.Body, &flag)
		require.True(t, flag["has_voted"])
	})

	s.Run("second vote is rejected with 400", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "voter1@example.com", "voter")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateA.String(), nil, token)
		require.Equal(t, http.StatusCreated, w.Code)

		// Changing candidate does not help; one ballot per voter.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateB.String(), nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM votes").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("unknown candidate returns 404", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "voter1@example.com", "voter")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+uuid.NewString(), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("unauthenticated vote returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateA.String(), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *voteSuite) TestConcurrentDoubleVote() {
	s.Run("exactly one of racing duplicate votes wins", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "racer@example.com", "voter")

		const attempts = 10
		codes := make([]int, attempts)

		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateA.String(), nil, token)
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusBadRequest:
				// losers of the race
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, 1, created, "exactly one vote must be recorded")

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM votes").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

func (s *voteSuite) TestResults() {
	s.Run("admin sees standings with zero-vote candidates", func() {
		t := s.T()

		voter1 := authtest.CreateAndLogin(t, s.DB, s.Router, "voter1@example.com", "voter")
		voter2 := authtest.CreateAndLogin(t, s.DB, s.Router, "voter2@example.com", "voter")
		admin := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateB.String(), nil, voter1)
		require.Equal(t, http.StatusCreated, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateB.String(), nil, voter2)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, resultsURL, nil, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rows []map[string]any
		httptest.DecodeResponseBody(t, w.Body, &rows)
		require.Len(t, rows, 3, "every catalog candidate appears")
		require.Equal(t, "Alan Turing", rows[0]["name"])
		require.Equal(t, float64(2), rows[0]["vote_count"])
		require.Equal(t, float64(0), rows[1]["vote_count"])
		require.Equal(t, float64(0), rows[2]["vote_count"])
	})

	s.Run("voter is rejected with 403", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "voter1@example.com", "voter")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, resultsURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("unauthenticated is rejected with 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, resultsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *voteSuite) TestStatistics() {
	s.Run("public statistics aggregate votes without auth", func() {
		t := s.T()

		dbtest.CreateTestUserWithProvider(t, s.DB, "google-voter@example.com", "voter", "google")
		googleToken := authtest.LoginUser(t, s.Router, "google-voter@example.com", "password123")
		localToken := authtest.CreateAndLogin(t, s.DB, s.Router, "voter1@example.com", "voter")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateA.String(), nil, googleToken)
		require.Equal(t, http.StatusCreated, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateA.String(), nil, localToken)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, statisticsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var report map[string]any
		httptest.DecodeResponseBody(t, w.Body, &report)
		require.Equal(t, float64(2), report["total_votes"])

		stats := report["candidate_statistics"].([]any)
		require.Len(t, stats, 1, "only voted candidates appear in statistics")
		first := stats[0].(map[string]any)
		require.Equal(t, float64(100), first["percentage"])

		recent := report["recent_votes"].(map[string]any)
		require.Equal(t, float64(2), recent["last_24_hours"])
		require.Equal(t, float64(2), recent["last_7_days"])

		providers := report["votes_by_auth_provider"].([]any)
		require.Len(t, providers, 2)
	})

	s.Run("empty ledger yields zeroes", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, statisticsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var report map[string]any
		httptest.DecodeResponseBody(t, w.Body, &report)
		require.Equal(t, float64(0), report["total_votes"])
		require.Empty(t, report["candidate_statistics"])
	})
}

func (s *voteSuite) TestVoters() {
	s.Run("roster is reverse chronological and leak-free", func() {
		t := s.T()

		first := authtest.CreateAndLogin(t, s.DB, s.Router, "first@example.com", "voter")
		second := authtest.CreateAndLogin(t, s.DB, s.Router, "second@example.com", "voter")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateA.String(), nil, first)
		require.Equal(t, http.StatusCreated, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateB.String(), nil, second)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, votersURL, nil, first)
		require.Equal(t, http.StatusOK, w.Code)

		var roster []map[string]any
		httptest.DecodeResponseBody(t, w.Body, &roster)
		require.Len(t, roster, 2)
		require.Equal(t, "Voter second@example.com", roster[0]["name"])
		require.Equal(t, "Voter first@example.com", roster[1]["name"])
		for _, row := range roster {
			require.NotContains(t, row, "candidate_id")
			require.NotContains(t, row, "candidate_name")
		}
	})

	s.Run("unauthenticated is rejected with 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, votersURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *voteSuite) TestReset() {
	s.Run("admin reset clears ledger and flags", func() {
		t := s.T()

		voter := authtest.CreateAndLogin(t, s.DB, s.Router, "voter1@example.com", "voter")
		admin := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateA.String(), nil, voter)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resetURL, nil, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var votes int
		err := s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM votes").Scan(&votes)
		require.NoError(t, err)
		require.Equal(t, 0, votes)

		var flagged int
		err = s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM users WHERE has_voted").Scan(&flagged)
		require.NoError(t, err)
		require.Equal(t, 0, flagged)

		// Everyone can vote again after a reset.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateB.String(), nil, voter)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	s.Run("reset racing a cast never strands a vote row", func() {
		t := s.T()
		admin := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")

		for round := range 5 {
			voter := authtest.CreateAndLogin(t, s.DB, s.Router,
				fmt.Sprintf("racer%d@example.com", round), "voter")

			var wg sync.WaitGroup
			var castCode, resetCode int
			wg.Add(2)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, votesURL+s.candidateA.String(), nil, voter)
				castCode = w.Code
			}()
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, resetURL, nil, admin)
				resetCode = w.Code
			}()
			wg.Wait()

			require.Equal(t, http.StatusCreated, castCode)
			require.Equal(t, http.StatusOK, resetCode)

			// Whichever order the two transactions landed in, the ledger
			// and the cached flags must agree.
			var strandedRows int
			err := s.DB.QueryRow(t.Context(),
				`SELECT COUNT(*) FROM votes v JOIN users u ON u.id = v.voter_id WHERE NOT u.has_voted`).
				Scan(&strandedRows)
			require.NoError(t, err)
			require.Equal(t, 0, strandedRows, "vote row without its voter flag")

			var strandedFlags int
			err = s.DB.QueryRow(t.Context(),
				`SELECT COUNT(*) FROM users u
				 WHERE u.has_voted AND NOT EXISTS (SELECT 1 FROM votes v WHERE v.voter_id = u.id)`).
				Scan(&strandedFlags)
			require.NoError(t, err)
			require.Equal(t, 0, strandedFlags, "voter flag without its vote row")
		}
	})

	s.Run("voter cannot reset", func() {
		t := s.T()
		voter := authtest.CreateAndLogin(t, s.DB, s.Router, "voter1@example.com", "voter")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resetURL, nil, voter)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
