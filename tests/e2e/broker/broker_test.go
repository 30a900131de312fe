//go:build e2e

package broker_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"service-broker/internal/domain/user"
	"service-broker/internal/handler/dto/request"
	"service-broker/internal/handler/dto/response"
	"service-broker/tests/common/authtest"
	"service-broker/tests/common/dbtest"
	"service-broker/tests/common/httptest"
	"service-broker/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type brokerSuite struct {
	e2e.SharedSuite

	categoryID uuid.UUID
	tokyo      uuid.UUID
	osaka      uuid.UUID
	paris      uuid.UUID

	applicantToken string
	strangerToken  string
	adminToken     string
	agentTokens    map[uuid.UUID]string
}

func TestBrokerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(brokerSuite))
}

func (s *brokerSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	t := s.T()

	s.categoryID = dbtest.CreateTestCategory(t, s.DB, "Visa processing", "10", "competitive")
	s.tokyo = dbtest.CreateTestAgency(t, s.DB, "Tokyo Visas")
	s.osaka = dbtest.CreateTestAgency(t, s.DB, "Osaka Visas")
	s.paris = dbtest.CreateTestAgency(t, s.DB, "Paris Visas")
	dbtest.CreateTestAssignment(t, s.DB, s.tokyo, s.categoryID, "JP")
	dbtest.CreateTestAssignment(t, s.DB, s.osaka, s.categoryID, "JP", "KR")
	dbtest.CreateTestAssignment(t, s.DB, s.paris, s.categoryID, "FR")

	s.applicantToken = authtest.CreateAndLogin(t, s.DB, s.Router, "applicant@example.com", string(user.RoleApplicant), nil)
	s.strangerToken = authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleApplicant), nil)
	s.adminToken = authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin), nil)
	s.agentTokens = map[uuid.UUID]string{}
	for i, id := range []uuid.UUID{s.tokyo, s.osaka, s.paris} {
		email := fmt.Sprintf("agent%d@example.com", i)
		s.agentTokens[id] = authtest.CreateAndLogin(t, s.DB, s.Router, email, string(user.RoleAgency), &id)
	}
}

func (s *brokerSuite) createRequest(country string) uuid.UUID {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/requests", request.CreateRequestRequest{
		CategoryID: s.categoryID,
		Payload:    map[string]any{"destination_country": country, "traveller": "A. Applicant"},
	}, s.applicantToken)
	var res response.RequestResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.Equal(t, "pending", res.Status)
	return res.ID
}

func (s *brokerSuite) submitQuote(agencyID, requestID uuid.UUID, amount string, days int, validFor time.Duration) (*response.SubmitQuoteResponse, int) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/requests/"+requestID.String()+"/quotes", request.SubmitQuoteRequest{
		Amount:         decimal.RequireFromString(amount),
		ProcessingDays: days,
		ValidUntil:     time.Now().Add(validFor).UTC(),
	}, s.agentTokens[agencyID])
	if w.Code != http.StatusCreated && w.Code != http.StatusOK {
		return nil, w.Code
	}
	var res response.SubmitQuoteResponse
	httptest.AssertSuccessResponse(t, w, w.Code, &res)
	return &res, w.Code
}

func (s *brokerSuite) listQuotes(requestID uuid.UUID, token, sort string) []response.QuoteResponse {
	t := s.T()
	path := "/api/requests/" + requestID.String() + "/quotes"
	if sort != "" {
		path += "?sort=" + sort
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, token)
	var res []response.QuoteResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

func (s *brokerSuite) TestFullLifecycle() {
	t := s.T()
	reqID := s.createRequest("jp")

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/requests/"+reqID.String()+"/eligible-agencies", nil, s.applicantToken)
	var eligible []response.AgencyResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &eligible)
	require.Len(t, eligible, 2)
	require.Equal(t, "Osaka Visas", eligible[0].Name)
	require.Equal(t, "Tokyo Visas", eligible[1].Name)

	_, code := s.submitQuote(s.paris, reqID, "800", 3, 48*time.Hour)
	require.Equal(t, http.StatusForbidden, code)

	first, code := s.submitQuote(s.tokyo, reqID, "1000", 5, 48*time.Hour)
	require.Equal(t, http.StatusCreated, code)
	require.True(t, first.Created)

	revised, code := s.submitQuote(s.tokyo, reqID, "900", 5, 48*time.Hour)
	require.Equal(t, http.StatusOK, code)
	require.False(t, revised.Created)
	require.Equal(t, first.Quote.ID, revised.Quote.ID)
	require.True(t, revised.Quote.PlatformCommission.Equal(decimal.RequireFromString("90")))
	require.True(t, revised.Quote.AgencyEarnings.Equal(decimal.RequireFromString("810")))

	osakaQuote, code := s.submitQuote(s.osaka, reqID, "950", 2, 48*time.Hour)
	require.Equal(t, http.StatusCreated, code)

	quotes := s.listQuotes(reqID, s.applicantToken, "amount")
	require.Len(t, quotes, 2)
	require.Equal(t, s.tokyo, quotes[0].AgencyID)
	require.True(t, quotes[0].Cheapest)
	require.False(t, quotes[0].Fastest)
	require.True(t, quotes[1].Fastest)

	own := s.listQuotes(reqID, s.agentTokens[s.tokyo], "")
	require.Len(t, own, 1)
	require.False(t, own[0].Cheapest)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/requests/"+reqID.String(), nil, s.strangerToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/quotes/"+osakaQuote.Quote.ID.String()+"/accept", nil, s.strangerToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/quotes/"+osakaQuote.Quote.ID.String()+"/accept", nil, s.applicantToken)
	var accepted response.RequestResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &accepted)
	require.Equal(t, "accepted", accepted.Status)
	require.NotNil(t, accepted.WinningAgencyID)
	require.Equal(t, s.osaka, *accepted.WinningAgencyID)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/quotes/"+first.Quote.ID.String()+"/accept", nil, s.applicantToken)
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "")

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/quotes/"+first.Quote.ID.String(), nil, s.agentTokens[s.tokyo])
	var lost response.QuoteResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &lost)
	require.Equal(t, "rejected", lost.Status)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/requests/"+reqID.String()+"/start", nil, s.agentTokens[s.tokyo])
	require.Equal(t, http.StatusForbidden, w.Code)

	for _, step := range []struct{ path, status string }{{"start", "in_progress"}, {"complete", "completed"}} {
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/requests/"+reqID.String()+"/"+step.path, nil, s.agentTokens[s.osaka])
		var res response.RequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, step.status, res.Status)
	}

	var jobs int
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT count(*) FROM notification_jobs WHERE kind = 'quote_accepted'").Scan(&jobs))
	require.Equal(t, 1, jobs)
}

func (s *brokerSuite) TestConcurrentAcceptHasOneWinner() {
	t := s.T()
	reqID := s.createRequest("JP")
	var quoteIDs []uuid.UUID
	agencyOf := map[uuid.UUID]uuid.UUID{}
	for _, id := range []uuid.UUID{s.tokyo, s.osaka} {
		res, code := s.submitQuote(id, reqID, "1000", 5, 48*time.Hour)
		require.Equal(t, http.StatusCreated, code)
		quoteIDs = append(quoteIDs, res.Quote.ID)
		agencyOf[res.Quote.ID] = id
	}

	const attemptsPerQuote = 4
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = map[int]int{}
		wonBy []uuid.UUID
	)
	for range attemptsPerQuote {
		for _, qid := range quoteIDs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/quotes/"+qid.String()+"/accept", nil, s.applicantToken)
				mu.Lock()
				codes[w.Code]++
				if w.Code == http.StatusOK {
					wonBy = append(wonBy, qid)
				}
				mu.Unlock()
			}()
		}
	}
	wg.Wait()

	require.Equal(t, 1, codes[http.StatusOK], "codes: %v", codes)
	require.Equal(t, attemptsPerQuote*len(quoteIDs)-1, codes[http.StatusConflict], "codes: %v", codes)
	require.Len(t, wonBy, 1)

	var accepted int
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT count(*) FROM quotes WHERE request_id = $1 AND status = 'accepted'", reqID).Scan(&accepted))
	require.Equal(t, 1, accepted)

	var acceptedID uuid.UUID
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT id FROM quotes WHERE request_id = $1 AND status = 'accepted'", reqID).Scan(&acceptedID))
	require.Equal(t, wonBy[0], acceptedID)

	var winner *uuid.UUID
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT winning_agency_id FROM requests WHERE id = $1", reqID).Scan(&winner))
	require.NotNil(t, winner)
	require.Equal(t, agencyOf[wonBy[0]], *winner)
}

func (s *brokerSuite) TestCancelAfterAcceptance() {
	t := s.T()
	reqID := s.createRequest("JP")
	res, code := s.submitQuote(s.tokyo, reqID, "1000", 5, 48*time.Hour)
	require.Equal(t, http.StatusCreated, code)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/quotes/"+res.Quote.ID.String()+"/accept", nil, s.applicantToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/requests/"+reqID.String()+"/cancel", nil, s.applicantToken)
	httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "reason")

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/requests/"+reqID.String()+"/cancel",
		request.CancelRequestRequest{Reason: "trip postponed"}, s.applicantToken)
	var cancelled response.RequestResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
	require.Equal(t, "cancelled", cancelled.Status)
	require.Nil(t, cancelled.WinningAgencyID)
	require.NotNil(t, cancelled.CancelReason)
}

func (s *brokerSuite) TestExpiryAndSweep() {
	t := s.T()
	reqID := s.createRequest("JP")
	short, code := s.submitQuote(s.tokyo, reqID, "1000", 5, 2*time.Second)
	require.Equal(t, http.StatusCreated, code)
	_, code = s.submitQuote(s.osaka, reqID, "1100", 5, 3*time.Hour)
	require.Equal(t, http.StatusCreated, code)

	time.Sleep(2500 * time.Millisecond)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/quotes/"+short.Quote.ID.String()+"/accept", nil, s.applicantToken)
	httptest.AssertErrorResponse(t, w, http.StatusGone, "")

	var status string
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT status FROM quotes WHERE id = $1", short.Quote.ID).Scan(&status))
	require.Equal(t, "expired", status)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/quotes/sweep", nil, s.applicantToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/quotes/sweep", nil, s.adminToken)
	var swept response.SweepResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &swept)
	require.Zero(t, swept.Expired)
	require.Equal(t, 1, swept.ExpiringSoon)

	quotes := s.listQuotes(reqID, s.applicantToken, "")
	require.Len(t, quotes, 2)
	for _, q := range quotes {
		if q.ID == short.Quote.ID {
			require.False(t, q.Cheapest, "expired quotes carry no badge")
		} else {
			require.True(t, q.Cheapest)
		}
	}
}
