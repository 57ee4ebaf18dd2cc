package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/kultoura/backend/awards"
	"github.com/kultoura/backend/criteria"
	"github.com/kultoura/backend/event"
	"github.com/kultoura/backend/http"
	"github.com/kultoura/backend/results"
	"github.com/kultoura/backend/scoring"
	"github.com/kultoura/backend/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-signing-key")

type serverFixture struct {
	server   *httptest.Server
	userSrvc *user.UserSrvc
}

func setupServer(t *testing.T) *serverFixture {
	t.Helper()

	userSrvc := user.NewUserSrvc(user.NewInMemUserRepo(), testJwtKey)
	eventSrvc := event.NewEventSrvc(event.NewInMemEventRepo(), nil)
	criteriaSrvc := criteria.NewCriteriaSrvc(criteria.NewInMemCriteriaRepo())
	awardSrvc := awards.NewAwardSrvc(awards.NewInMemAwardRepo(), criteriaSrvc)
	sessionSrvc := scoring.NewSessionSrvc(eventSrvc, criteriaSrvc,
		scoring.NewInMemScoreRepo(), scoring.NewInMemDraftStore(), nil)
	resultsSrvc := results.NewResultsSrvc(eventSrvc, criteriaSrvc, awardSrvc, sessionSrvc, nil)

	httpServer := http.NewHttpServer(
		userSrvc, eventSrvc, criteriaSrvc, awardSrvc, sessionSrvc, resultsSrvc,
		nil, testJwtKey, []string{"*"})

	ts := httptest.NewServer(httpServer.Router())
	t.Cleanup(ts.Close)
	return &serverFixture{server: ts, userSrvc: userSrvc}
}

type jsonEnvelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	ErrCode string          `json:"code"`
	ErrMsg  string          `json:"message"`
}

func (f *serverFixture) request(t *testing.T, method, path, token string, body any) (*nethttp.Response, jsonEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := nethttp.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope jsonEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

// loginAs registers (through the service, bypassing the admin guard) and
// logs in, returning the bearer token.
func (f *serverFixture) loginAs(t *testing.T, email string, role user.Role) string {
	t.Helper()

	_, err := f.userSrvc.Register(context.Background(), user.RegisterParams{
		Email: email, Password: "password123", Role: role,
	})
	require.NoError(t, err)

	resp, envelope := f.request(t, nethttp.MethodPost, "/auth/login", "", map[string]string{
		"email": email, "password": "password123",
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestLoginAndWhoami(t *testing.T) {
	f := setupServer(t)
	token := f.loginAs(t, "judge@example.com", user.RoleJudge)

	resp, envelope := f.request(t, nethttp.MethodGet, "/auth/whoami", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", envelope.Status)

	var data struct {
		Email  string   `json:"email"`
		Scopes []string `json:"scopes"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, "judge@example.com", data.Email)
	assert.Contains(t, data.Scopes, "judge")
}

func TestWhoamiWithoutToken(t *testing.T) {
	f := setupServer(t)

	resp, envelope := f.request(t, nethttp.MethodGet, "/auth/whoami", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "error", envelope.Status)
}

func TestLoginWrongPassword(t *testing.T) {
	f := setupServer(t)
	f.loginAs(t, "judge@example.com", user.RoleJudge)

	resp, envelope := f.request(t, nethttp.MethodPost, "/auth/login", "", map[string]string{
		"email": "judge@example.com", "password": "wrong",
	})
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "email_or_password_incorrect", envelope.ErrCode)
}

func TestCreateEventRequiresAdmin(t *testing.T) {
	f := setupServer(t)
	judgeToken := f.loginAs(t, "judge@example.com", user.RoleJudge)
	adminToken := f.loginAs(t, "admin@example.com", user.RoleAdmin)

	body := map[string]any{"title": "Cultural Festival"}

	resp, envelope := f.request(t, nethttp.MethodPost, "/events", judgeToken, body)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "forbidden", envelope.ErrCode)

	resp, envelope = f.request(t, nethttp.MethodPost, "/events", adminToken, body)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", envelope.Status)
}

func TestScoringFlowOverHttp(t *testing.T) {
	f := setupServer(t)
	adminToken := f.loginAs(t, "admin@example.com", user.RoleAdmin)
	judgeToken := f.loginAs(t, "judge@example.com", user.RoleJudge)

	// Admin sets up the event.
	_, envelope := f.request(t, nethttp.MethodPost, "/events", adminToken, map[string]any{
		"title": "Cultural Festival", "judging_mode": "free-roam",
	})
	var ev struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &ev))

	_, envelope = f.request(t, nethttp.MethodPost, "/events/"+ev.ID+"/participants", adminToken, map[string]string{
		"name": "Alpha Troupe",
	})
	var evWithParticipants struct {
		Participants []struct {
			ID string `json:"id"`
		} `json:"participants"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &evWithParticipants))
	require.Len(t, evWithParticipants.Participants, 1)
	participantID := evWithParticipants.Participants[0].ID

	resp, _ := f.request(t, nethttp.MethodPut, "/events/"+ev.ID+"/criteria", adminToken, map[string]any{
		"criteria": []map[string]any{
			{"id": "choreography", "name": "Choreography", "percentage_weight": 100},
		},
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp, _ = f.request(t, nethttp.MethodPost, "/events/"+ev.ID+"/activate", adminToken, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	// Judge scores and submits.
	sessionPath := fmt.Sprintf("/events/%s/participants/%s/session", ev.ID, participantID)
	resp, _ = f.request(t, nethttp.MethodGet, sessionPath, judgeToken, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp, envelope = f.request(t, nethttp.MethodPut, sessionPath+"/scores/choreography", judgeToken, map[string]any{
		"value": 88.5,
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var sess struct {
		TotalScore float64 `json:"total_score"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &sess))
	assert.InDelta(t, 88.5, sess.TotalScore, 1e-9)

	resp, _ = f.request(t, nethttp.MethodPost, sessionPath+"/submit", judgeToken, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	// Results reflect the submission.
	resp, envelope = f.request(t, nethttp.MethodGet, "/events/"+ev.ID+"/results", judgeToken, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var res struct {
		Results []struct {
			ParticipantName string  `json:"participant_name"`
			AverageScore    float64 `json:"average_score"`
			Rank            int     `json:"rank"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &res))
	require.Len(t, res.Results, 1)
	assert.Equal(t, "Alpha Troupe", res.Results[0].ParticipantName)
	assert.InDelta(t, 88.5, res.Results[0].AverageScore, 1e-9)
	assert.Equal(t, 1, res.Results[0].Rank)

	// The CSV download serves the same results as a spreadsheet.
	req, err := nethttp.NewRequest(nethttp.MethodGet, f.server.URL+"/events/"+ev.ID+"/results/export", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	csvResp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer csvResp.Body.Close()
	require.Equal(t, nethttp.StatusOK, csvResp.StatusCode)
	assert.Equal(t, "text/csv", csvResp.Header.Get("Content-Type"))

	body, err := io.ReadAll(csvResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Rank,Participant,Average Score")
	assert.Contains(t, string(body), "Alpha Troupe")
}

func TestListUsersRequiresAdmin(t *testing.T) {
	f := setupServer(t)
	judgeToken := f.loginAs(t, "judge@example.com", user.RoleJudge)
	adminToken := f.loginAs(t, "admin@example.com", user.RoleAdmin)

	resp, envelope := f.request(t, nethttp.MethodGet, "/users", judgeToken, nil)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "forbidden", envelope.ErrCode)

	resp, envelope = f.request(t, nethttp.MethodGet, "/users", adminToken, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var users []struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &users))
	require.Len(t, users, 2)

	emails := []string{users[0].Email, users[1].Email}
	assert.Contains(t, emails, "judge@example.com")
	assert.Contains(t, emails, "admin@example.com")

	// Single-user lookup by the listed id.
	resp, envelope = f.request(t, nethttp.MethodGet, "/users/"+users[0].ID, adminToken, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var fetched struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &fetched))
	assert.Equal(t, users[0].Email, fetched.Email)
}

func TestSubmitWithoutAllScoresFailsOverHttp(t *testing.T) {
	f := setupServer(t)
	adminToken := f.loginAs(t, "admin@example.com", user.RoleAdmin)
	judgeToken := f.loginAs(t, "judge@example.com", user.RoleJudge)

	_, envelope := f.request(t, nethttp.MethodPost, "/events", adminToken, map[string]any{
		"title": "Cultural Festival", "judging_mode": "free-roam",
	})
	var ev struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &ev))

	_, envelope = f.request(t, nethttp.MethodPost, "/events/"+ev.ID+"/participants", adminToken, map[string]string{
		"name": "Alpha Troupe",
	})
	var evData struct {
		Participants []struct {
			ID string `json:"id"`
		} `json:"participants"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &evData))
	participantID := evData.Participants[0].ID

	f.request(t, nethttp.MethodPut, "/events/"+ev.ID+"/criteria", adminToken, map[string]any{
		"criteria": []map[string]any{
			{"id": "choreography", "name": "Choreography", "percentage_weight": 60},
			{"id": "costume", "name": "Costume", "percentage_weight": 40},
		},
	})
	f.request(t, nethttp.MethodPost, "/events/"+ev.ID+"/activate", adminToken, nil)

	sessionPath := fmt.Sprintf("/events/%s/participants/%s/session", ev.ID, participantID)
	f.request(t, nethttp.MethodGet, sessionPath, judgeToken, nil)
	f.request(t, nethttp.MethodPut, sessionPath+"/scores/choreography", judgeToken, map[string]any{"value": 80})

	resp, envelope := f.request(t, nethttp.MethodPost, sessionPath+"/submit", judgeToken, nil)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, scoring.ErrCodeNotAllCriteriaScored, envelope.ErrCode)
}
