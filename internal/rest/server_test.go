package rest_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/database/dbtest"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/team-Roy/prototype-sub000/internal/rest"
	"github.com/team-Roy/prototype-sub000/internal/rest/middleware/actor"
	restTypes "github.com/team-Roy/prototype-sub000/internal/rest/types"
	"github.com/team-Roy/prototype-sub000/internal/setup/config"
	"go.uber.org/zap"
)

type testServer struct {
	f       *dbtest.Fixture
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	f := dbtest.New(t)

	cfg := &config.RESTConfig{}
	cfg.Server.EnableMetrics = true

	handler, err := rest.NewServer(f.Client, f.Registry, zap.NewNop(), cfg)
	require.NoError(t, err)

	return &testServer{f: f, handler: handler}
}

// do sends a request as the given user. A zero user sends no identity headers.
func (s *testServer) do(t *testing.T, method, path string, user uint64, admin bool, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != 0 {
		req.Header.Set(actor.HeaderUserID, strconv.FormatUint(user, 10))
		req.Header.Set(actor.HeaderUserAdmin, strconv.FormatBool(admin))
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestVoteEndpoints(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	lounge := s.f.Community(t, "lounge")
	post := s.f.Post(t, lounge.ID, 1)

	body := `{"targetType":"POST","targetId":` + strconv.FormatUint(post.ID, 10) + `,"voteType":"UPVOTE"}`

	rec := s.do(t, http.MethodPost, "/v1/votes", 0, false, body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/votes", 2, false, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cast := decode[types.VoteCastResult](t, rec)
	assert.Equal(t, enum.VoteOutcomeCreated, cast.Vote.Outcome)
	assert.Equal(t, int64(1), cast.Vote.UpvoteCount)
	require.NotNil(t, cast.Score)
	assert.Equal(t, int64(1), cast.Score.VoteScore)

	rec = s.do(t, http.MethodGet, "/v1/votes/POST/"+strconv.FormatUint(post.ID, 10), 2, false, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	status := decode[types.VoteStatus](t, rec)
	assert.Equal(t, int64(1), status.UpvoteCount)
	require.NotNil(t, status.UserVote)
	assert.Equal(t, enum.VoteTypeUpvote, *status.UserVote)

	rec = s.do(t, http.MethodGet, "/v1/votes/POST/999", 2, false, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/votes/STORY/1", 2, false, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/votes", 2, false, `{"targetType":"POST","targetId":1,"voteType":"SIDEWAYS"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decode[restTypes.ErrorResponse](t, rec)
	assert.Equal(t, http.StatusBadRequest, errBody.Code)
}

func TestInvalidIdentityHeader(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/quests", nil)
	req.Header.Set(actor.HeaderUserID, "not-a-number")

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuestEndpoints(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	lounge := s.f.Community(t, "lounge")
	loungeID := strconv.FormatUint(lounge.ID, 10)

	rec := s.do(t, http.MethodPost, "/v1/quests", 10, false,
		`{"title":"First post","questType":"DAILY","actionType":"POST_CREATED","targetCount":1,"rewardScore":10,"communityId":`+loungeID+`}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	quest := decode[types.Quest](t, rec)
	assert.Equal(t, uint64(10), quest.CreatorID)
	questPath := "/v1/quests/" + strconv.FormatUint(quest.ID, 10)

	rec = s.do(t, http.MethodPost, "/v1/quests", 10, false,
		`{"title":"","questType":"DAILY","actionType":"POST_CREATED","targetCount":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/quests", 10, false,
		`{"title":"No type","actionType":"POST_CREATED","targetCount":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/quests", 10, false,
		`{"title":"No action","questType":"DAILY","targetCount":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPatch, questPath, 11, false, `{"title":"Hijacked"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPatch, questPath, 11, true, `{"title":"Renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Renamed", decode[types.Quest](t, rec).Title)

	rec = s.do(t, http.MethodPost, "/v1/actions", 3, false, `{"communityId":4242,"actionType":"POST_CREATED"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/actions", 3, false, `{"communityId":`+loungeID+`,"actionType":"POST_CREATED"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	action := decode[types.ActionResult](t, rec)
	require.Len(t, action.Progress, 1)
	assert.True(t, action.Progress[0].IsCompleted)

	rec = s.do(t, http.MethodGet, questPath, 3, false, "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[types.QuestView](t, rec)
	assert.True(t, view.IsCompleted)
	assert.Equal(t, 100, view.Percent)

	rec = s.do(t, http.MethodGet, "/v1/quests?type=DAILY", 3, false, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[restTypes.QuestsResponse](t, rec).Quests)

	rec = s.do(t, http.MethodGet, "/v1/quests?type=DAILY&includeCompleted=true", 3, false, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[restTypes.QuestsResponse](t, rec).Quests, 1)

	rec = s.do(t, http.MethodGet, "/v1/users/3/quests?completed=true", 0, false, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[restTypes.QuestsResponse](t, rec).Quests, 1)

	rec = s.do(t, http.MethodDelete, questPath, 10, false, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, questPath, 3, false, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScoreAndRankingEndpoints(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	lounge := s.f.Community(t, "lounge")
	loungePath := "/v1/communities/" + strconv.FormatUint(lounge.ID, 10)

	rec := s.do(t, http.MethodPost, loungePath+"/scores", 1, false, `{"userId":5,"actionType":"COMMENT_CREATED","amount":200}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	for user, points := range map[string]string{"5": "200", "6": "90", "7": "90"} {
		rec = s.do(t, http.MethodPost, loungePath+"/scores", 1, true,
			`{"userId":`+user+`,"actionType":"COMMENT_CREATED","amount":`+points+`}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = s.do(t, http.MethodPost, loungePath+"/scores", 1, true, `{"userId":5,"actionType":"COMMENT_CREATED","amount":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/communities/404/scores", 1, true, `{"userId":5,"actionType":"COMMENT_CREATED"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, loungePath+"/scores/7", 0, false, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[types.UserScore](t, rec).CompetitionRank)

	rec = s.do(t, http.MethodGet, "/v1/users/5/scores", 0, false, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[restTypes.ScoresResponse](t, rec).Scores, 1)

	rec = s.do(t, http.MethodGet, "/v1/users/5/badges?communityId="+strconv.FormatUint(lounge.ID, 10), 0, false, "")
	require.Equal(t, http.StatusOK, rec.Code)
	badges := decode[restTypes.BadgesResponse](t, rec).Badges
	require.Len(t, badges, 1)
	assert.Equal(t, enum.BadgeTypeActiveCommenter, badges[0].BadgeType)

	rec = s.do(t, http.MethodPost, "/v1/badges", 1, true, `{"userId":6,"badgeType":"FIRST_STEPS"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	globalBadge := decode[types.FanBadge](t, rec)
	assert.True(t, globalBadge.IsGlobal())

	rec = s.do(t, http.MethodGet, loungePath+"/ranking?limit=2&page=1", 7, false, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	page := decode[types.RankingPage](t, rec)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, uint64(5), page.Entries[0].UserID)
	assert.Equal(t, uint64(6), page.Entries[1].UserID)
	require.NotNil(t, page.MyRank)
	assert.Equal(t, 2, page.MyRank.Rank)

	rec = s.do(t, http.MethodGet, loungePath+"/ranking?sort=WEEKLY", 0, false, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/communities/404/ranking", 0, false, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	lounge := s.f.Community(t, "lounge")
	post := s.f.Post(t, lounge.ID, 1)

	rec := s.do(t, http.MethodPost, "/v1/votes", 2, false,
		`{"targetType":"POST","targetId":`+strconv.FormatUint(post.ID, 10)+`,"voteType":"DOWNVOTE"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/metrics", 0, false, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `lounge_votes_total{outcome="CREATED"} 1`))
}
