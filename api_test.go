package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitch-board/stats"
)

func TestMain(m *testing.M) {
	cfg = Config{TopN: 10, FormWindow: 5}
	dataset = &stats.Dataset{
		Teams: []stats.TeamRecord{
			{League: stats.PremierLeague, Team: "Arsenal", Played: 38, Wins: 28, Draws: 5, Losses: 5,
				GoalsFor: 91, GoalsAgainst: 29, XG: 86.2, XGA: 33.8, Points: 89, Attendance: 60200},
			{League: stats.PremierLeague, Team: "Chelsea", Played: 38, Wins: 18, Draws: 9, Losses: 11,
				GoalsFor: 77, GoalsAgainst: 63, XG: 76.9, XGA: 60.0, Points: 63, Attendance: 39700},
			{League: stats.LaLiga, Team: "Girona", Played: 38, Wins: 25, Draws: 6, Losses: 7,
				GoalsFor: 85, GoalsAgainst: 46, XG: 67.8, XGA: 51.2, Points: 81, Attendance: 13200},
		},
		Scorers: []stats.ScorerRecord{
			{Player: "Cole Palmer", Team: "Chelsea", League: stats.PremierLeague, Goals: 22},
			{Player: "Bukayo Saka", Team: "Arsenal", League: stats.PremierLeague, Goals: 16},
			{Player: "Artem Dovbyk", Team: "Girona", League: stats.LaLiga, Goals: 24},
		},
	}
	initDB(":memory:")
	if err := ingestDataset(dataset); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func get(t *testing.T, handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestLeagueTableHandler_SortedAndFiltered(t *testing.T) {
	rec := get(t, leagueTableHandler, "/api/league-table?league=Premier%20League")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []tableRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Arsenal", rows[0].Team)
	assert.Equal(t, "Chelsea", rows[1].Team)
	assert.Equal(t, 62, rows[0].GoalDiff)
	assert.InDelta(t, 89.0/38.0, rows[0].PointsPerGame, 1e-9)
}

func TestLeagueTableHandler_UnknownLeagueIs400(t *testing.T) {
	rec := get(t, leagueTableHandler, "/api/league-table?league=Eredivisie")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "league")
}

func TestLeagueTableHandler_UnknownTeamIsEmpty200(t *testing.T) {
	rec := get(t, leagueTableHandler, "/api/league-table?league=La%20Liga&team=Arsenal")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []tableRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Empty(t, rows)
}

func TestTopScorersHandler_OrderAndLimit(t *testing.T) {
	rec := get(t, topScorersHandler, "/api/top-scorers?league=Premier%20League&n=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []stats.ScorerRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Cole Palmer", rows[0].Player)
}

func TestRadarHandler_ValuesInUnitRange(t *testing.T) {
	rec := get(t, radarHandler, "/api/radar?team=Arsenal&league=Premier%20League")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp radarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, stats.RadarMetrics, resp.Metrics)
	for i, v := range resp.Values {
		assert.GreaterOrEqual(t, v, 0.0, resp.Metrics[i])
		assert.LessOrEqual(t, v, 1.0, resp.Metrics[i])
	}
}

func TestRadarHandler_MissingTeamParam(t *testing.T) {
	rec := get(t, radarHandler, "/api/radar")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTeamsHandler_SQLiteBacked(t *testing.T) {
	rec := get(t, teamsHandler, "/api/teams?league=Premier%20League")
	require.Equal(t, http.StatusOK, rec.Code)

	var teams []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &teams))
	assert.Equal(t, []string{"Arsenal", "Chelsea"}, teams)
}

func TestAttendanceLeadersHandler(t *testing.T) {
	rec := get(t, attendanceLeadersHandler, "/api/attendance-leaders?n=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []attendanceRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Arsenal", rows[0].Team)
	assert.Equal(t, "Chelsea", rows[1].Team)
}

func TestScatterDataHandler_XPoints(t *testing.T) {
	rec := get(t, scatterDataHandler(stats.XPointsScatter), "/api/scatter/xpoints?league=Premier%20League")
	require.Equal(t, http.StatusOK, rec.Code)

	var points []stats.ScatterPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	require.Len(t, points, 2)
	assert.Equal(t, "Arsenal", points[0].Team)
	assert.InDelta(t, 86.2*3-33.8*3, points[0].X, 1e-9)
	assert.Equal(t, 89.0, points[0].Y)
	assert.Equal(t, 62.0, points[0].Size)
}

func TestScatterDataHandler_UnknownLeagueIs400(t *testing.T) {
	rec := get(t, scatterDataHandler(stats.AttendanceScatter), "/api/scatter/attendance?league=MLS")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEfficiencyHandler(t *testing.T) {
	rec := get(t, efficiencyHandler, "/api/efficiency?league=Premier%20League&n=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp efficiencyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Rows, 2)
	require.Len(t, resp.TopPerformers, 1)
	// Arsenal outscores its xG and concedes under xGA; Chelsea does neither.
	assert.Equal(t, "Arsenal", resp.TopPerformers[0].Team)
}
