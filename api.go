package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pitch-board/stats"
)

// writeJSON is the single success path for the JSON API.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeError converts aggregator errors at the boundary: a ValidationError
// becomes a 400 the page script can show the user, anything else a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var verr *stats.ValidationError
	if errors.As(err, &verr) {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// tableRow is one standings line with its derived metrics flattened in.
type tableRow struct {
	League        string  `json:"league"`
	Team          string  `json:"team"`
	Played        int     `json:"played"`
	Wins          int     `json:"wins"`
	Draws         int     `json:"draws"`
	Losses        int     `json:"losses"`
	GoalsFor      int     `json:"goals_for"`
	GoalsAgainst  int     `json:"goals_against"`
	GoalDiff      int     `json:"goal_diff"`
	Points        int     `json:"points"`
	PointsPerGame float64 `json:"points_per_game"`
	XGDelta       float64 `json:"xg_delta"`
	XPoints       float64 `json:"x_points"`
}

func leagueTableHandler(w http.ResponseWriter, r *http.Request) {
	sub, err := dataset.Filter(r.URL.Query().Get("league"), r.URL.Query().Get("team"))
	if err != nil {
		writeError(w, err)
		return
	}

	table := stats.LeagueTable(sub)
	rows := make([]tableRow, 0, len(table))
	for _, t := range table {
		d := stats.DerivedMetrics(t, cfg.FormWindow)
		rows = append(rows, tableRow{
			League:        t.League,
			Team:          t.Team,
			Played:        t.Played,
			Wins:          t.Wins,
			Draws:         t.Draws,
			Losses:        t.Losses,
			GoalsFor:      t.GoalsFor,
			GoalsAgainst:  t.GoalsAgainst,
			GoalDiff:      d.GoalDiff,
			Points:        t.Points,
			PointsPerGame: d.PointsPerGame,
			XGDelta:       d.XGDelta,
			XPoints:       d.XPoints,
		})
	}
	// An empty selection is a 200 with no rows; the page shows the
	// "no data" message itself.
	writeJSON(w, rows)
}

func topScorersHandler(w http.ResponseWriter, r *http.Request) {
	sub, err := dataset.Filter(r.URL.Query().Get("league"), "")
	if err != nil {
		writeError(w, err)
		return
	}
	n := intParam(r, "n", cfg.TopN)
	scorers := stats.TopScorers(sub, n)
	if scorers == nil {
		scorers = []stats.ScorerRecord{}
	}
	writeJSON(w, scorers)
}

type radarResponse struct {
	Team    string    `json:"team"`
	League  string    `json:"league"`
	Metrics []string  `json:"metrics"`
	Values  []float64 `json:"values"`
}

func radarHandler(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")
	if team == "" {
		writeError(w, &stats.ValidationError{Field: "team", Reason: "required"})
		return
	}

	sub, err := dataset.Filter(r.URL.Query().Get("league"), "")
	if err != nil {
		writeError(w, err)
		return
	}

	for _, rec := range sub.Teams {
		if rec.Team != team {
			continue
		}
		values, err := stats.RadarVector(rec, stats.RadarMetrics, sub)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, radarResponse{Team: rec.Team, League: rec.League, Metrics: stats.RadarMetrics, Values: values})
		return
	}
	// Unknown team is an empty result, not an error.
	writeJSON(w, radarResponse{Team: team, Metrics: []string{}, Values: []float64{}})
}

func teamsHandler(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	if league != "" && !stats.KnownLeague(league) {
		writeError(w, &stats.ValidationError{Field: "league", Reason: "unknown league " + strconv.Quote(league)})
		return
	}
	teams, err := teamsForLeague(league)
	if err != nil {
		writeError(w, err)
		return
	}
	if teams == nil {
		teams = []string{}
	}
	writeJSON(w, teams)
}

func attendanceLeadersHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := attendanceLeaders(intParam(r, "n", cfg.TopN))
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []attendanceRow{}
	}
	writeJSON(w, rows)
}

// scatterDataHandler serves the scatter inputs as plain (x, y, size)
// tuples for callers that want the data instead of the rendered PNG.
func scatterDataHandler(build func(stats.Subset) []stats.ScatterPoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, err := dataset.Filter(r.URL.Query().Get("league"), "")
		if err != nil {
			writeError(w, err)
			return
		}
		points := build(sub)
		if points == nil {
			points = []stats.ScatterPoint{}
		}
		writeJSON(w, points)
	}
}

type efficiencyRow struct {
	League       string  `json:"league"`
	Team         string  `json:"team"`
	Points       int     `json:"points"`
	OffensiveEff float64 `json:"offensive_efficiency"`
	DefensiveEff float64 `json:"defensive_efficiency"`
	OverallEff   float64 `json:"overall_efficiency"`
}

type efficiencyResponse struct {
	Rows          []efficiencyRow `json:"rows"`
	TopPerformers []efficiencyRow `json:"top_performers"`
}

func efficiencyHandler(w http.ResponseWriter, r *http.Request) {
	sub, err := dataset.Filter(r.URL.Query().Get("league"), "")
	if err != nil {
		writeError(w, err)
		return
	}

	toRow := func(t stats.TeamRecord) efficiencyRow {
		d := stats.DerivedMetrics(t, cfg.FormWindow)
		return efficiencyRow{
			League:       t.League,
			Team:         t.Team,
			Points:       t.Points,
			OffensiveEff: d.OffensiveEff,
			DefensiveEff: d.DefensiveEff,
			OverallEff:   d.OverallEff,
		}
	}

	resp := efficiencyResponse{Rows: []efficiencyRow{}, TopPerformers: []efficiencyRow{}}
	for _, t := range sub.Teams {
		resp.Rows = append(resp.Rows, toRow(t))
	}
	for _, t := range stats.TopPerformers(sub, intParam(r, "n", cfg.TopN), cfg.FormWindow) {
		resp.TopPerformers = append(resp.TopPerformers, toRow(t))
	}
	writeJSON(w, resp)
}
