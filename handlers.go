package main

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"pitch-board/stats"
	"pitch-board/templates"
)

func homeHandler(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	if league != "" && !stats.KnownLeague(league) {
		templates.ErrorPage(fmt.Sprintf("Unknown league %q.", league)).Render(r.Context(), w)
		return
	}

	teams, err := teamsForLeague(league)
	if err != nil {
		http.Error(w, "Could not load teams", http.StatusInternalServerError)
		return
	}

	component := templates.Home(templates.HomePageData{
		Leagues:        stats.Leagues,
		Teams:          teams,
		SelectedLeague: league,
		TopN:           cfg.TopN,
	})
	templ.Handler(component).ServeHTTP(w, r)
}

func teamHandler(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	team := r.URL.Query().Get("team")
	if team == "" {
		templates.ErrorPage("Pick a team from the dashboard first.").Render(r.Context(), w)
		return
	}

	// Radar context is the league the team plays in when a league filter is
	// active, otherwise the whole dataset.
	sub, err := dataset.Filter(league, "")
	if err != nil {
		templates.ErrorPage(err.Error()).Render(r.Context(), w)
		return
	}

	var rec stats.TeamRecord
	found := false
	for _, t := range sub.Teams {
		if t.Team == team {
			rec = t
			found = true
			break
		}
	}
	if !found {
		templates.ErrorPage(fmt.Sprintf("No data for %q in this selection.", team)).Render(r.Context(), w)
		return
	}

	d := stats.DerivedMetrics(rec, cfg.FormWindow)

	radarVals, err := stats.RadarVector(rec, stats.RadarMetrics, sub)
	if err != nil {
		templates.ErrorPage(err.Error()).Render(r.Context(), w)
		return
	}
	radar := make([]templates.RadarEntry, len(stats.RadarMetrics))
	for i, m := range stats.RadarMetrics {
		radar[i] = templates.RadarEntry{Metric: m, Value: radarVals[i]}
	}

	component := templates.TeamPage(templates.TeamPageData{
		Team:   rec.Team,
		League: rec.League,
		Cards: []templates.MetricCard{
			{Label: "Points", Value: fmt.Sprintf("%d", rec.Points)},
			{Label: "Goal Difference", Value: fmt.Sprintf("%+d", d.GoalDiff)},
			{Label: "xG", Value: fmt.Sprintf("%.2f", rec.XG)},
			{Label: "xGA", Value: fmt.Sprintf("%.2f", rec.XGA)},
		},
		Radar:       radar,
		Form:        d.Form,
		Wins:        rec.Wins,
		Draws:       rec.Draws,
		Losses:      rec.Losses,
		AttackNote:  attackNote(rec.Team, d.XGDelta),
		DefenseNote: defenseNote(rec.Team, d.XGADelta),
	})
	templ.Handler(component).ServeHTTP(w, r)
}

func attackNote(team string, xgDelta float64) string {
	verb, diff := "overperforming", "more"
	if xgDelta < 0 {
		verb, diff = "underperforming", "fewer"
	}
	return fmt.Sprintf("%s is %s in attack, scoring %.2f %s goals than expected.",
		team, verb, abs(xgDelta), diff)
}

func defenseNote(team string, xgaDelta float64) string {
	// Conceding more than xGA is the bad direction.
	verb, diff := "underperforming", "more"
	if xgaDelta < 0 {
		verb, diff = "overperforming", "fewer"
	}
	return fmt.Sprintf("Defensively, %s is %s, conceding %.2f %s goals than expected.",
		team, verb, abs(xgaDelta), diff)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
