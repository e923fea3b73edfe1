package stats

import (
	"fmt"
	"sort"
)

// Filter returns the order-preserving view of the dataset matching the
// given league and/or team. Either argument may be empty ("all"). An
// unknown league name is a ValidationError; a team name absent from the
// (possibly league-filtered) view yields an empty subset, not an error —
// the UI decides how to tell the user there is no data.
func (d *Dataset) Filter(league, team string) (Subset, error) {
	if league != "" && !KnownLeague(league) {
		return Subset{}, &ValidationError{Field: "league", Reason: fmt.Sprintf("unknown league %q", league)}
	}

	var sub Subset
	for _, t := range d.Teams {
		if league != "" && t.League != league {
			continue
		}
		if team != "" && t.Team != team {
			continue
		}
		sub.Teams = append(sub.Teams, t)
	}
	for _, s := range d.Scorers {
		if league != "" && s.League != league {
			continue
		}
		if team != "" && s.Team != team {
			continue
		}
		sub.Scorers = append(sub.Scorers, s)
	}
	return sub, nil
}

// LeagueTable sorts the subset's teams by the standard tie-break policy:
// points, then goal difference, then goals scored, all descending. The
// order is total, so repeated calls over the same subset are identical.
func LeagueTable(sub Subset) []TeamRecord {
	table := make([]TeamRecord, len(sub.Teams))
	copy(table, sub.Teams)
	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff() != b.GoalDiff() {
			return a.GoalDiff() > b.GoalDiff()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Team < b.Team
	})
	return table
}

// TopScorers returns at most n scorers, goals descending, ties broken by
// player name so the order is reproducible. Fewer than n records is fine.
func TopScorers(sub Subset, n int) []ScorerRecord {
	scorers := make([]ScorerRecord, len(sub.Scorers))
	copy(scorers, sub.Scorers)
	sort.Slice(scorers, func(i, j int) bool {
		if scorers[i].Goals != scorers[j].Goals {
			return scorers[i].Goals > scorers[j].Goals
		}
		return scorers[i].Player < scorers[j].Player
	})
	if n < 0 {
		n = 0
	}
	if n < len(scorers) {
		scorers = scorers[:n]
	}
	return scorers
}

// Derived holds the per-team metrics computed from stored fields.
type Derived struct {
	PointsPerGame float64  `json:"points_per_game"`
	GoalDiff      int      `json:"goal_diff"`
	XGDelta       float64  `json:"xg_delta"`
	XGADelta      float64  `json:"xga_delta"`
	XPoints       float64  `json:"x_points"`
	OffensiveEff  float64  `json:"offensive_efficiency"`
	DefensiveEff  float64  `json:"defensive_efficiency"`
	OverallEff    float64  `json:"overall_efficiency"`
	Form          []string `json:"form"`
}

// DerivedMetrics computes the record's derived statistics. Every field is
// total over well-formed records: zero denominators yield 0, never a NaN
// or a panic. window caps the form sequence length; the result is
// most-recent-first and shorter than the window when fewer results exist.
func DerivedMetrics(rec TeamRecord, window int) Derived {
	d := Derived{
		GoalDiff: rec.GoalDiff(),
		XGDelta:  float64(rec.GoalsFor) - rec.XG,
		XGADelta: float64(rec.GoalsAgainst) - rec.XGA,
		XPoints:  rec.XG*3 - rec.XGA*3,
	}
	if rec.Played > 0 {
		d.PointsPerGame = float64(rec.Points) / float64(rec.Played)
	}
	if rec.XG > 0 {
		d.OffensiveEff = float64(rec.GoalsFor) / rec.XG
	}
	if rec.GoalsAgainst > 0 {
		d.DefensiveEff = rec.XGA / float64(rec.GoalsAgainst)
	}
	if d.OffensiveEff > 0 || d.DefensiveEff > 0 {
		d.OverallEff = (d.OffensiveEff + d.DefensiveEff) / 2
	}
	d.Form = formWindow(rec.Form, window)
	return d
}

// formWindow converts the stored oldest-first result letters into a
// most-recent-first slice of at most window entries.
func formWindow(raw string, window int) []string {
	if window <= 0 || raw == "" {
		return nil
	}
	letters := []rune(raw)
	if len(letters) > window {
		letters = letters[len(letters)-window:]
	}
	out := make([]string, 0, len(letters))
	for i := len(letters) - 1; i >= 0; i-- {
		out = append(out, string(letters[i]))
	}
	return out
}

// RadarMetrics are the categories the team radar covers, in display order.
var RadarMetrics = []string{"Points", "GoalsFor", "GoalsAgainst", "xG", "xGA", "Attendance"}

func metricValue(rec TeamRecord, metric string) (float64, error) {
	switch metric {
	case "Points":
		return float64(rec.Points), nil
	case "GoalsFor":
		return float64(rec.GoalsFor), nil
	case "GoalsAgainst":
		return float64(rec.GoalsAgainst), nil
	case "xG":
		return rec.XG, nil
	case "xGA":
		return rec.XGA, nil
	case "Attendance":
		return float64(rec.Attendance), nil
	case "PointsPerGame":
		if rec.Played == 0 {
			return 0, nil
		}
		return float64(rec.Points) / float64(rec.Played), nil
	}
	return 0, &ValidationError{Field: "metric", Reason: fmt.Sprintf("unknown metric %q", metric)}
}

// RadarVector normalizes the record's value for each requested metric into
// [0,1] relative to that metric's min/max across the subset. A metric with
// no spread across the subset maps to 0.5 for every team: it has no
// discriminating power and should not pin the chart to an edge.
func RadarVector(rec TeamRecord, metrics []string, sub Subset) ([]float64, error) {
	out := make([]float64, 0, len(metrics))
	for _, metric := range metrics {
		v, err := metricValue(rec, metric)
		if err != nil {
			return nil, err
		}

		min, max := v, v
		for _, t := range sub.Teams {
			tv, err := metricValue(t, metric)
			if err != nil {
				return nil, err
			}
			if tv < min {
				min = tv
			}
			if tv > max {
				max = tv
			}
		}

		if min == max {
			out = append(out, 0.5)
			continue
		}
		out = append(out, (v-min)/(max-min))
	}
	return out, nil
}

// TopPerformers ranks the subset by overall efficiency, best first, and
// returns at most n teams. Ties fall back to team name for determinism.
func TopPerformers(sub Subset, n int, window int) []TeamRecord {
	teams := make([]TeamRecord, len(sub.Teams))
	copy(teams, sub.Teams)
	sort.Slice(teams, func(i, j int) bool {
		a := DerivedMetrics(teams[i], window).OverallEff
		b := DerivedMetrics(teams[j], window).OverallEff
		if a != b {
			return a > b
		}
		return teams[i].Team < teams[j].Team
	})
	if n >= 0 && n < len(teams) {
		teams = teams[:n]
	}
	return teams
}

// ScatterPoint is one plotted team: a plain (x, y, size) triple plus the
// labels the rendering layer needs. No chart library types leak in here.
type ScatterPoint struct {
	Team   string  `json:"team"`
	League string  `json:"league"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Size   float64 `json:"size"`
}

// XPointsScatter pairs each team's expected points (3*xG − 3*xGA) with its
// actual points. Point size is |goal difference|; teams above y=x are
// overperforming their underlying numbers.
func XPointsScatter(sub Subset) []ScatterPoint {
	pts := make([]ScatterPoint, 0, len(sub.Teams))
	for _, t := range sub.Teams {
		gd := t.GoalDiff()
		if gd < 0 {
			gd = -gd
		}
		pts = append(pts, ScatterPoint{
			Team:   t.Team,
			League: t.League,
			X:      t.XG*3 - t.XGA*3,
			Y:      float64(t.Points),
			Size:   float64(gd),
		})
	}
	return pts
}

// AttendanceScatter pairs each team's average attendance with its points,
// sized by goals scored.
func AttendanceScatter(sub Subset) []ScatterPoint {
	pts := make([]ScatterPoint, 0, len(sub.Teams))
	for _, t := range sub.Teams {
		pts = append(pts, ScatterPoint{
			Team:   t.Team,
			League: t.League,
			X:      float64(t.Attendance),
			Y:      float64(t.Points),
			Size:   float64(t.GoalsFor),
		})
	}
	return pts
}
