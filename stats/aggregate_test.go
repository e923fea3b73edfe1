package stats

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// closeTo compares float results computed in different orders; exact
// equality is wrong for them (96 - 81.6 folds differently than the
// runtime subtraction).
func closeTo(got, want float64) bool {
	return math.Abs(got-want) <= 1e-9
}

// team builds a minimal record; fields that matter per-test are set by the
// caller on the returned value.
func team(league, name string, points, gf, ga int) TeamRecord {
	return TeamRecord{
		League:       league,
		Team:         name,
		Played:       38,
		Points:       points,
		GoalsFor:     gf,
		GoalsAgainst: ga,
	}
}

func testDataset() *Dataset {
	return &Dataset{
		Teams: []TeamRecord{
			team(PremierLeague, "Arsenal", 89, 91, 29),
			team(LaLiga, "Girona", 81, 85, 46),
			team(PremierLeague, "Chelsea", 63, 77, 63),
			team(SerieA, "Inter", 94, 89, 22),
		},
		Scorers: []ScorerRecord{
			{Player: "Saka", Team: "Arsenal", League: PremierLeague, Goals: 16},
			{Player: "Dovbyk", Team: "Girona", League: LaLiga, Goals: 24},
			{Player: "Palmer", Team: "Chelsea", League: PremierLeague, Goals: 22},
		},
	}
}

func TestFilter_LeagueOnly(t *testing.T) {
	ds := testDataset()
	sub, err := ds.Filter(PremierLeague, "")
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if len(sub.Teams) != 2 {
		t.Fatalf("Teams len = %d, want 2", len(sub.Teams))
	}
	for _, rec := range sub.Teams {
		if rec.League != PremierLeague {
			t.Errorf("row for %s has league %q", rec.Team, rec.League)
		}
	}
	// Source order must be preserved.
	if sub.Teams[0].Team != "Arsenal" || sub.Teams[1].Team != "Chelsea" {
		t.Errorf("order = [%s, %s], want [Arsenal, Chelsea]", sub.Teams[0].Team, sub.Teams[1].Team)
	}
}

func TestFilter_UnknownLeague(t *testing.T) {
	_, err := testDataset().Filter("Eredivisie", "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Field != "league" {
		t.Errorf("Field = %q, want league", verr.Field)
	}
}

func TestFilter_UnknownTeamIsEmptyNotError(t *testing.T) {
	sub, err := testDataset().Filter(PremierLeague, "Girona")
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if len(sub.Teams) != 0 || len(sub.Scorers) != 0 {
		t.Errorf("subset not empty: %d teams, %d scorers", len(sub.Teams), len(sub.Scorers))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	ds := testDataset()
	before := make([]TeamRecord, len(ds.Teams))
	copy(before, ds.Teams)

	a, _ := ds.Filter(PremierLeague, "")
	b, _ := ds.Filter(PremierLeague, "")

	if !reflect.DeepEqual(a, b) {
		t.Error("two identical Filter calls disagree")
	}
	if !reflect.DeepEqual(before, ds.Teams) {
		t.Error("Filter mutated the dataset")
	}
}

func TestLeagueTable_TieBreakOnGoalDiff(t *testing.T) {
	a := team(PremierLeague, "A", 60, 40, 30) // +10
	b := team(PremierLeague, "B", 60, 40, 35) // +5
	table := LeagueTable(Subset{Teams: []TeamRecord{b, a}})
	if table[0].Team != "A" || table[1].Team != "B" {
		t.Errorf("table = [%s, %s], want [A, B]", table[0].Team, table[1].Team)
	}
}

func TestLeagueTable_Sorted(t *testing.T) {
	sub, _ := testDataset().Filter("", "")
	table := LeagueTable(sub)
	for i := 1; i < len(table); i++ {
		a, b := table[i-1], table[i]
		if a.Points < b.Points {
			t.Errorf("points out of order at %d: %d < %d", i, a.Points, b.Points)
		}
		if a.Points == b.Points && a.GoalDiff() < b.GoalDiff() {
			t.Errorf("goal diff out of order at %d", i)
		}
	}
}

func TestTopScorers_TieBrokenAlphabetically(t *testing.T) {
	sub := Subset{Scorers: []ScorerRecord{
		{Player: "Zed", Goals: 10},
		{Player: "Ann", Goals: 10},
		{Player: "Bo", Goals: 7},
	}}
	got := TopScorers(sub, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Player != "Ann" || got[1].Player != "Zed" {
		t.Errorf("got [%s, %s], want [Ann, Zed]", got[0].Player, got[1].Player)
	}
}

func TestTopScorers_FewerThanN(t *testing.T) {
	sub := Subset{Scorers: []ScorerRecord{{Player: "Solo", Goals: 5}}}
	got := TopScorers(sub, 10)
	if len(got) != 1 {
		t.Errorf("len = %d, want 1 (never an error for short subsets)", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Goals > got[i-1].Goals {
			t.Errorf("goals increase at %d", i)
		}
	}
}

func TestDerivedMetrics_ZeroMatchesPlayed(t *testing.T) {
	rec := TeamRecord{Team: "Fresh", Played: 0, Points: 0}
	d := DerivedMetrics(rec, 5)
	if d.PointsPerGame != 0 {
		t.Errorf("PointsPerGame = %v, want 0", d.PointsPerGame)
	}
}

func TestDerivedMetrics_ZeroDenominators(t *testing.T) {
	// xG and goals against of zero must not produce Inf or NaN.
	d := DerivedMetrics(TeamRecord{Team: "X", Played: 1}, 5)
	if d.OffensiveEff != 0 || d.DefensiveEff != 0 || d.OverallEff != 0 {
		t.Errorf("efficiencies = %v/%v/%v, want zeros", d.OffensiveEff, d.DefensiveEff, d.OverallEff)
	}
}

func TestDerivedMetrics_Values(t *testing.T) {
	rec := TeamRecord{Team: "City", Played: 38, Points: 91, GoalsFor: 96, GoalsAgainst: 34, XG: 81.6, XGA: 35.1}
	d := DerivedMetrics(rec, 5)
	if d.GoalDiff != 62 {
		t.Errorf("GoalDiff = %d, want 62", d.GoalDiff)
	}
	if got, want := d.XGDelta, 96-81.6; !closeTo(got, want) {
		t.Errorf("XGDelta = %v, want %v", got, want)
	}
	if got, want := d.XPoints, 81.6*3-35.1*3; !closeTo(got, want) {
		t.Errorf("XPoints = %v, want %v", got, want)
	}
	if got, want := d.PointsPerGame, 91.0/38.0; !closeTo(got, want) {
		t.Errorf("PointsPerGame = %v, want %v", got, want)
	}
}

func TestDerivedMetrics_FormWindow(t *testing.T) {
	rec := TeamRecord{Team: "X", Played: 7, Form: "LDWWDLW"}
	d := DerivedMetrics(rec, 5)
	// Last five results, most recent first.
	want := []string{"W", "L", "D", "W", "W"}
	if !reflect.DeepEqual(d.Form, want) {
		t.Errorf("Form = %v, want %v", d.Form, want)
	}
}

func TestDerivedMetrics_ShortFormNotPadded(t *testing.T) {
	d := DerivedMetrics(TeamRecord{Team: "X", Form: "WD"}, 5)
	want := []string{"D", "W"}
	if !reflect.DeepEqual(d.Form, want) {
		t.Errorf("Form = %v, want %v (no fabricated entries)", d.Form, want)
	}
}

func TestRadarVector_InUnitRange(t *testing.T) {
	sub, _ := testDataset().Filter("", "")
	for _, rec := range sub.Teams {
		vec, err := RadarVector(rec, RadarMetrics, sub)
		if err != nil {
			t.Fatalf("RadarVector(%s): %v", rec.Team, err)
		}
		if len(vec) != len(RadarMetrics) {
			t.Fatalf("len = %d, want %d", len(vec), len(RadarMetrics))
		}
		for i, v := range vec {
			if v < 0 || v > 1 {
				t.Errorf("%s %s = %v, outside [0,1]", rec.Team, RadarMetrics[i], v)
			}
		}
	}
}

func TestRadarVector_DegenerateMetricIsHalf(t *testing.T) {
	// Every team has the same attendance: no discriminating power.
	a := team(PremierLeague, "A", 60, 40, 30)
	b := team(PremierLeague, "B", 50, 35, 30)
	a.Attendance, b.Attendance = 40000, 40000
	sub := Subset{Teams: []TeamRecord{a, b}}

	vec, err := RadarVector(a, []string{"Attendance"}, sub)
	if err != nil {
		t.Fatal(err)
	}
	if vec[0] != 0.5 {
		t.Errorf("degenerate metric = %v, want 0.5", vec[0])
	}
}

func TestRadarVector_UnknownMetric(t *testing.T) {
	sub, _ := testDataset().Filter("", "")
	_, err := RadarVector(sub.Teams[0], []string{"Vibes"}, sub)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestTopPerformers_RankedByOverallEfficiency(t *testing.T) {
	strong := TeamRecord{Team: "Strong", Played: 38, GoalsFor: 80, GoalsAgainst: 30, XG: 60, XGA: 45}
	weak := TeamRecord{Team: "Weak", Played: 38, GoalsFor: 40, GoalsAgainst: 60, XG: 55, XGA: 40}
	got := TopPerformers(Subset{Teams: []TeamRecord{weak, strong}}, 1, 5)
	if len(got) != 1 || got[0].Team != "Strong" {
		t.Errorf("got %v, want [Strong]", got)
	}
}

func TestXPointsScatter(t *testing.T) {
	rec := TeamRecord{Team: "X", League: PremierLeague, Points: 70, GoalsFor: 50, GoalsAgainst: 60, XG: 55, XGA: 40}
	pts := XPointsScatter(Subset{Teams: []TeamRecord{rec}})
	if len(pts) != 1 {
		t.Fatalf("len = %d, want 1", len(pts))
	}
	p := pts[0]
	if p.X != 55*3-40*3 {
		t.Errorf("X = %v, want %v", p.X, 55*3-40*3)
	}
	if p.Y != 70 {
		t.Errorf("Y = %v, want 70", p.Y)
	}
	if p.Size != 10 {
		t.Errorf("Size = %v, want 10 (|goal diff|)", p.Size)
	}
}
