package stats

import "fmt"

// League names as they appear in filters and output rows.
const (
	PremierLeague = "Premier League"
	LaLiga        = "La Liga"
	Bundesliga    = "Bundesliga"
	SerieA        = "Serie A"
	Ligue1        = "Ligue 1"
)

// Leagues is the fixed set of supported leagues, in display order.
var Leagues = []string{PremierLeague, LaLiga, Bundesliga, SerieA, Ligue1}

// countryToLeague maps the source file's country column to league names.
// The loader also accepts league names directly.
var countryToLeague = map[string]string{
	"England": PremierLeague,
	"Spain":   LaLiga,
	"Germany": Bundesliga,
	"Italy":   SerieA,
	"France":  Ligue1,
}

// LeagueColors are the brand colors used for chart points, keyed by league.
var LeagueColors = map[string]string{
	PremierLeague: "#3d195b",
	LaLiga:        "#ee8707",
	Bundesliga:    "#d20515",
	SerieA:        "#008fd7",
	Ligue1:        "#091c3e",
}

// KnownLeague reports whether name is one of the five supported leagues.
func KnownLeague(name string) bool {
	for _, l := range Leagues {
		if l == name {
			return true
		}
	}
	return false
}

// TeamRecord is one team's season line for one league.
type TeamRecord struct {
	League       string  `json:"league"`
	Team         string  `json:"team"`
	LeagueRank   int     `json:"league_rank"`
	Played       int     `json:"played"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	Losses       int     `json:"losses"`
	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
	XG           float64 `json:"xg"`
	XGA          float64 `json:"xga"`
	Points       int     `json:"points"`
	Attendance   int     `json:"attendance"`

	// Form holds raw result letters (W/D/L) oldest first, as delivered by
	// the source file. Empty when the column is absent.
	Form string `json:"form,omitempty"`
}

// GoalDiff is always recomputed; the source file's own goal-difference
// column, if any, is ignored.
func (r TeamRecord) GoalDiff() int {
	return r.GoalsFor - r.GoalsAgainst
}

// ScorerRecord is one league's top scorer entry for one team.
type ScorerRecord struct {
	Player string `json:"player"`
	Team   string `json:"team"`
	League string `json:"league"`
	Goals  int    `json:"goals"`
}

// Dataset holds one season of team and scorer records. It is built once by
// Load and never mutated afterwards; every filter returns a fresh view.
type Dataset struct {
	Teams   []TeamRecord
	Scorers []ScorerRecord
}

// Subset is an order-preserving filtered view over a Dataset.
type Subset struct {
	Teams   []TeamRecord
	Scorers []ScorerRecord
}

// ValidationError reports malformed input: an unknown league or metric
// name, a non-numeric statistic, or a missing column in the source file.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
