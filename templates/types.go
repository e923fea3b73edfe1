package templates

// HomePageData feeds the dashboard shell: the selector controls and the
// chart endpoints. Tables are filled in by page script from the JSON API.
type HomePageData struct {
	Leagues        []string
	Teams          []string
	SelectedLeague string
	TopN           int
}

// MetricCard is one headline number on the team analysis page.
type MetricCard struct {
	Label string
	Value string
}

// RadarEntry is one normalized axis of the team radar, already in [0,1].
type RadarEntry struct {
	Metric string
	Value  float64
}

// TeamPageData is the fully computed team analysis view. The handler does
// all the aggregation; the template only formats.
type TeamPageData struct {
	Team        string
	League      string
	Cards       []MetricCard
	Radar       []RadarEntry
	Form        []string
	Wins        int
	Draws       int
	Losses      int
	AttackNote  string
	DefenseNote string
}
