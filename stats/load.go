package stats

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// Columns the season file must carry. Form is optional.
var requiredColumns = []string{
	"Team", "Country", "LeagueRanking", "Matches Played", "Wins", "Draws",
	"Losses", "GoalsFor", "GoalsAgainst", "xG", "xGA", "Points",
	"Attendance", "TopScorer", "TopScorerGoals",
}

// LoadFile reads the season CSV at path. Any error here is fatal for the
// session: the caller must not start with a partially loaded dataset.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open season file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses one season of team records from CSV. The header is validated
// against the required schema before any row is converted; numeric fields
// that fail to parse reject the whole load with a ValidationError naming
// the field.
func Load(r io.Reader) (*Dataset, error) {
	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, fmt.Errorf("read season csv: %w", df.Err)
	}

	col := make(map[string]int)
	for i, name := range df.Names() {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, &ValidationError{Field: name, Reason: "required column missing"}
		}
	}
	formIdx, hasForm := col["Form"]

	rows := df.Records()
	if len(rows) < 2 {
		return nil, &ValidationError{Field: "rows", Reason: "season file has no data rows"}
	}

	ds := &Dataset{}
	for _, row := range rows[1:] {
		league, err := leagueFor(row[col["Country"]])
		if err != nil {
			return nil, err
		}

		rec := TeamRecord{
			League: league,
			Team:   strings.TrimSpace(row[col["Team"]]),
		}
		if rec.Team == "" {
			return nil, &ValidationError{Field: "Team", Reason: "empty team name"}
		}

		ints := []struct {
			field string
			dst   *int
		}{
			{"LeagueRanking", &rec.LeagueRank},
			{"Matches Played", &rec.Played},
			{"Wins", &rec.Wins},
			{"Draws", &rec.Draws},
			{"Losses", &rec.Losses},
			{"GoalsFor", &rec.GoalsFor},
			{"GoalsAgainst", &rec.GoalsAgainst},
			{"Points", &rec.Points},
			{"Attendance", &rec.Attendance},
		}
		for _, c := range ints {
			v, err := parseInt(c.field, row[col[c.field]])
			if err != nil {
				return nil, err
			}
			*c.dst = v
		}

		if rec.XG, err = parseFloat("xG", row[col["xG"]]); err != nil {
			return nil, err
		}
		if rec.XGA, err = parseFloat("xGA", row[col["xGA"]]); err != nil {
			return nil, err
		}

		if hasForm {
			form, err := parseForm(row[formIdx])
			if err != nil {
				return nil, err
			}
			rec.Form = form
		}

		// Stored points stay authoritative even when the identity fails;
		// the mismatch is worth a line in the log.
		if want := 3*rec.Wins + rec.Draws; rec.Points != want {
			fmt.Printf("⚠️  %s: stored points %d != 3*W+D (%d), keeping stored value\n",
				rec.Team, rec.Points, want)
		}

		ds.Teams = append(ds.Teams, rec)

		scorer := strings.TrimSpace(row[col["TopScorer"]])
		if scorer != "" {
			goals, err := parseInt("TopScorerGoals", row[col["TopScorerGoals"]])
			if err != nil {
				return nil, err
			}
			ds.Scorers = append(ds.Scorers, ScorerRecord{
				Player: scorer,
				Team:   rec.Team,
				League: league,
				Goals:  goals,
			})
		}
	}

	return ds, nil
}

func leagueFor(country string) (string, error) {
	country = strings.TrimSpace(country)
	if l, ok := countryToLeague[country]; ok {
		return l, nil
	}
	if KnownLeague(country) {
		return country, nil
	}
	return "", &ValidationError{Field: "Country", Reason: fmt.Sprintf("unknown league %q", country)}
}

func parseInt(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	v, err := strconv.Atoi(raw)
	if err != nil {
		// Some exports write integer columns as "61.0".
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("not a number: %q", raw)}
		}
		v = int(f)
	}
	if v < 0 {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("negative value %d", v)}
	}
	return v, nil
}

func parseFloat(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("not a number: %q", raw)}
	}
	if v < 0 {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("negative value %g", v)}
	}
	return v, nil
}

func parseForm(raw string) (string, error) {
	form := strings.ToUpper(strings.TrimSpace(raw))
	for _, c := range form {
		if c != 'W' && c != 'D' && c != 'L' {
			return "", &ValidationError{Field: "Form", Reason: fmt.Sprintf("bad result letter %q", string(c))}
		}
	}
	return form, nil
}
