package main

import (
	"database/sql"

	"pitch-board/stats"
)

var db *sql.DB

// initDB opens the sqlite mirror of the season file. The default path is
// :memory:, so nothing outlives the process unless DB_PATH says otherwise.
func initDB(path string) {
	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		panic(err)
	}
	// A :memory: database exists per connection; keep the pool at one so
	// every query sees the ingested season.
	db.SetMaxOpenConns(1)

	db.Exec(`
    CREATE TABLE IF NOT EXISTS teams (
      id INTEGER PRIMARY KEY AUTOINCREMENT,
      league TEXT,
      team TEXT,
      league_rank INTEGER,
      played INTEGER,
      wins INTEGER,
      draws INTEGER,
      losses INTEGER,
      goals_for INTEGER,
      goals_against INTEGER,
      xg REAL,
      xga REAL,
      points INTEGER,
      attendance INTEGER
    );`)

	db.Exec(`
    CREATE TABLE IF NOT EXISTS scorers (
      id INTEGER PRIMARY KEY AUTOINCREMENT,
      player TEXT,
      team TEXT,
      league TEXT,
      goals INTEGER
    );`)
}

// ingestDataset mirrors the loaded season into sqlite so the selector and
// leaderboard endpoints can lean on SQL instead of re-walking slices.
func ingestDataset(ds *stats.Dataset) error {
	for _, t := range ds.Teams {
		_, err := db.Exec(`
			INSERT INTO teams (league, team, league_rank, played, wins, draws, losses, goals_for, goals_against, xg, xga, points, attendance)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.League, t.Team, t.LeagueRank, t.Played, t.Wins, t.Draws, t.Losses,
			t.GoalsFor, t.GoalsAgainst, t.XG, t.XGA, t.Points, t.Attendance)
		if err != nil {
			return err
		}
	}
	for _, s := range ds.Scorers {
		_, err := db.Exec(`
			INSERT INTO scorers (player, team, league, goals) VALUES (?, ?, ?, ?)`,
			s.Player, s.Team, s.League, s.Goals)
		if err != nil {
			return err
		}
	}
	return nil
}

// teamsForLeague returns the team names for the selector dropdown. An
// empty league means every league.
func teamsForLeague(league string) ([]string, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if league == "" {
		rows, err = db.Query(`SELECT DISTINCT team FROM teams ORDER BY team`)
	} else {
		rows, err = db.Query(`SELECT DISTINCT team FROM teams WHERE league = ? ORDER BY team`, league)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

type attendanceRow struct {
	Team       string `json:"team"`
	League     string `json:"league"`
	Attendance int    `json:"attendance"`
	Points     int    `json:"points"`
}

func attendanceLeaders(n int) ([]attendanceRow, error) {
	rows, err := db.Query(`
		SELECT team, league, attendance, points FROM teams
		ORDER BY attendance DESC, team ASC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []attendanceRow
	for rows.Next() {
		var r attendanceRow
		if err := rows.Scan(&r.Team, &r.League, &r.Attendance, &r.Points); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
