package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	_ "github.com/glebarez/go-sqlite"

	"pitch-board/stats"
)

// cfg and dataset are set once in main and immutable afterwards. Every
// request recomputes its view from the dataset with the filter selection
// passed explicitly; there is no per-session state.
var (
	cfg     Config
	dataset *stats.Dataset
)

func main() {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		fmt.Printf("❌ Config error: %v\n", err)
		os.Exit(1)
	}

	// A partially loaded season is worse than no dashboard at all.
	dataset, err = stats.LoadFile(cfg.DataFile)
	if err != nil {
		fmt.Printf("❌ Could not load season data from %s: %v\n", cfg.DataFile, err)
		os.Exit(1)
	}
	fmt.Printf("📦 Loaded %d teams and %d scorers from %s\n",
		len(dataset.Teams), len(dataset.Scorers), cfg.DataFile)

	initDB(cfg.DBPath)
	if err := ingestDataset(dataset); err != nil {
		fmt.Printf("❌ Could not mirror season into sqlite: %v\n", err)
		os.Exit(1)
	}

	r := mux.NewRouter()
	r.HandleFunc("/", homeHandler).Methods(http.MethodGet)
	r.HandleFunc("/team", teamHandler).Methods(http.MethodGet)

	r.HandleFunc("/api/league-table", leagueTableHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/top-scorers", topScorersHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/radar", radarHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/teams", teamsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/attendance-leaders", attendanceLeadersHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/efficiency", efficiencyHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/scatter/xpoints", scatterDataHandler(stats.XPointsScatter)).Methods(http.MethodGet)
	r.HandleFunc("/api/scatter/attendance", scatterDataHandler(stats.AttendanceScatter)).Methods(http.MethodGet)

	r.HandleFunc("/charts/xpoints.png", xPointsChartHandler).Methods(http.MethodGet)
	r.HandleFunc("/charts/attendance.png", attendanceChartHandler).Methods(http.MethodGet)

	fmt.Printf("⚽ Pitch Board is running on http://localhost%s\n", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		fmt.Printf("❌ Server stopped: %v\n", err)
		os.Exit(1)
	}
}
