package templates

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const pageHead = `<!doctype html><html lang="en"><head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>Big 5 League Stats</title><script src="https://cdn.tailwindcss.com"></script></head><body class="bg-[#F7F0E6] font-sans text-stone-800">`

// Home is the dashboard shell: filter controls plus empty table bodies the
// page script fills from the JSON API.
func Home(data HomePageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(pageHead)
		buf.WriteString(`<div class="max-w-6xl mx-auto p-6"><h1 class="text-3xl font-black mb-2">⚽ Big 5 League Stats 2023/24</h1>`)
		buf.WriteString(`<p class="mb-6 text-stone-600">Standings, top scorers and team performance across Europe's top five leagues.</p>`)

		// Filter bar
		buf.WriteString(`<div class="bg-white/90 rounded-3xl p-4 shadow mb-6 flex flex-wrap gap-4 items-end">`)
		buf.WriteString(`<div><label class="block text-sm font-semibold mb-1">League</label><select id="league" class="p-2 border rounded-md"><option value="">All leagues</option>`)
		for _, l := range data.Leagues {
			buf.WriteString(`<option value="`)
			buf.WriteString(templ.EscapeString(l))
			if l == data.SelectedLeague {
				buf.WriteString(`" selected>`)
			} else {
				buf.WriteString(`">`)
			}
			buf.WriteString(templ.EscapeString(l))
			buf.WriteString(`</option>`)
		}
		buf.WriteString(`</select></div>`)
		buf.WriteString(`<div><label class="block text-sm font-semibold mb-1">Team</label><select id="team" class="p-2 border rounded-md"><option value="">All teams</option>`)
		for _, t := range data.Teams {
			buf.WriteString(`<option value="`)
			buf.WriteString(templ.EscapeString(t))
			buf.WriteString(`">`)
			buf.WriteString(templ.EscapeString(t))
			buf.WriteString(`</option>`)
		}
		buf.WriteString(`</select></div>`)
		fmt.Fprintf(&buf, `<div><label class="block text-sm font-semibold mb-1">Top scorers</label><input id="topn" type="number" min="1" value="%d" class="p-2 border rounded-md w-24"></div>`, data.TopN)
		buf.WriteString(`<button id="applyBtn" class="bg-[#5D4037] text-white font-bold py-2 px-6 rounded-xl">Apply</button>`)
		buf.WriteString(`</div>`)

		// Tables row
		buf.WriteString(`<div class="grid md:grid-cols-2 gap-6 mb-6">`)
		buf.WriteString(`<div class="bg-white/90 rounded-3xl p-4 shadow"><h2 class="text-xl font-bold mb-2">📊 League Table</h2><div id="table" class="overflow-x-auto"></div></div>`)
		buf.WriteString(`<div class="bg-white/90 rounded-3xl p-4 shadow"><h2 class="text-xl font-bold mb-2">🏆 Top Scorers</h2><div id="scorers"></div></div>`)
		buf.WriteString(`</div>`)

		// Charts row
		buf.WriteString(`<div class="grid md:grid-cols-2 gap-6 mb-6">`)
		buf.WriteString(`<div class="bg-white/90 rounded-3xl p-4 shadow"><h2 class="text-xl font-bold mb-2">Points vs Expected Points</h2><img id="xpointsChart" src="/charts/xpoints.png" alt="points vs expected points"></div>`)
		buf.WriteString(`<div class="bg-white/90 rounded-3xl p-4 shadow"><h2 class="text-xl font-bold mb-2">Attendance vs Performance</h2><img id="attChart" src="/charts/attendance.png" alt="attendance vs points"></div>`)
		buf.WriteString(`</div>`)

		// Efficiency + attendance leaders
		buf.WriteString(`<div class="grid md:grid-cols-2 gap-6 mb-6">`)
		buf.WriteString(`<div class="bg-white/90 rounded-3xl p-4 shadow"><h2 class="text-xl font-bold mb-2">Top Overall Performers</h2><div id="efficiency"></div></div>`)
		buf.WriteString(`<div class="bg-white/90 rounded-3xl p-4 shadow"><h2 class="text-xl font-bold mb-2">Attendance Leaders</h2><div id="attendance"></div></div>`)
		buf.WriteString(`</div>`)

		buf.WriteString(homeScript)
		buf.WriteString(`</div></body></html>`)

		_, err := w.Write(buf.Bytes())
		return err
	})
}

const homeScript = `<script>
function esc(s){ const d=document.createElement('div'); d.innerText=s==null?'':String(s); return d.innerHTML; }
function noData(el){ el.innerHTML = '<p class="text-stone-500 italic">No data for this selection.</p>'; }
async function getJSON(url){
  const resp = await fetch(url);
  const body = await resp.json();
  if (!resp.ok) { throw new Error(body.error || 'request failed'); }
  return body;
}
function teamLink(row){
  return '<a class="font-semibold underline" href="/team?team=' + encodeURIComponent(row.team) + '&league=' + encodeURIComponent(row.league) + '">' + esc(row.team) + '</a>';
}
async function renderTable(league, team){
  const el = document.getElementById('table');
  const rows = await getJSON('/api/league-table?league=' + encodeURIComponent(league) + '&team=' + encodeURIComponent(team));
  if (!rows.length) { noData(el); return; }
  let html = '<table class="w-full text-sm"><tr class="text-left border-b"><th>#</th><th>Team</th><th>P</th><th>W</th><th>D</th><th>L</th><th>GF</th><th>GA</th><th>GD</th><th>Pts</th><th>PPG</th></tr>';
  rows.forEach(function(r, i){
    html += '<tr class="border-b"><td>' + (i+1) + '</td><td>' + teamLink(r) + '</td><td>' + r.played + '</td><td>' + r.wins + '</td><td>' + r.draws + '</td><td>' + r.losses + '</td><td>' + r.goals_for + '</td><td>' + r.goals_against + '</td><td>' + r.goal_diff + '</td><td class="font-bold">' + r.points + '</td><td>' + r.points_per_game.toFixed(2) + '</td></tr>';
  });
  el.innerHTML = html + '</table>';
}
async function renderScorers(league, n){
  const el = document.getElementById('scorers');
  const rows = await getJSON('/api/top-scorers?league=' + encodeURIComponent(league) + '&n=' + n);
  if (!rows.length) { noData(el); return; }
  const max = rows[0].goals || 1;
  let html = '';
  rows.forEach(function(r){
    const pct = Math.round(r.goals / max * 100);
    html += '<div class="mb-2"><div class="flex justify-between text-sm"><span>' + esc(r.player) + ' <span class="text-stone-500">(' + esc(r.team) + ')</span></span><span class="font-bold">' + r.goals + '</span></div>' +
      '<div class="bg-stone-200 rounded h-2"><div class="bg-[#5D4037] rounded h-2" style="width:' + pct + '%"></div></div></div>';
  });
  el.innerHTML = html;
}
async function renderEfficiency(league){
  const el = document.getElementById('efficiency');
  const data = await getJSON('/api/efficiency?league=' + encodeURIComponent(league));
  const rows = data.top_performers || [];
  if (!rows.length) { noData(el); return; }
  let html = '<table class="w-full text-sm"><tr class="text-left border-b"><th>Team</th><th>League</th><th>Pts</th><th>Off</th><th>Def</th><th>Overall</th></tr>';
  rows.forEach(function(r){
    html += '<tr class="border-b"><td>' + teamLink(r) + '</td><td>' + esc(r.league) + '</td><td>' + r.points + '</td><td>' + r.offensive_efficiency.toFixed(2) + '</td><td>' + r.defensive_efficiency.toFixed(2) + '</td><td class="font-bold">' + r.overall_efficiency.toFixed(2) + '</td></tr>';
  });
  el.innerHTML = html + '</table>';
}
async function renderAttendance(n){
  const el = document.getElementById('attendance');
  const rows = await getJSON('/api/attendance-leaders?n=' + n);
  if (!rows.length) { noData(el); return; }
  let html = '<table class="w-full text-sm"><tr class="text-left border-b"><th>Team</th><th>League</th><th>Attendance</th><th>Pts</th></tr>';
  rows.forEach(function(r){
    html += '<tr class="border-b"><td>' + esc(r.team) + '</td><td>' + esc(r.league) + '</td><td>' + r.attendance.toLocaleString() + '</td><td>' + r.points + '</td></tr>';
  });
  el.innerHTML = html + '</table>';
}
async function loadTeams(league){
  const sel = document.getElementById('team');
  const teams = await getJSON('/api/teams?league=' + encodeURIComponent(league));
  let html = '<option value="">All teams</option>';
  teams.forEach(function(t){ html += '<option value="' + esc(t) + '">' + esc(t) + '</option>'; });
  sel.innerHTML = html;
}
async function refresh(){
  const league = document.getElementById('league').value;
  const team = document.getElementById('team').value;
  const n = document.getElementById('topn').value || 10;
  document.getElementById('xpointsChart').src = '/charts/xpoints.png?league=' + encodeURIComponent(league);
  document.getElementById('attChart').src = '/charts/attendance.png?league=' + encodeURIComponent(league);
  try {
    await Promise.all([renderTable(league, team), renderScorers(league, n), renderEfficiency(league), renderAttendance(n)]);
  } catch (e) {
    alert(e.message);
  }
}
document.getElementById('applyBtn').addEventListener('click', refresh);
document.getElementById('league').addEventListener('change', function(){ loadTeams(this.value).then(refresh); });
refresh();
</script>`

// TeamPage renders the fully computed team analysis view.
func TeamPage(data TeamPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(pageHead)
		buf.WriteString(`<div class="max-w-4xl mx-auto p-6">`)
		fmt.Fprintf(&buf, `<h1 class="text-3xl font-black mb-1">🔍 %s</h1><p class="mb-6 text-stone-600">%s</p>`,
			templ.EscapeString(data.Team), templ.EscapeString(data.League))

		buf.WriteString(`<div class="grid grid-cols-2 md:grid-cols-4 gap-4 mb-6">`)
		for _, c := range data.Cards {
			fmt.Fprintf(&buf, `<div class="bg-white/90 rounded-3xl p-4 shadow text-center"><div class="text-sm text-stone-500">%s</div><div class="text-2xl font-extrabold">%s</div></div>`,
				templ.EscapeString(c.Label), templ.EscapeString(c.Value))
		}
		buf.WriteString(`</div>`)

		// Radar values as horizontal bars; the normalization already puts
		// every value in [0,1].
		buf.WriteString(`<div class="bg-white/90 rounded-3xl p-4 shadow mb-6"><h2 class="text-xl font-bold mb-2">Performance Radar</h2>`)
		for _, r := range data.Radar {
			pct := int(r.Value * 100)
			fmt.Fprintf(&buf, `<div class="mb-2"><div class="flex justify-between text-sm"><span>%s</span><span>%d%%</span></div><div class="bg-stone-200 rounded h-2"><div class="bg-[#5D4037] rounded h-2" style="width:%d%%"></div></div></div>`,
				templ.EscapeString(r.Metric), pct, pct)
		}
		buf.WriteString(`<p class="text-sm text-stone-500 mt-2">100% means best in the current selection, 0% worst; 50% on every axis means the field is level.</p></div>`)

		buf.WriteString(`<div class="bg-white/90 rounded-3xl p-4 shadow mb-6"><h2 class="text-xl font-bold mb-2">Expected vs Actual Goals</h2>`)
		fmt.Fprintf(&buf, `<p class="mb-1">%s</p><p>%s</p>`,
			templ.EscapeString(data.AttackNote), templ.EscapeString(data.DefenseNote))
		buf.WriteString(`</div>`)

		buf.WriteString(`<div class="bg-white/90 rounded-3xl p-4 shadow mb-6"><h2 class="text-xl font-bold mb-2">Form</h2>`)
		if len(data.Form) == 0 {
			buf.WriteString(`<p class="text-stone-500 italic">No recent results recorded.</p>`)
		} else {
			buf.WriteString(`<div class="flex gap-2 mb-2">`)
			for _, f := range data.Form {
				color := "bg-stone-400"
				switch f {
				case "W":
					color = "bg-green-600"
				case "L":
					color = "bg-red-600"
				}
				fmt.Fprintf(&buf, `<span class="%s text-white font-bold rounded-full w-8 h-8 flex items-center justify-center">%s</span>`,
					color, templ.EscapeString(f))
			}
			buf.WriteString(`</div><p class="text-sm text-stone-500">Most recent result first.</p>`)
		}
		fmt.Fprintf(&buf, `<p class="mt-2">Season: %d wins, %d draws, %d losses.</p>`, data.Wins, data.Draws, data.Losses)
		buf.WriteString(`</div>`)

		buf.WriteString(`<a class="underline font-semibold" href="/">← Back to dashboard</a>`)
		buf.WriteString(`</div></body></html>`)

		_, err := w.Write(buf.Bytes())
		return err
	})
}

// ErrorPage is the user-visible message for a bad selection.
func ErrorPage(msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(pageHead)
		fmt.Fprintf(&buf, `<div class="max-w-xl mx-auto p-6"><div class="bg-white/90 rounded-3xl p-6 shadow"><h1 class="text-2xl font-black mb-2">No data</h1><p>%s</p><a class="underline font-semibold" href="/">← Back to dashboard</a></div></div>`,
			templ.EscapeString(msg))
		buf.WriteString(`</body></html>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}
