package server

// pageTemplate renders the whole viewer page server-side. Summary rows
// toggle their detail panel through POST /rows/toggle, so the expanded
// set lives on the server and survives the full-page reload each
// command causes.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --hover: #e9ecef; --muted: #6c757d;
  --green: #2ecc71; --red: #e74c3c; --accent: #0d6efd;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1200px; margin: 0 auto; }
header { margin-bottom: 1rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p.caption { color: var(--muted); font-size: .875rem; }
.commands { display: flex; align-items: center; gap: .5rem; margin-bottom: 1rem; }
.commands button { padding: .375rem .75rem; border: 1px solid var(--border); border-radius: 4px; background: var(--card-bg); color: var(--fg); font-size: .8125rem; cursor: pointer; }
.commands button:hover { border-color: var(--accent); color: var(--accent); }
table { width: 100%; border-collapse: collapse; font-size: .875rem; }
thead { background: var(--card-bg); }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); white-space: pre-wrap; }
tr.project-row { cursor: pointer; }
tr.project-row:nth-child(even) { background: var(--table-alt); }
tr.project-row:hover { background: var(--hover); }
td.name, td.company { font-weight: 700; }
td.name.flag-green { color: var(--green); }
td.name.flag-red { color: var(--red); }
tr.detail-row > td { padding: 1rem; background: var(--card-bg); cursor: default; }
.detail { display: grid; grid-template-columns: 1.3fr 1fr; gap: 1.5rem; }
@media (max-width: 768px) { .detail { grid-template-columns: 1fr; } }
.detail h3 { font-size: 1.125rem; margin-bottom: .5rem; }
.detail h4 { font-size: .875rem; margin: .75rem 0 .25rem; }
.detail ul { margin-left: 1.25rem; }
.detail img { max-width: 100%; border: 1px solid var(--border); border-radius: 4px; }
.warning { background: #fff3cd; border: 1px solid #ffe69c; border-radius: 4px; padding: .5rem .75rem; font-size: .8125rem; }
.muted { color: var(--muted); font-size: .8125rem; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}} &mdash; table ({{.SourceFile}})</h1>
  <p class="caption">Source: {{.SourceFile}}. Click rows in the table to expand/collapse details below.</p>
</header>

<div class="commands">
  <form method="post" action="/rows/expand-all"><button type="submit">Expand all</button></form>
  <form method="post" action="/rows/collapse-all"><button type="submit">Collapse all</button></form>
  {{if .OpenCount}}<span class="muted">{{.OpenCount}} expanded</span>{{end}}
</div>

<table>
<thead><tr>
  <th>Project Name</th>
  <th>Company</th>
  <th>MW</th>
  <th>Location</th>
  <th>Connection date</th>
</tr></thead>
<tbody>
{{range .Rows}}
<tr class="project-row" data-row="{{.Index}}" onclick="toggleRow({{.Index}})">
  <td class="name {{.FlagClass}}">{{.Name}}</td>
  <td class="company">{{.Company}}</td>
  <td>{{.MW}}</td>
  <td>{{.Location}}</td>
  <td>{{.ConnectionDate}}</td>
</tr>
{{if .Expanded}}
{{with .Detail}}
<tr class="detail-row"><td colspan="5">
  <h3>{{.Heading}}</h3>
  <div class="detail">
    <div>
      <h4>Project details</h4>
      <ul>
        {{range .Fields}}<li><strong>{{.Label}}:</strong> {{.Value}}</li>
        {{end}}
      </ul>
      <h4>Comments</h4>
      <p>{{.Comments}}</p>
      <h4>Sources</h4>
      {{if .Sources}}
      <ul class="sources">
        {{range .Sources}}<li>{{range .Segments}}{{if .IsURL}}<a href="{{.Text}}" target="_blank" rel="noopener">{{.Text}}</a>{{else}}{{.Text}}{{end}}{{end}}</li>
        {{end}}
      </ul>
      {{else}}
      <p>&mdash;</p>
      {{end}}
    </div>
    <div>
      {{if .ImageURL}}
      <h4>Image</h4>
      <img src="{{.ImageURL}}" alt="{{.Heading}}">
      {{else if .ImageWarning}}
      <p class="warning">{{.ImageWarning}}</p>
      {{else}}
      <p class="muted">{{.ImageCaption}}</p>
      {{end}}
    </div>
  </div>
</td></tr>
{{end}}
{{end}}
{{end}}
</tbody>
</table>

<script>
function toggleRow(i) {
  var f = document.createElement("form");
  f.method = "post";
  f.action = "/rows/toggle";
  var row = document.createElement("input");
  row.type = "hidden";
  row.name = "row";
  row.value = i;
  f.appendChild(row);
  document.body.appendChild(f);
  f.submit();
}
</script>
</body>
</html>
`
