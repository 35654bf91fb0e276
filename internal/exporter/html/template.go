package html

// reportTemplate is the standalone report page. Detail rows ship in
// the document hidden and toggle client-side, so the file stays
// self-contained.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>BESS In construction — {{.GeneratedAt}}</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --hover: #e9ecef; --muted: #6c757d;
  --green: #2ecc71; --red: #e74c3c; --accent: #0d6efd;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1200px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(130px, 1fr)); gap: .75rem; margin-bottom: 1.5rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.5rem; font-weight: 700; }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.card-green .value { color: var(--green); }
.card-red .value { color: var(--red); }
.commands { display: flex; gap: .5rem; margin-bottom: 1rem; }
.commands button { padding: .375rem .75rem; border: 1px solid var(--border); border-radius: 4px; background: var(--card-bg); color: var(--fg); font-size: .8125rem; cursor: pointer; }
.commands button:hover { border-color: var(--accent); color: var(--accent); }
table { width: 100%; border-collapse: collapse; font-size: .875rem; }
thead { background: var(--card-bg); }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); white-space: pre-wrap; }
tr.project-row { cursor: pointer; }
tr.project-row:hover { background: var(--hover); }
td.name, td.company { font-weight: 700; }
td.name.flag-green { color: var(--green); }
td.name.flag-red { color: var(--red); }
tr.detail-row > td { padding: 1rem; background: var(--card-bg); cursor: default; }
.hidden { display: none; }
.detail h4 { font-size: .875rem; margin: .75rem 0 .25rem; }
.detail h4:first-child { margin-top: 0; }
.detail ul { margin-left: 1.25rem; }
.muted { color: var(--muted); font-size: .8125rem; }
footer { text-align: center; padding: 1.5rem; color: var(--muted); font-size: .8125rem; }
</style>
</head>
<body>
<header>
  <h1>BESS In construction</h1>
  <p>Source: {{.SourceFile}} &middot; Generated {{.GeneratedAt}}</p>
</header>

<section class="cards">
  <div class="card"><div class="value">{{.TotalProjects}}</div><div class="label">Projects</div></div>
  <div class="card card-green"><div class="value">{{.GreenFlags}}</div><div class="label">Green</div></div>
  <div class="card card-red"><div class="value">{{.RedFlags}}</div><div class="label">Red</div></div>
  <div class="card"><div class="value">{{.WithSources}}</div><div class="label">With sources</div></div>
  <div class="card"><div class="value">{{.WithImage}}</div><div class="label">With image</div></div>
</section>

<div class="commands">
  <button type="button" onclick="setAll(false)">Expand all</button>
  <button type="button" onclick="setAll(true)">Collapse all</button>
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
<tr class="project-row" onclick="toggleDetail(this)">
  <td class="name {{.FlagClass}}">{{.Name}}</td>
  <td class="company">{{.Company}}</td>
  <td>{{.MW}}</td>
  <td>{{.Location}}</td>
  <td>{{.ConnectionDate}}</td>
</tr>
<tr class="detail-row hidden"><td colspan="5">
  <div class="detail">
    <h4>Project details</h4>
    <ul>
      <li><strong>Project Name:</strong> {{dash .Name}}</li>
      <li><strong>Company:</strong> {{dash .Company}}</li>
      <li><strong>MW:</strong> {{dash .MW}}</li>
      <li><strong>Location:</strong> {{dash .Location}}</li>
      <li><strong>Connection date:</strong> {{dash .ConnectionDate}}</li>
    </ul>
    <h4>Comments</h4>
    <p>{{dash .Comments}}</p>
    <h4>Sources</h4>
    {{if .Sources}}
    <ul class="sources">
      {{range .Sources}}<li>{{range .Segments}}{{if .IsURL}}<a href="{{.Text}}" target="_blank" rel="noopener">{{.Text}}</a>{{else}}{{.Text}}{{end}}{{end}}</li>
      {{end}}
    </ul>
    {{else}}
    <p>&mdash;</p>
    {{end}}
    {{if .ImageFile}}
    <h4>Image</h4>
    <p class="muted">{{.ImageFile}}</p>
    {{end}}
  </div>
</td></tr>
{{end}}
</tbody>
</table>

<footer>
  <p>Generated by BESS Board</p>
</footer>

<script>
function toggleDetail(row) { row.nextElementSibling.classList.toggle("hidden"); }
function setAll(hidden) {
  document.querySelectorAll("tr.detail-row").forEach(function (row) {
    row.classList.toggle("hidden", hidden);
  });
}
</script>
</body>
</html>
`
