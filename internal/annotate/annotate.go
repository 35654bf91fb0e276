package annotate

import (
	"regexp"
	"strings"

	"bess-board/internal/model"
)

// urlPattern matches http(s) URLs embedded in free text. A comma ends
// a match, so "see https://x/a, https://x/b" yields two URLs.
var urlPattern = regexp.MustCompile(`(?i)https?://[^\s,]+`)

// fragmentSplitter separates source fragments on semicolons and
// newlines.
var fragmentSplitter = regexp.MustCompile(`[;\n]`)

// Annotator applies the display rules to canonical rows. It is
// stateless apart from the immutable flag table.
type Annotator struct {
	flags FlagTable
}

// New creates an Annotator with the given flag table
func New(flags FlagTable) *Annotator {
	return &Annotator{flags: flags}
}

// ResolveFlag looks up the trimmed project name in the flag table. The
// name match is exact, no case folding; only the stored mark is
// case-normalized, and only "g" or "r" count. Absent names and any
// other mark, the empty string included, resolve to none.
func (a *Annotator) ResolveFlag(name string) model.Flag {
	raw, ok := a.flags[strings.TrimSpace(name)]
	if !ok {
		return model.FlagNone
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "g":
		return model.FlagGreen
	case "r":
		return model.FlagRed
	default:
		return model.FlagNone
	}
}

// ParseSources splits a raw Sources field into fragments and marks the
// URLs inside each one. Fragments keep their order of appearance;
// pieces that are empty after trimming are dropped. An empty or
// whitespace-only field yields no entries, and the caller decides how
// to say "none".
func ParseSources(text string) []model.SourceEntry {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var entries []model.SourceEntry
	for _, piece := range fragmentSplitter.Split(trimmed, -1) {
		frag := strings.TrimSpace(piece)
		if frag == "" {
			continue
		}
		entries = append(entries, model.SourceEntry{
			Text:     frag,
			Segments: segmentURLs(frag),
		})
	}
	return entries
}

// segmentURLs walks frag once, left to right, producing alternating
// text and URL segments without overlap. Identical URL literals are
// marked at every occurrence.
func segmentURLs(frag string) []model.Segment {
	var segs []model.Segment
	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(frag, -1) {
		if loc[0] > last {
			segs = append(segs, model.Segment{Text: frag[last:loc[0]]})
		}
		segs = append(segs, model.Segment{Text: frag[loc[0]:loc[1]], IsURL: true})
		last = loc[1]
	}
	if last < len(frag) {
		segs = append(segs, model.Segment{Text: frag[last:]})
	}
	return segs
}

// ResolveImageFilename turns the PNG Name field into a relative image
// filename: empty means no image, an existing .png suffix (any case)
// is kept, anything else gets ".png" appended. Whether the file exists
// is the renderer's problem, not decided here.
func ResolveImageFilename(field string) string {
	name := strings.TrimSpace(field)
	if name == "" {
		return ""
	}
	if strings.HasSuffix(strings.ToLower(name), ".png") {
		return name
	}
	return name + ".png"
}

// Annotate builds the display-ready project list from a canonical
// table. Row order is preserved and every project carries all eight
// fields as strings plus its flag, parsed sources and image filename.
func (a *Annotator) Annotate(table *model.Table) []model.Project {
	projects := make([]model.Project, 0, table.Len())
	for i := range table.Rows {
		p := model.Project{
			Index:          i,
			Name:           table.Value(i, model.FieldProjectName).String(),
			Company:        table.Value(i, model.FieldCompany).String(),
			MW:             table.Value(i, model.FieldMW).String(),
			Location:       table.Value(i, model.FieldLocation).String(),
			ConnectionDate: table.Value(i, model.FieldConnectionDate).String(),
			Comments:       table.Value(i, model.FieldComments).String(),
			RawSources:     table.Value(i, model.FieldSources).String(),
			PNGName:        table.Value(i, model.FieldPNGName).String(),
		}
		p.Flag = a.ResolveFlag(p.Name)
		p.Sources = ParseSources(p.RawSources)
		p.ImageFile = ResolveImageFilename(p.PNGName)
		projects = append(projects, p)
	}
	return projects
}
