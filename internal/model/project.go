package model

// Flag is the curated review status attached to a project name. The
// zero value means no call either way.
type Flag string

const (
	FlagGreen Flag = "green"
	FlagRed   Flag = "red"
	FlagNone  Flag = ""
)

// Segment is one piece of a source fragment: either plain text or a
// URL that renders as a hyperlink pointing to itself
type Segment struct {
	Text  string
	IsURL bool
}

// SourceEntry is one semicolon/newline-delimited fragment of the
// Sources field, split into text and URL segments in order of
// appearance
type SourceEntry struct {
	Text     string // the fragment, trimmed
	Segments []Segment
}

// URLs returns the fragment's link targets in order of appearance
func (s SourceEntry) URLs() []string {
	var urls []string
	for _, seg := range s.Segments {
		if seg.IsURL {
			urls = append(urls, seg.Text)
		}
	}
	return urls
}

// Project is one annotated spreadsheet row, ready for display: every
// field already stringified, plus the resolved flag, parsed sources
// and image filename
type Project struct {
	Index int // row position in the canonical table

	// The eight canonical fields as display strings
	Name           string
	Company        string
	MW             string
	Location       string
	ConnectionDate string
	Comments       string
	RawSources     string
	PNGName        string

	// Annotations
	Flag      Flag
	Sources   []SourceEntry
	ImageFile string // resolved image filename, "" when the row names none
}

// FieldValue returns the display string for a canonical field name
func (p *Project) FieldValue(field string) string {
	switch field {
	case FieldProjectName:
		return p.Name
	case FieldCompany:
		return p.Company
	case FieldMW:
		return p.MW
	case FieldLocation:
		return p.Location
	case FieldConnectionDate:
		return p.ConnectionDate
	case FieldComments:
		return p.Comments
	case FieldSources:
		return p.RawSources
	case FieldPNGName:
		return p.PNGName
	default:
		return ""
	}
}
