package annotate

import (
	"path/filepath"
	"time"

	"bess-board/internal/model"
)

// Summarize tallies annotated rows into the headline numbers the
// exporters print. SourceFile is reduced to its base name and
// GeneratedAt is stamped with the current date.
func Summarize(projects []model.Project, sourceFile string) *model.Summary {
	s := &model.Summary{
		SourceFile:    filepath.Base(sourceFile),
		GeneratedAt:   time.Now().Format("2006-01-02"),
		TotalProjects: len(projects),
	}
	for _, p := range projects {
		switch p.Flag {
		case model.FlagGreen:
			s.GreenFlags++
		case model.FlagRed:
			s.RedFlags++
		}
		if p.ImageFile != "" {
			s.WithImage++
		}
		if len(p.Sources) > 0 {
			s.WithSources++
		}
	}
	return s
}
