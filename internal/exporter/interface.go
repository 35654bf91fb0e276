package exporter

import (
	"bess-board/internal/config"
	"bess-board/internal/model"
)

// Exporter is the unified interface for all reporting strategies.
// Every exporter consumes the same annotated project list and headline
// summary; the projects arrive in source-sheet order and each carries
// its resolved flag, parsed sources and image filename.
type Exporter interface {
	Export(summary *model.Summary, projects []model.Project, cfg *config.Config) error
}
