package catalog

import (
	"fmt"

	"bolt-manager/feature/geometry"

	"go.uber.org/zap"
)

// Service renders catalog tables for the HTTP surface.
type Service struct {
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(cfg Config, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

// Table renders the named table, reporting whether it is HTML.
func (s *Service) Table(name string) (content string, isHTML bool, err error) {
	bolts := geometry.Bolts()
	materials := s.cfg.MaterialNames()
	delim := s.cfg.Delimiter

	switch name {
	case FileBoltTypes:
		return RenderBoltTypes(bolts, materials, delim), false, nil
	case FileAssemblyTypes:
		return RenderAssemblyTypes(bolts, materials, delim), false, nil
	case FileGripLengths:
		return RenderGripLengths(bolts, delim), false, nil
	case FileDiameterBands:
		return RenderDiameterBands(bolts, delim), false, nil
	case FileParameters:
		return RenderParameters(bolts, delim), false, nil
	case FileParametersHTML:
		return RenderParametersHTML(bolts), true, nil
	default:
		return "", false, fmt.Errorf("unknown catalog table %q", name)
	}
}

// Files lists the available table file names.
func (s *Service) Files() []string {
	return []string{
		FileBoltTypes, FileAssemblyTypes, FileGripLengths,
		FileDiameterBands, FileParameters, FileParametersHTML,
	}
}
