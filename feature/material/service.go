package material

import (
	"context"

	"bolt-manager/core/naming"
	"bolt-manager/core/store"

	"go.uber.org/zap"
)

// TemplateReport is the validation report for one template candidate.
type TemplateReport struct {
	Name   string `json:"name"`
	Valid  bool   `json:"valid"`
	Result Result `json:"result"`
}

// MaterialInfo describes one derived thread material in the store.
type MaterialInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Diameter int    `json:"diameter"`
}

// Service exposes read-only views over the material library.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates a new material service.
func NewService(s store.Store, logger *zap.Logger) *Service {
	return &Service{store: s, logger: logger}
}

// Templates finds every template candidate and validates each one. One
// invalid template never hides the others; all candidates are reported.
func (s *Service) Templates(ctx context.Context) ([]TemplateReport, error) {
	candidates, err := s.store.Find(ctx, naming.FindTemplates)
	if err != nil {
		return nil, err
	}

	reports := make([]TemplateReport, 0, len(candidates))
	for _, c := range candidates {
		result := Validate(c)
		if !result.Valid() {
			s.logger.Warn("Template failed validation",
				zap.String("material", c.Name),
				zap.String("reason", result.Reason()),
			)
		}
		reports = append(reports, TemplateReport{
			Name:   c.Name,
			Valid:  result.Valid(),
			Result: result,
		})
	}
	return reports, nil
}

// Materials lists the derived thread materials currently in the store.
func (s *Service) Materials(ctx context.Context) ([]MaterialInfo, error) {
	found, err := s.store.Find(ctx, naming.FindMaterials)
	if err != nil {
		return nil, err
	}

	infos := make([]MaterialInfo, 0, len(found))
	for _, m := range found {
		category, d, err := naming.Decode(m.Name)
		if err != nil {
			// Find already filtered by the material pattern; a decode
			// failure here means the pattern and codec disagree.
			s.logger.Error("Material name failed to decode",
				zap.String("material", m.Name),
				zap.Error(err),
			)
			continue
		}
		infos = append(infos, MaterialInfo{Name: m.Name, Category: category, Diameter: d})
	}
	return infos, nil
}
