package catalog

import (
	"context"

	"bolt-manager/core/sink"
	"bolt-manager/feature/geometry"

	"go.uber.org/zap"
)

// WriteResult is the per-file outcome of a generation run.
type WriteResult struct {
	// File is the table file name.
	File string `json:"file"`
	// Outcome is the tri-state write outcome, empty when the write failed.
	Outcome sink.Outcome `json:"outcome,omitempty"`
	// Error carries the write failure, if any.
	Error string `json:"error,omitempty"`
}

// Generator renders every catalog table and writes it through a sink.
type Generator struct {
	cfg    Config
	sink   sink.Sink
	logger *zap.Logger
}

// NewGenerator creates a generator writing through the given sink.
func NewGenerator(cfg Config, s sink.Sink, logger *zap.Logger) *Generator {
	return &Generator{cfg: cfg, sink: s, logger: logger}
}

// table names, fixed; these are the files the downstream importer consumes.
const (
	FileBoltTypes      = "bolt_types.csv"
	FileAssemblyTypes  = "assembly_types.csv"
	FileGripLengths    = "grip_lengths.csv"
	FileDiameterBands  = "diameter_bands.csv"
	FileParameters     = "parameters.csv"
	FileParametersHTML = "parameters.html"
)

// Tables renders every table against the given geometry set and returns
// file name to content. Rendering is pure; nothing is written.
func (g *Generator) Tables(bolts []geometry.Bolt) map[string]string {
	materials := g.cfg.MaterialNames()
	delim := g.cfg.Delimiter
	return map[string]string{
		FileBoltTypes:      RenderBoltTypes(bolts, materials, delim),
		FileAssemblyTypes:  RenderAssemblyTypes(bolts, materials, delim),
		FileGripLengths:    RenderGripLengths(bolts, delim),
		FileDiameterBands:  RenderDiameterBands(bolts, delim),
		FileParameters:     RenderParameters(bolts, delim),
		FileParametersHTML: RenderParametersHTML(bolts),
	}
}

// WriteAll renders and writes every table. A failed write is reported in
// its result and does not stop the remaining tables.
func (g *Generator) WriteAll(ctx context.Context, bolts []geometry.Bolt, overwrite bool) []WriteResult {
	order := []string{
		FileBoltTypes, FileAssemblyTypes, FileGripLengths,
		FileDiameterBands, FileParameters, FileParametersHTML,
	}
	tables := g.Tables(bolts)

	results := make([]WriteResult, 0, len(order))
	for _, file := range order {
		outcome, err := g.sink.Write(ctx, file, tables[file], overwrite)
		if err != nil {
			g.logger.Error("Failed to write catalog table",
				zap.String("file", file),
				zap.Error(err),
			)
			results = append(results, WriteResult{File: file, Error: err.Error()})
			continue
		}
		g.logger.Info("Catalog table written",
			zap.String("file", file),
			zap.String("outcome", string(outcome)),
		)
		results = append(results, WriteResult{File: file, Outcome: outcome})
	}
	return results
}
