package reconcile

import (
	"context"
	"errors"

	"bolt-manager/core/naming"
	"bolt-manager/core/store"
	"bolt-manager/feature/geometry"
	"bolt-manager/feature/material"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pre-check failures. Either one blocks the pass before any mutation.
var (
	ErrNoValidTemplates = errors.New("reconcile: no valid templates found")
	ErrNoGeometries     = errors.New("reconcile: no thread geometries given")
)

// Template is one validated template together with its decoded category.
type Template struct {
	Material *store.Material
	Category string
}

// Discovery is the read-only phase's result: the validated template set,
// the existing derived materials and the discovery counters.
type Discovery struct {
	Templates []Template
	Existing  []*store.Material
	Counters  Counters
}

// Engine drives one reconciliation pass over the material library.
type Engine struct {
	threads []geometry.Thread
	store   store.Store
	tx      store.Transactor
	logger  *zap.Logger
}

// New creates an engine over the given thread geometries and store.
func New(threads []geometry.Thread, s store.Store, tx store.Transactor, logger *zap.Logger) *Engine {
	return &Engine{threads: threads, store: s, tx: tx, logger: logger}
}

// Discover fetches the existing derived materials and the template
// candidates, validating each candidate. Invalid templates are logged with
// their check trace and counted; they never block the valid ones.
func (e *Engine) Discover(ctx context.Context) (*Discovery, error) {
	d := &Discovery{}
	d.Counters.Geometries = len(e.threads)

	existing, err := e.store.Find(ctx, naming.FindMaterials)
	if err != nil {
		return nil, err
	}
	d.Existing = existing
	d.Counters.Existing = len(existing)

	candidates, err := e.store.Find(ctx, naming.FindTemplates)
	if err != nil {
		return nil, err
	}
	for _, c := range candidates {
		result := material.Validate(c)
		if !result.Valid() {
			d.Counters.InvalidTemplates++
			e.logger.Warn("Skipping invalid template",
				zap.String("material", c.Name),
				zap.String("reason", result.Reason()),
				zap.String("trace", result.Trace()),
				zap.Strings("appearance", store.DumpAsset(c.Appearance)),
			)
			continue
		}
		d.Counters.ValidTemplates++
		d.Templates = append(d.Templates, Template{Material: c, Category: result.Category})
	}
	return d, nil
}

// Gate checks the hard preconditions of a pass. A failed gate means no
// mutation has happened and none will.
func (e *Engine) Gate(d *Discovery) error {
	if d.Counters.Geometries == 0 {
		return ErrNoGeometries
	}
	if d.Counters.ValidTemplates == 0 {
		return ErrNoValidTemplates
	}
	return nil
}

// Run executes one full discover, gate, execute, report cycle. The execute
// phase runs inside a single store transaction; individual create/delete
// failures are logged and counted but never abort the remaining pairs.
func (e *Engine) Run(ctx context.Context, opts Options) (Counters, error) {
	if err := opts.Validate(); err != nil {
		return Counters{}, err
	}

	d, err := e.Discover(ctx)
	if err != nil {
		return Counters{}, err
	}
	return e.Execute(ctx, d, opts)
}

// Execute gates and runs the mutation phase over an existing discovery.
// Callers that need a confirmation step between discovery and mutation use
// Discover and Execute directly instead of Run.
func (e *Engine) Execute(ctx context.Context, d *Discovery, opts Options) (Counters, error) {
	if err := opts.Validate(); err != nil {
		return d.Counters, err
	}
	if err := e.Gate(d); err != nil {
		return d.Counters, err
	}

	log := e.logger.With(
		zap.String("pass_id", uuid.NewString()),
		zap.String("mode", string(opts.Mode)),
	)

	counters := d.Counters
	err := e.tx.Run(ctx, "Reconcile thread materials", func(tx store.Store) error {
		switch opts.Mode {
		case ModeDelete:
			e.deleteAll(ctx, tx, d, &counters, log)
		case ModeCreate:
			e.createAll(ctx, tx, d, &counters, log, opts.Overwrite)
		}
		return nil
	})
	if err != nil {
		return counters, err
	}

	if counters.Failures() > 0 {
		log.Warn("Reconciliation pass completed with failures", counters.Fields()...)
	} else {
		log.Info("Reconciliation pass completed", counters.Fields()...)
	}
	return counters, nil
}

// deleteAll removes every existing derived material.
func (e *Engine) deleteAll(ctx context.Context, tx store.Store, d *Discovery, c *Counters, log *zap.Logger) {
	for _, m := range d.Existing {
		if err := tx.Delete(ctx, m.Ref()); err != nil {
			c.DeleteFailed++
			log.Error("Failed to delete material",
				zap.String("material", m.Name),
				zap.Error(err),
			)
			continue
		}
		c.Deleted++
		log.Info("Deleted material", zap.String("material", m.Name))
	}
}

// createAll generates one derived material per valid template and thread
// geometry. Templates iterate outer and geometries inner, so all materials
// of one template are generated contiguously.
func (e *Engine) createAll(ctx context.Context, tx store.Store, d *Discovery, c *Counters, log *zap.Logger, overwrite bool) {
	existing := make(map[string]*store.Material, len(d.Existing))
	for _, m := range d.Existing {
		existing[m.Name] = m
	}

	for _, t := range d.Templates {
		for _, th := range e.threads {
			name := naming.Material(t.Category, th.D)
			old, found := existing[name]

			if found && !overwrite {
				c.Skipped++
				continue
			}

			if found {
				if err := tx.Delete(ctx, old.Ref()); err != nil {
					c.OverwriteFailed++
					log.Error("Failed to delete material for overwrite",
						zap.String("material", name),
						zap.Error(err),
					)
					continue
				}
				if _, err := tx.Create(ctx, t.Material, name, edits(th)); err != nil {
					c.OverwriteFailed++
					log.Error("Failed to recreate material",
						zap.String("material", name),
						zap.String("template", t.Material.Name),
						zap.Error(err),
					)
					continue
				}
				c.Overwritten++
				log.Info("Overwrote material", zap.String("material", name))
				continue
			}

			if _, err := tx.Create(ctx, t.Material, name, edits(th)); err != nil {
				c.CreateFailed++
				log.Error("Failed to create material",
					zap.String("material", name),
					zap.String("template", t.Material.Name),
					zap.Error(err),
				)
				continue
			}
			c.Created++
			log.Info("Created material", zap.String("material", name))
		}
	}
}

// edits derives the procedural texture parameters of one thread geometry:
// the pattern scales with pitch and circumference and rotates by the helix
// angle, repeating in both directions.
func edits(th geometry.Thread) []store.Property {
	return []store.Property{
		store.DoubleProp(store.PropScaleX, th.P),
		store.DoubleProp(store.PropScaleY, th.U),
		store.DoubleProp(store.PropAngle, th.Beta),
		store.BoolProp(store.PropRepeatX, true),
		store.BoolProp(store.PropRepeatY, true),
	}
}
