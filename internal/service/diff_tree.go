// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-diff-tree/internal/changeset"
	"github.com/MKhiriev/go-diff-tree/internal/config"
	"github.com/MKhiriev/go-diff-tree/internal/events"
	"github.com/MKhiriev/go-diff-tree/internal/logger"
	"github.com/MKhiriev/go-diff-tree/internal/serializer"
	"github.com/MKhiriev/go-diff-tree/internal/source"
	"github.com/MKhiriev/go-diff-tree/internal/tree"
	"github.com/MKhiriev/go-diff-tree/internal/viewstate"
	"github.com/MKhiriev/go-diff-tree/models"
)

// Deps are the collaborators of a DiffTree.
type Deps struct {
	Source     source.Source
	Sink       tree.Sink
	Properties *config.Properties
	Keeper     *viewstate.Keeper
	// Markers may be nil when no marker severities are known.
	Markers tree.MarkerProvider
	// Dispatcher runs closures on the presentation context. Nil runs them
	// on the worker, which only suits sinks without thread affinity.
	Dispatcher serializer.Dispatcher
	// ChangeSets are registered by Start.
	ChangeSets        []models.ChangeSetDefinition
	SerializerOptions []serializer.Option
	Log               *logger.Logger
}

// DiffTree keeps a presentation sink in step with a change source.
type DiffTree struct {
	log        *logger.Logger
	src        source.Source
	sink       tree.Sink
	props      *config.Properties
	keeper     *viewstate.Keeper
	dispatcher serializer.Dispatcher
	serializer *serializer.Serializer
	defs       []models.ChangeSetDefinition

	// Owned by the serializer worker.
	router *changeset.Router
	mode   models.Mode

	mu          sync.Mutex
	ctx         context.Context
	started     bool
	sets        []string
	unsubscribe []func()
}

// NewDiffTree creates the service. Run must be started, usually as a
// worker, before Start is called.
func NewDiffTree(deps Deps) (*DiffTree, error) {
	if deps.Source == nil {
		return nil, ErrNoSource
	}
	if deps.Sink == nil {
		return nil, ErrNoSink
	}
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	props := deps.Properties
	if props == nil {
		var err error
		if props, err = config.NewProperties(config.Tree{}, log); err != nil {
			return nil, err
		}
	}
	keeper := deps.Keeper
	if keeper == nil {
		keeper = viewstate.NewKeeper(nil, "", log)
	}

	strategy, err := tree.StrategyFor(props.Builder())
	if err != nil {
		return nil, err
	}

	d := &DiffTree{
		log:        log.WithComponent("diff-tree"),
		src:        deps.Source,
		sink:       deps.Sink,
		props:      props,
		keeper:     keeper,
		dispatcher: deps.Dispatcher,
		defs:       slices.Clone(deps.ChangeSets),
		mode:       props.Mode(),
		ctx:        context.Background(),
	}

	opts := append([]serializer.Option{serializer.WithDispatcher(deps.Dispatcher)}, deps.SerializerOptions...)
	if d.serializer, err = serializer.New(d, log.WithComponent("serializer"), opts...); err != nil {
		return nil, err
	}

	d.router = changeset.NewRouter(
		source.Filtered(d.src, func() models.Mode { return d.mode }),
		tree.ProviderDeps{
			Strategy: strategy,
			Markers:  deps.Markers,
			Dirty:    d.serializer.MarkDirty,
			Log:      log,
		},
	)
	return d, nil
}

// Run runs the serializer worker until ctx is canceled or Close is called.
func (d *DiffTree) Run(ctx context.Context) error {
	return d.serializer.Run(ctx)
}

// Start connects the change source, subscribes to property changes,
// registers the configured change sets and queues the initial build.
// Cancellation while connecting yields ErrCanceled.
func (d *DiffTree) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return ErrAlreadyStarted
	}
	d.started = true
	d.ctx = ctx
	d.mu.Unlock()

	if _, err := d.keeper.Load(ctx); err != nil {
		d.log.Warn().
			Str("func", "DiffTree.Start").
			Err(err).
			Msg("cannot load view state, starting fresh")
	}

	// The source may deliver its first event before Connect returns.
	unsubscribe, err := d.src.Connect(ctx, d.onDelta)
	if err != nil {
		d.mu.Lock()
		d.started = false
		d.ctx = context.Background()
		d.mu.Unlock()

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", ErrCanceled, err)
		}
		return fmt.Errorf("connect change source: %w", err)
	}

	d.mu.Lock()
	d.unsubscribe = append(d.unsubscribe, unsubscribe, d.props.Subscribe(d.onProperty))
	d.mu.Unlock()

	for _, def := range d.defs {
		err = d.serializer.Submit(ctx, func(ctx context.Context) error {
			return d.register(ctx, tree.NewBatch(), def)
		}, false)
		if err != nil {
			return fmt.Errorf("queue change set %q: %w", def.Name, err)
		}
	}

	d.log.Info().
		Str("func", "DiffTree.Start").
		Str("mode", d.props.Mode().String()).
		Str("builder", d.props.Builder()).
		Int("change_sets", len(d.defs)).
		Msg("diff tree started")
	return d.serializer.QueueReset(ctx)
}

// Close unsubscribes from the source and properties and stops the worker.
func (d *DiffTree) Close() error {
	d.mu.Lock()
	unsubscribe := d.unsubscribe
	d.unsubscribe = nil
	d.mu.Unlock()

	for _, fn := range unsubscribe {
		fn()
	}
	return d.serializer.Close()
}

// WaitIdle blocks until every queued unit is processed and no label refresh
// is pending.
func (d *DiffTree) WaitIdle(ctx context.Context) error {
	return d.serializer.WaitIdle(ctx)
}

func (d *DiffTree) Mode() models.Mode {
	return d.props.Mode()
}

func (d *DiffTree) SetMode(mode models.Mode) {
	d.props.SetMode(mode)
}

func (d *DiffTree) CycleMode() models.Mode {
	next := d.props.Mode().Next()
	d.props.SetMode(next)
	return next
}

func (d *DiffTree) Builder() string {
	return d.props.Builder()
}

func (d *DiffTree) SetBuilder(name string) error {
	return d.props.SetBuilder(name)
}

func (d *DiffTree) CycleBuilder() string {
	next := tree.NextStrategy(d.props.Builder())
	if err := d.props.SetBuilder(next); err != nil {
		return d.props.Builder()
	}
	return next
}

// MarkersChanged queues a marker re-query. Changed labels are flushed with
// the next label refresh.
func (d *DiffTree) MarkersChanged(ctx context.Context, paths ...models.ItemPath) error {
	if len(paths) == 0 {
		return nil
	}
	paths = slices.Clone(paths)
	return d.serializer.Submit(ctx, func(ctx context.Context) error {
		d.router.MarkersChanged(ctx, paths)
		return nil
	}, false)
}

func (d *DiffTree) SetBusy(ctx context.Context, busy bool, paths ...models.ItemPath) error {
	keys := make([]models.NodeKey, 0, len(paths))
	for _, p := range paths {
		keys = append(keys, models.KeyFor("", p))
	}
	return d.serializer.QueueBusy(ctx, keys, busy)
}

// RegisterChangeSet adds a change set and waits until its items have moved.
// It must not be called from the serializer worker.
func (d *DiffTree) RegisterChangeSet(ctx context.Context, def models.ChangeSetDefinition) error {
	return d.run(ctx, func(ctx context.Context, b *tree.Batch) error {
		return d.register(ctx, b, def)
	})
}

func (d *DiffTree) UnregisterChangeSet(ctx context.Context, name string) error {
	return d.run(ctx, func(ctx context.Context, b *tree.Batch) error {
		if err := d.router.Unregister(ctx, b, name); err != nil {
			return err
		}
		d.mu.Lock()
		d.sets = slices.DeleteFunc(d.sets, func(s string) bool { return s == name })
		d.mu.Unlock()
		return nil
	})
}

func (d *DiffTree) AddToChangeSet(ctx context.Context, name string, paths ...models.ItemPath) error {
	return d.run(ctx, func(ctx context.Context, b *tree.Batch) error {
		return d.router.AddMembers(ctx, b, name, paths...)
	})
}

func (d *DiffTree) RemoveFromChangeSet(ctx context.Context, name string, paths ...models.ItemPath) error {
	return d.run(ctx, func(ctx context.Context, b *tree.Batch) error {
		return d.router.RemoveMembers(ctx, b, name, paths...)
	})
}

// ChangeSets returns the registered change-set names in registration order.
func (d *DiffTree) ChangeSets() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.sets)
}

func (d *DiffTree) Errors() []models.ErrorRecord {
	return d.src.Errors()
}

// SaveViewState captures the view state on the presentation context, after
// everything queued so far has been presented, and persists it.
func (d *DiffTree) SaveViewState(ctx context.Context) error {
	var state models.ViewState
	err := d.serializer.Submit(ctx, func(context.Context) error {
		state = d.keeper.Capture(d.sink)
		return nil
	}, true)
	if err != nil {
		return fmt.Errorf("capture view state: %w", err)
	}
	return d.keeper.Save(ctx, state)
}

func (d *DiffTree) register(ctx context.Context, b *tree.Batch, def models.ChangeSetDefinition) error {
	if err := d.router.Register(ctx, b, def); err != nil {
		d.log.Err(err).
			Str("func", "DiffTree.register").
			Str("set", def.Name).
			Msg("cannot register change set")
		return err
	}
	d.present(b)

	d.mu.Lock()
	d.sets = append(d.sets, def.Name)
	d.mu.Unlock()
	return nil
}

// run queues fn on the worker and waits for its result. The batch fn fills
// is presented even when fn fails halfway.
func (d *DiffTree) run(ctx context.Context, fn func(ctx context.Context, b *tree.Batch) error) error {
	done := make(chan error, 1)
	err := d.serializer.Submit(ctx, func(ctx context.Context) error {
		b := tree.NewBatch()
		err := events.SafeRun(func() error { return fn(ctx, b) })
		d.present(b)
		done <- err
		return err
	}, false)
	if err != nil {
		return err
	}

	select {
	case err = <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *DiffTree) onDelta(evt models.DeltaEvent) error {
	d.mu.Lock()
	ctx := d.ctx
	d.mu.Unlock()
	return d.serializer.QueueDelta(ctx, evt)
}

func (d *DiffTree) onProperty(evt config.PropertyChange) error {
	d.log.Debug().
		Str("func", "DiffTree.onProperty").
		Str("property", string(evt.Name)).
		Str("old", evt.Old).
		Str("new", evt.New).
		Msg("host property changed, rebuilding")

	d.mu.Lock()
	ctx := d.ctx
	d.mu.Unlock()
	return d.serializer.QueueReset(ctx)
}
