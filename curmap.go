package curmap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"curmap/internal/adapters"
	"curmap/internal/report"
	"curmap/internal/transport"
	"curmap/pkg/content"
	"curmap/pkg/coverage"
	"curmap/pkg/domain"
)

// Version is the current release of the curmap tool.
const Version = "0.3.0"

// contentFile is the optional per-workspace content-pack override.
const contentFile = "content.yaml"

// App is the high-level entry point for a mapping workspace. It bundles the
// persisted state, the file store and the content pack, and exposes every
// state transition the CLI needs. All mutations are written through to the
// store immediately.
type App struct {
	store   *adapters.FileStore
	content content.Content
	builder *report.Builder
	state   *domain.State
	logger  *slog.Logger
	now     func() time.Time
}

// Option defines a functional option for configuring the App.
type Option func(*App)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithClock injects the time source. Exports and freshly created state use
// it, which keeps tests deterministic.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithContent replaces the content pack, bypassing workspace discovery.
func WithContent(c content.Content) Option {
	return func(a *App) {
		a.content = c
	}
}

// Open loads (or defaults) the workspace rooted at dir. A missing or corrupt
// state file silently yields the default state; a broken content-pack
// override is an error, since the user wrote it deliberately.
func Open(dir string, opts ...Option) (*App, error) {
	a := &App{
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.store = adapters.NewFileStore(dir, a.logger)

	if a.content.ToolName == "" {
		c, err := content.Load(filepath.Join(a.store.BasePath, contentFile))
		if err != nil {
			return nil, fmt.Errorf("failed to load content pack: %w", err)
		}
		a.content = c
	} else if err := a.content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content pack: %w", err)
	}

	a.builder = report.NewBuilder(a.content)
	a.state = a.store.Load(context.Background(), a.now())
	return a, nil
}

// State returns the current workspace state.
func (a *App) State() *domain.State {
	return a.state
}

// Content returns the active content pack.
func (a *App) Content() content.Content {
	return a.content
}

// StatePath returns the location of the persisted state file.
func (a *App) StatePath() string {
	return a.store.Path()
}

// save writes the current state through to the store.
func (a *App) save(ctx context.Context) error {
	return a.store.Save(ctx, a.state)
}

// SetProgramme replaces the programme details.
func (a *App) SetProgramme(ctx context.Context, prog domain.ProgrammeDetails) error {
	a.state.Programme = prog
	return a.save(ctx)
}

// AddItem appends a new item of the given type and returns it.
func (a *App) AddItem(ctx context.Context, t domain.ItemType, name, notes string, tags []domain.Key) (domain.MappingItem, error) {
	item := domain.NewItem(t)
	item.Name = name
	item.Notes = notes
	for _, k := range tags {
		if !domain.ValidKey(k) {
			return domain.MappingItem{}, fmt.Errorf("unknown domain key %q", k)
		}
		item.DomainTags[k] = true
	}
	a.state.Items = append(a.state.Items, item)
	return item, a.save(ctx)
}

// UpdateItem applies fn to the item matching idPrefix and saves.
func (a *App) UpdateItem(ctx context.Context, idPrefix string, fn func(*domain.MappingItem)) (domain.MappingItem, error) {
	i, err := a.resolveItem(idPrefix)
	if err != nil {
		return domain.MappingItem{}, err
	}
	fn(&a.state.Items[i])
	return a.state.Items[i], a.save(ctx)
}

// RemoveItem deletes the item matching idPrefix. If the list empties, a
// single blank Module item is reseeded so the workspace is never left
// without an editable row.
func (a *App) RemoveItem(ctx context.Context, idPrefix string) error {
	i, err := a.resolveItem(idPrefix)
	if err != nil {
		return err
	}
	a.state.Items = append(a.state.Items[:i], a.state.Items[i+1:]...)
	if len(a.state.Items) == 0 {
		a.state.Items = []domain.MappingItem{domain.NewItem(domain.TypeModule)}
	}
	return a.save(ctx)
}

// SetTags switches the given domain keys on or off for one item.
func (a *App) SetTags(ctx context.Context, idPrefix string, keys []domain.Key, on bool) (domain.MappingItem, error) {
	for _, k := range keys {
		if !domain.ValidKey(k) {
			return domain.MappingItem{}, fmt.Errorf("unknown domain key %q", k)
		}
	}
	return a.UpdateItem(ctx, idPrefix, func(item *domain.MappingItem) {
		for _, k := range keys {
			item.DomainTags[k] = on
		}
	})
}

// resolveItem finds the single item whose ID starts with idPrefix. An exact
// ID match wins outright, so imported IDs like "item-1" and "item-12" stay
// addressable.
func (a *App) resolveItem(idPrefix string) (int, error) {
	if idPrefix == "" {
		return 0, domain.ErrItemNotFound
	}
	if i := a.state.FindItem(idPrefix); i >= 0 {
		return i, nil
	}
	found := -1
	for i, item := range a.state.Items {
		if !strings.HasPrefix(item.ID, idPrefix) {
			continue
		}
		if found >= 0 {
			return 0, fmt.Errorf("item ID prefix %q is ambiguous (%s, %s)",
				idPrefix, a.state.Items[found].ID, item.ID)
		}
		found = i
	}
	if found < 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrItemNotFound, idPrefix)
	}
	return found, nil
}

// Coverage computes the per-domain tag counts for the current items.
func (a *App) Coverage() map[domain.Key]int {
	return coverage.Compute(a.state.Items)
}

// Observations derives the observation sentences for the current items.
func (a *App) Observations() []string {
	return coverage.Observations(a.content.Domains, a.state.Items, a.Coverage())
}

// ReportMarkdown renders the full Markdown report for the current state.
// It refuses with ErrNothingTagged while no item carries any domain tag.
func (a *App) ReportMarkdown() (string, error) {
	if a.state.TotalTags() == 0 {
		return "", domain.ErrNothingTagged
	}
	counts := a.Coverage()
	obs := coverage.Observations(a.content.Domains, a.state.Items, counts)
	return a.builder.Markdown(a.state.Programme, a.state.Items, counts, obs, a.now()), nil
}

// CoverageMarkdown renders the coverage table and observations only. Unlike
// the exports this is always available; an untagged workspace simply shows
// zeros and the invitation sentence.
func (a *App) CoverageMarkdown() string {
	return a.builder.CoverageMarkdown(a.state.Items)
}

// ExportJSON writes the JSON export into dir and returns the file path.
func (a *App) ExportJSON(ctx context.Context, dir string) (string, error) {
	if a.state.TotalTags() == 0 {
		return "", domain.ErrNothingTagged
	}
	payload := a.builder.Payload(a.state.Programme, a.state.Items, a.now())
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal export: %w", err)
	}
	return writeArtifact(dir, transport.FileName(a.state.Programme, "json"), data)
}

// ExportMarkdown writes the Markdown report into dir and returns the path.
func (a *App) ExportMarkdown(ctx context.Context, dir string) (string, error) {
	md, err := a.ReportMarkdown()
	if err != nil {
		return "", err
	}
	return writeArtifact(dir, transport.FileName(a.state.Programme, "md"), []byte(md))
}

// Import parses raw export data and atomically replaces the workspace
// state. On any error the current state is left untouched.
func (a *App) Import(ctx context.Context, raw []byte) error {
	next, err := transport.ImportJSON(raw, a.now())
	if err != nil {
		return err
	}
	prev := a.state
	a.state = next
	if err := a.save(ctx); err != nil {
		a.state = prev
		return err
	}
	return nil
}

// Reset replaces the workspace with the default state.
func (a *App) Reset(ctx context.Context) error {
	a.state = domain.NewState(a.now())
	return a.save(ctx)
}

func writeArtifact(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}
