// Package assets loads the spaceship model and its animation clips in the
// background and hands the result to the frame loop.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/rs/zerolog/log"

	"github.com/leterax/go-spaceship/pkg/anim"
)

// DefaultClips are the clip sets loaded for the character
var DefaultClips = []string{"walk", "run", "idle"}

// PlaceholderHalfExtents sizes the stand-in mesh used when the model has no geometry
var PlaceholderHalfExtents = mgl32.Vec3{4.5, 1.5, 4.5}

// Model is a loaded character model
type Model struct {
	Mesh  *MeshData
	Clips *anim.ClipSet
	// Animations lists the clip names found in the file
	Animations []string
}

// Event is sent from the loader to the frame loop
type Event struct {
	Progress Progress
	// Model and Err are set on the final event
	Model *Model
	Err   error
	Done  bool
}

// OpenFunc reads a glTF document
type OpenFunc func(path string) (*gltf.Document, error)

// Loader loads a model on a background goroutine
type Loader struct {
	path    string
	clips   []string
	open    OpenFunc
	events  chan Event
	tracker *Tracker
	started bool
}

// NewLoader creates a loader for the glTF file at path
func NewLoader(path string, clips []string) *Loader {
	return &Loader{
		path:    path,
		clips:   clips,
		open:    OpenModel,
		events:  make(chan Event, len(clips)+2),
		tracker: &Tracker{},
	}
}

// SetOpenFunc replaces the document reader
func (l *Loader) SetOpenFunc(open OpenFunc) {
	l.open = open
}

// Tracker returns the shared progress state
func (l *Loader) Tracker() *Tracker {
	return l.tracker
}

// Start begins loading. It returns immediately; results arrive through Poll.
func (l *Loader) Start(ctx context.Context) {
	if l.started {
		return
	}
	l.started = true
	l.tracker.setTotal(1 + len(l.clips))

	go l.run(ctx)
}

// Poll returns the next pending event without blocking
func (l *Loader) Poll() (Event, bool) {
	select {
	case ev := <-l.events:
		return ev, true
	default:
		return Event{}, false
	}
}

func (l *Loader) run(ctx context.Context) {
	model, err := l.safeLoad(ctx)
	if err != nil {
		log.Error().Err(err).Str("path", l.path).Msg("failed to load model")
	}
	l.tracker.finish(err)
	l.events <- Event{
		Progress: l.tracker.Progress(),
		Model:    model,
		Err:      err,
		Done:     true,
	}
}

// safeLoad turns a panic while decoding a malformed file into an error
func (l *Loader) safeLoad(ctx context.Context) (model *Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			model = nil
			err = fmt.Errorf("%w: %v", ErrMalformedModel, r)
		}
	}()
	return l.load(ctx)
}

func (l *Loader) load(ctx context.Context) (*Model, error) {
	doc, err := l.open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", l.path, err)
	}

	mesh, err := extractMesh(doc)
	if err != nil {
		return nil, err
	}
	if mesh.Empty() {
		log.Warn().Str("path", l.path).Msg("model has no triangles, using placeholder")
		mesh = BoxMesh(PlaceholderHalfExtents)
	}

	model := &Model{
		Mesh:  mesh,
		Clips: anim.NewClipSet(),
	}
	for _, a := range doc.Animations {
		model.Animations = append(model.Animations, a.Name)
	}
	l.report()

	for _, name := range l.clips {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// every clip set reads the same file, the mixer only needs the name
		model.Clips.Add(name, 0)
		l.report()
	}

	log.Info().
		Str("path", l.path).
		Int("vertices", len(mesh.Positions)).
		Strs("animations", model.Animations).
		Msg("model loaded")

	return model, nil
}

func (l *Loader) report() {
	p := l.tracker.advance()
	log.Debug().Float32("percent", p.Percent()).Msg("loading")
	l.events <- Event{Progress: p}
}

// ErrMalformedModel wraps a panic raised while reading a model file
var ErrMalformedModel = errors.New("malformed model")

// OpenModel opens the glTF file at path. An empty path or a file that does
// not exist yields an empty document, so the placeholder model is used.
func OpenModel(path string) (*gltf.Document, error) {
	if path == "" {
		log.Warn().Msg("no model configured, using placeholder")
		return EmptyDocument(path)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("model file not found, using placeholder")
		return EmptyDocument(path)
	}
	return gltf.Open(path)
}

// EmptyDocument opens nothing and yields a document with no meshes, so the
// placeholder model is used
func EmptyDocument(string) (*gltf.Document, error) {
	return &gltf.Document{}, nil
}
