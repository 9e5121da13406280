package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-spaceship/internal/config"
)

// drain polls until the final event arrives
func drain(t *testing.T, l *Loader) []Event {
	t.Helper()

	var events []Event
	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("loader did not finish")
		default:
		}

		ev, ok := l.Poll()
		if !ok {
			time.Sleep(time.Millisecond)
			continue
		}
		events = append(events, ev)
		if ev.Done {
			return events
		}
	}
}

func TestPollBeforeStart(t *testing.T) {
	l := NewLoader("ship.gltf", DefaultClips)
	_, ok := l.Poll()
	assert.False(t, ok)
}

func TestLoadPlaceholder(t *testing.T) {
	l := NewLoader("ship.gltf", DefaultClips)
	l.SetOpenFunc(func(path string) (*gltf.Document, error) {
		assert.Equal(t, "ship.gltf", path)
		return &gltf.Document{
			Animations: []*gltf.Animation{{Name: "Hover"}},
		}, nil
	})
	l.Start(context.Background())

	events := drain(t, l)
	require.Len(t, events, 5)

	var percents []float32
	for _, ev := range events[:4] {
		assert.False(t, ev.Done)
		percents = append(percents, ev.Progress.Percent())
	}
	assert.Equal(t, []float32{25, 50, 75, 100}, percents)

	final := events[4]
	require.NoError(t, final.Err)
	require.NotNil(t, final.Model)
	assert.Equal(t, []string{"Hover"}, final.Model.Animations)
	assert.Equal(t, []string{"idle", "run", "walk"}, final.Model.Clips.Names())
	assert.False(t, final.Model.Mesh.Empty())
	assert.Len(t, final.Model.Mesh.Positions, 24)

	done, err := l.Tracker().Done()
	assert.True(t, done)
	assert.NoError(t, err)
	assert.Equal(t, Progress{Loaded: 4, Total: 4}, l.Tracker().Progress())
}

func TestLoadFailure(t *testing.T) {
	boom := errors.New("boom")
	l := NewLoader("missing.gltf", DefaultClips)
	l.SetOpenFunc(func(string) (*gltf.Document, error) {
		return nil, boom
	})
	l.Start(context.Background())

	events := drain(t, l)
	require.Len(t, events, 1)
	assert.ErrorIs(t, events[0].Err, boom)
	assert.Nil(t, events[0].Model)

	done, err := l.Tracker().Done()
	assert.True(t, done)
	assert.ErrorIs(t, err, boom)
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewLoader("ship.gltf", DefaultClips)
	l.SetOpenFunc(EmptyDocument)
	l.Start(ctx)

	events := drain(t, l)
	final := events[len(events)-1]
	assert.ErrorIs(t, final.Err, context.Canceled)
	assert.Nil(t, final.Model)
}

func TestStartTwice(t *testing.T) {
	l := NewLoader("ship.gltf", nil)
	l.SetOpenFunc(EmptyDocument)
	l.Start(context.Background())
	l.Start(context.Background())

	events := drain(t, l)
	assert.Len(t, events, 2)

	_, ok := l.Poll()
	assert.False(t, ok)
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, float32(0), Progress{}.Percent())
	assert.Equal(t, float32(50), Progress{Loaded: 1, Total: 2}.Percent())
	assert.Equal(t, float32(100), Progress{Loaded: 3, Total: 2}.Percent())
}

func TestTrackerReadWhileLoading(t *testing.T) {
	release := make(chan struct{})
	l := NewLoader("ship.gltf", DefaultClips)
	l.SetOpenFunc(func(string) (*gltf.Document, error) {
		<-release
		return &gltf.Document{}, nil
	})
	l.Start(context.Background())

	// the loader is blocked opening the file
	assert.Equal(t, Progress{Loaded: 0, Total: 4}, l.Tracker().Progress())
	close(release)

	last := 0
	require.Eventually(t, func() bool {
		p := l.Tracker().Progress()
		assert.GreaterOrEqual(t, p.Loaded, last)
		last = p.Loaded
		done, _ := l.Tracker().Done()
		return done
	}, 5*time.Second, time.Millisecond)

	assert.Equal(t, float32(100), l.Tracker().Progress().Percent())
}

func TestOpenModelMissingFileUsesPlaceholder(t *testing.T) {
	doc, err := OpenModel(filepath.Join(t.TempDir(), "missing.gltf"))
	require.NoError(t, err)
	assert.Empty(t, doc.Meshes)

	doc, err = OpenModel("")
	require.NoError(t, err)
	assert.Empty(t, doc.Meshes)
}

func TestOpenModelBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.gltf")
	require.NoError(t, os.WriteFile(path, []byte("not a gltf file"), 0o644))

	_, err := OpenModel(path)
	assert.Error(t, err)
}

func TestDefaultModelPathLoads(t *testing.T) {
	l := NewLoader(config.Default().Assets.Model, DefaultClips)
	l.Start(context.Background())

	events := drain(t, l)
	final := events[len(events)-1]
	require.NoError(t, final.Err)
	require.NotNil(t, final.Model)
	assert.False(t, final.Model.Mesh.Empty())
}

func TestLoadBadAccessorReported(t *testing.T) {
	l := NewLoader("ship.gltf", DefaultClips)
	l.SetOpenFunc(func(string) (*gltf.Document, error) {
		return &gltf.Document{
			Meshes: []*gltf.Mesh{{
				Name: "hull",
				Primitives: []*gltf.Primitive{{
					Attributes: gltf.Attribute{gltf.POSITION: 7},
				}},
			}},
		}, nil
	})
	l.Start(context.Background())

	events := drain(t, l)
	final := events[len(events)-1]
	assert.ErrorIs(t, final.Err, ErrBadAccessor)
	assert.Nil(t, final.Model)
}

func TestLoadPanicReported(t *testing.T) {
	l := NewLoader("ship.gltf", DefaultClips)
	l.SetOpenFunc(func(string) (*gltf.Document, error) {
		panic("buffer index out of range")
	})
	l.Start(context.Background())

	events := drain(t, l)
	require.Len(t, events, 1)
	assert.ErrorIs(t, events[0].Err, ErrMalformedModel)

	done, err := l.Tracker().Done()
	assert.True(t, done)
	assert.ErrorIs(t, err, ErrMalformedModel)
}
