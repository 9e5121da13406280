package anim

import (
	"sort"
)

// Mixer plays named animation clips
type Mixer interface {
	Play(clip string)
	Update(dt float32)
}

// ClipSet tracks the loaded clip names and which one is playing.
// Blending between clips is left to the renderer.
type ClipSet struct {
	clips  map[string]float32
	active string
	time   float32
}

// NewClipSet creates an empty clip set
func NewClipSet() *ClipSet {
	return &ClipSet{clips: make(map[string]float32)}
}

// Add registers a clip and its duration in seconds
func (c *ClipSet) Add(name string, duration float32) {
	c.clips[name] = duration
}

// Has reports whether a clip is loaded
func (c *ClipSet) Has(name string) bool {
	_, ok := c.clips[name]
	return ok
}

// Names returns the loaded clip names sorted alphabetically
func (c *ClipSet) Names() []string {
	names := make([]string, 0, len(c.clips))
	for name := range c.clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Play switches to the named clip and rewinds it. Playing the active clip
// again keeps its time.
func (c *ClipSet) Play(name string) {
	if name == c.active {
		return
	}
	c.active = name
	c.time = 0
}

// Active returns the name of the playing clip, empty if none
func (c *ClipSet) Active() string {
	return c.active
}

// Time returns the playback position of the active clip in seconds
func (c *ClipSet) Time() float32 {
	return c.time
}

// Update advances the active clip, looping at its duration
func (c *ClipSet) Update(dt float32) {
	if c.active == "" {
		return
	}
	c.time += dt

	duration := c.clips[c.active]
	if duration <= 0 {
		return
	}
	for c.time >= duration {
		c.time -= duration
	}
}
