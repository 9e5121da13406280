package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipSet(t *testing.T) {
	c := NewClipSet()
	c.Add("walk", 1)
	c.Add("idle", 2)
	c.Add("run", 0.5)

	assert.Equal(t, []string{"idle", "run", "walk"}, c.Names())
	assert.True(t, c.Has("run"))
	assert.False(t, c.Has("jump"))
	assert.Empty(t, c.Active())

	// nothing plays yet
	c.Update(1)
	assert.Zero(t, c.Time())

	c.Play("walk")
	c.Update(0.25)
	assert.Equal(t, "walk", c.Active())
	assert.InDelta(t, 0.25, c.Time(), 1e-6)

	// replaying keeps time
	c.Play("walk")
	assert.InDelta(t, 0.25, c.Time(), 1e-6)

	// looping
	c.Update(1)
	assert.InDelta(t, 0.25, c.Time(), 1e-6)

	c.Play("run")
	assert.Zero(t, c.Time())
}

func TestClipSetZeroDuration(t *testing.T) {
	c := NewClipSet()
	c.Add("idle", 0)
	c.Play("idle")
	c.Update(3)
	assert.InDelta(t, 3, c.Time(), 1e-6)
}
