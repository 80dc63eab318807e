package component

import (
	"github.com/milk9111/platformer/prefabs"
)

// Animation steps through the frames of the current clip. Clips come from a
// prefab's animation block and are switched by name; switching to the clip
// already playing keeps its frame.
type Animation struct {
	clips   map[string]prefabs.ClipSpec
	clip    string
	current int
	elapsed float64
	Loop    bool
}

// NewAnimation creates an Animation over the given clips. Loop controls
// whether clips wrap back to their first frame.
func NewAnimation(spec prefabs.AnimationSpec, loop bool) *Animation {
	return &Animation{clips: spec.Clips, Loop: loop}
}

// SetClips swaps the clip table, e.g. after a prefab reload. The current
// clip restarts.
func (a *Animation) SetClips(spec prefabs.AnimationSpec) {
	if a == nil {
		return
	}
	a.clips = spec.Clips
	a.Reset()
}

// Play switches to the named clip. Unknown names are ignored.
func (a *Animation) Play(name string) {
	if a == nil || name == a.clip {
		return
	}
	if _, ok := a.clips[name]; !ok {
		return
	}
	a.clip = name
	a.Reset()
}

func (a *Animation) Clip() string {
	if a == nil {
		return ""
	}
	return a.clip
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if a == nil {
		return
	}
	spec, ok := a.clips[a.clip]
	if !ok || spec.Frames <= 1 || spec.Interval <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= spec.Interval {
		a.elapsed -= spec.Interval
		a.current++
		if a.current >= spec.Frames {
			if a.Loop {
				a.current = 0
			} else {
				a.current = spec.Frames - 1
			}
		}
	}
}

// Reset sets the animation back to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.elapsed = 0
}

// Frame returns the current frame index within the clip.
func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	return a.current
}

// SetFrame jumps to a specific frame index.
func (a *Animation) SetFrame(i int) {
	if a == nil {
		return
	}
	spec, ok := a.clips[a.clip]
	if !ok || spec.Frames == 0 {
		return
	}
	a.current = max(0, min(i, spec.Frames-1))
	a.elapsed = 0
}
