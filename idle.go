package talkie

import "time"

// idleAction is one transient pose chosen when the idle countdown expires.
type idleAction struct {
	pose string
	hold time.Duration // how long the pose stays before reverting to rest
	next time.Duration // countdown to the following idle action
}

// idlePoser is the idle animation state machine shared by the portrait
// characters. It rests on a neutral pose, counts down to the next idle
// action, shows that pose for its hold time, then reverts to rest and counts
// down again.
type idlePoser struct {
	rest     string
	pose     string
	poseLeft time.Duration
	nextIn   time.Duration
	choose   func() idleAction
}

func newIdlePoser(rest string, firstIn time.Duration, choose func() idleAction) idlePoser {
	return idlePoser{
		rest:   rest,
		pose:   rest,
		nextIn: firstIn,
		choose: choose,
	}
}

// update advances the countdowns by dt, which callers clamp beforehand.
func (p *idlePoser) update(dt time.Duration) {
	if p.poseLeft > 0 {
		p.poseLeft -= dt
		if p.poseLeft <= 0 {
			p.pose = p.rest
			p.poseLeft = 0
		}
		return
	}

	p.nextIn -= dt
	if p.nextIn > 0 {
		return
	}

	a := p.choose()
	p.pose = a.pose
	p.poseLeft = a.hold
	p.nextIn = a.next
}

// set switches to pose immediately. The pose stays until the next idle
// action replaces it.
func (p *idlePoser) set(pose string) {
	p.pose = pose
	p.poseLeft = 0
}

// msBetween returns a random duration in [min, max) milliseconds.
func msBetween(rng Rand, r Range) time.Duration {
	return time.Duration(r.Random(rng) * float64(time.Millisecond))
}
