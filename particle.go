package talkie

// particle holds per-particle simulation state. Unexported; managed by
// WeatherField.
type particle struct {
	x, y  float64
	speed float64 // vertical pixels per tick
	drift float64 // horizontal pixels per tick
	size  float64
}

// spawnY is where recycled and ramp-up particles enter: just above the top
// edge.
const spawnY = -10

// WeatherPolicy controls the particle population of one weather mode.
// Speeds and drift are in pixels per tick.
type WeatherPolicy struct {
	// Count is the target number of live particles.
	Count int
	// Speed is the range of vertical speeds.
	Speed Range
	// Drift is the range of horizontal drift per tick.
	Drift Range
	// Size is the range of particle sizes (circle radius for snow).
	Size Range
	// Length is the drop length in pixels for line-rendered weather.
	Length float64
	// Wrap, when true, wraps particles leaving the sides to the opposite
	// edge. When false they are replaced by a fresh spawn.
	Wrap  bool
	Color Color
}

// DefaultWeatherPolicies returns the built-in rain and snow policies. Rain is
// fast with no drift; snow is slow and drifts sideways.
func DefaultWeatherPolicies() map[WeatherMode]WeatherPolicy {
	return map[WeatherMode]WeatherPolicy{
		WeatherRain: {
			Count:  100,
			Speed:  Range{10, 20},
			Size:   Range{2, 2},
			Length: 10,
			Color:  Color{0, 0, 1, 1},
		},
		WeatherSnow: {
			Count: 200,
			Speed: Range{1, 3},
			Drift: Range{-1, 1},
			Size:  Range{1, 4},
			Wrap:  true,
			Color: ColorWhite,
		},
	}
}

// WeatherField simulates the background weather layer.
type WeatherField struct {
	mode      WeatherMode
	policies  map[WeatherMode]WeatherPolicy
	particles []particle
	width     float64
	height    float64
	rng       Rand
}

// NewWeatherField creates a clear field of the given size. A nil policies map
// selects DefaultWeatherPolicies.
func NewWeatherField(width, height float64, rng Rand, policies map[WeatherMode]WeatherPolicy) *WeatherField {
	if policies == nil {
		policies = DefaultWeatherPolicies()
	}
	return &WeatherField{
		policies: policies,
		width:    width,
		height:   height,
		rng:      rng,
	}
}

// Resize updates the visible area. Existing particles keep their positions
// and are recycled by the next Update if they now lie outside.
func (f *WeatherField) Resize(width, height float64) {
	f.width, f.height = width, height
}

// Mode returns the current weather mode.
func (f *WeatherField) Mode() WeatherMode {
	return f.mode
}

// Target returns the particle count the field converges to in mode.
func (f *WeatherField) Target(mode WeatherMode) int {
	if mode == WeatherClear {
		return 0
	}
	return f.policies[mode].Count
}

// Len returns the number of live particles.
func (f *WeatherField) Len() int {
	return len(f.particles)
}

// SetWeather discards every particle and, unless mode is clear, fills the
// field to its target count with particles spread over the full height.
func (f *WeatherField) SetWeather(mode WeatherMode) {
	f.mode = mode
	f.particles = f.particles[:0]
	n := f.Target(mode)
	for i := 0; i < n; i++ {
		f.particles = append(f.particles, f.newParticle(true))
	}
}

// Update advances the simulation by one tick. The field grows by at most one
// particle per tick until it reaches its target count.
func (f *WeatherField) Update() {
	if f.mode == WeatherClear {
		return
	}
	pol := f.policies[f.mode]

	if len(f.particles) < pol.Count {
		f.particles = append(f.particles, f.newParticle(false))
	}

	for i := range f.particles {
		p := &f.particles[i]
		p.y += p.speed
		p.x += p.drift

		if p.y > f.height {
			*p = f.newParticle(false)
			continue
		}
		if p.x > f.width || p.x < 0 {
			if pol.Wrap {
				if p.x > f.width {
					p.x = 0
				} else {
					p.x = f.width
				}
			} else {
				*p = f.newParticle(false)
			}
		}
	}
}

// Draw renders the particles. Clear weather draws nothing.
func (f *WeatherField) Draw(s Surface) {
	if f.mode == WeatherClear {
		return
	}
	pol := f.policies[f.mode]
	for i := range f.particles {
		p := &f.particles[i]
		if pol.Length > 0 {
			s.StrokeLine(p.x, p.y, p.x, p.y+pol.Length, 1, pol.Color)
		} else {
			s.FillCircle(p.x, p.y, p.size, pol.Color)
		}
	}
}

// newParticle creates a particle for the current mode. With randomY the
// particle is placed anywhere in the field; otherwise it enters at spawnY.
func (f *WeatherField) newParticle(randomY bool) particle {
	pol := f.policies[f.mode]
	y := float64(spawnY)
	if randomY {
		y = f.rng.Float64() * f.height
	}
	return particle{
		x:     f.rng.Float64() * f.width,
		y:     y,
		speed: pol.Speed.Random(f.rng),
		drift: pol.Drift.Random(f.rng),
		size:  pol.Size.Random(f.rng),
	}
}
