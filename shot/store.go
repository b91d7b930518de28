package shot

import "github.com/go-gl/mathgl/mgl64"

// Store owns the single mutable Parameters record. Every setter that
// actually changes a field notifies observers once with a full snapshot.
type Store struct {
	params    Parameters
	tuning    Tuning
	observers []func(Parameters)
}

func NewStore(tuning Tuning) *Store {
	return &Store{
		params: DefaultParameters(),
		tuning: tuning,
	}
}

// OnChange registers an observer for parameter snapshots.
func (s *Store) OnChange(fn func(Parameters)) {
	s.observers = append(s.observers, fn)
}

func (s *Store) Snapshot() Parameters {
	return s.params
}

func (s *Store) Tuning() Tuning {
	return s.tuning
}

// SetTuning swaps the constants. Derived values change, the record does not,
// so observers are notified to re-derive.
func (s *Store) SetTuning(t Tuning) {
	s.tuning = t
	s.notify()
}

func (s *Store) SetAngle(a float64) bool {
	return s.update(func(p *Parameters) { p.Angle = NormalizeAngle(a) })
}

func (s *Store) AddAngle(delta float64) bool {
	return s.SetAngle(s.params.Angle + delta)
}

func (s *Store) SetPower(power float64) bool {
	return s.update(func(p *Parameters) { p.Power = ClampUnit(power) })
}

// SetShotType also drops a spin the new type does not allow.
func (s *Store) SetShotType(t ShotType) bool {
	return s.update(func(p *Parameters) {
		p.ShotType = t
		if !SpinAllowed(t, p.SpinType) {
			p.SpinType = SpinNone
		}
	})
}

func (s *Store) ToggleShotType() bool {
	return s.SetShotType(s.params.ShotType.Toggle())
}

// SetSpin applies the spin rules: a spin the shot type does not allow
// becomes NONE, and picking the opposite of the active direction cancels
// to NONE instead of switching.
func (s *Store) SetSpin(spin SpinType, intensity float64) bool {
	return s.update(func(p *Parameters) {
		switch {
		case !SpinAllowed(p.ShotType, spin):
			spin = SpinNone
		case spin != SpinNone && spin == p.SpinType.Opposite():
			spin = SpinNone
		}
		p.SpinType = spin
		p.SpinIntensity = ClampUnit(intensity)
	})
}

func (s *Store) SetSpinType(spin SpinType) bool {
	return s.SetSpin(spin, s.params.SpinIntensity)
}

// CycleSpin steps through the shot type's spin menu in order.
func (s *Store) CycleSpin() bool {
	menu := AllowedSpins(s.params.ShotType)
	next := menu[0]
	for i, spin := range menu {
		if spin == s.params.SpinType {
			next = menu[(i+1)%len(menu)]
			break
		}
	}
	// cycling is a direct pick, not a directional press, so skip cancellation
	return s.update(func(p *Parameters) { p.SpinType = next })
}

func (s *Store) AddSpinIntensity(delta float64) bool {
	return s.update(func(p *Parameters) { p.SpinIntensity = ClampUnit(p.SpinIntensity + delta) })
}

func (s *Store) SetGuideLength(g GuideLength) bool {
	return s.update(func(p *Parameters) { p.GuideLength = g })
}

func (s *Store) ToggleGuideLength() bool {
	return s.SetGuideLength(s.params.GuideLength.Toggle())
}

// Reset restores the turn defaults.
func (s *Store) Reset() bool {
	return s.update(func(p *Parameters) { *p = DefaultParameters() })
}

func (s *Store) Direction() mgl64.Vec3 {
	return s.params.Direction()
}

func (s *Store) ActualPower() float64 {
	return s.params.ActualPower(s.tuning)
}

func (s *Store) ShotHeight() float64 {
	return s.params.ShotHeight(s.tuning)
}

func (s *Store) IsSuperShot() bool {
	return s.params.IsSuperShot(s.tuning)
}

// CalculateShotVector returns the impulse for the current record.
func (s *Store) CalculateShotVector() mgl64.Vec3 {
	return s.params.ShotVector(s.tuning)
}

func (s *Store) SpinTorque() mgl64.Vec3 {
	return s.params.SpinTorque(s.tuning)
}

func (s *Store) GuideDistance() float64 {
	return s.tuning.GuideDistance(s.params.GuideLength)
}

func (s *Store) update(mutate func(p *Parameters)) bool {
	next := s.params
	mutate(&next)
	if next == s.params {
		return false
	}
	s.params = next
	s.notify()
	return true
}

func (s *Store) notify() {
	snapshot := s.params
	for _, fn := range s.observers {
		fn(snapshot)
	}
}
