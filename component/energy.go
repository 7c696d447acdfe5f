package component

// Energy is the resource pool special abilities spend.
type Energy struct {
	Max     float64
	Current float64
	// RegenPerSecond is restored by Regen.
	RegenPerSecond float64
}

func NewEnergy(max, regen float64) *Energy {
	if max <= 0 {
		max = 1
	}
	return &Energy{Max: max, Current: max, RegenPerSecond: regen}
}

// Has reports whether at least amount is available.
func (e *Energy) Has(amount float64) bool {
	return e != nil && e.Current >= amount
}

// Deduct spends amount if available. Nothing is spent otherwise.
func (e *Energy) Deduct(amount float64) bool {
	if e == nil || amount < 0 || !e.Has(amount) {
		return false
	}
	e.Current -= amount
	return true
}

// Restore adds energy up to Max.
func (e *Energy) Restore(amount float64) {
	if e == nil || amount <= 0 {
		return
	}
	e.Current += amount
	if e.Current > e.Max {
		e.Current = e.Max
	}
}

// Regen restores RegenPerSecond*dt.
func (e *Energy) Regen(dt float64) {
	if e == nil || dt <= 0 {
		return
	}
	e.Restore(e.RegenPerSecond * dt)
}

func (e *Energy) Fraction() float64 {
	if e == nil || e.Max <= 0 {
		return 0
	}
	return e.Current / e.Max
}
