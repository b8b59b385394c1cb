package core

import "time"

// Pacer throttles a run loop to a steady steps-per-second rate. A rate of
// zero or less disables pacing entirely.
type Pacer struct {
	step time.Duration
	next time.Time
}

// NewPacer constructs a Pacer targeting the given TPS.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	return p
}

// SetTPS changes the step rate. It is safe to call between steps.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		p.step = 0
		return
	}
	p.step = time.Second / time.Duration(tps)
}

// Wait blocks until the next step is due. The deadline accumulates from the
// previous one, so a slow step does not also pay a full extra sleep.
func (p *Pacer) Wait() {
	if p.step == 0 {
		return
	}
	now := time.Now()
	if p.next.IsZero() {
		p.next = now.Add(p.step)
		return
	}
	if d := p.next.Sub(now); d > 0 {
		time.Sleep(d)
	}
	p.next = p.next.Add(p.step)
}
