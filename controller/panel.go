// Package controller holds the per-phase input controllers of a turn, the
// shot executor and the bounce boost controller. Every controller checks the
// current turn phase before acting and ignores input that arrives out of phase.
package controller

// Panel is the visibility of one phase's on-screen widget. The renderer reads
// it; only the owning controller writes it.
type Panel struct {
	Name    string
	visible bool
}

func (p *Panel) Show() {
	p.visible = true
}

func (p *Panel) Hide() {
	p.visible = false
}

func (p *Panel) Visible() bool {
	return p.visible
}
