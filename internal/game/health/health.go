// Package health tracks hit points and publishes damage and death.
package health

import (
	"github.com/Faultbox/vanguard/internal/engine/signal"
)

// Source is a health value observers can display and react to.
type Source interface {
	CurrentHealth() int
	MaxHealth() int
	// Damaged fires with the damage amount after health changes.
	Damaged() *signal.Signal[int]
	// Died fires once when health first reaches zero.
	Died() *signal.Signal[struct{}]
}

// pool is the shared hit point bookkeeping.
type pool struct {
	current int
	max     int
	dead    bool

	damaged signal.Signal[int]
	died    signal.Signal[struct{}]
}

func newPool(max int) pool {
	return pool{current: max, max: max}
}

func (p *pool) CurrentHealth() int { return p.current }
func (p *pool) MaxHealth() int { return p.max }
func (p *pool) Damaged() *signal.Signal[int] { return &p.damaged }
func (p *pool) Died() *signal.Signal[struct{}] { return &p.died }
func (p *pool) Dead() bool { return p.dead }

// subtract applies damage and publishes the result.
func (p *pool) subtract(amount int) {
	p.current -= amount
	p.damaged.Emit(amount)
	if p.current <= 0 && !p.dead {
		p.dead = true
		p.died.Emit(struct{}{})
	}
}
