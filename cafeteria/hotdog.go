package cafeteria

import (
	"fmt"
	"time"

	"github.com/KavunVP/cafeteria/ingredients"
)

// Minimum time each ingredient must spend on a burner before it may be
// taken off. Fixed per deployment; configurable only through the config file.
const (
	MinBreadCookDuration   = 1 * time.Second
	MinSausageCookDuration = 1500 * time.Millisecond
)

// HotDog is the finished product: an order ID plus both fully cooked
// ingredients. Immutable once assembled.
type HotDog struct {
	id      int
	sausage *ingredients.Sausage
	bread   *ingredients.Bread
}

// NewHotDog assembles a hot dog from cooked ingredients.
// Returns an error if either ingredient has not finished cooking.
func NewHotDog(id int, sausage *ingredients.Sausage, bread *ingredients.Bread) (*HotDog, error) {
	if !sausage.IsCooked() {
		return nil, fmt.Errorf("assembling hot dog #%d: sausage #%d is not cooked", id, sausage.ID())
	}
	if !bread.IsCooked() {
		return nil, fmt.Errorf("assembling hot dog #%d: bread #%d is not cooked", id, bread.ID())
	}
	return &HotDog{id: id, sausage: sausage, bread: bread}, nil
}

// ID returns the order identifier the hot dog was made for.
func (h *HotDog) ID() int { return h.id }

// Sausage returns the cooked sausage.
func (h *HotDog) Sausage() *ingredients.Sausage { return h.sausage }

// Bread returns the cooked bread.
func (h *HotDog) Bread() *ingredients.Bread { return h.bread }
