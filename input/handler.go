package input

import (
	"log"

	"github.com/lixenwraith/term-snake/engine"
)

// Handler reads at most one pending key per tick and applies it to the game state
// Keys pressed faster than the tick rate queue in the source and are consumed one per tick
type Handler struct {
	source KeySource
	table  *KeyTable
}

// NewHandler creates a handler over source, a nil table selects DefaultKeyTable
func NewHandler(source KeySource, table *KeyTable) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{
		source: source,
		table:  table,
	}
}

// Update implements engine.Controller
func (h *Handler) Update(s *engine.GameState) {
	key, ok := h.source.Poll()
	if !ok {
		return
	}

	intent := h.table.Lookup(key)
	switch intent {
	case IntentNone:
		return
	case IntentQuit:
		log.Printf("exit key pressed")
		s.End(engine.OutcomeQuit)
		return
	}

	if d, ok := intent.Direction(); ok {
		s.Steer(d)
	}
}
