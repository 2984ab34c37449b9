package ports

import "github.com/aalvaropc/bowgen/internal/domain"

// DeckStore persists emitted decks for reproducibility.
type DeckStore interface {
	SaveDeck(deck domain.Deck) (id string, err error)
}
