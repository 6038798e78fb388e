// Package card defines the Card record and the card-specific predicate
// components built on package filter: cost ranges, version and leader sets,
// and the MetaFilter composer that exposes their builder methods directly.
package card

import (
	"fmt"
	"strconv"
)

// Card is a single filterable item. Its fields are fixed at construction.
type Card struct {
	id       int
	name     string
	cost     float64
	version  int
	leaderID int
}

// List is a collection of cards. Filtered lists share the *Card values of
// the list they were taken from.
type List []*Card

// New creates a Card.
func New(id int, name string, cost float64, version, leaderID int) *Card {
	return &Card{
		id:       id,
		name:     name,
		cost:     cost,
		version:  version,
		leaderID: leaderID,
	}
}

func (c *Card) ID() int       { return c.id }
func (c *Card) Name() string  { return c.name }
func (c *Card) Cost() float64 { return c.cost }
func (c *Card) Version() int  { return c.version }
func (c *Card) LeaderID() int { return c.leaderID }

// String renders the card as "[id] name (cost) [version, leader]". The cost
// uses six significant digits with trailing zeros removed, e.g.
// "[2] Card3 (12.5) [1, 1]".
func (c *Card) String() string {
	return fmt.Sprintf("[%d] %s (%s) [%d, %d]",
		c.id, c.name, strconv.FormatFloat(c.cost, 'g', 6, 64), c.version, c.leaderID)
}

// IDs returns the identifiers of the cards in l, in order.
func (l List) IDs() []int {
	ids := make([]int, len(l))
	for i, c := range l {
		ids[i] = c.id
	}
	return ids
}

// SampleDeck returns the five-card illustrative dataset.
func SampleDeck() List {
	return List{
		//   ID  NAME     COST   VER. LEADER
		New(0, "Card1", 30, 1, 0),
		New(1, "Card2", 10, 1, 0),
		New(2, "Card3", 12.5, 1, 1),
		New(3, "Card4", 100, 1, 1),
		New(4, "Card5", 45, 2, 1),
	}
}
