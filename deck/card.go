package deck

// Card represents a single memory card. It is created face down with a
// fixed value and mutated only through Reveal, Hide and SetMatched.
type Card struct {
	value    rune
	revealed bool
	matched  bool
}

// NewCard constructs a face-down card with the given value
func NewCard(value rune) Card {
	return Card{value: value}
}

// Value returns a card's face value
func (c *Card) Value() rune {
	return c.value
}

// Revealed reports whether a card is currently face up
func (c *Card) Revealed() bool {
	return c.revealed
}

// Matched reports whether a card belongs to a confirmed pair
func (c *Card) Matched() bool {
	return c.matched
}

// Reveal turns a card face up. Matched cards are already face up, so
// this is a no-op for them.
func (c *Card) Reveal() {
	if c.matched {
		return
	}
	c.revealed = true
}

// Hide turns a card face down again. Matched cards can never be hidden.
func (c *Card) Hide() {
	if c.matched {
		return
	}
	c.revealed = false
}

// SetMatched locks a card face up as one half of a confirmed pair.
// Matching is permanent.
func (c *Card) SetMatched() {
	c.matched = true
	c.revealed = true
}

func (c *Card) String() string {
	if c.revealed {
		return string(c.value)
	}
	return "*"
}
