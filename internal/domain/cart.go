package domain

import (
	"fmt"

	"golang.org/x/text/currency"
)

// Cart holds at most one line per catalog item, in first-seen order.
// Every line has a positive quantity.
type Cart struct {
	OwnerID  string
	Currency currency.Unit

	lines []CartLine
}

type CartLine struct {
	Item     CatalogItem
	Quantity int
}

func (l CartLine) Total() Money {
	return l.Item.UnitPrice.MulInt(l.Quantity)
}

func NewCart(ownerID string, cur currency.Unit) Cart {
	return Cart{
		OwnerID:  ownerID,
		Currency: cur,
	}
}

// RestoreCart rebuilds a cart from stored lines, rejecting lines a cart could not hold.
func RestoreCart(ownerID string, cur currency.Unit, lines []CartLine) (Cart, error) {
	cart := NewCart(ownerID, cur)
	seen := make(map[int64]struct{}, len(lines))

	for _, line := range lines {
		if err := line.Item.Validate(); err != nil {
			return Cart{}, fmt.Errorf("line[%d]: %w", line.Item.ID, err)
		}
		if line.Quantity <= 0 {
			return Cart{}, fmt.Errorf("line[%d]: %w: %d", line.Item.ID, ErrInvalidQuantity, line.Quantity)
		}
		if line.Item.UnitPrice.Currency != cur {
			return Cart{}, fmt.Errorf("line[%d]: %w", line.Item.ID, ErrCurrencyMismatch)
		}
		if _, ok := seen[line.Item.ID]; ok {
			return Cart{}, fmt.Errorf("line[%d]: duplicate item", line.Item.ID)
		}
		seen[line.Item.ID] = struct{}{}

		cart.lines = append(cart.lines, line)
	}

	return cart, nil
}

// AddItem merges quantity into the existing line for item, or appends a new one.
// The merged sum is not checked against stock; callers pre-check it.
func (c *Cart) AddItem(item CatalogItem, quantity int) error {
	if quantity <= 0 || quantity > item.StockQuantity {
		return fmt.Errorf("%w: %d (stock %d)", ErrInvalidQuantity, quantity, item.StockQuantity)
	}
	if item.UnitPrice.Currency != c.Currency {
		return fmt.Errorf("%w: item %s, cart %s", ErrCurrencyMismatch, item.UnitPrice.Currency, c.Currency)
	}

	if i := c.index(item.ID); i >= 0 {
		c.lines[i].Quantity += quantity
		return nil
	}

	c.lines = append(c.lines, CartLine{Item: item, Quantity: quantity})
	return nil
}

// ChangeQuantity adds delta to the line's quantity and drops the line once it reaches zero.
// Unknown item IDs are ignored.
func (c *Cart) ChangeQuantity(itemID int64, delta int) {
	i := c.index(itemID)
	if i < 0 {
		return
	}

	next := c.lines[i].Quantity + delta
	if next <= 0 {
		c.removeAt(i)
		return
	}
	c.lines[i].Quantity = next
}

func (c *Cart) RemoveItem(itemID int64) {
	if i := c.index(itemID); i >= 0 {
		c.removeAt(i)
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c Cart) TotalItemCount() int {
	var total int
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

func (c Cart) TotalPrice() Money {
	total := ZeroMoney(c.Currency)
	for _, line := range c.lines {
		// currencies are checked on insertion
		total.Amount = total.Amount.Add(line.Total().Amount)
	}
	return total
}

// Lines returns a copy of the cart lines.
func (c Cart) Lines() []CartLine {
	if len(c.lines) == 0 {
		return nil
	}
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c Cart) Line(itemID int64) (CartLine, bool) {
	if i := c.index(itemID); i >= 0 {
		return c.lines[i], true
	}
	return CartLine{}, false
}

func (c Cart) Len() int {
	return len(c.lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c Cart) index(itemID int64) int {
	for i, line := range c.lines {
		if line.Item.ID == itemID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i:i], c.lines[i+1:]...)
}

// Clone returns a cart that shares no line storage with c.
func (c Cart) Clone() Cart {
	out := c
	out.lines = c.Lines()
	return out
}
