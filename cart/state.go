package cart

import (
	"fmt"

	"goflare.io/storefront/models"
)

// State is the full cart state: an ordered collection of lines, one per
// distinct product id, in the order the products were first added. A line
// that is removed and re-added moves to the end.
type State struct {
	Items []models.CartLine `json:"items"`
}

// reduce is the single pure transition function of the cart. It never
// mutates the input state; every path returns a fresh Items slice.
func reduce(state State, cmd Command) State {
	switch c := cmd.(type) {
	case AddItem:
		quantity := c.Quantity
		if quantity < 1 {
			quantity = 1
		}

		for i, line := range state.Items {
			if line.ID == c.Product.ID {
				next := cloneLines(state.Items)
				next[i].Quantity += quantity
				return State{Items: next}
			}
		}

		next := cloneLines(state.Items)
		next = append(next, models.CartLine{Product: c.Product, Quantity: quantity})
		return State{Items: next}

	case RemoveItem:
		return State{Items: dropLine(state.Items, c.ID)}

	case UpdateQuantity:
		if c.Quantity <= 0 {
			// Quantity floor: setting zero or below removes the line.
			return State{Items: dropLine(state.Items, c.ID)}
		}

		next := cloneLines(state.Items)
		for i, line := range next {
			if line.ID == c.ID {
				next[i].Quantity = c.Quantity
				break
			}
		}
		return State{Items: next}

	case ClearCart:
		return State{Items: []models.CartLine{}}

	default:
		return state
	}
}

func (s State) itemCount() int {
	count := 0
	for _, line := range s.Items {
		count += line.Quantity
	}
	return count
}

func (s State) total() float64 {
	total := 0.0
	for _, line := range s.Items {
		total += line.Subtotal()
	}
	return total
}

func (s State) find(id models.ProductID) (models.CartLine, bool) {
	for _, line := range s.Items {
		if line.ID == id {
			return line, true
		}
	}
	return models.CartLine{}, false
}

// validate checks a deserialized state against the cart invariants. Any
// violation marks the whole payload as corrupt; restore never keeps part of
// a malformed state.
func (s State) validate() error {
	seen := make(map[models.ProductID]struct{}, len(s.Items))
	for _, line := range s.Items {
		if line.ID == "" {
			return fmt.Errorf("line %q has no product id", line.Name)
		}
		if _, dup := seen[line.ID]; dup {
			return fmt.Errorf("duplicate line for product %s", line.ID)
		}
		seen[line.ID] = struct{}{}

		if line.Quantity < 1 {
			return fmt.Errorf("line %s has quantity %d", line.ID, line.Quantity)
		}
		if line.Price < 0 {
			return fmt.Errorf("line %s has negative price", line.ID)
		}
	}
	return nil
}

func cloneLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

func dropLine(lines []models.CartLine, id models.ProductID) []models.CartLine {
	out := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ID != id {
			out = append(out, line)
		}
	}
	return out
}
