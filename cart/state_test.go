package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goflare.io/storefront/models"
)

func product(id models.ProductID, price float64) models.Product {
	return models.Product{ID: id, Name: "Product " + string(id), Price: price, Image: "https://img.example/" + string(id)}
}

func TestReduceAddMerges(t *testing.T) {
	state := State{}
	state = reduce(state, AddItem{Product: product("1", 10), Quantity: 1})
	state = reduce(state, AddItem{Product: product("1", 10), Quantity: 2})

	require.Len(t, state.Items, 1)
	require.Equal(t, 3, state.Items[0].Quantity)
	require.Equal(t, 3, state.itemCount())
	require.InDelta(t, 30.0, state.total(), 1e-9)
}

func TestReduceAddDefaultsQuantityToOne(t *testing.T) {
	state := reduce(State{}, AddItem{Product: product("1", 5)})

	require.Len(t, state.Items, 1)
	require.Equal(t, 1, state.Items[0].Quantity)
}

func TestReduceAddSnapshotsPrice(t *testing.T) {
	state := reduce(State{}, AddItem{Product: product("1", 10), Quantity: 1})

	// A later add for the same id carries a changed catalog price; the
	// line keeps the add-time price.
	state = reduce(state, AddItem{Product: product("1", 99), Quantity: 1})

	require.Len(t, state.Items, 1)
	require.InDelta(t, 10.0, state.Items[0].Price, 1e-9)
	require.InDelta(t, 20.0, state.total(), 1e-9)
}

func TestReduceRemoveIsIdempotent(t *testing.T) {
	state := reduce(State{}, AddItem{Product: product("1", 5), Quantity: 2})

	before := cloneLines(state.Items)
	state = reduce(state, RemoveItem{ID: "missing"})

	require.Equal(t, before, state.Items)
}

func TestReduceRemove(t *testing.T) {
	state := State{}
	state = reduce(state, AddItem{Product: product("1", 5), Quantity: 2})
	state = reduce(state, AddItem{Product: product("2", 20), Quantity: 1})

	state = reduce(state, RemoveItem{ID: "1"})

	require.Len(t, state.Items, 1)
	require.Equal(t, models.ProductID("2"), state.Items[0].ID)
	require.InDelta(t, 20.0, state.total(), 1e-9)
}

func TestReduceQuantityFloor(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		state := reduce(State{}, AddItem{Product: product("1", 5), Quantity: 1})
		state = reduce(state, UpdateQuantity{ID: "1", Quantity: quantity})

		require.Empty(t, state.Items, "quantity %d must remove the line", quantity)
	}
}

func TestReduceUpdateQuantityIsAbsolute(t *testing.T) {
	state := reduce(State{}, AddItem{Product: product("1", 5), Quantity: 4})
	state = reduce(state, UpdateQuantity{ID: "1", Quantity: 2})

	require.Equal(t, 2, state.Items[0].Quantity)
}

func TestReduceUpdateUnknownIDIsNoOp(t *testing.T) {
	state := reduce(State{}, AddItem{Product: product("1", 5), Quantity: 1})
	before := cloneLines(state.Items)

	state = reduce(state, UpdateQuantity{ID: "missing", Quantity: 7})

	require.Equal(t, before, state.Items)
}

func TestReduceClearCart(t *testing.T) {
	state := State{}
	state = reduce(state, AddItem{Product: product("1", 5), Quantity: 2})
	state = reduce(state, AddItem{Product: product("2", 3), Quantity: 1})

	state = reduce(state, ClearCart{})

	require.Empty(t, state.Items)
	require.Zero(t, state.itemCount())
	require.Zero(t, state.total())
}

func TestReduceInsertionOrder(t *testing.T) {
	state := State{}
	state = reduce(state, AddItem{Product: product("1", 1), Quantity: 1})
	state = reduce(state, AddItem{Product: product("2", 2), Quantity: 1})
	state = reduce(state, AddItem{Product: product("3", 3), Quantity: 1})

	// Quantity updates keep the slot.
	state = reduce(state, UpdateQuantity{ID: "1", Quantity: 5})
	require.Equal(t, models.ProductID("1"), state.Items[0].ID)

	// Remove then re-add moves the line to the end.
	state = reduce(state, RemoveItem{ID: "2"})
	state = reduce(state, AddItem{Product: product("2", 2), Quantity: 1})

	ids := make([]models.ProductID, 0, len(state.Items))
	for _, line := range state.Items {
		ids = append(ids, line.ID)
	}
	require.Equal(t, []models.ProductID{"1", "3", "2"}, ids)
}

func TestReduceDerivedValuesRecomputed(t *testing.T) {
	state := State{}
	state = reduce(state, AddItem{Product: product("1", 10), Quantity: 3})
	state = reduce(state, AddItem{Product: product("2", 4.5), Quantity: 2})
	state = reduce(state, UpdateQuantity{ID: "1", Quantity: 1})
	state = reduce(state, AddItem{Product: product("3", 100), Quantity: 1})
	state = reduce(state, RemoveItem{ID: "2"})

	wantCount := 0
	wantTotal := 0.0
	for _, line := range state.Items {
		wantCount += line.Quantity
		wantTotal += line.Price * float64(line.Quantity)
	}

	require.Equal(t, wantCount, state.itemCount())
	require.InDelta(t, wantTotal, state.total(), 1e-9)
}

func TestStateValidate(t *testing.T) {
	valid := State{Items: []models.CartLine{
		{Product: product("1", 5), Quantity: 1},
		{Product: product("2", 0), Quantity: 3},
	}}
	require.NoError(t, valid.validate())

	cases := map[string]State{
		"missing id":     {Items: []models.CartLine{{Product: models.Product{Price: 1}, Quantity: 1}}},
		"zero quantity":  {Items: []models.CartLine{{Product: product("1", 5), Quantity: 0}}},
		"negative price": {Items: []models.CartLine{{Product: product("1", -5), Quantity: 1}}},
		"duplicate id": {Items: []models.CartLine{
			{Product: product("1", 5), Quantity: 1},
			{Product: product("1", 5), Quantity: 2},
		}},
	}
	for name, state := range cases {
		require.Error(t, state.validate(), name)
	}
}
