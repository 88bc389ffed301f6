package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teststore/internal/services"
)

const sid = "test-session"

func TestAddSameProductTwiceMergesLines(t *testing.T) {
	cart := services.NewCartService()

	_, ok := cart.Add(sid, 1)
	require.True(t, ok)
	_, ok = cart.Add(sid, 1)
	require.True(t, ok)

	items := cart.Items(sid)
	require.Len(t, items, 1, "same product id must never produce two lines")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddUnknownProduct(t *testing.T) {
	cart := services.NewCartService()
	_, ok := cart.Add(sid, 999)
	assert.False(t, ok)
	assert.Empty(t, cart.Items(sid))
}

func TestAdjustClampsAtOne(t *testing.T) {
	cart := services.NewCartService()
	cart.Add(sid, 2)
	cart.Adjust(sid, 2, 2) // qty 3

	cart.Adjust(sid, 2, -100)

	items := cart.Items(sid)
	require.Len(t, items, 1, "underflow must never remove the line")
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveMissingIDIsNoOp(t *testing.T) {
	cart := services.NewCartService()
	cart.Add(sid, 1)
	cart.Add(sid, 6)

	before := cart.Items(sid)
	cart.Remove(sid, 42)

	assert.Equal(t, before, cart.Items(sid))
}

func TestRemoveExisting(t *testing.T) {
	cart := services.NewCartService()
	cart.Add(sid, 1)
	cart.Add(sid, 6)

	cart.Remove(sid, 1)

	items := cart.Items(sid)
	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].ID)
}

func TestTotal(t *testing.T) {
	cart := services.NewCartService()
	assert.Zero(t, cart.Total(sid), "empty cart total must be exactly 0")

	// Quantum Speaker twice plus one Glacier Flask
	cart.Add(sid, 1)
	cart.Add(sid, 1)
	cart.Add(sid, 6)

	assert.InDelta(t, 434.97, cart.Total(sid), 1e-9)
	assert.Equal(t, 3, cart.Count(sid))
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	cart := services.NewCartService()
	cart.Add("sid-a", 1)

	assert.Empty(t, cart.Items("sid-b"))
	assert.Zero(t, cart.Total("sid-b"))
}

func TestClear(t *testing.T) {
	cart := services.NewCartService()
	cart.Add(sid, 1)
	cart.Clear(sid)

	assert.Empty(t, cart.Items(sid))
	assert.Zero(t, cart.Total(sid))
}
