package restaurant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/restaurant"
	"tableorder/internal/pkg/errs"
)

func TestNewRestaurant(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("valid parameters create restaurant", func(t *testing.T) {
		rest, err := restaurant.NewRestaurant(restaurantID, "Pho Corner", "pho@example.com", "+84555123")
		require.NoError(t, err)

		assert.NoError(t, rest.Validate())
		assert.True(t, rest.ID().IsEqual(restaurantID))
		assert.Equal(t, "Pho Corner", rest.Name())
		assert.Equal(t, "pho@example.com", rest.Email())
		assert.Equal(t, "+84555123", rest.Phone())
	})

	t.Run("contact details are optional", func(t *testing.T) {
		rest, err := restaurant.NewRestaurant(restaurantID, "Pho Corner", "", "")
		require.NoError(t, err)
		assert.Empty(t, rest.Email())
		assert.Empty(t, rest.Phone())
	})

	t.Run("invalid id returns error", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(kernel.UUID{}, "Pho Corner", "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("empty name returns error", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(restaurantID, "", "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestaurant_Validate(t *testing.T) {
	t.Run("nil restaurant returns error", func(t *testing.T) {
		var rest *restaurant.Restaurant
		assert.ErrorIs(t, rest.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})

	t.Run("zero value returns error", func(t *testing.T) {
		assert.ErrorIs(t, (&restaurant.Restaurant{}).Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})
}
