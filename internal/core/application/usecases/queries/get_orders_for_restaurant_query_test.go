package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableorder/internal/core/application/usecases/queries"
	"tableorder/internal/core/domain/model/kernel"
)

func TestNewGetOrdersForRestaurantQuery(t *testing.T) {
	t.Run("valid restaurant id creates query", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		query, err := queries.NewGetOrdersForRestaurantQuery(restaurantID)
		require.NoError(t, err)

		assert.NoError(t, query.Validate())
		assert.True(t, query.RestaurantID().IsEqual(restaurantID))
	})

	t.Run("invalid restaurant id returns error", func(t *testing.T) {
		_, err := queries.NewGetOrdersForRestaurantQuery(kernel.UUID{})
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestGetOrdersForRestaurantQuery_Validate(t *testing.T) {
	query := queries.GetOrdersForRestaurantQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetOrdersForRestaurantQueryIsNotConstructed)
}
