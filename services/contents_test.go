package services

import (
	"testing"

	"capi/forwarder/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentsFromItemsEmpty(t *testing.T) {
	assert.Empty(t, contentsFromItems([]domain.Item{}))
}

func TestContentsFromItemsFieldCorrespondence(t *testing.T) {
	items := []domain.Item{
		{
			ItemID:   sp("A1"),
			ItemName: sp("Shoe"),
			Price:    fp(9.99),
			Quantity: ip(2),
		},
	}

	contents := contentsFromItems(items)
	require.Len(t, contents, 1)

	content := contents[0]
	require.NotNil(t, content.ID)
	assert.Equal(t, "A1", *content.ID)
	require.NotNil(t, content.Title)
	assert.Equal(t, "Shoe", *content.Title)
	require.NotNil(t, content.ItemPrice)
	assert.Equal(t, 9.99, *content.ItemPrice)
	require.NotNil(t, content.Quantity)
	assert.Equal(t, int64(2), *content.Quantity)
	assert.Nil(t, content.Brand, "absent source field stays absent")
	assert.Nil(t, content.Category, "absent source field stays absent")
}

func TestContentsFromItemsPreservesOrder(t *testing.T) {
	items := []domain.Item{
		{ItemID: sp("first")},
		{ItemID: sp("second")},
		{ItemID: sp("third")},
	}

	contents := contentsFromItems(items)
	require.Len(t, contents, 3)
	assert.Equal(t, "first", *contents[0].ID)
	assert.Equal(t, "second", *contents[1].ID)
	assert.Equal(t, "third", *contents[2].ID)
}
