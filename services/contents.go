package services

import "capi/forwarder/domain"

// contentsFromItems maps the input item list onto the contents shape,
// order-preserving and 1:1. Fields absent on an item stay absent on the
// content object.
func contentsFromItems(items []domain.Item) []domain.Content {
	contents := make([]domain.Content, len(items))
	for i, item := range items {
		contents[i] = domain.Content{
			ID:        item.ItemID,
			Title:     item.ItemName,
			ItemPrice: item.Price,
			Brand:     item.ItemBrand,
			Quantity:  item.Quantity,
			Category:  item.ItemCategory,
		}
	}
	return contents
}
