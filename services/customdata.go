package services

import "capi/forwarder/domain"

// buildCustomData resolves the business-data bundle of the outbound
// event. Currency, value, search string and order id map 1:1 from the
// input event; the remaining fields only resolve from overrides. The
// contents list falls back from its override to the flattened item list.
// An entirely unresolved bundle is dropped from the event.
func buildCustomData(event *domain.ForwardRequest) *domain.CustomData {
	data := &domain.CustomData{
		Currency:         event.Currency,
		Value:            event.Value,
		SearchString:     event.SearchTerm,
		OrderID:          event.TransactionID,
		ContentCategory:  event.ContentCategoryOverride,
		ContentIDs:       event.ContentIDsOverride,
		ContentName:      event.ContentNameOverride,
		ContentType:      event.ContentTypeOverride,
		Contents:         event.ContentsOverride,
		NumItems:         event.NumItemsOverride,
		PredictedLTV:     event.PredictedLTVOverride,
		Status:           event.StatusOverride,
		DeliveryCategory: event.DeliveryCategoryOverride,
	}

	if data.Contents == nil && event.Items != nil {
		data.Contents = contentsFromItems(event.Items)
	}

	if data.IsEmpty() {
		return nil
	}
	return data
}
