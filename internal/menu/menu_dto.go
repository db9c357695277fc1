package menu

import "github.com/shopspring/decimal"

type MenuEntryResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// DayMenuResponse carries the configured flag so clients can distinguish a
// date with no menu configured from a date whose entries are all sold out.
type DayMenuResponse struct {
	Date       string              `json:"date"`
	Configured bool                `json:"configured"`
	Menus      []MenuEntryResponse `json:"menus"`
}

func mapToEntryResponse(e MenuEntry) MenuEntryResponse {
	return MenuEntryResponse{
		ID:        e.ID.String(),
		ProductID: e.ProductID.String(),
		Name:      e.Name,
		UnitPrice: e.UnitPrice,
	}
}

func mapToEntryListResponse(entries []MenuEntry) []MenuEntryResponse {
	resp := make([]MenuEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, mapToEntryResponse(e))
	}
	return resp
}
