package request

type CreateGoldEntryRequest struct {
	UserID       string  `json:"userId"`
	PurchaseDate string  `json:"purchaseDate"`
	Grams        float64 `json:"grams"`
	Price        float64 `json:"price"`
	Comments     string  `json:"comments"`
}

type UpdateGoldEntryRequest struct {
	PurchaseDate *string  `json:"purchaseDate,omitempty"`
	Grams        *float64 `json:"grams,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Comments     *string  `json:"comments,omitempty"`
}

type SetGoldPriceRequest struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}
