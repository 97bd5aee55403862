package request

type CreateFundRequest struct {
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	CapTypeID       string `json:"capTypeId"`
	ActiveOrPassive string `json:"activeOrPassive"`
}

type UpdateFundRequest struct {
	Name            *string `json:"name,omitempty"`
	Symbol          *string `json:"symbol,omitempty"`
	CapTypeID       *string `json:"capTypeId,omitempty"`
	ActiveOrPassive *string `json:"activeOrPassive,omitempty"`
}
