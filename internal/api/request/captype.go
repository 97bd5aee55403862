package request

type CreateCapTypeRequest struct {
	Name string `json:"name"`
}

type UpdateCapTypeRequest struct {
	Name string `json:"name"`
}
