package request

type SetProviderRequest struct {
	APIToken string `json:"apiToken"`
	Enabled  bool   `json:"enabled"`
}
