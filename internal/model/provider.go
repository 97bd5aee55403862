package model

import "time"

// ProviderConfig represents the NAV provider configuration.
// APIToken is stored fernet-encrypted and only decrypted when a
// price refresh runs.
type ProviderConfig struct {
	ID        string
	APIToken  string
	Enabled   bool
	UpdatedAt time.Time
}
