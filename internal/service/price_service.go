package service

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/quotes"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/repository"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/secrets"
)

// refreshConcurrency bounds parallel NAV fetches so a refresh cannot
// hammer the provider.
const refreshConcurrency = 4

// RefreshResult summarizes one NAV refresh run.
type RefreshResult struct {
	Refreshed     int      `json:"refreshed"`
	Failed        int      `json:"failed"`
	FailedSymbols []string `json:"failedSymbols,omitempty"`
}

// ProviderStatus describes the NAV provider configuration without
// exposing the stored token.
type ProviderStatus struct {
	Configured bool      `json:"configured"`
	Enabled    bool      `json:"enabled"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// PriceService refreshes stored NAVs from the quote provider and manages
// the provider configuration. Tokens are encrypted at rest and decrypted
// only for the duration of a refresh.
type PriceService struct {
	fundRepo     *repository.FundRepository
	providerRepo *repository.ProviderRepository
	client       quotes.Client
	vault        *secrets.Vault
}

// NewPriceService creates a new PriceService
func NewPriceService(fundRepo *repository.FundRepository, providerRepo *repository.ProviderRepository, client quotes.Client, vault *secrets.Vault) *PriceService {
	return &PriceService{
		fundRepo:     fundRepo,
		providerRepo: providerRepo,
		client:       client,
		vault:        vault,
	}
}

// RefreshAll fetches the latest NAV for every fund that carries a scheme
// symbol and upserts it. Funds that fail to fetch are reported in the
// result; NAVs fetched before a failure stay persisted.
func (s *PriceService) RefreshAll() (RefreshResult, error) {
	if err := s.applyProviderKey(); err != nil {
		return RefreshResult{}, err
	}

	funds, err := s.fundRepo.GetFunds()
	if err != nil {
		return RefreshResult{}, err
	}

	var mu sync.Mutex
	result := RefreshResult{}

	g := errgroup.Group{}
	g.SetLimit(refreshConcurrency)

	for _, fund := range funds {
		fund := fund
		if fund.Symbol == "" {
			continue
		}

		g.Go(func() error {
			nav, err := s.client.LatestNAV(fund.Symbol)
			if err == nil {
				err = s.fundRepo.UpsertNav(model.FundNav{
					ID:     uuid.New().String(),
					FundID: fund.ID,
					Date:   nav.Date,
					Nav:    nav.Value,
				})
			}

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				log.Printf("Failed to refresh nav for %s: %v", fund.Symbol, err)
				result.Failed++
				result.FailedSymbols = append(result.FailedSymbols, fund.Symbol)
				return nil
			}

			result.Refreshed++
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return RefreshResult{}, err
	}

	return result, nil
}

// GetProvider returns the provider configuration status. The stored token
// is never returned.
func (s *PriceService) GetProvider() (ProviderStatus, error) {
	config, err := s.providerRepo.GetConfig()
	if errors.Is(err, apperrors.ErrProviderConfigNotFound) {
		return ProviderStatus{}, nil
	}
	if err != nil {
		return ProviderStatus{}, err
	}

	return ProviderStatus{
		Configured: config.APIToken != "",
		Enabled:    config.Enabled,
		UpdatedAt:  config.UpdatedAt,
	}, nil
}

// SetProvider stores the provider configuration, encrypting the token
// before it touches the database.
func (s *PriceService) SetProvider(apiToken string, enabled bool) (ProviderStatus, error) {
	stored := ""
	if apiToken != "" {
		if s.vault == nil {
			return ProviderStatus{}, fmt.Errorf("token storage requires FERNET_KEY to be configured")
		}
		encrypted, err := s.vault.Encrypt(apiToken)
		if err != nil {
			return ProviderStatus{}, err
		}
		stored = encrypted
	}

	config := model.ProviderConfig{
		ID:        uuid.New().String(),
		APIToken:  stored,
		Enabled:   enabled,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.providerRepo.SaveConfig(config); err != nil {
		return ProviderStatus{}, err
	}

	return ProviderStatus{
		Configured: stored != "",
		Enabled:    config.Enabled,
		UpdatedAt:  config.UpdatedAt,
	}, nil
}

// applyProviderKey loads the provider configuration and pushes the
// decrypted token into the quote client. No stored configuration means
// keyless access, which the public NAV API allows. A stored but disabled
// configuration blocks the refresh.
func (s *PriceService) applyProviderKey() error {
	config, err := s.providerRepo.GetConfig()
	if errors.Is(err, apperrors.ErrProviderConfigNotFound) {
		s.client.SetAPIKey("")
		return nil
	}
	if err != nil {
		return err
	}

	if !config.Enabled {
		return apperrors.ErrProviderDisabled
	}

	if config.APIToken == "" {
		s.client.SetAPIKey("")
		return nil
	}

	if s.vault == nil {
		return fmt.Errorf("stored provider token requires FERNET_KEY to be configured")
	}

	token, err := s.vault.Decrypt(config.APIToken)
	if err != nil {
		return err
	}

	s.client.SetAPIKey(token)
	return nil
}
