package services

import (
	"coachchat/contract"
	"coachchat/gate"
	"coachchat/internal"
	"coachchat/moderation"
	"coachchat/projection"
	"coachchat/repositories"
	"coachchat/runtime"
	"log/slog"
)

// Core bundles the wired messaging subsystem for the embedding product.
type Core struct {
	Service  *MessagingService
	Store    *repositories.MessageRepository
	Notifier *runtime.Notifier
}

// NewCore builds the whole messaging core from a configuration. profiles and
// entitlements are mandatory collaborators; silent may be nil, and moderation
// is disabled when baseWords is empty.
func NewCore(
	log *slog.Logger,
	cfg internal.Config,
	profiles contract.ProfileDirectory,
	entitlements contract.EntitlementSource,
	silent contract.SilentPartnerSource,
	baseWords []string,
	wordsByLang map[string][]string,
) (*Core, error) {
	store, err := repositories.NewMessageRepository(cfg.DBPath, log)
	if err != nil {
		return nil, err
	}

	var moderator *moderation.Moderator
	if len(baseWords) > 0 {
		mask, err := cfg.MaskRune()
		if err != nil {
			store.Close()
			return nil, err
		}
		moderator, err = moderation.NewModerator(baseWords, wordsByLang, mask)
		if err != nil {
			store.Close()
			return nil, err
		}
	}

	notifier := runtime.NewNotifier(cfg.SubscriberBuffer, log)
	accessGate := gate.New(profiles, entitlements, store, cfg.EntitlementTimeout, log)
	aggregator := projection.NewAggregator(store, profiles, silent, log)
	service := NewMessagingService(log, store, accessGate, aggregator, notifier, moderator)

	return &Core{Service: service, Store: store, Notifier: notifier}, nil
}

// NewCoreFromEnv is NewCore with the configuration read from the environment.
func NewCoreFromEnv(
	log *slog.Logger,
	profiles contract.ProfileDirectory,
	entitlements contract.EntitlementSource,
	silent contract.SilentPartnerSource,
	baseWords []string,
	wordsByLang map[string][]string,
) (*Core, error) {
	cfg, err := internal.Load()
	if err != nil {
		return nil, err
	}
	return NewCore(log, cfg, profiles, entitlements, silent, baseWords, wordsByLang)
}

// Close stops fan-out and releases the store.
func (c *Core) Close() error {
	c.Notifier.Close()
	return c.Store.Close()
}
