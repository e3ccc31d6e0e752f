package purchase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	purchase_constants "Wurder/constants/purchase"
	redis_models "Wurder/models/redis"
	"Wurder/services/gamestore"
)

// Store is the slice of the game store the purchase flow needs.
type Store interface {
	// CodeInUse reports whether a game document exists for a code
	CodeInUse(ctx context.Context, code string) (bool, error)

	// CreateGame writes a game document if and only if its code is free,
	// returning gamestore.ErrCodeTaken otherwise
	CreateGame(ctx context.Context, game *redis_models.StoredGame) error

	// ArchiveGame writes the date-bucketed retention copy
	ArchiveGame(ctx context.Context, game *redis_models.StoredGame) error
}

// Config holds configuration for the purchase service
type Config struct {
	Store   Store
	Offline *OfflineStore
	Codes   CodeGenerator
	Clock   Clock

	// AttemptLimit bounds the code allocation loop. Zero means the
	// default budget.
	AttemptLimit int

	// StoreTimeout bounds each individual store operation. Zero means
	// the default budget.
	StoreTimeout time.Duration
}

// Service issues game codes: it validates the request, mints a unique
// code, prices the purchase and records it, falling back to the offline
// store when Redis is unreachable.
type Service struct {
	store        Store
	offline      *OfflineStore
	codes        CodeGenerator
	clock        Clock
	attemptLimit int
	storeTimeout time.Duration
}

// New creates a purchase service
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Store == nil {
		return nil, ErrNilStore
	}
	if cfg.Offline == nil {
		return nil, ErrNilOfflineStore
	}

	codes := cfg.Codes
	if codes == nil {
		codes = NewCryptoGenerator()
	}
	clk := cfg.Clock
	if clk == nil {
		clk = &SystemClock{}
	}
	attemptLimit := cfg.AttemptLimit
	if attemptLimit <= 0 {
		attemptLimit = purchase_constants.CodeAttemptLimit
	}
	storeTimeout := cfg.StoreTimeout
	if storeTimeout <= 0 {
		storeTimeout = purchase_constants.StoreTimeout
	}

	return &Service{
		store:        cfg.Store,
		offline:      cfg.Offline,
		codes:        codes,
		clock:        clk,
		attemptLimit: attemptLimit,
		storeTimeout: storeTimeout,
	}, nil
}

// Purchase runs the whole flow: validate, allocate, price, persist.
// Nothing outside this process is mutated until the final write, so a
// failed purchase can always be retried wholesale.
func (s *Service) Purchase(ctx context.Context, payload *Payload) (*Result, error) {
	normalized, err := Validate(payload)
	if err != nil {
		return nil, err
	}

	price := CalculatePrice(normalized.Players, len(normalized.Addons))

	for attempt := 0; attempt < s.attemptLimit; attempt++ {
		code, err := s.codes.NewCode()
		if err != nil {
			return nil, fmt.Errorf("error generating candidate code: %w", err)
		}

		// Codes parked offline are claimed too
		if s.offline.Has(code) {
			continue
		}

		inUse, err := s.codeInUse(ctx, code)
		if err != nil {
			if !storeUnavailable(err) {
				return nil, err
			}
			// Store unreachable: issue the code anyway and park the whole
			// record locally. The product favors selling the game over
			// refusing the purchase.
			game := s.buildStoredGame(code, normalized, price)
			s.offline.Put(game)
			log.Printf("game store unavailable, parked purchase %s offline: %v", code, err)
			return resultFor(game), nil
		}
		if inUse {
			continue
		}

		game := s.buildStoredGame(code, normalized, price)

		err = s.createGame(ctx, game)
		if errors.Is(err, gamestore.ErrCodeTaken) {
			// Lost the race between the check and the conditional write;
			// the write itself is atomic, so just redraw.
			continue
		}
		if err != nil {
			if !storeUnavailable(err) {
				return nil, err
			}
			s.offline.Put(game)
			log.Printf("game store unavailable, parked purchase %s offline: %v", code, err)
			return resultFor(game), nil
		}

		if err := s.archiveGame(ctx, game); err != nil {
			// Primary record is durable; leave the archive copy to the
			// reconciler instead of failing a paid purchase.
			s.offline.PutArchivePending(game)
			log.Printf("archive write for %s failed, queued for replay: %v", game.Code, err)
		}

		return resultFor(game), nil
	}

	return nil, ErrCodesExhausted
}

func (s *Service) codeInUse(ctx context.Context, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.store.CodeInUse(ctx, code)
}

func (s *Service) createGame(ctx context.Context, game *redis_models.StoredGame) error {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.store.CreateGame(ctx, game)
}

func (s *Service) archiveGame(ctx context.Context, game *redis_models.StoredGame) error {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.store.ArchiveGame(ctx, game)
}

func (s *Service) buildStoredGame(code string, data *NormalizedPurchase, price int) *redis_models.StoredGame {
	createdAt := s.clock.Now().UTC().Format(time.RFC3339)
	return &redis_models.StoredGame{
		Code:        code,
		Name:        data.Name,
		MaxPlayers:  data.Players,
		PlayerSlots: data.Players,
		Price:       price,
		Addons:      data.Addons,
		CreatedAt:   createdAt,
		Started:     false,
		Players:     map[string]json.RawMessage{},
		Purchase: redis_models.PurchaseRecord{
			Status:      "active",
			PurchasedAt: createdAt,
			Addons:      data.Addons,
			PlayerCount: data.Players,
			Amount:      price,
		},
	}
}

func resultFor(game *redis_models.StoredGame) *Result {
	return &Result{
		Code:    game.Code,
		Players: game.PlayerSlots,
		Addons:  game.Addons,
		Price:   game.Price,
	}
}

// storeUnavailable separates "the store is down or too slow" from real
// errors. The former degrades to the offline store, the latter fails
// the purchase.
func storeUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
