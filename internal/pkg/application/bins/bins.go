package bins

import (
	"context"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/application/events"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/application/webevents"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/infrastructure/metrics"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/waste-bin-mgmt/pkg/types"
	"github.com/samber/lo"
)

// GenerationSize is the number of bins in every generation.
const GenerationSize int = 1000

const BinsGeneratedEvent string = "binsGenerated"

//go:generate moq -rm -out bins_mock.go . BinService

type BinService interface {
	RegenerateBins(ctx context.Context) error
	ListBins(ctx context.Context) ([]types.Bin, error)
}

type binService struct {
	repo      database.BinRepository
	generate  GeneratorFunc
	sender    events.EventSender
	webEvents webevents.WebEvents
}

func New(repo database.BinRepository, sender events.EventSender, we webevents.WebEvents) BinService {
	return NewWithGenerator(repo, NewRandomGenerator(Berlin), sender, we)
}

func NewWithGenerator(repo database.BinRepository, generate GeneratorFunc, sender events.EventSender, we webevents.WebEvents) BinService {
	return &binService{
		repo:      repo,
		generate:  generate,
		sender:    sender,
		webEvents: we,
	}
}

// RegenerateBins replaces every stored bin with a new generation of GenerationSize bins.
// The replacement is atomic; on failure the previous generation is left untouched.
func (s *binService) RegenerateBins(ctx context.Context) error {
	log := logging.GetFromContext(ctx)
	start := time.Now()

	bins := s.generate(GenerationSize)
	log.Debug().Msgf("%d bins with Berlin coordinates generated", len(bins))

	err := s.repo.ReplaceAll(ctx, bins)
	metrics.ObserveRegenerate(len(bins), err, time.Since(start))
	if err != nil {
		log.Error().Err(err).Msg("failed to replace bins, transaction rolled back")
		return err
	}

	log.Info().Int("count", len(bins)).Msg("bins replaced")

	generated := types.BinsGenerated{
		Count:       len(bins),
		GeneratedAt: time.Now().UTC(),
	}

	if s.webEvents != nil {
		if err := s.webEvents.Publish(BinsGeneratedEvent, generated); err != nil {
			log.Error().Err(err).Msg("could not publish web event")
		}
	}

	if s.sender != nil {
		if err := s.sender.Send(ctx, generated); err != nil {
			log.Error().Err(err).Msg("could not send bins generated event")
		}
	}

	return nil
}

func (s *binService) ListBins(ctx context.Context) ([]types.Bin, error) {
	log := logging.GetFromContext(ctx)
	start := time.Now()

	stored, err := s.repo.GetAll(ctx)
	metrics.ObserveList(len(stored), err, time.Since(start))
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch bins")
		return nil, err
	}

	return lo.Map(stored, func(b database.Bin, _ int) types.Bin {
		return types.Bin{
			ID:        int(b.ID),
			Latitude:  b.Latitude,
			Longitude: b.Longitude,
			FillLevel: b.FillLevel,
		}
	}), nil
}
