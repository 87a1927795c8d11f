package bins

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/diwise/waste-bin-mgmt/internal/pkg/application/events"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/application/webevents"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/waste-bin-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestThatListBinsReturnsEmptySliceBeforeFirstGeneration(t *testing.T) {
	is, ctx, svc := testSetup(t)

	bins, err := svc.ListBins(ctx)
	is.NoErr(err)
	is.True(bins != nil)
	is.Equal(0, len(bins))
}

func TestThatRegenerateBinsStoresOneCompleteGeneration(t *testing.T) {
	is, ctx, svc := testSetup(t)

	err := svc.RegenerateBins(ctx)
	is.NoErr(err)

	bins, err := svc.ListBins(ctx)
	is.NoErr(err)
	is.Equal(GenerationSize, len(bins))

	for _, b := range bins {
		is.True(b.ID > 0)
		is.True(Berlin.Contains(b.Latitude, b.Longitude))
		is.True(b.FillLevel >= 0 && b.FillLevel <= 100)
	}
}

func TestThatSecondGenerationReplacesTheFirst(t *testing.T) {
	is, ctx, svc := testSetup(t)

	is.NoErr(svc.RegenerateBins(ctx))
	first, err := svc.ListBins(ctx)
	is.NoErr(err)

	is.NoErr(svc.RegenerateBins(ctx))
	second, err := svc.ListBins(ctx)
	is.NoErr(err)

	is.Equal(GenerationSize, len(second))

	firstIDs := map[int]bool{}
	for _, b := range first {
		firstIDs[b.ID] = true
	}
	for _, b := range second {
		is.True(!firstIDs[b.ID])
	}
}

func TestThatConcurrentRegenerationsLeaveOneGeneration(t *testing.T) {
	is, ctx, svc := testSetup(t)

	is.NoErr(svc.RegenerateBins(ctx))

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	lengths := make(chan int, 10)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.RegenerateBins(ctx)
		}()
	}

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if bins, err := svc.ListBins(ctx); err == nil {
				lengths <- len(bins)
			}
		}()
	}

	wg.Wait()
	close(errs)
	close(lengths)

	for err := range errs {
		is.NoErr(err)
	}
	for l := range lengths {
		is.Equal(GenerationSize, l)
	}

	bins, err := svc.ListBins(ctx)
	is.NoErr(err)
	is.Equal(GenerationSize, len(bins))
}

func TestThatPersistenceErrorsArePropagated(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	repo := &database.BinRepositoryMock{
		ReplaceAllFunc: func(ctx context.Context, bins []database.Bin) error {
			return &database.PersistenceError{Op: "replace", Err: errors.New("database is locked")}
		},
		GetAllFunc: func(ctx context.Context) ([]database.Bin, error) {
			return nil, &database.PersistenceError{Op: "select", Err: errors.New("no such table: bins")}
		},
	}

	published := 0
	sender := &eventSenderFunc{send: func(context.Context, types.BinsGenerated) error {
		published++
		return nil
	}}

	svc := New(repo, sender, nil)

	err := svc.RegenerateBins(ctx)
	is.True(errors.Is(err, database.ErrPersistence))
	is.Equal(err.Error(), "database is locked")
	is.Equal(1, len(repo.ReplaceAllCalls()))
	is.Equal(GenerationSize, len(repo.ReplaceAllCalls()[0].Bins))
	is.Equal(0, published)

	_, err = svc.ListBins(ctx)
	is.True(errors.Is(err, database.ErrPersistence))
	is.Equal(err.Error(), "no such table: bins")
}

func TestThatSuccessfulGenerationIsAnnounced(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	repo := &database.BinRepositoryMock{
		ReplaceAllFunc: func(ctx context.Context, bins []database.Bin) error {
			return nil
		},
	}

	var announced types.BinsGenerated
	sender := &eventSenderFunc{send: func(_ context.Context, m types.BinsGenerated) error {
		announced = m
		return errors.New("subscriber unreachable")
	}}

	we := webevents.New()
	defer we.Shutdown()

	svc := NewWithGenerator(repo, NewRandomGenerator(Berlin), sender, we)

	err := svc.RegenerateBins(ctx)
	is.NoErr(err)
	is.Equal(GenerationSize, announced.Count)
	is.True(!announced.GeneratedAt.IsZero())
}

type eventSenderFunc struct {
	send func(context.Context, types.BinsGenerated) error
}

func (e *eventSenderFunc) Send(ctx context.Context, m types.BinsGenerated) error {
	return e.send(ctx, m)
}

func testSetup(t *testing.T) (*is.I, context.Context, BinService) {
	is := is.New(t)
	ctx := context.Background()

	repo, err := database.NewBinRepository(ctx, database.NewSQLiteConnector(ctx, "file::memory:"))
	is.NoErr(err)

	t.Cleanup(func() { repo.Close() })

	return is, ctx, New(repo, events.New(nil), webevents.New())
}
