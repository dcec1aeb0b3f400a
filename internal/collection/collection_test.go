package collection_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-greeting-cards/internal/collection"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
	"github.com/feral-file/ff-greeting-cards/internal/logger"
	"github.com/feral-file/ff-greeting-cards/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var loadedAt = time.Date(2025, time.December, 24, 12, 0, 0, 0, time.UTC)

type testMocks struct {
	ctrl   *gomock.Controller
	loader *mocks.MockLoader
	writer *mocks.MockLedgerWriter
	clock  *mocks.MockClock
	coll   collection.Collection
}

func setupTest(t *testing.T) *testMocks {
	ctrl := gomock.NewController(t)
	tm := &testMocks{
		ctrl:   ctrl,
		loader: mocks.NewMockLoader(ctrl),
		writer: mocks.NewMockLedgerWriter(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}
	tm.clock.EXPECT().Now().Return(loadedAt).AnyTimes()
	tm.coll = collection.NewCollection(collection.Config{WindowSize: 10}, tm.loader, tm.writer, tm.clock)
	return tm
}

func records(ids ...uint64) []domain.TokenRecord {
	out := make([]domain.TokenRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.TokenRecord{TokenID: id, Metadata: domain.CardMetadata{Name: "card", CreatedAt: int64(id)}})
	}
	return out
}

func TestCollection_InitiallyEmpty(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	snap := tm.coll.Snapshot()
	assert.Empty(t, snap.Records)
	assert.NotNil(t, snap.Records)
	assert.Zero(t, snap.Generation)
	assert.True(t, snap.LoadedAt.IsZero())
	assert.NoError(t, snap.Err)
}

func TestCollection_Reload(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.loader.EXPECT().LoadLatest(gomock.Any(), 10).Return(records(3, 2, 1), nil)

	snap, err := tm.coll.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records(3, 2, 1), snap.Records)
	assert.Equal(t, uint64(1), snap.Generation)
	assert.Equal(t, loadedAt, snap.LoadedAt)
	assert.Equal(t, snap, tm.coll.Snapshot())
}

func TestCollection_DefaultWindowSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	l := mocks.NewMockLoader(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(loadedAt).AnyTimes()

	l.EXPECT().LoadLatest(gomock.Any(), collection.DefaultWindowSize).Return(records(1), nil)

	coll := collection.NewCollection(collection.Config{}, l, mocks.NewMockLedgerWriter(ctrl), clock)
	_, err := coll.Reload(context.Background())
	require.NoError(t, err)
}

func TestCollection_ReloadFailureKeepsRecords(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	loadErr := errors.Join(domain.ErrCollectionUnavailable, errors.New("rpc down"))
	gomock.InOrder(
		tm.loader.EXPECT().LoadLatest(gomock.Any(), 10).Return(records(1, 2), nil),
		tm.loader.EXPECT().LoadLatest(gomock.Any(), 10).Return(nil, loadErr),
	)

	_, err := tm.coll.Reload(ctx)
	require.NoError(t, err)

	snap, err := tm.coll.Reload(ctx)
	assert.ErrorIs(t, err, domain.ErrCollectionUnavailable)
	assert.ErrorIs(t, snap.Err, domain.ErrCollectionUnavailable)
	assert.Equal(t, records(1, 2), snap.Records)
	assert.Equal(t, uint64(2), snap.Generation)
	assert.Equal(t, loadedAt, snap.LoadedAt)
}

func TestCollection_StaleLoadIsDiscarded(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		tm.loader.EXPECT().
			LoadLatest(gomock.Any(), 10).
			DoAndReturn(func(context.Context, int) ([]domain.TokenRecord, error) {
				close(started)
				<-release
				return records(1), nil
			}),
		tm.loader.EXPECT().LoadLatest(gomock.Any(), 10).Return(records(2), nil),
	)

	done := make(chan collection.Snapshot)
	go func() {
		snap, _ := tm.coll.Reload(ctx)
		done <- snap
	}()

	<-started
	snap, err := tm.coll.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, records(2), snap.Records)
	assert.Equal(t, uint64(2), snap.Generation)

	close(release)
	stale := <-done
	assert.Equal(t, records(2), stale.Records)

	assert.Equal(t, records(2), tm.coll.Records())
	assert.Equal(t, uint64(2), tm.coll.Snapshot().Generation)
}

func TestCollection_Get(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.loader.EXPECT().LoadLatest(gomock.Any(), 10).Return(records(5, 4), nil)
	_, err := tm.coll.Reload(context.Background())
	require.NoError(t, err)

	r, err := tm.coll.Get(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), r.TokenID)

	_, err = tm.coll.Get(99)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestCollection_MutationReloadsOnSuccess(t *testing.T) {
	recipient := "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"

	tests := []struct {
		name   string
		expect func(w *mocks.MockLedgerWriter)
		run    func(c collection.Collection) error
	}{
		{
			name:   "transfer",
			expect: func(w *mocks.MockLedgerWriter) { w.EXPECT().Transfer(gomock.Any(), uint64(3), recipient).Return(nil) },
			run:    func(c collection.Collection) error { return c.Transfer(context.Background(), 3, recipient) },
		},
		{
			name:   "approve",
			expect: func(w *mocks.MockLedgerWriter) { w.EXPECT().Approve(gomock.Any(), uint64(3), recipient).Return(nil) },
			run:    func(c collection.Collection) error { return c.Approve(context.Background(), 3, recipient) },
		},
		{
			name:   "revoke",
			expect: func(w *mocks.MockLedgerWriter) { w.EXPECT().RevokeApproval(gomock.Any(), uint64(3)).Return(nil) },
			run:    func(c collection.Collection) error { return c.RevokeApproval(context.Background(), 3) },
		},
		{
			name:   "burn",
			expect: func(w *mocks.MockLedgerWriter) { w.EXPECT().Burn(gomock.Any(), uint64(3)).Return(nil) },
			run:    func(c collection.Collection) error { return c.Burn(context.Background(), 3) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t)
			defer tm.ctrl.Finish()

			tt.expect(tm.writer)
			tm.loader.EXPECT().LoadLatest(gomock.Any(), 10).Return(records(2, 1), nil)

			require.NoError(t, tt.run(tm.coll))
			assert.Equal(t, records(2, 1), tm.coll.Records())
		})
	}
}

func TestCollection_MutationFailureSkipsReload(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	txErr := errors.Join(domain.ErrTxRejected, errors.New("not owner"))
	tm.writer.EXPECT().Burn(gomock.Any(), uint64(3)).Return(txErr)

	err := tm.coll.Burn(context.Background(), 3)
	assert.Equal(t, txErr, err)
	assert.Zero(t, tm.coll.Snapshot().Generation)
}

func TestCollection_ReloadFailureAfterMutationIsNotReturned(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.writer.EXPECT().RevokeApproval(gomock.Any(), uint64(3)).Return(nil)
	tm.loader.EXPECT().LoadLatest(gomock.Any(), 10).Return(nil, domain.ErrCollectionUnavailable)

	require.NoError(t, tm.coll.RevokeApproval(context.Background(), 3))
	assert.ErrorIs(t, tm.coll.Snapshot().Err, domain.ErrCollectionUnavailable)
}
