package executor_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/feral-file/ff-greeting-cards/internal/api/shared/executor"
	"github.com/feral-file/ff-greeting-cards/internal/collection"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
	"github.com/feral-file/ff-greeting-cards/internal/logger"
	"github.com/feral-file/ff-greeting-cards/internal/mocks"
	"github.com/feral-file/ff-greeting-cards/internal/search"
	"github.com/feral-file/ff-greeting-cards/internal/wallet"
)

const testPrivateKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

var now = time.Date(2025, time.December, 24, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testMocks struct {
	ctrl       *gomock.Controller
	collection *mocks.MockCollection
	session    *wallet.Session
	exec       executor.Executor
}

func setupTest(t *testing.T) *testMocks {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	tm := &testMocks{
		ctrl:       ctrl,
		collection: mocks.NewMockCollection(ctrl),
		session:    wallet.NewSession(),
	}
	tm.exec = executor.NewExecutor(tm.collection, search.NewEngine(language.English, clock), tm.session, 11155111)
	return tm
}

func cards(n int) []domain.TokenRecord {
	out := make([]domain.TokenRecord, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.TokenRecord{
			TokenID: uint64(i),
			Metadata: domain.CardMetadata{
				Name:      fmt.Sprintf("Card %d", i),
				CreatedAt: now.Add(-time.Duration(i) * time.Hour).Unix(),
			},
		})
	}
	return out
}

func TestListCards_Paging(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.collection.EXPECT().Snapshot().Return(collection.Snapshot{
		Records:    cards(5),
		Generation: 3,
		LoadedAt:   now,
	}).Times(2)

	limit := 2
	offset := uint64(1)
	resp, err := tm.exec.ListCards(context.Background(), domain.DefaultCriteria(), &limit, &offset)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Total)
	require.Len(t, resp.Cards, 2)
	assert.Equal(t, uint64(2), resp.Cards[0].TokenID)
	assert.Equal(t, uint64(3), resp.Cards[1].TokenID)
	require.NotNil(t, resp.NextOffset)
	assert.Equal(t, uint64(3), *resp.NextOffset)
	assert.Equal(t, uint64(3), resp.Snapshot.Generation)
	assert.Equal(t, 5, resp.Snapshot.Size)

	offset = 10
	resp, err = tm.exec.ListCards(context.Background(), domain.DefaultCriteria(), &limit, &offset)
	require.NoError(t, err)
	assert.Empty(t, resp.Cards)
	assert.NotNil(t, resp.Cards)
	assert.Nil(t, resp.NextOffset)
}

func TestListCards_Search(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.collection.EXPECT().Snapshot().Return(collection.Snapshot{Records: cards(12), Generation: 1, LoadedAt: now})

	criteria := domain.DefaultCriteria()
	criteria.SearchTerm = "card 1"
	criteria.SortBy = domain.SortKeyOldest

	resp, err := tm.exec.ListCards(context.Background(), criteria, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Total)
	ids := []uint64{}
	for _, c := range resp.Cards {
		ids = append(ids, c.TokenID)
	}
	assert.Equal(t, []uint64{12, 11, 10, 1}, ids)
}

func TestListCards_NeverLoaded(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.collection.EXPECT().Snapshot().Return(collection.Snapshot{
		Records:    []domain.TokenRecord{},
		Generation: 1,
		Err:        domain.ErrCollectionUnavailable,
	})

	_, err := tm.exec.ListCards(context.Background(), domain.DefaultCriteria(), nil, nil)
	assert.ErrorIs(t, err, domain.ErrCollectionUnavailable)
}

func TestListCards_StaleSnapshotStillServed(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.collection.EXPECT().Snapshot().Return(collection.Snapshot{
		Records:    cards(2),
		Generation: 2,
		LoadedAt:   now,
		Err:        domain.ErrCollectionUnavailable,
	})

	resp, err := tm.exec.ListCards(context.Background(), domain.DefaultCriteria(), nil, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Cards, 2)
	assert.Equal(t, domain.ErrCollectionUnavailable.Error(), resp.Snapshot.Error)
}

func TestGetCard(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	record := cards(1)[0]
	record.Metadata.ImageURI = "ipfs://card.png"
	record.ApprovedOperator = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
	tm.collection.EXPECT().Get(uint64(1)).Return(record, nil)
	tm.collection.EXPECT().Get(uint64(2)).Return(domain.TokenRecord{}, domain.ErrTokenNotFound)

	card, err := tm.exec.GetCard(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, card.Metadata.ImageURI)
	assert.Equal(t, "ipfs://card.png", *card.Metadata.ImageURI)
	require.NotNil(t, card.ApprovedOperator)

	_, err = tm.exec.GetCard(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestReloadCards(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.collection.EXPECT().Reload(gomock.Any()).Return(collection.Snapshot{Records: cards(3), Generation: 4, LoadedAt: now}, nil)

	resp, err := tm.exec.ReloadCards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(4), resp.Snapshot.Generation)
	assert.Equal(t, 3, resp.Snapshot.Size)
	require.NotNil(t, resp.Snapshot.LoadedAt)
}

func TestCardActions(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()
	recipient := "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"

	tm.collection.EXPECT().Transfer(gomock.Any(), uint64(1), recipient).Return(nil)
	tm.collection.EXPECT().Burn(gomock.Any(), uint64(2)).Return(domain.ErrTxRejected)
	tm.collection.EXPECT().Snapshot().Return(collection.Snapshot{Generation: 5})

	resp, err := tm.exec.TransferCard(ctx, 1, recipient)
	require.NoError(t, err)
	assert.Equal(t, "transfer", resp.Action)
	assert.Equal(t, uint64(5), resp.Snapshot.Generation)

	_, err = tm.exec.BurnCard(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrTxRejected)
}

func TestWallet(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	assert.False(t, tm.exec.GetWallet(ctx).Connected)

	require.NoError(t, tm.session.Connect(testPrivateKey))
	resp := tm.exec.GetWallet(ctx)
	assert.True(t, resp.Connected)
	assert.NotEmpty(t, resp.Address)
	assert.Equal(t, int64(11155111), resp.ChainID)

	resp = tm.exec.DisconnectWallet(ctx)
	assert.False(t, resp.Connected)
	assert.Empty(t, resp.Address)
}
