package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-greeting-cards/internal/api/middleware"
	"github.com/feral-file/ff-greeting-cards/internal/api/shared/dto"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
	"github.com/feral-file/ff-greeting-cards/internal/logger"
	"github.com/feral-file/ff-greeting-cards/internal/mocks"
	"github.com/feral-file/ff-greeting-cards/internal/wallet"
)

const (
	testAPIKey    = "test-key"
	testRecipient = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testMocks struct {
	ctrl     *gomock.Controller
	executor *mocks.MockAPIExecutor
	router   *gin.Engine
}

func setupTest(t *testing.T) *testMocks {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	SetupRoutes(router, NewHandler(exec), middleware.AuthConfig{APIKeys: []string{testAPIKey}})

	return &testMocks{
		ctrl:     ctrl,
		executor: exec,
		router:   router,
	}
}

func (tm *testMocks) do(method, path string, body interface{}, authorized bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "ApiKey "+testAPIKey)
	}

	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code
}

func TestHealthCheck(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	w := tm.do(http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestListCards_QueryToCriteria(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	want := domain.FilterCriteria{
		SearchTerm:    "snow",
		Festival:      "christmas",
		DateRange:     domain.DateRangeWeek,
		HasImage:      true,
		MessageLength: domain.MessageLengthAny,
		SortBy:        domain.SortKeyName,
		SortOrder:     domain.SortOrderAsc,
	}

	tm.executor.EXPECT().
		ListCards(gomock.Any(), want, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ domain.FilterCriteria, limit *int, offset *uint64) (*dto.CardListResponse, error) {
			assert.Equal(t, 5, *limit)
			assert.Equal(t, uint64(10), *offset)
			return &dto.CardListResponse{Cards: []dto.CardResponse{}, Criteria: want}, nil
		})

	w := tm.do(http.MethodGet, "/api/v1/cards?search=snow&festival=christmas&date_range=week&has_image=true&message_length=huge&sort_by=name&sort_order=asc&limit=5&offset=10", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCards_Defaults(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().
		ListCards(gomock.Any(), domain.DefaultCriteria(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ domain.FilterCriteria, limit *int, offset *uint64) (*dto.CardListResponse, error) {
			assert.Equal(t, 20, *limit)
			assert.Equal(t, uint64(0), *offset)
			return &dto.CardListResponse{Cards: []dto.CardResponse{}}, nil
		})

	w := tm.do(http.MethodGet, "/api/v1/cards", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCards_InvalidLimit(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	w := tm.do(http.MethodGet, "/api/v1/cards?limit=0", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_failed", errorCode(t, w))

	w = tm.do(http.MethodGet, "/api/v1/cards?limit=abc", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCards_Unavailable(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().
		ListCards(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: rpc down", domain.ErrCollectionUnavailable))

	w := tm.do(http.MethodGet, "/api/v1/cards", nil, false)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "collection_unavailable", errorCode(t, w))
}

func TestGetCard(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().GetCard(gomock.Any(), uint64(7)).Return(&dto.CardResponse{TokenID: 7}, nil)
	tm.executor.EXPECT().GetCard(gomock.Any(), uint64(8)).Return(nil, domain.ErrTokenNotFound)

	w := tm.do(http.MethodGet, "/api/v1/cards/7", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token_id":7`)

	w = tm.do(http.MethodGet, "/api/v1/cards/8", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = tm.do(http.MethodGet, "/api/v1/cards/abc", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReloadCards(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().ReloadCards(gomock.Any()).Return(&dto.ReloadResponse{Snapshot: dto.SnapshotInfo{Generation: 2, Size: 3}}, nil)

	w := tm.do(http.MethodPost, "/api/v1/cards/reload", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"generation":2`)
}

func TestTransferCard(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	w := tm.do(http.MethodPost, "/api/v1/cards/3/transfer", dto.TransferCardRequest{Recipient: testRecipient}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = tm.do(http.MethodPost, "/api/v1/cards/3/transfer", dto.TransferCardRequest{Recipient: "0x12"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_failed", errorCode(t, w))

	tm.executor.EXPECT().
		TransferCard(gomock.Any(), uint64(3), testRecipient).
		Return(&dto.CardActionResponse{TokenID: 3, Action: "transfer"}, nil)

	w = tm.do(http.MethodPost, "/api/v1/cards/3/transfer", dto.TransferCardRequest{Recipient: testRecipient}, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"action":"transfer"`)
}

func TestCardActionErrors(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().BurnCard(gomock.Any(), uint64(3)).Return(nil, domain.ErrWalletNotConnected)
	tm.executor.EXPECT().RevokeCardApproval(gomock.Any(), uint64(3)).Return(nil, fmt.Errorf("%w: reverted", domain.ErrTxRejected))
	tm.executor.EXPECT().ApproveCard(gomock.Any(), uint64(3), testRecipient).Return(nil, fmt.Errorf("%w: timeout", domain.ErrNetwork))

	w := tm.do(http.MethodPost, "/api/v1/cards/3/burn", nil, true)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "wallet_not_connected", errorCode(t, w))

	w = tm.do(http.MethodPost, "/api/v1/cards/3/revoke", nil, true)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = tm.do(http.MethodPost, "/api/v1/cards/3/approve", dto.ApproveCardRequest{Operator: testRecipient}, true)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestWalletEndpoints(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().GetWallet(gomock.Any()).Return(&dto.WalletResponse{
		Status:  wallet.Status{Connected: true, Address: testRecipient},
		ChainID: 1,
	})
	tm.executor.EXPECT().DisconnectWallet(gomock.Any()).Return(&dto.WalletResponse{ChainID: 1})

	w := tm.do(http.MethodGet, "/api/v1/wallet", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"connected":true`)

	w = tm.do(http.MethodPost, "/api/v1/wallet/disconnect", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = tm.do(http.MethodPost, "/api/v1/wallet/disconnect", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"connected":false`)
}
