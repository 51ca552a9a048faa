package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var decidedAt = time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

type apiDeps struct {
	ledger    *usecasemocks.MockLedgerUseCase
	ingestion *usecasemocks.MockIngestionUseCase
	override  *usecasemocks.MockOverrideUseCase
	review    *usecasemocks.MockReviewUseCase
	rules     *usecasemocks.MockRuleUseCase
	router    *gin.Engine
}

func setup(t *testing.T) *apiDeps {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()

	d := &apiDeps{
		ledger:    usecasemocks.NewMockLedgerUseCase(t),
		ingestion: usecasemocks.NewMockIngestionUseCase(t),
		override:  usecasemocks.NewMockOverrideUseCase(t),
		review:    usecasemocks.NewMockReviewUseCase(t),
		rules:     usecasemocks.NewMockRuleUseCase(t),
		router:    gin.New(),
	}
	d.rules.EXPECT().EnsureDefaultRules(mock.Anything, mock.Anything).Return(nil).Maybe()

	uploads := NewUploadHandler(d.ledger, d.ingestion, 1024, log)
	transactions := NewTransactionHandler(d.ingestion, d.override, log)
	review := NewReviewHandler(d.review, log)
	rules := NewRuleHandler(d.rules, log)
	defaults := NewEntityDefaults(d.rules, log)

	d.router.Use(middleware.RequestID(), middleware.Actor(middleware.AuthConfig{}, log))
	d.router.GET("/categories", review.ListCategories)
	g := d.router.Group("/entities/:entityId", defaults.Ensure)
	g.POST("/uploads", uploads.CreateUpload)
	g.POST("/uploads/csv", uploads.UploadCSV)
	g.POST("/uploads/extracted", uploads.UploadExtracted)
	g.GET("/uploads/:uploadId", uploads.GetUpload)
	g.POST("/uploads/:uploadId/commit", uploads.CommitUpload)
	g.POST("/transactions", transactions.Ingest)
	g.POST("/transactions/:normalizedId/override", transactions.Override)
	g.GET("/review-queue", review.ListReviewQueue)
	g.GET("/rules", rules.ListRules)
	g.POST("/rules", rules.CreateRule)
	g.PATCH("/rules/:ruleId", rules.UpdateRule)
	g.GET("/override-rules", rules.ListOverrideRules)
	return d
}

func (d *apiDeps) do(method, path string, body any, header ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func strPtr(s string) *string { return &s }

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.ErrInvalidAmount, http.StatusBadRequest},
		{errs.NewMatcherError("", "descriptionRegex", "bad"), http.StatusBadRequest},
		{errs.ErrInvalidEntityID, http.StatusBadRequest},
		{errs.ErrUploadNotFound, http.StatusNotFound},
		{errs.ErrCategoryNotFound, http.StatusNotFound},
		{errs.ErrUploadCommitted, http.StatusConflict},
		{errs.ErrConstraintViolation, http.StatusConflict},
		{errs.ErrForbidden, http.StatusForbidden},
		{errs.ErrSerializationFailure, http.StatusServiceUnavailable},
		{errs.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestCreateUpload(t *testing.T) {
	tests := []struct {
		name       string
		existing   bool
		wantStatus int
	}{
		{name: "new upload", wantStatus: http.StatusCreated},
		{name: "same content returns existing upload", existing: true, wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setup(t)
			d.ledger.EXPECT().CreateUpload(mock.Anything, usecase.CreateUploadRequest{
				EntityID:    "acme",
				ContentHash: "abc",
				FileName:    "march.csv",
				SourceType:  entity.SourceCSV,
			}).Return(&usecase.CreateUploadResult{UploadedFileID: "up-1", WasExisting: tt.existing, RawCount: 3}, nil)

			w := d.do(http.MethodPost, "/entities/acme/uploads", dto.CreateUploadRequest{
				ContentHash: "abc", FileName: "march.csv", SourceType: "csv",
			})

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decode[dto.CreateUploadResponse](t, w)
			assert.Equal(t, "up-1", resp.UploadedFileID)
			assert.Equal(t, tt.existing, resp.WasExisting)
			assert.Equal(t, 3, resp.RawCount)
		})
	}
}

func TestCreateUpload_RejectsUnknownSourceType(t *testing.T) {
	d := setup(t)

	w := d.do(http.MethodPost, "/entities/acme/uploads", `{"contentHash":"abc","sourceType":"fax"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errs.CodeInvalidRequest, decode[dto.ErrorResponse](t, w).Code)
}

func TestUploadCSV_RawBody(t *testing.T) {
	d := setup(t)
	content := "date,amount,direction,description\n2024-03-01,10.00,debit,COFFEE\n"
	d.ingestion.EXPECT().IngestCSV(mock.Anything, usecase.CSVBatchRequest{
		EntityID: "acme",
		FileName: "march.csv",
		Content:  []byte(content),
	}).Return(&usecase.BatchResult{UploadedFileID: "up-1", RawCount: 1, NeedsReviewCount: 1}, nil)

	w := d.do(http.MethodPost, "/entities/acme/uploads/csv?fileName=march.csv", content, "Content-Type", "text/csv")

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.BatchResponse](t, w)
	assert.Equal(t, 1, resp.NeedsReviewCount)
}

func TestUploadCSV_Multipart(t *testing.T) {
	d := setup(t)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "april.csv")
	require.NoError(t, err)
	_, _ = part.Write([]byte("date,amount,direction,description\n"))
	require.NoError(t, mw.Close())

	d.ingestion.EXPECT().IngestCSV(mock.Anything, mock.MatchedBy(func(req usecase.CSVBatchRequest) bool {
		return req.FileName == "april.csv" && req.EntityID == "acme"
	})).Return(nil, errs.NewParseError(2, "", "", errs.ErrInvalidDocument))

	w := d.do(http.MethodPost, "/entities/acme/uploads/csv", body.String(), "Content-Type", mw.FormDataContentType())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errs.CodeInvalidDocument, decode[dto.ErrorResponse](t, w).Code)
}

func TestUploadCSV_EmptyMultipartFile(t *testing.T) {
	d := setup(t)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_, err := mw.CreateFormFile("file", "empty.csv")
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := d.do(http.MethodPost, "/entities/acme/uploads/csv", body.String(), "Content-Type", mw.FormDataContentType())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[dto.ErrorResponse](t, w).Message, "document is empty")
	d.ingestion.AssertNotCalled(t, "IngestCSV", mock.Anything, mock.Anything)
}

func TestUploadCSV_BodyLimits(t *testing.T) {
	d := setup(t)

	w := d.do(http.MethodPost, "/entities/acme/uploads/csv", "", "Content-Type", "text/csv")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = d.do(http.MethodPost, "/entities/acme/uploads/csv", string(make([]byte, 2048)), "Content-Type", "text/csv")
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestUploadExtracted(t *testing.T) {
	d := setup(t)
	d.ingestion.EXPECT().IngestExtracted(mock.Anything, mock.MatchedBy(func(req usecase.ExtractedBatchRequest) bool {
		return req.EntityID == "acme" && req.DocumentType == "bank_statement" && len(req.Candidates) == 2
	})).Return(&usecase.BatchResult{UploadedFileID: "up-2", RawCount: 1, SkippedCount: 1}, nil)

	w := d.do(http.MethodPost, "/entities/acme/uploads/extracted", map[string]any{
		"fileName":             "statement.pdf",
		"documentType":         "bank_statement",
		"extractionConfidence": 0.9,
		"candidates": []map[string]string{
			{"date": "2024-03-01", "amount": "-12.50", "description": "UBER TRIP"},
			{"amount": "5.00"},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, decode[dto.BatchResponse](t, w).SkippedCount)
}

func TestUploadExtracted_RequiresCandidates(t *testing.T) {
	d := setup(t)

	w := d.do(http.MethodPost, "/entities/acme/uploads/extracted", `{"fileName":"x.pdf","candidates":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUpload(t *testing.T) {
	d := setup(t)
	d.ledger.EXPECT().GetUpload(mock.Anything, "acme", "up-1").Return(&entity.UploadedFile{
		ID: "up-1", EntityID: "acme", Status: entity.UploadStaged, SourceType: entity.SourceCSV,
	}, nil)
	d.ledger.EXPECT().GetUpload(mock.Anything, "acme", "missing").Return(nil, errs.ErrUploadNotFound)

	w := d.do(http.MethodGet, "/entities/acme/uploads/up-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "staged", decode[dto.UploadResponse](t, w).Status)

	w = d.do(http.MethodGet, "/entities/acme/uploads/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, errs.CodeUploadNotFound, decode[dto.ErrorResponse](t, w).Code)
}

func TestCommitUpload(t *testing.T) {
	committedAt := decidedAt
	tests := []struct {
		name       string
		result     *usecase.CommitResult
		wantStatus int
	}{
		{
			name:       "committed",
			result:     &usecase.CommitResult{UploadedFileID: "up-1", Status: usecase.CommitStatusCommitted, CommittedAt: &committedAt},
			wantStatus: http.StatusOK,
		},
		{
			name:       "blocked by pending review",
			result:     &usecase.CommitResult{UploadedFileID: "up-1", Status: usecase.CommitStatusBlocked, NeedsReviewCount: 2},
			wantStatus: http.StatusConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setup(t)
			d.ledger.EXPECT().CommitUpload(mock.Anything, "acme", "up-1").Return(tt.result, nil)

			w := d.do(http.MethodPost, "/entities/acme/uploads/up-1/commit", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decode[dto.CommitResponse](t, w)
			assert.Equal(t, tt.result.Status, resp.Status)
			assert.Equal(t, tt.result.NeedsReviewCount, resp.NeedsReviewCount)
		})
	}
}

func TestIngestTransaction(t *testing.T) {
	d := setup(t)
	d.ingestion.EXPECT().Ingest(mock.Anything, mock.MatchedBy(func(req usecase.IngestRequest) bool {
		return req.EntityID == "acme" &&
			req.SourceType == entity.SourceManual &&
			req.Candidate.AmountInCents == 45000 &&
			req.Candidate.Direction == entity.DirectionOutflow &&
			req.Provenance["actor"] == "alice"
	})).Return(&usecase.IngestResult{
		RawTransaction: &entity.RawTransaction{ID: "raw-1"},
		Normalized:     &entity.NormalizedTransaction{ID: "norm-1"},
		Categorization: &entity.TransactionCategorization{
			ID:                      "cat-1",
			NormalizedTransactionID: "norm-1",
			CategoryID:              strPtr("food"),
			Method:                  entity.MethodRule,
			Confidence:              entity.ConfidenceRule,
			Status:                  entity.StatusConfirmed,
			DecidedAt:               decidedAt,
		},
	}, nil)

	w := d.do(http.MethodPost, "/entities/acme/transactions", dto.IngestTransactionRequest{
		Date: "2024-03-01", Amount: "450.00", Direction: "debit", Description: "SWIGGY ORDER",
	}, middleware.HeaderActor, "alice")

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.IngestTransactionResponse](t, w)
	assert.Equal(t, "raw-1", resp.RawID)
	assert.Equal(t, "norm-1", resp.NormalizedID)
	require.NotNil(t, resp.Categorization)
	assert.Equal(t, "rule", resp.Categorization.Method)
}

func TestIngestTransaction_InvalidCandidate(t *testing.T) {
	d := setup(t)

	w := d.do(http.MethodPost, "/entities/acme/transactions", dto.IngestTransactionRequest{
		Date: "2024-03-01", Amount: "abc", Direction: "debit", Description: "X",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errs.CodeInvalidAmount, decode[dto.ErrorResponse](t, w).Code)
}

func TestOverride(t *testing.T) {
	d := setup(t)
	d.override.EXPECT().ApplyOverride(mock.Anything, usecase.OverrideRequest{
		EntityID:                "acme",
		NormalizedTransactionID: "norm-1",
		CategoryCode:            "GROCERIES",
		Reason:                  "weekly shop",
		Actor:                   "alice",
	}).Return(&usecase.OverrideResult{
		Categorization: &entity.TransactionCategorization{
			ID:         "cat-1",
			Method:     entity.MethodManual,
			Confidence: entity.ConfidenceManual,
			Status:     entity.StatusConfirmed,
		},
		OverrideRuleID: "ovr-1",
	}, nil)

	w := d.do(http.MethodPost, "/entities/acme/transactions/norm-1/override",
		dto.OverrideRequest{CategoryCode: "GROCERIES", Reason: "weekly shop"},
		middleware.HeaderActor, "alice")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.OverrideResponse](t, w)
	assert.Equal(t, "ovr-1", resp.OverrideRuleID)
	assert.Equal(t, "manual", resp.Categorization.Method)
	assert.Equal(t, 1.0, resp.Categorization.Confidence)
}

func TestOverride_RequiresCategory(t *testing.T) {
	d := setup(t)

	w := d.do(http.MethodPost, "/entities/acme/transactions/norm-1/override", `{"reason":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReviewQueue(t *testing.T) {
	d := setup(t)
	d.review.EXPECT().ListReviewQueue(mock.Anything, usecase.ReviewQuery{
		EntityID:       "acme",
		Status:         entity.StatusNeedsReview,
		UploadedFileID: strPtr("up-1"),
		Limit:          10,
		Offset:         20,
	}).Return([]entity.ReviewItem{{
		Categorization:   entity.TransactionCategorization{ID: "cat-1", Status: entity.StatusNeedsReview},
		RawTransactionID: "raw-1",
		DescriptionClean: "UNKNOWN SHOP",
		Direction:        entity.DirectionOutflow,
		AmountInCents:    1234,
		TransactionDate:  decidedAt,
	}}, nil)

	w := d.do(http.MethodGet, "/entities/acme/review-queue?status=needs_review&uploadedFileId=up-1&limit=10&offset=20", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.ReviewQueueResponse](t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "12.34", resp.Items[0].Amount)
	assert.Equal(t, "2024-03-02", resp.Items[0].TransactionDate)
}

func TestListReviewQueue_BadPaging(t *testing.T) {
	d := setup(t)

	w := d.do(http.MethodGet, "/entities/acme/review-queue?limit=ten", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCategories(t *testing.T) {
	d := setup(t)
	d.review.EXPECT().ListCategories(mock.Anything).Return([]entity.Category{
		{ID: "c1", Code: "GROCERIES", Name: "Groceries", LedgerType: entity.LedgerExpense},
	}, nil)

	w := d.do(http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[[]dto.CategoryResponse](t, w)
	require.Len(t, resp, 1)
	assert.Equal(t, "expense", resp[0].LedgerType)
}

func TestCreateRule(t *testing.T) {
	d := setup(t)
	minAmount := int64(10000)
	d.rules.EXPECT().CreateRule(mock.Anything, usecase.CreateRuleRequest{
		EntityID: "acme",
		Priority: 10,
		Matcher: entity.MatcherSpec{
			Direction:        entity.DirectionOutflow,
			MinAmountInCents: &minAmount,
			DescriptionRegex: "(uber|ola)",
		},
		CategoryCode: "TRANSPORT",
	}).Return(&entity.CategorizationRule{
		ID:         "rule-1",
		Priority:   10,
		Enabled:    true,
		Matcher:    entity.MatcherSpec{Direction: entity.DirectionOutflow, MinAmountInCents: &minAmount, DescriptionRegex: "(uber|ola)"},
		CategoryID: "transport",
	}, nil)

	w := d.do(http.MethodPost, "/entities/acme/rules", dto.CreateRuleRequest{
		Priority:     10,
		Matcher:      dto.MatcherDTO{Direction: "outflow", MinAmount: "100.00", DescriptionRegex: "(uber|ola)"},
		CategoryCode: "TRANSPORT",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.RuleResponse](t, w)
	assert.Equal(t, "100.00", resp.Matcher.MinAmount)
}

func TestCreateRule_InvalidMatcher(t *testing.T) {
	d := setup(t)
	d.rules.EXPECT().CreateRule(mock.Anything, mock.Anything).
		Return(nil, errs.NewMatcherError("", "descriptionRegex", "missing closing )"))

	w := d.do(http.MethodPost, "/entities/acme/rules", dto.CreateRuleRequest{
		Matcher: dto.MatcherDTO{DescriptionRegex: "(uber"}, CategoryCode: "TRANSPORT",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errs.CodeInvalidMatcher, decode[dto.ErrorResponse](t, w).Code)
}

func TestUpdateRule(t *testing.T) {
	d := setup(t)
	d.rules.EXPECT().SetRuleEnabled(mock.Anything, "acme", "rule-1", false).
		Return(&entity.CategorizationRule{ID: "rule-1", Enabled: false}, nil)
	d.rules.EXPECT().SetRuleEnabled(mock.Anything, "acme", "missing", true).
		Return(nil, errs.ErrRuleNotFound)

	w := d.do(http.MethodPatch, "/entities/acme/rules/rule-1", `{"enabled":false}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[dto.RuleResponse](t, w).Enabled)

	w = d.do(http.MethodPatch, "/entities/acme/rules/missing", `{"enabled":true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = d.do(http.MethodPatch, "/entities/acme/rules/rule-1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRulesAndOverrides(t *testing.T) {
	d := setup(t)
	d.rules.EXPECT().ListRules(mock.Anything, "acme").Return([]*entity.CategorizationRule{
		{ID: "r1", Priority: 1}, {ID: "r2", Priority: 5},
	}, nil)
	d.rules.EXPECT().ListOverrideRules(mock.Anything, "acme").Return([]*entity.UserOverrideRule{
		{ID: "o1", CreatedBy: "alice", Matcher: entity.MatcherSpec{DescriptionContains: "ZEPTO"}},
	}, nil)

	w := d.do(http.MethodGet, "/entities/acme/rules", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	rules := decode[[]dto.RuleResponse](t, w)
	require.Len(t, rules, 2)
	assert.Equal(t, "r1", rules[0].ID)

	w = d.do(http.MethodGet, "/entities/acme/override-rules", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	overrides := decode[[]dto.OverrideRuleResponse](t, w)
	require.Len(t, overrides, 1)
	assert.Equal(t, "ZEPTO", overrides[0].Matcher.DescriptionContains)
}

func TestEntityDefaults_FailureStopsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rules := usecasemocks.NewMockRuleUseCase(t)
	rules.EXPECT().EnsureDefaultRules(mock.Anything, "acme").Return(errs.ErrDatabaseConnection)

	router := gin.New()
	router.GET("/entities/:entityId/rules", NewEntityDefaults(rules, logger.NewNoopLogger()).Ensure, func(c *gin.Context) {
		t.Fatal("handler must not run")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/entities/acme/rules", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, errs.CodeDatabaseConnection, decode[dto.ErrorResponse](t, w).Code)
}

func TestInternalErrorsAreMasked(t *testing.T) {
	d := setup(t)
	d.review.EXPECT().ListCategories(mock.Anything).Return(nil, errors.New("pq: secret detail"))

	w := d.do(http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, errs.CodeInternalServer, resp.Code)
	assert.NotContains(t, resp.Message, "secret")
}

type fakeDatabase struct {
	err error
}

func (f fakeDatabase) Ping(context.Context) error { return f.err }

func (f fakeDatabase) PoolMetrics() database.ConnectionPoolMetrics {
	return database.ConnectionPoolMetrics{OpenConnections: 3, MaxOpenConnections: 25}
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		db         fakeDatabase
		wantStatus int
		wantDB     string
	}{
		{name: "database up", db: fakeDatabase{}, wantStatus: http.StatusOK, wantDB: "up"},
		{name: "database down", db: fakeDatabase{err: errs.ErrDatabaseConnection}, wantStatus: http.StatusServiceUnavailable, wantDB: "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", NewHealthHandler(tt.db).Health)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantDB, decode[dto.HealthResponse](t, w).Database)
		})
	}
}
