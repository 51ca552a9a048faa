package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType("  select * from categories"))
	assert.Equal(t, "INSERT", extractQueryType(`INSERT INTO "raw_transactions" ("id") VALUES ($1)`))
	assert.Equal(t, "", extractQueryType("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE"))
}

func TestExtractTableName(t *testing.T) {
	tests := []struct {
		sql      string
		expected string
	}{
		{`SELECT * FROM "uploaded_files" WHERE id = $1`, "uploaded_files"},
		{`INSERT INTO "raw_transactions" ("id") VALUES ($1)`, "raw_transactions"},
		{`INSERT INTO categories(id, code) VALUES ($1, $2)`, "categories"},
		{`UPDATE "categorization_rules" SET "enabled"=$1`, "categorization_rules"},
		{`BEGIN`, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, extractTableName(tt.sql), tt.sql)
	}
}

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sqlFn := func() (string, int64) { return `SELECT * FROM "categories"`, 3 }

	tests := []struct {
		name    string
		elapsed time.Duration
		err     error
		expect  func(l *coremocks.MockLogger)
	}{
		{
			name:    "regular query logs at debug",
			elapsed: time.Millisecond,
			expect: func(l *coremocks.MockLogger) {
				l.EXPECT().Debug("SQL Query", mock.Anything).Once()
			},
		},
		{
			name:    "slow query warns",
			elapsed: time.Second,
			expect: func(l *coremocks.MockLogger) {
				l.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()
			},
		},
		{
			name:    "sql error",
			elapsed: time.Millisecond,
			err:     errors.New("boom"),
			expect: func(l *coremocks.MockLogger) {
				l.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
					return fields["error"] == "boom" && fields["table"] == "categories"
				})).Once()
			},
		},
		{
			name:    "record not found is not an error",
			elapsed: time.Millisecond,
			err:     gorm.ErrRecordNotFound,
			expect: func(l *coremocks.MockLogger) {
				l.EXPECT().Debug("SQL Query", mock.Anything).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coreLogger := coremocks.NewMockLogger(t)
			timeProvider := coremocks.NewMockTimeProvider(t)
			timeProvider.EXPECT().Since(begin).Return(coreDuration(tt.elapsed))
			tt.expect(coreLogger)

			l := NewGormDatabaseLogger(coreLogger, timeProvider, "info")
			l.Trace(context.Background(), begin, sqlFn, tt.err)
		})
	}
}

func TestDatabaseLogger_Silent(t *testing.T) {
	coreLogger := coremocks.NewMockLogger(t)
	l := NewGormDatabaseLogger(coreLogger, nil, "info").LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("ignored"))
	l.Info(context.Background(), "ignored")

	coreLogger.AssertNotCalled(t, "Error", mock.Anything, mock.Anything)
	coreLogger.AssertNotCalled(t, "Info", mock.Anything, mock.Anything)
}

func coreDuration(d time.Duration) coreport.Duration {
	return coreport.Duration(d)
}
