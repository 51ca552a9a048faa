package csvparser

import (
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	text := "Date,Amount,Direction,Description,Ref\n" +
		"2024-06-01,\"1,500.00\",DR,\"ZOMATO, ORDER \"\"1234\"\"\",REF1\n" +
		"\n" +
		"15/06/2024,-85000,credit,ACME CORP SALARY,\n"

	candidates, err := Parse(text)

	require.NoError(t, err)
	require.Len(t, candidates, 2)

	first := candidates[0]
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, int64(150000), first.AmountInCents)
	assert.Equal(t, entity.DirectionOutflow, first.Direction)
	assert.Equal(t, `ZOMATO, ORDER "1234"`, first.Description)
	assert.Equal(t, "REF1", first.Reference)
	assert.Equal(t, 2, first.Line)

	second := candidates[1]
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), second.Date)
	assert.Equal(t, int64(8500000), second.AmountInCents)
	assert.Equal(t, entity.DirectionInflow, second.Direction)
	assert.Empty(t, second.Reference)
	assert.Equal(t, 4, second.Line)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name         string
		text         string
		expectedErr  error
		expectedLine int
		column       string
	}{
		{
			name:        "Header only",
			text:        "date,amount,direction,description\n",
			expectedErr: errs.ErrInvalidDocument,
		},
		{
			name:        "Empty document",
			text:        "  \n\n",
			expectedErr: errs.ErrInvalidDocument,
		},
		{
			name:         "Missing column",
			text:         "date,amount,description\n2024-06-01,10,x\n",
			expectedErr:  errs.ErrMissingColumn,
			expectedLine: 1,
			column:       ColumnDirection,
		},
		{
			name:         "Bad amount",
			text:         "date,amount,direction,description\n2024-06-01,12abc,dr,x\n",
			expectedErr:  errs.ErrInvalidAmount,
			expectedLine: 2,
			column:       ColumnAmount,
		},
		{
			name:         "Non-finite amount",
			text:         "date,amount,direction,description\n2024-06-01,NaN,dr,x\n",
			expectedErr:  errs.ErrInvalidAmount,
			expectedLine: 2,
			column:       ColumnAmount,
		},
		{
			name:         "Unknown direction",
			text:         "date,amount,direction,description\n2024-06-01,10,sideways,x\n",
			expectedErr:  errs.ErrInvalidDirection,
			expectedLine: 2,
			column:       ColumnDirection,
		},
		{
			name:         "Bad date on third line",
			text:         "date,amount,direction,description\n2024-06-01,10,dr,x\n2024-13-45,10,dr,y\n",
			expectedErr:  errs.ErrInvalidDate,
			expectedLine: 3,
			column:       ColumnDate,
		},
		{
			name:         "Missing description value",
			text:         "date,amount,direction,description\n2024-06-01,10,dr\n",
			expectedErr:  errs.ErrMissingField,
			expectedLine: 2,
			column:       ColumnDescription,
		},
		{
			name:         "Unterminated quote",
			text:         "date,amount,direction,description\n2024-06-01,10,dr,\"never closed\n",
			expectedErr:  errs.ErrUnterminatedQuote,
			expectedLine: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			candidates, err := Parse(tc.text)

			require.Error(t, err)
			assert.Nil(t, candidates)
			assert.True(t, errors.Is(err, tc.expectedErr), "got %v", err)

			if tc.expectedLine > 0 {
				var parseErr *errs.ParseError
				require.True(t, errors.As(err, &parseErr), "expected ParseError, got %T", err)
				assert.Equal(t, tc.expectedLine, parseErr.Line)
				assert.Equal(t, tc.column, parseErr.Column)
			}
		})
	}
}

func TestParseDate_Layouts(t *testing.T) {
	expected := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	for _, value := range []string{"2024-03-09", "09/03/2024", "2024/03/09", "09-03-2024", " 2024-03-09 "} {
		t.Run(value, func(t *testing.T) {
			got, err := ParseDate(value)
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}

	_, err := ParseDate("March 9th")
	assert.ErrorIs(t, err, errs.ErrInvalidDate)
}

func TestParse_HeaderCaseAndAliases(t *testing.T) {
	text := "DESCRIPTION,  Amount ,DIRECTION,DATE,REF,Merchant\nUPI/412345678901/SWIGGY,250,Dr,2024-01-02,U1,Swiggy\n"

	candidates, err := Parse(text)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "UPI/412345678901/SWIGGY", candidates[0].Description)
	assert.Equal(t, int64(25000), candidates[0].AmountInCents)
	assert.Equal(t, "U1", candidates[0].Reference)
	assert.Equal(t, "Swiggy", candidates[0].Merchant)
}
