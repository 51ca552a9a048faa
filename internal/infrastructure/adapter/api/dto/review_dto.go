package dto

import (
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// CategoryResponse is one catalog entry
type CategoryResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	LedgerType string `json:"ledgerType"`
}

// ReviewItemResponse is a categorization with the context a reviewer needs
type ReviewItemResponse struct {
	Categorization   *CategorizationResponse `json:"categorization"`
	RawTransactionID string                  `json:"rawTransactionId"`
	UploadedFileID   *string                 `json:"uploadedFileId,omitempty"`
	Description      string                  `json:"description"`
	Reference        string                  `json:"reference,omitempty"`
	Direction        string                  `json:"direction"`
	Amount           string                  `json:"amount"`
	TransactionDate  string                  `json:"transactionDate"`
	CategoryCode     string                  `json:"categoryCode,omitempty"`
	CategoryName     string                  `json:"categoryName,omitempty"`
}

// ReviewQueueResponse is one page of the review queue
type ReviewQueueResponse struct {
	Items  []ReviewItemResponse `json:"items"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// FromCategories maps the catalog
func FromCategories(categories []entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{
			ID:         c.ID,
			Code:       c.Code,
			Name:       c.Name,
			LedgerType: string(c.LedgerType),
		})
	}
	return out
}

// FromReviewItems maps review queue rows
func FromReviewItems(items []entity.ReviewItem) []ReviewItemResponse {
	out := make([]ReviewItemResponse, 0, len(items))
	for i := range items {
		item := &items[i]
		out = append(out, ReviewItemResponse{
			Categorization:   FromCategorization(&item.Categorization),
			RawTransactionID: item.RawTransactionID,
			UploadedFileID:   item.UploadedFileID,
			Description:      item.DescriptionClean,
			Reference:        item.ReferenceExtracted,
			Direction:        string(item.Direction),
			Amount:           entity.AmountInCentsToString(item.AmountInCents),
			TransactionDate:  item.TransactionDate.Format(time.DateOnly),
			CategoryCode:     item.CategoryCode,
			CategoryName:     item.CategoryName,
		})
	}
	return out
}
