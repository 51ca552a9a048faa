package persistence

import (
	"context"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// CategoryRepository reads the seeded category catalog
type CategoryRepository interface {
	// List returns every category ordered by code
	List(ctx context.Context) ([]entity.Category, error)

	// GetByID retrieves a category
	//
	// Possible errors:
	// - ErrCategoryNotFound: If the category doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Category, error)

	// GetByCode retrieves a category by its unique code
	//
	// Possible errors:
	// - ErrCategoryNotFound: If the category doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByCode(ctx context.Context, code string) (*entity.Category, error)
}
