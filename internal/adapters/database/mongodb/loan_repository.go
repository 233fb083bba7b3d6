package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/loan_service/internal/apperrors"
	"github.com/SscSPs/loan_service/internal/core/domain"
	portsrepo "github.com/SscSPs/loan_service/internal/core/ports/repositories"
	"github.com/SscSPs/loan_service/internal/models"
	"github.com/SscSPs/loan_service/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// documentValidationFailure is the server error code for a $jsonSchema rejection.
const documentValidationFailure = 121

// DatabaseProvider hands out the current database handle.
// It returns apperrors.ErrNotConnected while the connection is being established.
type DatabaseProvider interface {
	Database() (*mongo.Database, error)
}

// MongoLoanRepository stores loans as documents in a single collection.
type MongoLoanRepository struct {
	db         DatabaseProvider
	collection string
}

// newMongoLoanRepository creates a new repository for loan data.
func newMongoLoanRepository(db DatabaseProvider, collection string) *MongoLoanRepository {
	return &MongoLoanRepository{db: db, collection: collection}
}

// Ensure implementation matches interface
var _ portsrepo.LoanRepositoryFacade = (*MongoLoanRepository)(nil)

func (r *MongoLoanRepository) loans() (*mongo.Collection, error) {
	db, err := r.db.Database()
	if err != nil {
		return nil, err
	}
	return db.Collection(r.collection), nil
}

// SaveLoan inserts a new loan document.
func (r *MongoLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	coll, err := r.loans()
	if err != nil {
		return fmt.Errorf("failed to save loan %s: %w", loan.LoanID, err)
	}

	if _, err := coll.InsertOne(ctx, mapping.ToModelLoan(loan)); err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, we := range writeErr.WriteErrors {
				if we.Code == documentValidationFailure {
					return apperrors.NewValidationError(we.Message)
				}
			}
		}
		return fmt.Errorf("failed to save loan %s: %w", loan.LoanID, err)
	}
	return nil
}

// ListLoans retrieves all loans ordered by the given sort.
func (r *MongoLoanRepository) ListLoans(ctx context.Context, sort domain.LoanSort) ([]domain.Loan, error) {
	coll, err := r.loans()
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: sortKey(sort.Field), Value: int32(sort.Direction)}})
	cursor, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var modelLoans []models.Loan
	if err := cursor.All(ctx, &modelLoans); err != nil {
		return nil, fmt.Errorf("failed to decode loans: %w", err)
	}

	return mapping.ToDomainLoanSlice(modelLoans), nil
}

func sortKey(field domain.LoanSortField) string {
	switch field {
	case domain.LoanSortByAmountGBP:
		return "amount_gbp"
	case domain.LoanSortByTerm:
		return "term"
	default:
		return "createdAt"
	}
}
