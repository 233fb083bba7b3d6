package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/loan_service/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// namespaceNotFound is returned by collMod when the collection does not exist yet.
const namespaceNotFound = 26

var numberTypes = bson.A{"double", "int", "long", "decimal"}

// loanSchema mirrors the loan validation rules so the store rejects invalid
// documents written by any client, not only this service.
var loanSchema = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"_id", "name", "amount_gbp", "amount_original", "term", "rate_used", "currency", "createdAt", "updatedAt"},
		"properties": bson.M{
			"name":            bson.M{"bsonType": "string", "pattern": `^[a-zA-Z\s]{3,20}$`},
			"amount_gbp":      bson.M{"bsonType": numberTypes, "minimum": 1},
			"amount_original": bson.M{"bsonType": numberTypes, "minimum": 1},
			"term":            bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 1},
			"rate_used":       bson.M{"bsonType": numberTypes},
			"currency":        bson.M{"enum": currencyEnum()},
			"createdAt":       bson.M{"bsonType": "date"},
			"updatedAt":       bson.M{"bsonType": "date"},
		},
	},
}

func currencyEnum() bson.A {
	enum := make(bson.A, len(domain.SupportedCurrencies))
	for i, c := range domain.SupportedCurrencies {
		enum[i] = string(c)
	}
	return enum
}

// EnsureLoanSchema attaches the loan $jsonSchema validator to the collection,
// creating the collection when it does not exist.
func EnsureLoanSchema(ctx context.Context, db *mongo.Database, collection string) error {
	err := db.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: collection},
		{Key: "validator", Value: loanSchema},
		{Key: "validationLevel", Value: "strict"},
	}).Err()
	if err == nil {
		return nil
	}

	var cmdErr mongo.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != namespaceNotFound {
		return fmt.Errorf("failed to apply loan schema to %s: %w", collection, err)
	}

	opts := options.CreateCollection().SetValidator(loanSchema).SetValidationLevel("strict")
	if err := db.CreateCollection(ctx, collection, opts); err != nil {
		return fmt.Errorf("failed to create collection %s: %w", collection, err)
	}
	return nil
}
