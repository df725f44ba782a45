// Package oid converts between Mongo's native ObjectID and the 24-character
// hex string form used at every API boundary.
//
// The native type never appears in request or response payloads; handlers
// call Parse on any client-supplied identifier before touching the database
// so a malformed id becomes a client error rather than a failed query.
package oid

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a string is not a well-formed 24-hex-character
// ObjectID.
var ErrInvalidID = errors.New("invalid identifier")

// Parse decodes the canonical hex form. It returns ErrInvalidID for anything
// that is not exactly 24 hex characters.
func Parse(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// IsValid reports whether s is a well-formed identifier without allocating.
func IsValid(s string) bool {
	return primitive.IsValidObjectID(s)
}

// Hex returns the canonical 24-character hex string for id.
func Hex(id primitive.ObjectID) string {
	return id.Hex()
}

// New generates a fresh ObjectID. Centralized here so embedded documents
// (modules) and uploaded-file names use the same generation scheme as
// collection keys.
func New() primitive.ObjectID {
	return primitive.NewObjectID()
}
