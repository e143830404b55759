package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Review types — each review belongs to exactly one external catalog.
const (
	TypeMovie      = "movie"
	TypeRestaurant = "restaurant"
)

// AnonymousAuthorID is stored when a review is posted without an identity.
const AnonymousAuthorID = "anonymous"

// Review is the wire representation of a stored review. Timestamps are
// always ISO-8601 strings here, never a store-native value.
type Review struct {
	ID        bson.ObjectID `json:"id"`
	Type      string        `json:"type"`
	ItemID    string        `json:"itemId"`
	ItemTitle string        `json:"itemTitle"`
	Content   string        `json:"content"`
	Rating    int           `json:"rating"`
	Author    string        `json:"author"`
	AuthorID  string        `json:"authorId"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

// ReviewInput is the payload accepted when creating a review. The item
// fields are snapshots; they are never checked against the external catalog.
type ReviewInput struct {
	Type      string `json:"type" validate:"required,oneof=movie restaurant"`
	ItemID    string `json:"itemId" validate:"required"`
	ItemTitle string `json:"itemTitle" validate:"notblank"`
	Content   string `json:"content" validate:"trimmedmin=10"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Author    string `json:"author" validate:"notblank"`
	AuthorID  string `json:"authorId" validate:"-"`
}

// ReviewPatch is the partial payload accepted on update. Only content and
// rating are mutable; a nil field means "leave unchanged".
type ReviewPatch struct {
	Content *string `json:"content" validate:"omitnil,trimmedmin=10"`
	Rating  *int    `json:"rating" validate:"omitnil,min=1,max=5"`
}
