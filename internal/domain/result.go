package domain

// The result types below mirror the acknowledgements returned by the
// document store so handlers can pass them through unchanged.

type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// ExistingUserResult is returned instead of an InsertResult when a user
// signs in again with a known email.
type ExistingUserResult struct {
	Message    string `json:"message"`
	InsertedID any    `json:"insertedId"`
}
