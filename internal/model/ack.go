package model

// UpdateAck reports how many documents an update matched and changed. The
// JSON names follow the document store's own acknowledgment.
type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteAck reports how many documents a delete removed (0 or 1).
type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
