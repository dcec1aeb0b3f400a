package dto

import (
	"time"

	"github.com/feral-file/ff-greeting-cards/internal/collection"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
)

// CardResponse represents a greeting card in API responses
type CardResponse struct {
	TokenID          uint64               `json:"token_id"`
	Metadata         CardMetadataResponse `json:"metadata"`
	Owner            string               `json:"owner"`
	ApprovedOperator *string              `json:"approved_operator"`
}

// CardMetadataResponse represents the card payload
type CardMetadataResponse struct {
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Festival  string    `json:"festival"`
	ImageURI  *string   `json:"image_uri"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

// CardListResponse represents one page of a searched collection
type CardListResponse struct {
	Cards      []CardResponse        `json:"cards"`
	Total      int                   `json:"total"`
	Offset     uint64                `json:"offset"`
	NextOffset *uint64               `json:"next_offset,omitempty"`
	Criteria   domain.FilterCriteria `json:"criteria"`
	Snapshot   SnapshotInfo          `json:"snapshot"`
}

// SnapshotInfo describes the collection snapshot a response was computed from
type SnapshotInfo struct {
	Generation uint64     `json:"generation"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"`
	Size       int        `json:"size"`
	Error      string     `json:"error,omitempty"`
}

// MapRecordToDTO maps a token record to its API representation
func MapRecordToDTO(r domain.TokenRecord) CardResponse {
	resp := CardResponse{
		TokenID: r.TokenID,
		Metadata: CardMetadataResponse{
			Name:      r.Metadata.Name,
			Message:   r.Metadata.Message,
			Festival:  r.Metadata.Festival,
			Sender:    r.Metadata.Sender,
			CreatedAt: time.Unix(r.Metadata.CreatedAt, 0).UTC(),
		},
		Owner: r.Owner,
	}

	if r.Metadata.ImageURI != "" {
		imageURI := r.Metadata.ImageURI
		resp.Metadata.ImageURI = &imageURI
	}
	if r.HasApprovedOperator() {
		operator := r.ApprovedOperator
		resp.ApprovedOperator = &operator
	}

	return resp
}

// MapRecordsToDTO maps token records preserving their order
func MapRecordsToDTO(records []domain.TokenRecord) []CardResponse {
	cards := make([]CardResponse, len(records))
	for i, r := range records {
		cards[i] = MapRecordToDTO(r)
	}
	return cards
}

// MapSnapshotInfo describes a collection snapshot
func MapSnapshotInfo(snap collection.Snapshot) SnapshotInfo {
	info := SnapshotInfo{
		Generation: snap.Generation,
		Size:       len(snap.Records),
	}
	if !snap.LoadedAt.IsZero() {
		loadedAt := snap.LoadedAt.UTC()
		info.LoadedAt = &loadedAt
	}
	if snap.Err != nil {
		info.Error = snap.Err.Error()
	}
	return info
}
