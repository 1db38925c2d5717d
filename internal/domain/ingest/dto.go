package ingest

// ReprocessRequest references a file still sitting in the staging area.
// It is produced by the duplicate-resolution UI from the original upload
// response.
type ReprocessRequest struct {
	InternalFileName string `json:"internal_file_name"`
	OriginalFileName string `json:"original_file_name"`
	CandidateID      *int64 `json:"candidate_id,omitempty"`
	PageSize         int    `json:"page_size"`
}
