package dto

// CreateSnapshotRequestBody defines the request body for ExportSnapshot service.
type CreateSnapshotRequestBody struct {
	Format string `json:"format"`
}
