package dto

// CreateCategoryRequestBody defines the request body for CreateCategory service.
type CreateCategoryRequestBody struct {
	Name     string `json:"name"`
	ParentID int64  `json:"parentId"`
}

// UpdateCategoryRequestBody defines the request body for UpdateCategory service.
// A nil ParentID leaves the category where it is; zero moves it to the root.
type UpdateCategoryRequestBody struct {
	Name     *string `json:"name"`
	ParentID *int64  `json:"parentId"`
}
