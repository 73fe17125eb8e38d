package dto

// ListDocumentsQuery binds the pagination/sort/search query parameters.
// Invalid sortOrder values are rejected here, before the service runs.
type ListDocumentsQuery struct {
	Page      int    `form:"page,default=1" binding:"min=1"`
	Limit     int    `form:"limit,default=10" binding:"min=1"`
	SortBy    string `form:"sortBy,default=name"`
	SortOrder string `form:"sortOrder,default=asc" binding:"oneof=asc desc"`
	Search    string `form:"search"`
}

type CreateFolderRequest struct {
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type" binding:"required,eq=folder"`
	Path     *string `json:"path"`
	UserID   uint64  `json:"userId" binding:"required"`
	ParentID *uint64 `json:"parentId"`
}

// UploadFileForm binds the multipart fields that accompany the file part.
type UploadFileForm struct {
	Name     string `form:"name"`
	Type     string `form:"type"`
	Size     int64  `form:"size"`
	UserID   uint64 `form:"userId" binding:"required"`
	ParentID uint64 `form:"parentId"`
}

// UploadFileRequest is the service-level upload payload assembled by the
// handler from the form fields and the file part.
type UploadFileRequest struct {
	Name     string
	MimeType string
	Size     int64
	UserID   uint64
	ParentID *uint64
}
