package handler

import (
	"DocVault/internal/dto"
	"DocVault/internal/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service errors onto HTTP statuses. Business-rule
// failures are client-correctable; everything else is a server error.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNameExists),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrFileRequired),
		errors.Is(err, service.ErrMimeNotAllowed),
		errors.Is(err, service.ErrFolderNotEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseItemID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// ListDocuments returns a catalog page.
func ListDocuments(c *gin.Context) {
	var q dto.ListDocumentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query: " + err.Error()})
		return
	}

	resp, err := service.ListDocuments(c.Request.Context(), &q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DocumentDetails returns one item with owner, parent and children.
// A missing id responds with a JSON null body, not an error.
func DocumentDetails(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	detail, err := service.GetDocumentDetails(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if detail == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateFolder creates a folder item.
func CreateFolder(c *gin.Context) {
	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	created, err := service.CreateFolder(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UploadFile stores the multipart binary and records the file item. Name,
// MIME type and size fall back to what the file part itself reports.
func UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrFileRequired.Error()})
		return
	}

	var form dto.UploadFileForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	req := dto.UploadFileRequest{
		Name:     form.Name,
		MimeType: form.Type,
		Size:     form.Size,
		UserID:   form.UserID,
	}
	if req.Name == "" {
		req.Name = fileHeader.Filename
	}
	if req.MimeType == "" {
		req.MimeType = fileHeader.Header.Get("Content-Type")
	}
	if req.Size <= 0 {
		req.Size = fileHeader.Size
	}
	if form.ParentID != 0 {
		parentID := form.ParentID
		req.ParentID = &parentID
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "open upload failed: " + err.Error()})
		return
	}
	defer file.Close()

	created, err := service.UploadFile(c.Request.Context(), &req, file)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteDocument hard-deletes an item by id.
func DeleteDocument(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	resp, err := service.DeleteItem(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
