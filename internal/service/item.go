package service

import (
	"DocVault/internal/dto"
	"DocVault/internal/mq"
	"DocVault/internal/repo"
	"DocVault/internal/storage"
	"DocVault/model"
	"DocVault/utils"
	"io"
	"strings"
	"time"

	"golang.org/x/net/context"
)

// allowedMimeTypes is the upload allow-list: PDF plus common image formats.
var allowedMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
}

// nameTaken is the best-effort duplicate fast path. The unique index on name
// is the real guarantee; a concurrent insert between this check and ours
// still fails there and maps to the same error.
func nameTaken(ctx context.Context, name string) (bool, error) {
	var count int64
	err := repo.Db.WithContext(ctx).
		Model(&model.FileSystemItem{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// loadCreated reloads a freshly inserted item with its owner and parent for
// the create/upload response shape.
func loadCreated(ctx context.Context, id uint64) (*dto.ItemResponse, error) {
	var item model.FileSystemItem
	if err := repo.Db.WithContext(ctx).
		Preload("User").
		Preload("Parent").
		First(&item, id).Error; err != nil {
		return nil, err
	}
	resp := toExpandedResponse(&item)
	return &resp, nil
}

func afterWrite(ctx context.Context, event string, item *model.FileSystemItem) {
	_ = utils.InvalidateDocumentListCache(ctx)
	mq.PublishItemEvent(ctx, mq.ItemEvent{
		Event:  event,
		ItemID: item.ID,
		Name:   item.Name,
		Type:   item.Type,
		UserID: item.UserID,
	})
}

// CreateFolder creates a folder item. Path defaults to "/{name}" when the
// caller does not supply one.
func CreateFolder(ctx context.Context, req *dto.CreateFolderRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if taken, err := nameTaken(ctx, name); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrNameExists
	}

	path := "/" + name
	if req.Path != nil && strings.TrimSpace(*req.Path) != "" {
		path = strings.TrimSpace(*req.Path)
	}

	item := model.FileSystemItem{
		Name:     name,
		Type:     model.ItemTypeFolder,
		Path:     &path,
		ParentID: req.ParentID,
		UserID:   req.UserID,
	}
	if err := repo.Db.WithContext(ctx).Create(&item).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrNameExists
		}
		return nil, err
	}

	afterWrite(ctx, mq.EventItemCreated, &item)
	return loadCreated(ctx, item.ID)
}

// UploadFile validates upload metadata, hands the binary to the storage
// backend under a timestamp-derived object name, and records the item with
// path /upload/{objectName}.
func UploadFile(ctx context.Context, req *dto.UploadFileRequest, file io.Reader) (*dto.ItemResponse, error) {
	if file == nil {
		return nil, ErrFileRequired
	}
	if !allowedMimeTypes[req.MimeType] {
		return nil, ErrMimeNotAllowed
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if taken, err := nameTaken(ctx, name); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrNameExists
	}

	if storage.Default == nil {
		return nil, errStorageNotInitialized
	}
	object := time.Now().Format("02012006150405") + utils.SafeExtension(name)
	if err := storage.Default.Put(ctx, object, file, req.Size, req.MimeType); err != nil {
		return nil, err
	}

	path := "/upload/" + object
	size := req.Size
	mimeType := req.MimeType
	item := model.FileSystemItem{
		Name:     name,
		Type:     model.ItemTypeFile,
		Path:     &path,
		Size:     &size,
		MimeType: &mimeType,
		ParentID: req.ParentID,
		UserID:   req.UserID,
	}
	if err := repo.Db.WithContext(ctx).Create(&item).Error; err != nil {
		_ = storage.Default.Remove(ctx, object)
		if isDuplicateKey(err) {
			return nil, ErrNameExists
		}
		return nil, err
	}

	afterWrite(ctx, mq.EventItemCreated, &item)
	return loadCreated(ctx, item.ID)
}

// DeleteItem hard-deletes an item. A folder that still has children is
// blocked by the parent FK constraint, not by a recursive walk here.
func DeleteItem(ctx context.Context, id uint64) (*dto.DeleteItemResponse, error) {
	var item model.FileSystemItem
	if err := repo.Db.WithContext(ctx).First(&item, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	result := repo.Db.WithContext(ctx).Delete(&model.FileSystemItem{}, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return nil, ErrFolderNotEmpty
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrItemNotFound
	}

	removeBinary(ctx, &item)
	afterWrite(ctx, mq.EventItemDeleted, &item)
	return &dto.DeleteItemResponse{
		Message: "File system item deleted successfully",
		ID:      id,
	}, nil
}

// removeBinary drops the stored binary of a file item, best effort. The row
// is already gone; a leftover binary is an acceptable failure mode.
func removeBinary(ctx context.Context, item *model.FileSystemItem) {
	if item.IsFolder() || item.Path == nil || storage.Default == nil {
		return
	}
	object := strings.TrimPrefix(*item.Path, "/upload/")
	if object == *item.Path || object == "" || strings.ContainsAny(object, `/\`) {
		return
	}
	_ = storage.Default.Remove(ctx, object)
}
