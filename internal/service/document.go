package service

import (
	"DocVault/config"
	"DocVault/internal/dto"
	"DocVault/internal/repo"
	"DocVault/model"
	"DocVault/utils"
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// escapeLike neutralizes LIKE wildcards in a search term so matching is
// literal substring containment. '!' is the escape character because a
// backslash literal parses differently under MySQL and SQLite.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func sizeString(size *int64) *string {
	if size == nil {
		return nil
	}
	s := strconv.FormatInt(*size, 10)
	return &s
}

// toItemResponse maps an item without owner or parent expansion.
func toItemResponse(item *model.FileSystemItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Type:      item.Type,
		Path:      item.Path,
		Size:      sizeString(item.Size),
		MimeType:  item.MimeType,
		ParentID:  item.ParentID,
		UserID:    item.UserID,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// toExpandedResponse adds the owner summary and a shallow parent. The parent
// keeps its own fields only; its parent and user stay unexpanded so response
// depth is bounded to one level.
func toExpandedResponse(item *model.FileSystemItem) dto.ItemResponse {
	resp := toItemResponse(item)
	if item.User.ID != 0 {
		resp.User = &dto.UserSummary{ID: item.User.ID, FullName: item.User.FullName()}
	}
	if item.Parent != nil {
		parent := toItemResponse(item.Parent)
		resp.Parent = &parent
	}
	return resp
}

// ListDocuments returns one page of the catalog with owner summaries,
// shallow parents and the total page count.
func ListDocuments(ctx context.Context, q *dto.ListDocumentsQuery) (*dto.PaginationResponse, error) {
	if cached, ok := utils.GetDocumentListFromCache(ctx, q); ok {
		return cached, nil
	}

	query := repo.Db.WithContext(ctx).Model(&model.FileSystemItem{})
	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!'", pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	// folders always sort before files, whatever the caller asked for
	order := "type DESC, " + sanitizeSortBy(q.SortBy) + " " + strings.ToUpper(q.SortOrder)

	var items []model.FileSystemItem
	offset := (q.Page - 1) * q.Limit
	if err := query.
		Preload("User").
		Preload("Parent").
		Order(order).
		Offset(offset).
		Limit(q.Limit).
		Find(&items).Error; err != nil {
		return nil, err
	}

	data := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		data = append(data, toExpandedResponse(&items[i]))
	}

	resp := &dto.PaginationResponse{
		Data:       data,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: int((total + int64(q.Limit) - 1) / int64(q.Limit)),
	}
	_ = utils.SetDocumentListToCache(ctx, q, resp, config.AppConfig.ListCacheTTL)
	return resp, nil
}

// GetDocumentDetails returns an item with its full owner, parent and direct
// children, or nil when no such item exists.
func GetDocumentDetails(ctx context.Context, id uint64) (*dto.ItemDetailResponse, error) {
	var item model.FileSystemItem
	err := repo.Db.WithContext(ctx).
		Preload("User").
		Preload("Parent").
		Preload("Children").
		First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	detail := &dto.ItemDetailResponse{
		ID:        item.ID,
		Name:      item.Name,
		Type:      item.Type,
		Path:      item.Path,
		Size:      sizeString(item.Size),
		MimeType:  item.MimeType,
		ParentID:  item.ParentID,
		UserID:    item.UserID,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
		Children:  make([]dto.ItemResponse, 0, len(item.Children)),
	}
	if item.User.ID != 0 {
		detail.User = &dto.UserDetail{
			ID:        item.User.ID,
			UserName:  item.User.UserName,
			FirstName: item.User.FirstName,
			LastName:  item.User.LastName,
			FullName:  item.User.FullName(),
			CreatedAt: item.User.CreatedAt,
		}
	}
	if item.Parent != nil {
		parent := toItemResponse(item.Parent)
		detail.Parent = &parent
	}
	for i := range item.Children {
		detail.Children = append(detail.Children, toItemResponse(&item.Children[i]))
	}
	return detail, nil
}
