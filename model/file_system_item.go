package model

import "time"

const (
	ItemTypeFile   = "file"
	ItemTypeFolder = "folder"
)

type FileSystemItem struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	// Name is globally unique across all items. The unique index is the
	// source of truth; service-level checks are a best-effort fast path.
	Name string `gorm:"column:name;size:255;not null;uniqueIndex:uk_item_name" json:"name"`

	Type string `gorm:"column:type;size:16;not null;index" json:"type"`

	Path *string `gorm:"column:path;size:1024" json:"path"`

	// Size is null for folders and may exceed 32-bit range for files, so
	// responses carry it as a decimal string.
	Size     *int64  `gorm:"column:size" json:"size,omitempty"`
	MimeType *string `gorm:"column:mime_type;size:255" json:"mimeType"`

	ParentID *uint64         `gorm:"column:parent_id;index" json:"parentId"`
	Parent   *FileSystemItem `gorm:"foreignKey:ParentID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`

	Children []FileSystemItem `gorm:"foreignKey:ParentID;references:ID" json:"-"`

	UserID uint64 `gorm:"column:user_id;not null;index" json:"userId"`
	User   User   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the database table name.
func (FileSystemItem) TableName() string {
	return "file_system_item"
}

// IsFolder reports whether the item is a folder.
func (i FileSystemItem) IsFolder() bool {
	return i.Type == ItemTypeFolder
}
