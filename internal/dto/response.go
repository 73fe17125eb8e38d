package dto

import "time"

// UserSummary is the owner projection attached to list/create responses.
type UserSummary struct {
	ID       uint64 `json:"id"`
	FullName string `json:"fullName"`
}

// UserDetail is the full owner object returned by the details endpoint.
type UserDetail struct {
	ID        uint64    `json:"id"`
	UserName  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}

// ItemResponse is a catalog item on the wire. Size is a decimal string so
// large file sizes survive JSON transport without precision loss.
type ItemResponse struct {
	ID        uint64        `json:"id"`
	Name      string        `json:"name"`
	Type      string        `json:"type"`
	Path      *string       `json:"path"`
	Size      *string       `json:"size"`
	MimeType  *string       `json:"mimeType"`
	ParentID  *uint64       `json:"parentId"`
	UserID    uint64        `json:"userId"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	User      *UserSummary  `json:"user,omitempty"`
	Parent    *ItemResponse `json:"parent,omitempty"`
}

// ItemDetailResponse expands an item with its owner, parent and direct
// children. Children are shallow ItemResponses.
type ItemDetailResponse struct {
	ID        uint64         `json:"id"`
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Path      *string        `json:"path"`
	Size      *string        `json:"size"`
	MimeType  *string        `json:"mimeType"`
	ParentID  *uint64        `json:"parentId"`
	UserID    uint64         `json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	User      *UserDetail    `json:"user"`
	Parent    *ItemResponse  `json:"parent"`
	Children  []ItemResponse `json:"children"`
}

type PaginationResponse struct {
	Data       []ItemResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

type DeleteItemResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id"`
}
