package service

import (
	"DocVault/internal/dto"
	"DocVault/model"
	"context"
	"fmt"
	"testing"
)

func defaultQuery() *dto.ListDocumentsQuery {
	return &dto.ListDocumentsQuery{Page: 1, Limit: 10, SortBy: "name", SortOrder: "asc"}
}

func TestListDocumentsPagination(t *testing.T) {
	setupTestDB(t)
	user := testUser(t)

	for i := 0; i < 3; i++ {
		mustCreateItem(t, &model.FileSystemItem{
			Name:   fmt.Sprintf("folder_%02d", i),
			Type:   model.ItemTypeFolder,
			UserID: user.ID,
		})
	}
	for i := 0; i < 12; i++ {
		mustCreateItem(t, &model.FileSystemItem{
			Name:     fmt.Sprintf("file_%02d.pdf", i),
			Type:     model.ItemTypeFile,
			Size:     int64Ptr(1024),
			MimeType: strPtr("application/pdf"),
			UserID:   user.ID,
		})
	}

	q := defaultQuery()
	resp, err := ListDocuments(context.Background(), q)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(resp.Data) != 10 {
		t.Fatalf("expected 10 items on page 1, got %d", len(resp.Data))
	}
	if resp.Total != 15 {
		t.Fatalf("expected total 15, got %d", resp.Total)
	}
	if resp.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", resp.TotalPages)
	}
	if resp.Page != 1 || resp.Limit != 10 {
		t.Fatalf("page/limit not echoed: %d/%d", resp.Page, resp.Limit)
	}

	q.Page = 2
	resp, err = ListDocuments(context.Background(), q)
	if err != nil {
		t.Fatalf("ListDocuments page 2 failed: %v", err)
	}
	if len(resp.Data) != 5 {
		t.Fatalf("expected 5 items on page 2, got %d", len(resp.Data))
	}
}

func TestListDocumentsFoldersFirst(t *testing.T) {
	setupTestDB(t)
	user := testUser(t)

	mustCreateItem(t, &model.FileSystemItem{Name: "aaa.pdf", Type: model.ItemTypeFile, UserID: user.ID})
	mustCreateItem(t, &model.FileSystemItem{Name: "zzz", Type: model.ItemTypeFolder, UserID: user.ID})

	for _, order := range []string{"asc", "desc"} {
		q := defaultQuery()
		q.SortOrder = order
		resp, err := ListDocuments(context.Background(), q)
		if err != nil {
			t.Fatalf("ListDocuments failed: %v", err)
		}
		if len(resp.Data) != 2 {
			t.Fatalf("expected 2 items, got %d", len(resp.Data))
		}
		if resp.Data[0].Type != model.ItemTypeFolder {
			t.Fatalf("sortOrder=%s: expected folder first, got %s %q", order, resp.Data[0].Type, resp.Data[0].Name)
		}
	}
}

func TestListDocumentsSortBySize(t *testing.T) {
	setupTestDB(t)
	user := testUser(t)

	mustCreateItem(t, &model.FileSystemItem{Name: "small.pdf", Type: model.ItemTypeFile, Size: int64Ptr(10), UserID: user.ID})
	mustCreateItem(t, &model.FileSystemItem{Name: "big.pdf", Type: model.ItemTypeFile, Size: int64Ptr(9000), UserID: user.ID})

	q := defaultQuery()
	q.SortBy = "size"
	q.SortOrder = "desc"
	resp, err := ListDocuments(context.Background(), q)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if resp.Data[0].Name != "big.pdf" {
		t.Fatalf("expected big.pdf first, got %q", resp.Data[0].Name)
	}
	if resp.Data[0].Size == nil || *resp.Data[0].Size != "9000" {
		t.Fatalf("expected size string 9000, got %v", resp.Data[0].Size)
	}
}

// The listing used to enumerate three literal case variants of the search
// term and missed mixed-case names like "RePort.pdf". Matching is now fully
// case-insensitive, so all four variants are found.
func TestListDocumentsSearchCaseInsensitive(t *testing.T) {
	setupTestDB(t)
	user := testUser(t)

	for _, name := range []string{"Report.pdf", "REPORT.pdf", "report.pdf", "RePort.pdf", "other.txt"} {
		mustCreateItem(t, &model.FileSystemItem{Name: name, Type: model.ItemTypeFile, UserID: user.ID})
	}

	q := defaultQuery()
	q.Search = "report"
	resp, err := ListDocuments(context.Background(), q)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if resp.Total != 4 {
		t.Fatalf("expected 4 matches, got %d", resp.Total)
	}
	for _, item := range resp.Data {
		if item.Name == "other.txt" {
			t.Fatalf("search leaked non-matching item %q", item.Name)
		}
	}
}

// Search is literal substring containment; '%' and '_' in the term must not
// act as SQL wildcards.
func TestListDocumentsSearchEscapesWildcards(t *testing.T) {
	setupTestDB(t)
	user := testUser(t)

	mustCreateItem(t, &model.FileSystemItem{Name: "report.pdf", Type: model.ItemTypeFile, UserID: user.ID})
	mustCreateItem(t, &model.FileSystemItem{Name: "re%rt.pdf", Type: model.ItemTypeFile, UserID: user.ID})
	mustCreateItem(t, &model.FileSystemItem{Name: "ab.pdf", Type: model.ItemTypeFile, UserID: user.ID})
	mustCreateItem(t, &model.FileSystemItem{Name: "a_b.pdf", Type: model.ItemTypeFile, UserID: user.ID})

	q := defaultQuery()
	q.Search = "re%rt"
	resp, err := ListDocuments(context.Background(), q)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("search %q: expected only the literal match, got %d", q.Search, resp.Total)
	}
	if resp.Data[0].Name != "re%rt.pdf" {
		t.Fatalf("search %q: expected re%%rt.pdf, got %q", q.Search, resp.Data[0].Name)
	}

	q = defaultQuery()
	q.Search = "a_b"
	resp, err = ListDocuments(context.Background(), q)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if resp.Total != 1 || resp.Data[0].Name != "a_b.pdf" {
		t.Fatalf("search %q: expected only a_b.pdf, got %d items", q.Search, resp.Total)
	}
}

func TestListDocumentsExpandsOwnerAndShallowParent(t *testing.T) {
	setupTestDB(t)
	user := testUser(t)

	grand := mustCreateItem(t, &model.FileSystemItem{Name: "grand", Type: model.ItemTypeFolder, UserID: user.ID})
	parent := mustCreateItem(t, &model.FileSystemItem{Name: "parent", Type: model.ItemTypeFolder, ParentID: &grand.ID, UserID: user.ID})
	mustCreateItem(t, &model.FileSystemItem{Name: "leaf.pdf", Type: model.ItemTypeFile, ParentID: &parent.ID, UserID: user.ID})

	q := defaultQuery()
	q.Search = "leaf"
	resp, err := ListDocuments(context.Background(), q)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Data))
	}
	item := resp.Data[0]
	if item.User == nil || item.User.FullName == "" {
		t.Fatalf("expected owner summary, got %+v", item.User)
	}
	if item.Parent == nil || item.Parent.Name != "parent" {
		t.Fatalf("expected parent expansion, got %+v", item.Parent)
	}
	// depth is bounded to one level
	if item.Parent.Parent != nil || item.Parent.User != nil {
		t.Fatalf("parent expansion should be shallow, got %+v", item.Parent)
	}
}

func TestGetDocumentDetails(t *testing.T) {
	setupTestDB(t)
	user := testUser(t)

	folder := mustCreateItem(t, &model.FileSystemItem{Name: "Documents", Type: model.ItemTypeFolder, Path: strPtr("/Documents"), UserID: user.ID})
	mustCreateItem(t, &model.FileSystemItem{
		Name:     "huge.pdf",
		Type:     model.ItemTypeFile,
		Size:     int64Ptr(5_000_000_000),
		MimeType: strPtr("application/pdf"),
		ParentID: &folder.ID,
		UserID:   user.ID,
	})

	detail, err := GetDocumentDetails(context.Background(), folder.ID)
	if err != nil {
		t.Fatalf("GetDocumentDetails failed: %v", err)
	}
	if detail == nil {
		t.Fatal("expected detail, got nil")
	}
	if detail.User == nil || detail.User.UserName == "" {
		t.Fatalf("expected full user, got %+v", detail.User)
	}
	if len(detail.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(detail.Children))
	}
	child := detail.Children[0]
	if child.Size == nil || *child.Size != "5000000000" {
		t.Fatalf("expected child size string 5000000000, got %v", child.Size)
	}
	if detail.Size != nil {
		t.Fatalf("folder size should be null, got %v", detail.Size)
	}
}

func TestGetDocumentDetailsMissingIsNull(t *testing.T) {
	setupTestDB(t)

	detail, err := GetDocumentDetails(context.Background(), 424242)
	if err != nil {
		t.Fatalf("expected nil error for missing id, got %v", err)
	}
	if detail != nil {
		t.Fatalf("expected nil detail, got %+v", detail)
	}
}

func TestSanitizeSortBy(t *testing.T) {
	cases := map[string]string{
		"name":             "name",
		"createdAt":        "created_at",
		"updatedAt":        "updated_at",
		"mimeType":         "mime_type",
		"size":             "size",
		"":                 "name",
		"name; DROP TABLE": "name",
		"not_a_column":     "name",
	}
	for input, want := range cases {
		if got := sanitizeSortBy(input); got != want {
			t.Errorf("sanitizeSortBy(%q) = %q, want %q", input, got, want)
		}
	}
}
