package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults applied", 0, 0, 1, 15},
		{"negative page", -5, 10, 1, 10},
		{"per page capped", 1, 500, 1, 100},
		{"valid unchanged", 3, 25, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PaginationParams{Page: tt.page, PerPage: tt.perPage}
			p.Validate()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPerPage, p.PerPage)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 15}
	assert.Equal(t, 30, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 15, 31)

	assert.Equal(t, 3, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	last := NewPagination(3, 15, 31)
	assert.False(t, last.HasNext)
}

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", createdAt)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()

	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, "abc-123", cursor.ID)
	assert.True(t, cursor.CreatedAt.Equal(createdAt))
}

func TestDecodeCursorEmpty(t *testing.T) {
	params := &CursorParams{}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestDecodeCursorGarbage(t *testing.T) {
	params := &CursorParams{Cursor: "not-base64!!!"}
	_, err := params.DecodeCursor()
	assert.Error(t, err)
}

type row struct {
	id        string
	createdAt time.Time
}

func TestNewCursorPaginationTrimsExtraRow(t *testing.T) {
	now := time.Now()
	rows := []row{
		{"a", now},
		{"b", now.Add(time.Second)},
		{"c", now.Add(2 * time.Second)}, // the limit+1 probe row
	}

	pag, items := NewCursorPagination(rows, 2,
		func(r row) string { return r.id },
		func(r row) time.Time { return r.createdAt },
	)

	assert.Len(t, items, 2)
	assert.True(t, pag.HasNext)
	require.NotNil(t, pag.NextCursor)

	decoded, err := (&CursorParams{Cursor: *pag.NextCursor}).DecodeCursor()
	require.NoError(t, err)
	assert.Equal(t, "b", decoded.ID)
}

func TestNewCursorPaginationLastPage(t *testing.T) {
	rows := []row{{"a", time.Now()}}

	pag, items := NewCursorPagination(rows, 5,
		func(r row) string { return r.id },
		func(r row) time.Time { return r.createdAt },
	)

	assert.Len(t, items, 1)
	assert.False(t, pag.HasNext)
}
