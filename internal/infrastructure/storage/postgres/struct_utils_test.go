package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventum/internal/core/entity"
	"eventum/internal/core/id"
)

type mockEntity struct {
	entity.Base
	Name     string `db:"name" json:"name"`
	Status   string `db:"status" json:"status"`
	Internal string `db:"-"`
	Skipped  string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockEntity]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "created_at", "updated_at", "name", "status",
	}

	assert.Len(t, cols, len(expectedCols))
	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
	assert.NotContains(t, cols, "-")
}

func TestExtractDBColumns_PointerType(t *testing.T) {
	cols := ExtractDBColumns[*mockEntity]()
	assert.Contains(t, cols, "name")
	assert.Contains(t, cols, "id")
}

func TestStructToMap(t *testing.T) {
	now := time.Now().UTC()
	e := mockEntity{
		Base: entity.Base{
			ID:           id.New(),
			DeletionMark: true,
			Version:      5,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		Name:     "Riverside Hall",
		Status:   "available",
		Internal: "hidden",
		Skipped:  "untagged",
	}

	m := StructToMap(e)

	assert.Equal(t, e.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, now, m["created_at"])
	assert.Equal(t, "Riverside Hall", m["name"])
	assert.Equal(t, "available", m["status"])
	assert.NotContains(t, m, "-")

	// Only tagged fields appear.
	assert.Len(t, m, 7)
}

func TestStructToMap_Pointer(t *testing.T) {
	e := &mockEntity{Name: "ptr"}
	m := StructToMap(e)
	assert.Equal(t, "ptr", m["name"])
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("text"))
}
