package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "SELECT 1 WHERE x LIMIT 5", Join("SELECT 1", "", "WHERE x", " ", "LIMIT 5"))
}

func TestJoinWhere(t *testing.T) {
	assert.Equal(t, "", JoinWhere())
	assert.Equal(t, "WHERE a = $1 AND b = $2", JoinWhere("a = $1", "b = $2"))
}

func TestFormatLimitOffset(t *testing.T) {
	assert.Equal(t, "", FormatLimitOffset(0, 0))
	assert.Equal(t, "LIMIT 10", FormatLimitOffset(10, 0))
	assert.Equal(t, "OFFSET 20", FormatLimitOffset(0, 20))
	assert.Equal(t, "LIMIT 10 OFFSET 20", FormatLimitOffset(10, 20))
}

func TestInsert(t *testing.T) {
	q := Insert("products", []string{"name", "slug"}, "id")
	assert.Equal(t, "INSERT INTO products (name, slug) VALUES ($1, $2) RETURNING id", q)
}

func TestUpdate(t *testing.T) {
	q := Update("products", []string{"name", "slug"}, "id = $3")
	assert.Equal(t, "UPDATE products SET name = $1, slug = $2 WHERE id = $3", q)
}

func TestExists(t *testing.T) {
	assert.Equal(t, "SELECT EXISTS (SELECT 1 FROM t)", Exists("SELECT 1 FROM t"))
}
