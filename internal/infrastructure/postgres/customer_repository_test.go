package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/repository"
)

func TestFilterClause_Empty(t *testing.T) {
	where, args := filterClause(repository.CustomerFilter{})
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestFilterClause_SearchIsLiteralSubstring(t *testing.T) {
	// LIKE metacharacters in the term must not act as wildcards: a search
	// for "100%" may not match "Werkstatt 1000 AG".
	where, args := filterClause(repository.CustomerFilter{Search: "100%"})
	assert.Equal(t, " WHERE name ILIKE $1", where)
	assert.Equal(t, []any{`%100\%%`}, args)

	_, args = filterClause(repository.CustomerFilter{Search: "a_b"})
	assert.Equal(t, []any{`%a\_b%`}, args)

	_, args = filterClause(repository.CustomerFilter{Search: `a\b`})
	assert.Equal(t, []any{`%a\\b%`}, args)

	_, args = filterClause(repository.CustomerFilter{Search: "müller"})
	assert.Equal(t, []any{"%müller%"}, args)
}

func TestFilterClause_SearchAndType(t *testing.T) {
	where, args := filterClause(repository.CustomerFilter{
		Search: "weber",
		Type:   entity.CustomerTypePrivate,
	})
	assert.Equal(t, " WHERE name ILIKE $1 AND type = $2", where)
	assert.Equal(t, []any{"%weber%", "PRIVATE"}, args)
}
