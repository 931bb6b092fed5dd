package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectWithConditionsAndPaging(t *testing.T) {
	query, args, err := Select("id", "name").
		From("clubs").
		Where(Eq("state", "SP"), ILike("name", "%fc%")).
		OrderBy("name", "id").
		Limit(10).
		Offset(20).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM clubs WHERE state = $1 AND name ILIKE $2 ORDER BY name, id LIMIT 10 OFFSET 20", query)
	assert.Equal(t, []any{"SP", "%fc%"}, args)
}

func TestSelectWithOrGroup(t *testing.T) {
	query, args, err := Select("*").
		From("matches").
		Where(Or(Eq("home_club_id", int64(7)), Eq("away_club_id", int64(7)))).
		OrderBy("played_at").
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM matches WHERE (home_club_id = $1 OR away_club_id = $2) ORDER BY played_at", query)
	assert.Equal(t, []any{int64(7), int64(7)}, args)
}

func TestSelectExprPlaceholderRewrite(t *testing.T) {
	query, args, err := Select("COUNT(1)").
		From("matches").
		Where(Eq("stadium_id", int64(3)), Expr("played_at::date = ?::date", "2025-01-10")).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(1) FROM matches WHERE stadium_id = $1 AND played_at::date = $2::date", query)
	assert.Equal(t, []any{int64(3), "2025-01-10"}, args)
}

func TestSelectRequiresTableAndColumns(t *testing.T) {
	_, _, err := Select().From("clubs").ToSQL()
	assert.Error(t, err)

	_, _, err = Select("id").ToSQL()
	assert.Error(t, err)
}

func TestInsertWithSuffix(t *testing.T) {
	query, args, err := InsertInto("stadiums").
		Columns("name").
		Values("Maracanã").
		Suffix("RETURNING id").
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO stadiums (name) VALUES ($1) RETURNING id", query)
	assert.Equal(t, []any{"Maracanã"}, args)
}

func TestInsertRejectsMismatchedRow(t *testing.T) {
	_, _, err := InsertInto("clubs").
		Columns("name", "state").
		Values("Santos").
		ToSQL()
	assert.Error(t, err)
}

func TestUpdateWithWhere(t *testing.T) {
	query, args, err := Update("clubs").
		Set("active", false).
		Set("name", "Santos FC").
		Where(Eq("id", int64(5))).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE clubs SET active = $1, name = $2 WHERE id = $3", query)
	assert.Equal(t, []any{false, "Santos FC", int64(5)}, args)
}

func TestDeleteRequiresWhere(t *testing.T) {
	_, _, err := DeleteFrom("matches").ToSQL()
	assert.Error(t, err)

	query, args, err := DeleteFrom("matches").Where(Eq("id", int64(9))).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM matches WHERE id = $1", query)
	assert.Equal(t, []any{int64(9)}, args)
}
