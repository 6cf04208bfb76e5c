package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/you-humble/pcbuilder/internal/model"
)

const gamesTable = "games"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Games returns one page of games ordered by name and the number of games matching q.Search.
func (r *repository) Games(ctx context.Context, q model.GameQuery) ([]model.Game, int64, error) {
	where := gamesFilter(q.Search)

	countSQL, countArgs, err := r.sb.
		Select("COUNT(*)").
		From(gamesTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	games := make([]model.Game, 0, q.Limit)
	if total == 0 {
		return games, 0, nil
	}

	sqlStr, args, err := r.sb.
		Select("id", "name").
		From(gamesTable).
		Where(where).
		OrderBy("name", "id").
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var g model.Game
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, 0, err
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return games, total, nil
}

func gamesFilter(search string) sq.Sqlizer {
	if search == "" {
		return sq.And{}
	}
	return sq.ILike{"name": "%" + likeEscaper.Replace(search) + "%"}
}
