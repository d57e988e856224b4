package experience

import (
	sq "github.com/Masterminds/squirrel"

	postgres "github.com/wayfarer-app/wayfarer-backend/internal/adapter/postgres"
	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

const table = "local_experiences"

// searchColumns is the projection returned by Search. Distance is appended
// only when the filter has an origin.
var searchColumns = []string{
	"id", "title", "description", "category", "latitude", "longitude",
	"address", "rating", "price_range", "created_at",
}

// buildSearchQuery translates a domain.ExperienceFilter into a parameterised
// SELECT. User input only ever reaches the query as bound arguments.
//
// With an origin the distance is computed once in a subquery so the radius
// predicate and the ordering use the same value:
//
//	SELECT * FROM (SELECT ..., <distance> AS distance FROM local_experiences WHERE ...) AS e
//	WHERE e.distance <= $n ORDER BY e.distance ASC, e.id ASC LIMIT .. OFFSET ..
func buildSearchQuery(f domain.ExperienceFilter) sq.SelectBuilder {
	inner := postgres.Psql.
		Select(searchColumns...).
		From(table).
		Where("is_active = TRUE")

	if f.Text != nil && *f.Text != "" {
		pattern := domain.ContainsPattern(*f.Text)
		inner = inner.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}

	if f.Category != nil {
		inner = inner.Where(sq.Eq{"category": string(*f.Category)})
	}

	var q sq.SelectBuilder
	switch f.Sort() {
	case domain.SortNearest:
		inner = inner.Column(sq.Alias(postgres.DistanceExpr(*f.Origin), "distance"))
		q = postgres.Psql.
			Select("*").
			FromSelect(inner, "e").
			Where(sq.LtOrEq{"e.distance": f.RadiusKm}).
			OrderBy("e.distance ASC", "e.id ASC")
	default:
		q = inner.OrderBy("created_at DESC", "id ASC")
	}

	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	return q
}
