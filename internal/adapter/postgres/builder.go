package postgres

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

// Psql is the statement builder shared by all repositories: $n placeholders.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// distanceSQL is the spherical law of cosines in kilometres. The acos
// argument is clamped to [-1, 1] so identical points yield 0 instead of NaN.
// Placeholders: origin latitude, origin longitude, origin latitude.
const distanceSQL = `(6371.0 * acos(LEAST(1.0, GREATEST(-1.0,
	cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?))
	+ sin(radians(?)) * sin(radians(latitude))))))`

// DistanceExpr returns the SQL expression computing the great-circle distance
// between origin and the row's latitude/longitude columns. It mirrors
// domain.DistanceKm.
func DistanceExpr(origin domain.GeoPoint) sq.Sqlizer {
	return sq.Expr(distanceSQL, origin.Latitude, origin.Longitude, origin.Latitude)
}
