package repository

import (
	"strings"

	"gorm.io/gorm"
)

// nameContains narrows the query to rows whose name contains q as a
// substring, case-insensitively. The comparison is lower-folded on both sides
// because plain LIKE folds case on SQLite but not on Postgres; lowering gives
// the same contract on both backends. Whitespace-only q matches everything.
func nameContains(db *gorm.DB, q string) *gorm.DB {
	q = strings.TrimSpace(q)
	if q == "" {
		return db
	}
	return db.Where("LOWER(name) LIKE LOWER(?) ESCAPE '\\'", "%"+escapeLike(q)+"%")
}

// escapeLike neutralises LIKE metacharacters so the search term is matched
// literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
