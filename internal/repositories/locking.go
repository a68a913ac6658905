package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate appends SELECT ... FOR UPDATE so concurrent settlements
// serialize on the rows they are about to mutate. The sqlite test dialect
// does not parse the clause; its database-level write lock serializes
// writers instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
