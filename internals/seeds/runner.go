package seeds

import (
	"gorm.io/gorm"

	"storeadmin_backend/internals/seeds/admins"
)

func RunAllSeeds(db *gorm.DB) {
	admins.SeedAdminsFromJSON(db, "internals/seeds/admins/data_admins.json")
}
