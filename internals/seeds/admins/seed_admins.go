package admins

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/users/auth/model"
)

type AdminSeed struct {
	AdminName     string `json:"admin_name"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}

func SeedAdminsFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed file %s: %v", filePath, err)
		return
	}

	var inputs []AdminSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Failed to decode seed file %s: %v", filePath, err)
		return
	}

	for _, data := range inputs {
		var existing model.AdminModel
		if err := db.Where("admin_email = ?", data.AdminEmail).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Admin '%s' already exists, skipped", data.AdminEmail)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Failed to hash password for '%s': %v", data.AdminEmail, err)
			continue
		}

		admin := model.AdminModel{
			AdminName:     data.AdminName,
			AdminEmail:    data.AdminEmail,
			AdminPassword: string(hashed),
			AdminIsActive: true,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("❌ Failed to insert admin '%s': %v", data.AdminEmail, err)
		} else {
			log.Printf("✅ Seeded admin '%s'", data.AdminEmail)
		}
	}
}
