package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Tenant struct {
	ID           string `gorm:"primaryKey"`
	Slug         string `gorm:"uniqueIndex;not null"`
	Status       string `gorm:"default:'ACTIVE'"`
	BusinessName string `gorm:"not null"`
	Email        string
	IsOpen       bool `gorm:"default:true"`
}

type User struct {
	ID           string `gorm:"primaryKey"`
	TenantID     string `gorm:"index;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"default:'admin'"`
}

func main() {
	// Parse command line flags
	dbPath := flag.String("db", "appdelivery.sqlite", "Path to the sqlite database")
	slug := flag.String("slug", "demo-restaurant", "Tenant slug")
	name := flag.String("name", "Demo Restaurant", "Tenant business name")
	email := flag.String("email", "admin@demo-restaurant.com", "Admin email")
	password := flag.String("password", "admin123", "Admin password")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&Tenant{}, &User{}); err != nil {
		log.Fatal("Failed to migrate:", err)
	}

	tenantID := getTenantID(db, *slug, *name, *email)
	if tenantID == "" {
		log.Fatal("Failed to get tenant for slug:", *slug)
	}

	// Check if the admin already exists
	var existing User
	if err := db.Where("email = ?", *email).First(&existing).Error; err == nil {
		fmt.Printf("Admin already exists!\n")
		fmt.Printf("Email: %s\n", existing.Email)
		fmt.Printf("Tenant ID: %s\n", existing.TenantID)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := User{
		ID:           uuid.NewString(),
		TenantID:     tenantID,
		Email:        *email,
		Name:         fmt.Sprintf("%s Admin", *name),
		PasswordHash: string(hash),
		Role:         "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	fmt.Printf("✓ Admin account created!\n")
	fmt.Printf("Email: %s\n", *email)
	fmt.Printf("Password: %s\n", *password)
	fmt.Printf("Tenant: %s (%s)\n", *name, tenantID)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://localhost:8080/api/auth/login \\\n")
	fmt.Printf("  -H 'Content-Type: application/json' \\\n")
	fmt.Printf("  -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", *email, *password)
}

// getTenantID gets or creates the tenant with the given slug
func getTenantID(db *gorm.DB, slug, name, email string) string {
	var tenant Tenant

	// Try to find the existing tenant
	if err := db.Where("slug = ?", slug).First(&tenant).Error; err == nil {
		fmt.Printf("Found existing tenant: %s (ID: %s)\n", tenant.Slug, tenant.ID)
		return tenant.ID
	}

	// Create a new tenant
	tenant = Tenant{
		ID:           uuid.NewString(),
		Slug:         slug,
		Status:       "ACTIVE",
		BusinessName: name,
		Email:        email,
		IsOpen:       true,
	}

	if err := db.Create(&tenant).Error; err != nil {
		log.Printf("Failed to create tenant: %v", err)
		return ""
	}

	fmt.Printf("Created new tenant: %s (ID: %s)\n", tenant.Slug, tenant.ID)
	return tenant.ID
}
