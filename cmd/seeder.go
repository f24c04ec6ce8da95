package cmd

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			for _, table := range []string{"expense_reports", "daily_reports", "candidates", "users", "departments", "locations"} {
				if _, err := db.Exec("DELETE FROM " + table); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedUsers(db, cfg.Security.BCryptCost)
		seedDepartments(db)
		seedLocations(db)

		fmt.Println("Seeding complete")
	},
}

func seedUsers(db *sqlx.DB, bcryptCost int) {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcryptCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	users := []struct {
		Email      string
		Name       string
		Role       string
		Department string
		Location   string
	}{
		{"staff@hotelops.test", "Front Desk Staff", "staff", "Front Office", "Goa Beach Resort"},
		{"manager@hotelops.test", "Resort Manager", "manager", "Operations", "Goa Beach Resort"},
		{"hradmin@hotelops.test", "HR Admin", "admin", "Human Resources", "Head Office"},
		{"master@hotelops.test", "Master Account", "master", "Management", "Head Office"},
	}

	for _, u := range users {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM users WHERE email = $1", u.Email).Scan(&exists); err == nil {
			continue
		}

		_, err := db.Exec(
			`INSERT INTO users (email, name, password_hash, role, department, location, is_active, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, true, now(), now())`,
			u.Email, u.Name, string(hash), u.Role, u.Department, u.Location)
		if err != nil {
			log.Fatalf("failed to insert user %s: %v", u.Email, err)
		}
		fmt.Println("Seeded user:", u.Email)
	}
}

func seedDepartments(db *sqlx.DB) {
	departments := []string{
		"Front Office", "Housekeeping", "Food & Beverage", "Maintenance",
		"Human Resources", "Finance", "Operations", "Management",
	}
	for _, name := range departments {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM departments WHERE name = $1", name).Scan(&exists); err == nil {
			continue
		}
		if _, err := db.Exec(
			"INSERT INTO departments (name, is_active, created_at) VALUES ($1, true, now())", name); err != nil {
			log.Fatalf("failed to insert department %s: %v", name, err)
		}
	}
	fmt.Println("Seeded departments")
}

func seedLocations(db *sqlx.DB) {
	locations := []struct {
		Name string
		City string
	}{
		{"Goa Beach Resort", "Goa"},
		{"Kerala Backwaters Resort", "Kumarakom"},
		{"Diu - Ghogla", "Diu"},
		{"Head Office", "Mumbai"},
	}
	for _, l := range locations {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM locations WHERE name = $1", l.Name).Scan(&exists); err == nil {
			continue
		}
		if _, err := db.Exec(
			"INSERT INTO locations (name, city, is_active, created_at) VALUES ($1, $2, true, now())", l.Name, l.City); err != nil {
			log.Fatalf("failed to insert location %s: %v", l.Name, err)
		}
	}
	fmt.Println("Seeded locations")
}
