package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/smartexpense/expense-tracker/internal"
	"github.com/smartexpense/expense-tracker/internal/category"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with the default category catalog and a handful of sample expenses for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := openSeedDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to open db: %v", err)
		}
		defer db.Close()

		if clearData {
			if _, err := db.Exec("DELETE FROM expenses"); err != nil {
				log.Fatalf("failed to clear expenses: %v", err)
			}
			if _, err := db.Exec("DELETE FROM categories"); err != nil {
				log.Fatalf("failed to clear categories: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		seedCategories(db)
		seedExpenses(db)
	},
}

func openSeedDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	driver := "sqlite3"
	if cfg.Driver == internal.DriverPostgres {
		driver = "pgx"
	}
	return sqlx.Connect(driver, cfg.Source)
}

func seedCategories(db *sqlx.DB) {
	descriptions := map[string]string{
		"Food":   "Meals, groceries and snacks",
		"Travel": "Transport, fuel and trips",
		"Staff":  "Household and staff payments",
		"Other":  "Everything else",
	}

	for _, name := range category.DefaultCategories {
		var exists int
		row := db.QueryRow(db.Rebind("SELECT 1 FROM categories WHERE name = ?"), name)
		if err := row.Scan(&exists); err == nil {
			continue
		}

		now := time.Now()
		query := db.Rebind("INSERT INTO categories (name, description, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?)")
		if _, err := db.Exec(query, name, descriptions[name], true, now, now); err != nil {
			log.Fatalf("failed to insert category %s: %v", name, err)
		}
		fmt.Printf("Seeded category: %s\n", name)
	}

	fmt.Println("Categories seeded successfully")
}

func seedExpenses(db *sqlx.DB) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&count); err != nil {
		log.Fatalf("failed to count expenses: %v", err)
	}
	if count > 0 {
		fmt.Println("Expenses already present; skipping sample data")
		return
	}

	now := time.Now()
	samples := []struct {
		Amount      float64
		Description string
		Category    string
		Notes       string
		Date        time.Time
	}{
		{450, "Team lunch", "Food", "", now.AddDate(0, 0, -1)},
		{120, "Coffee beans", "Food", "office stock", now.AddDate(0, 0, -2)},
		{350, "Taxi to airport", "Travel", "", now.AddDate(0, 0, -3)},
		{80, "Stationery", "Other", "", now.AddDate(0, 0, -5)},
	}

	query := db.Rebind("INSERT INTO expenses (amount, description, category, notes, date, created_at) VALUES (?, ?, ?, ?, ?, ?)")
	for _, s := range samples {
		if _, err := db.Exec(query, s.Amount, s.Description, s.Category, s.Notes, s.Date, now); err != nil {
			log.Fatalf("failed to insert sample expense %q: %v", s.Description, err)
		}
	}

	fmt.Printf("Seeded %d sample expenses\n", len(samples))
}
