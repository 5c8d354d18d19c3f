package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonar43/portfolio-api/internal/auth"
	"github.com/jonar43/portfolio-api/internal/config"
	"github.com/jonar43/portfolio-api/internal/database"
	"github.com/jonar43/portfolio-api/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the admin account and the initial portfolio content. The API never
// creates users itself; this command is the only way credentials come into
// existence.
func main() {
	godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seedAdminUser(db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if err := seedProjects(db); err != nil {
		log.Fatalf("Failed to seed projects: %v", err)
	}

	if err := seedAbout(db); err != nil {
		log.Fatalf("Failed to seed about section: %v", err)
	}

	if err := seedContact(db); err != nil {
		log.Fatalf("Failed to seed contact info: %v", err)
	}

	if err := seedSettings(db); err != nil {
		log.Fatalf("Failed to seed site settings: %v", err)
	}

	log.Println("Seeding complete")
}

func seedAdminUser(db *gorm.DB) error {
	email := getEnv("ADMIN_EMAIL", "admin@portfolio.com")
	name := getEnv("ADMIN_NAME", "Jonathan Reyes")
	password := getEnv("ADMIN_PASSWORD", "admin123")

	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Admin user %s already exists, skipping", email)
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	log.Printf("Created admin user %s", email)
	return nil
}

func seedProjects(db *gorm.DB) error {
	projects := []model.Project{
		{
			ID:          "SP-24",
			Title:       "JACS ShiftPilot",
			Description: "Intelligent volunteer management platform featuring a weighted matching algorithm (Location, Skills, Availability). Built with a robust repository pattern and 82% test coverage.",
			Tech:        []string{"TypeScript", "Node.js", "PostgreSQL", "Prisma"},
			Gallery: []string{
				"https://images.unsplash.com/photo-1531403009284-440f080d1e12?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1555099962-4199c345e5dd?auto=format&fit=crop&q=80&w=800",
			},
			GithubURL: "https://github.com/JonaR43/Software_Design_Group_24",
			LiveURL:   "#",
			Order:     1,
			Published: true,
		},
		{
			ID:          "SM-02",
			Title:       "ShopMauve E-Commerce",
			Description: "Full-stack e-commerce solution with Stripe integration, real-time inventory, and an analytics dashboard. Features a secure JWT-based auth system and a responsive Radix UI frontend.",
			Tech:        []string{"React", "TypeScript", "Prisma", "Stripe", "Tailwind"},
			Gallery: []string{
				"https://images.unsplash.com/photo-1472851294608-062f824d29cc?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&q=80&w=800",
			},
			GithubURL: "https://github.com",
			LiveURL:   "#",
			Order:     2,
			Published: true,
		},
		{
			ID:          "PV-VR",
			Title:       "PutterVerse",
			Description: "Immersive VR Mini Golf experience for Meta Quest. Features physics-driven gameplay, multiple themed courses (Ice Arena, Haunted Mansion), and local multiplayer.",
			Tech:        []string{"Unity", "C#", "VR/XR", "Meta Quest"},
			Gallery: []string{
				"https://images.unsplash.com/photo-1622979135225-d2ba269fb1bd?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1593508512255-86ab42a8e620?auto=format&fit=crop&q=80&w=800",
			},
			GithubURL: "https://github.com/JonaR43/PutterVerse",
			LiveURL:   "#",
			Order:     3,
			Published: true,
		},
		{
			ID:          "BG-PY",
			Title:       "Barcode Generator",
			Description: "Desktop automation tool for bulk generating Avery-compatible barcode labels from CSV data. Built with Tkinter for a native drag-and-drop UI and ReportLab for precise PDF rendering.",
			Tech:        []string{"Python", "Tkinter", "Pandas", "ReportLab"},
			Gallery: []string{
				"https://images.unsplash.com/photo-1586864387967-d02ef85d93e8?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1616400619175-5beda3a17896?auto=format&fit=crop&q=80&w=800",
			},
			GithubURL: "https://github.com/JonaR43/Barcode",
			LiveURL:   "#",
			Order:     4,
			Published: true,
		},
		{
			ID:          "CL-FS",
			Title:       "Contact List Manager",
			Description: "Full-stack CRUD application for managing personal contacts. Features a Flask (Python) REST API backend and a responsive React (Vite) frontend with real-time updates.",
			Tech:        []string{"React", "Flask", "Python", "SQLAlchemy"},
			Gallery: []string{
				"https://images.unsplash.com/photo-1512428559087-560fa5ce7d02?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1555421689-d68471e189f2?auto=format&fit=crop&q=80&w=800",
			},
			GithubURL: "https://github.com/JonaR43/Contact-List",
			LiveURL:   "#",
			Order:     5,
			Published: true,
		},
	}

	for _, project := range projects {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&project).Error
		if err != nil {
			return err
		}
	}

	log.Printf("Seeded %d projects", len(projects))
	return nil
}

func seedAbout(db *gorm.DB) error {
	stats, err := json.Marshal(map[string]string{
		"role":        "Developer",
		"focus":       "Full Stack",
		"focusSub":    "Web & XR",
		"location":    "Houston",
		"locationSub": "Texas",
		"status":      "Open",
		"statusSub":   "To Work",
	})
	if err != nil {
		return err
	}

	education, err := json.Marshal([]map[string]string{
		{"degree": "B.S. Computer Science", "school": "University of Houston", "year": "2025"},
		{"degree": "B.S. Psychology", "school": "University of Houston", "year": "2022"},
	})
	if err != nil {
		return err
	}

	about := model.AboutSection{
		ID:        model.SingletonID,
		Name:      "Jonathan Reyes",
		Tagline:   "Full Stack Engineer & VR Developer. Creating immersive digital experiences.",
		Objective: "Merging technical expertise in CS with psychological insights to build user-centric, scalable applications and immersive VR environments.",
		Arsenal:   []string{"React", "TypeScript", "Node.js", "Python", "C# / Unity", "PostgreSQL", "AWS", "Docker"},
		Stats:     datatypes.JSON(stats),
		Education: datatypes.JSON(education),
		Clearance: "UH-25",
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&about).Error
	if err != nil {
		return err
	}

	log.Println("Seeded about section")
	return nil
}

func seedContact(db *gorm.DB) error {
	contact := model.ContactInfo{
		ID:       model.SingletonID,
		Email:    "jonathan@example.com",
		Github:   "https://github.com/JonaR43",
		Linkedin: "https://linkedin.com/in/jonathan-reyes",
		Resume:   "#",
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&contact).Error
	if err != nil {
		return err
	}

	log.Println("Seeded contact info")
	return nil
}

func seedSettings(db *gorm.DB) error {
	settings := model.SiteSettings{
		ID:              model.SingletonID,
		BackgroundColor: "#121212",
		AccentColor:     "#E07A5F",
		TextColor:       "#F4F1DE",
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&settings).Error
	if err != nil {
		return err
	}

	log.Println("Seeded site settings")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
