package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/Savoria-Hospitality/savoria-admin-backend/services"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates a super admin account, and optionally demo restaurant data.
// Usage: go run cmd/seed/main.go [--demo]
// This is a standalone CLI tool, not part of the main application
func main() {
	demo := flag.Bool("demo", false, "also seed demo branches, menu and transactions")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SAVORIA ADMIN - Super Admin Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	log.Println("✓ Connected to database")

	// Get input from user
	email, password, name := getAdminCredentials()

	// Check if admin already exists
	var existingAdmin models.Admin
	if err := config.Gorm.Where("email = ?", email).First(&existingAdmin).Error; err == nil {
		fmt.Printf("❌ Admin with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	// Hash password
	authService := services.GetAdminAuthService()
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	// Create super admin
	superAdmin := models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         "super_admin",
		Status:       "active",
	}

	if err := config.Gorm.Create(&superAdmin).Error; err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Super Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", superAdmin.ID)
	fmt.Printf("Email: %s\n", superAdmin.Email)
	fmt.Printf("Name:  %s\n", superAdmin.Name)
	fmt.Printf("Role:  %s\n", superAdmin.Role)
	fmt.Println()

	if *demo {
		seedDemoData()
	}

	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/login with email and password")
	fmt.Println("3. Use the returned token for authenticated requests")
	fmt.Println("4. Invite other admins using POST /api/v1/admin/invite")
	fmt.Println()
}

// seedDemoData fills an empty database with enough restaurant data to make
// the dashboard look alive: two branches, a menu, reservations and 30 days of
// payments and orders for the analytics views.
func seedDemoData() {
	fmt.Println("Seeding demo data...")

	harbour := models.Branch{
		Name:    "Savoria Harbourfront",
		Slug:    "harbourfront",
		Address: "12 Quayside Lane",
		Phone:   "+254 700 111 222",
		Email:   "harbourfront@savoria.example",
		OpeningHours: models.OpeningHours{
			"monday": "11:00-22:00", "tuesday": "11:00-22:00", "wednesday": "11:00-22:00",
			"thursday": "11:00-23:00", "friday": "11:00-23:30", "saturday": "10:00-23:30",
			"sunday": "10:00-21:00",
		},
		IsActive: true,
	}
	garden := models.Branch{
		Name:    "Savoria Garden",
		Slug:    "garden",
		Address: "48 Acacia Avenue",
		Phone:   "+254 700 333 444",
		Email:   "garden@savoria.example",
		OpeningHours: models.OpeningHours{
			"monday": "closed", "tuesday": "12:00-22:00", "wednesday": "12:00-22:00",
			"thursday": "12:00-22:00", "friday": "12:00-23:00", "saturday": "11:00-23:00",
			"sunday": "11:00-21:00",
		},
		IsActive: true,
	}
	for _, b := range []*models.Branch{&harbour, &garden} {
		if err := config.Gorm.Create(b).Error; err != nil {
			log.Fatalf("Failed to seed branch %s: %v", b.Slug, err)
		}
	}
	log.Println("✓ Branches seeded")

	type seedItem struct {
		name        string
		description string
		price       float64
		tags        []string
		featured    bool
	}
	menu := []struct {
		category string
		items    []seedItem
	}{
		{"Starters", []seedItem{
			{"Charred Octopus", "Octopus with smoked paprika and lemon aioli", 9.50, []string{"gluten-free"}, false},
			{"Garden Bruschetta", "Heritage tomatoes, basil, aged balsamic", 6.00, []string{"vegetarian"}, false},
		}},
		{"Mains", []seedItem{
			{"Coconut Fish Curry", "Catch of the day in coconut and tamarind", 14.00, []string{"gluten-free"}, true},
			{"Grilled Lamb Chops", "With rosemary jus and crushed potatoes", 18.50, nil, true},
			{"Wild Mushroom Risotto", "Arborio rice, porcini, parmesan crisp", 12.00, []string{"vegetarian"}, false},
		}},
		{"Desserts", []seedItem{
			{"Passionfruit Tart", "Torched meringue, coconut shortcrust", 6.50, []string{"vegetarian"}, true},
		}},
	}

	for order, group := range menu {
		category := models.MenuCategory{
			BranchID:     harbour.ID,
			Name:         group.category,
			DisplayOrder: order,
			IsActive:     true,
		}
		if err := config.Gorm.Create(&category).Error; err != nil {
			log.Fatalf("Failed to seed category %s: %v", group.category, err)
		}
		for i, item := range group.items {
			row := models.MenuItem{
				CategoryID:   category.ID,
				Name:         item.name,
				Description:  item.description,
				Price:        item.price,
				Image:        models.MenuImage{URL: "https://placehold.co/600x400"},
				DietaryTags:  item.tags,
				IsAvailable:  true,
				IsFeatured:   item.featured,
				DisplayOrder: i,
			}
			if err := config.Gorm.Create(&row).Error; err != nil {
				log.Fatalf("Failed to seed item %s: %v", item.name, err)
			}
		}
	}
	log.Println("✓ Menu seeded")

	// 30 days of payments and orders, weighted towards success so the
	// dashboard numbers look plausible.
	rng := rand.New(rand.NewSource(42))
	statuses := []string{"success", "success", "success", "success", "failed", "pending"}
	providers := []string{"mpesa", "mpesa", "card", "cash"}
	customers := []struct{ name, phone string }{
		{"Amina Hassan", "+254 711 000 001"},
		{"Brian Otieno", "+254 711 000 002"},
		{"Cynthia Wanjiru", "+254 711 000 003"},
		{"David Kiprop", "+254 711 000 004"},
		{"", "+254 711 000 005"}, // walk-in with no name on file
	}
	now := time.Now()
	for day := 0; day < 30; day++ {
		perDay := 3 + rng.Intn(5)
		for n := 0; n < perDay; n++ {
			createdAt := now.AddDate(0, 0, -day).Add(-time.Duration(rng.Intn(12)) * time.Hour)
			customer := customers[rng.Intn(len(customers))]
			status := statuses[rng.Intn(len(statuses))]
			items := models.CustomerOrderItemsList{
				{Name: "Coconut Fish Curry", Price: 14.00, Quantity: 1 + rng.Intn(2)},
				{Name: "Passionfruit Tart", Price: 6.50, Quantity: rng.Intn(2)},
			}
			total := 0.0
			for _, it := range items {
				total += it.Price * float64(it.Quantity)
			}

			order := models.CustomerOrder{
				BranchID:      &harbour.ID,
				UserID:        customer.phone,
				Phone:         customer.phone,
				Name:          customer.name,
				Status:        status,
				PaymentMethod: providers[rng.Intn(len(providers))],
				Total:         total,
				Items:         items,
				CreatedAt:     createdAt,
			}
			if err := config.Gorm.Create(&order).Error; err != nil {
				log.Fatalf("Failed to seed order: %v", err)
			}

			payment := models.Payment{
				OrderID:   &order.ID,
				Amount:    total,
				Status:    status,
				Provider:  order.PaymentMethod,
				Reference: fmt.Sprintf("SAV-%d-%04d", day, n),
				CreatedAt: createdAt,
			}
			if err := config.Gorm.Create(&payment).Error; err != nil {
				log.Fatalf("Failed to seed payment: %v", err)
			}
		}
	}
	log.Println("✓ 30 days of payments and orders seeded")

	// A few reservations in each state
	specialRequest := "Window table please"
	reservations := []models.Reservation{
		{BranchID: harbour.ID, CustomerName: "Amina Hassan", CustomerEmail: "amina@example.com", CustomerPhone: "+254 711 000 001", PartySize: 2, ReservedFor: now.Add(24 * time.Hour), Status: "pending", SpecialRequest: &specialRequest},
		{BranchID: harbour.ID, CustomerName: "Brian Otieno", CustomerPhone: "+254 711 000 002", PartySize: 4, ReservedFor: now.Add(48 * time.Hour), Status: "confirmed"},
		{BranchID: garden.ID, CustomerName: "Cynthia Wanjiru", CustomerPhone: "+254 711 000 003", PartySize: 6, ReservedFor: now.Add(-72 * time.Hour), Status: "completed"},
	}
	for i := range reservations {
		if err := config.Gorm.Create(&reservations[i]).Error; err != nil {
			log.Fatalf("Failed to seed reservation: %v", err)
		}
	}
	log.Println("✓ Reservations seeded")

	fmt.Println("✅ Demo data seeded")
	fmt.Println()
}

// getAdminCredentials prompts user for admin details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Super Admin Details:")
	fmt.Println()

	// Email
	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	// Name
	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	// Password
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)

		authService := services.GetAdminAuthService()
		if !authService.ValidatePassword(password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	// Confirm password
	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, name
}
