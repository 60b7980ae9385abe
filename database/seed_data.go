package database

import (
	"fmt"
	"strings"
)

const (
	DefaultSuperadminEmail    = "owner@restaurantai.com"
	DefaultSuperadminPassword = "superadmin2025"
)

// Seed holds the demonstration rows written at startup. Passwords are plaintext here
// and are hashed before anything touches the store.
type Seed struct {
	Superadmin  AccountSeed      `mapstructure:"superadmin"`
	Restaurants []RestaurantSeed `mapstructure:"restaurants"`
}

type AccountSeed struct {
	FullName     string `mapstructure:"full_name"`
	Email        string `mapstructure:"email"`
	MobileNumber string `mapstructure:"mobile_number"`
	Password     string `mapstructure:"password"`
}

// RestaurantSeed is keyed by LoginID. Its position in Seed.Restaurants decides its id.
type RestaurantSeed struct {
	LoginID     string         `mapstructure:"login_id"`
	Password    string         `mapstructure:"password"`
	Name        string         `mapstructure:"name"`
	Cuisine     string         `mapstructure:"cuisine"`
	Rating      float64        `mapstructure:"rating"`
	Image       string         `mapstructure:"image"`
	Address     string         `mapstructure:"address"`
	Phone       string         `mapstructure:"phone"`
	Description string         `mapstructure:"description"`
	Menu        []FoodItemSeed `mapstructure:"menu"`
}

type FoodItemSeed struct {
	Name        string  `mapstructure:"name"`
	Category    string  `mapstructure:"category"`
	Price       float64 `mapstructure:"price"`
	Description string  `mapstructure:"description"`
	Image       string  `mapstructure:"image"`
	Dietary     string  `mapstructure:"dietary"`
	ChefSpecial bool    `mapstructure:"chef_special"`
}

// FoodItemCount is the number of menu rows the seed describes.
func (s Seed) FoodItemCount() int {
	n := 0
	for _, r := range s.Restaurants {
		n += len(r.Menu)
	}
	return n
}

// Validate rejects seeds that could not be written idempotently.
func (s Seed) Validate() error {
	if strings.TrimSpace(s.Superadmin.Email) == "" {
		return fmt.Errorf("%w: superadmin email is empty", ErrInvalidSeed)
	}
	if s.Superadmin.Password == "" {
		return fmt.Errorf("%w: superadmin password is empty", ErrInvalidSeed)
	}
	if strings.TrimSpace(s.Superadmin.FullName) == "" {
		return fmt.Errorf("%w: superadmin name is empty", ErrInvalidSeed)
	}

	logins := make(map[string]bool, len(s.Restaurants))
	for i, r := range s.Restaurants {
		if strings.TrimSpace(r.LoginID) == "" {
			return fmt.Errorf("%w: restaurant #%d has no login id", ErrInvalidSeed, i+1)
		}
		if logins[r.LoginID] {
			return fmt.Errorf("%w: duplicate restaurant login id %s", ErrInvalidSeed, r.LoginID)
		}
		logins[r.LoginID] = true

		if r.Password == "" {
			return fmt.Errorf("%w: restaurant %s has no password", ErrInvalidSeed, r.LoginID)
		}
		if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Cuisine) == "" {
			return fmt.Errorf("%w: restaurant %s needs a name and a cuisine", ErrInvalidSeed, r.LoginID)
		}

		names := make(map[string]bool, len(r.Menu))
		for _, item := range r.Menu {
			if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Category) == "" {
				return fmt.Errorf("%w: menu item of %s needs a name and a category", ErrInvalidSeed, r.LoginID)
			}
			if item.Price < 0 {
				return fmt.Errorf("%w: %s has a negative price", ErrInvalidSeed, item.Name)
			}
			if names[item.Name] {
				return fmt.Errorf("%w: %s is listed twice for %s", ErrInvalidSeed, item.Name, r.LoginID)
			}
			names[item.Name] = true
		}
	}
	return nil
}

// DefaultSeed returns the built-in demonstration data.
func DefaultSeed() Seed {
	return Seed{
		Superadmin: AccountSeed{
			FullName:     "Platform Owner",
			Email:        DefaultSuperadminEmail,
			MobileNumber: "+1234567890",
			Password:     DefaultSuperadminPassword,
		},
		Restaurants: []RestaurantSeed{
			{
				LoginID:     "GS001",
				Password:    "admin123",
				Name:        "The Golden Spoon",
				Cuisine:     "Fine Dining",
				Rating:      4.8,
				Image:       "https://images.pexels.com/photos/262978/pexels-photo-262978.jpeg",
				Address:     "123 Gourmet Street, Downtown",
				Phone:       "+1 (555) 123-4567",
				Description: "Exquisite fine dining experience with contemporary cuisine",
				Menu: []FoodItemSeed{
					{Name: "Wagyu Beef Tenderloin", Category: "Mains", Price: 89.99, Description: "Premium wagyu beef with truffle sauce and seasonal vegetables", Image: "https://images.pexels.com/photos/361184/asparagus-steak-veal-steak-veal-361184.jpeg", Dietary: "gluten-free", ChefSpecial: true},
					{Name: "Pan-Seared Salmon", Category: "Mains", Price: 32.99, Description: "Fresh Atlantic salmon with lemon herb butter and quinoa", Image: "https://images.pexels.com/photos/262959/pexels-photo-262959.jpeg", Dietary: "gluten-free,healthy"},
					{Name: "Truffle Arancini", Category: "Starters", Price: 18.99, Description: "Crispy risotto balls with black truffle and parmesan", Image: "https://images.pexels.com/photos/4518843/pexels-photo-4518843.jpeg", Dietary: "vegetarian"},
					{Name: "Lobster Thermidor", Category: "Mains", Price: 65.99, Description: "Fresh lobster with creamy cognac sauce and herbs", Image: "https://images.pexels.com/photos/725991/pexels-photo-725991.jpeg", Dietary: "gluten-free"},
					{Name: "Chocolate Soufflé", Category: "Desserts", Price: 16.99, Description: "Warm chocolate soufflé with vanilla ice cream", Image: "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg", Dietary: "vegetarian"},
				},
			},
			{
				LoginID:     "SS002",
				Password:    "admin456",
				Name:        "Sakura Sushi",
				Cuisine:     "Japanese",
				Rating:      4.6,
				Image:       "https://images.pexels.com/photos/357756/pexels-photo-357756.jpeg",
				Address:     "456 Zen Garden Ave, Midtown",
				Phone:       "+1 (555) 234-5678",
				Description: "Authentic Japanese cuisine with fresh sushi and sashimi",
				Menu: []FoodItemSeed{
					{Name: "Sashimi Platter", Category: "Sashimi", Price: 45.99, Description: "Fresh selection of tuna, salmon, and yellowtail", Image: "https://images.pexels.com/photos/357756/pexels-photo-357756.jpeg", Dietary: "gluten-free,healthy"},
					{Name: "Dragon Roll", Category: "Sushi", Price: 18.99, Description: "Eel and cucumber topped with avocado and eel sauce", Image: "https://images.pexels.com/photos/2098085/pexels-photo-2098085.jpeg"},
					{Name: "Miso Soup", Category: "Starters", Price: 6.99, Description: "Traditional soybean paste soup with tofu and seaweed", Image: "https://images.pexels.com/photos/5409751/pexels-photo-5409751.jpeg", Dietary: "vegetarian,healthy"},
				},
			},
			{
				LoginID:     "MI003",
				Password:    "admin789",
				Name:        "Mama's Italian",
				Cuisine:     "Italian",
				Rating:      4.7,
				Image:       "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg",
				Address:     "789 Pasta Lane, Little Italy",
				Phone:       "+1 (555) 345-6789",
				Description: "Traditional Italian flavors in a cozy family atmosphere",
				Menu: []FoodItemSeed{
					{Name: "Margherita Pizza", Category: "Pizza", Price: 22.99, Description: "Fresh mozzarella, tomato sauce, and basil", Image: "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg", Dietary: "vegetarian"},
					{Name: "Fettuccine Alfredo", Category: "Pasta", Price: 19.99, Description: "Creamy parmesan sauce with fresh fettuccine", Image: "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg", Dietary: "vegetarian"},
					{Name: "Tiramisu", Category: "Desserts", Price: 12.99, Description: "Classic Italian dessert with coffee and mascarpone", Image: "https://images.pexels.com/photos/6880219/pexels-photo-6880219.jpeg", Dietary: "vegetarian"},
				},
			},
		},
	}
}
