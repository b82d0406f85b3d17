package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Menu categories as they appear in the catalog.
const (
	CategoryPizza    = "Pizza"
	CategoryBurger   = "Burger"
	CategoryPasta    = "Pasta"
	CategorySalad    = "Salad"
	CategoryMexican  = "Mexican"
	CategoryAsian    = "Asian"
	CategoryDesserts = "Desserts"
)

// MenuItem represents one orderable item from the menu catalog.
// The catalog is read-only: items are loaded once at startup and never mutated.
type MenuItem struct {
	ID          int             `json:"id" gorm:"primaryKey" validate:"required,gt=0"`
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric" validate:"required"`
	Category    string          `json:"category" validate:"required,oneof=Pizza Burger Pasta Salad Mexican Asian Desserts"`
	Rating      float32         `json:"rating" validate:"gte=0,lte=5"`
	PrepMinutes int             `json:"prep_minutes" validate:"gt=0"`
	Popular     bool            `json:"popular"`
	Vegetarian  bool            `json:"vegetarian"`
	Spicy       bool            `json:"spicy"`
	gorm.Model  `json:"-"` // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// DefaultMenu returns the standard ten-item menu used to seed the catalog.
func DefaultMenu() []MenuItem {
	price := decimal.RequireFromString
	return []MenuItem{
		{ID: 1, Name: "Margherita Pizza", Description: "Fresh tomatoes, mozzarella, basil, olive oil", Price: price("12.99"), Category: CategoryPizza, Rating: 4.5, PrepMinutes: 20, Popular: true, Vegetarian: true},
		{ID: 2, Name: "Pepperoni Pizza", Description: "Pepperoni, mozzarella, tomato sauce", Price: price("14.99"), Category: CategoryPizza, Rating: 4.7, PrepMinutes: 20, Popular: true},
		{ID: 3, Name: "Classic Burger", Description: "Beef patty, lettuce, tomato, onion, pickle", Price: price("9.99"), Category: CategoryBurger, Rating: 4.3, PrepMinutes: 15, Popular: true},
		{ID: 4, Name: "Chicken Burger", Description: "Grilled chicken, lettuce, mayo, tomato", Price: price("10.99"), Category: CategoryBurger, Rating: 4.4, PrepMinutes: 18},
		{ID: 5, Name: "Pasta Carbonara", Description: "Creamy pasta with bacon, egg, parmesan", Price: price("11.99"), Category: CategoryPasta, Rating: 4.6, PrepMinutes: 20, Popular: true},
		{ID: 6, Name: "Penne Arrabbiata", Description: "Spicy tomato sauce with garlic and chili", Price: price("10.99"), Category: CategoryPasta, Rating: 4.2, PrepMinutes: 15, Popular: true, Vegetarian: true},
		{ID: 7, Name: "Caesar Salad", Description: "Romaine lettuce, croutons, parmesan, caesar dressing", Price: price("8.99"), Category: CategorySalad, Rating: 4.1, PrepMinutes: 8, Vegetarian: true},
		{ID: 8, Name: "Greek Salad", Description: "Tomatoes, cucumber, olives, feta cheese", Price: price("9.99"), Category: CategorySalad, Rating: 4.3, PrepMinutes: 8, Vegetarian: true},
		{ID: 9, Name: "BBQ Pizza", Description: "BBQ sauce, chicken, red onion, cilantro", Price: price("15.99"), Category: CategoryPizza, Rating: 4.5, PrepMinutes: 22},
		{ID: 10, Name: "Veggie Burger", Description: "Plant-based patty, avocado, sprouts", Price: price("11.99"), Category: CategoryBurger, Rating: 4.0, PrepMinutes: 15, Vegetarian: true},
	}
}
