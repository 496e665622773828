package models

import "time"

type User struct {
	ID             int       `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	Name           string    `json:"name"`
	RestaurantName string    `json:"restaurant_name"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}
