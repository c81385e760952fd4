package store

import "mspro-labs/lunch-picker/internal/models"

// Seed returns a fresh copy of the built-in catalog used when no valid file exists.
func Seed() []models.Restaurant {
	return []models.Restaurant{
		seed("순대국밥", models.Korean, 9000, true, true),
		seed("짜장면", models.Chinese, 7000, false, false),
		seed("돈까스", models.Japanese, 11000, false, false),
		seed("파스타", models.Western, 14000, false, true),
		seed("매운 짬뽕", models.Chinese, 10000, true, true),
		seed("비빔밥", models.Korean, 8500, false, false),
		seed("라면", models.Other, 5000, true, true),
	}
}

func seed(name, category string, price int, spicy, soup bool) models.Restaurant {
	return models.Restaurant{
		Name:     name,
		Category: category,
		Price:    price,
		IsSpicy:  models.Flag(spicy),
		HasSoup:  models.Flag(soup),
	}
}
