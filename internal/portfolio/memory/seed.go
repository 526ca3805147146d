package memory

import "github.com/emmzy1212/portfolio-backend/internal/portfolio/domain"

// Seed inserts the demo projects through the normal create path, so they
// consume surrogate keys 1..6 like any other record.
func (s *Store) Seed() {
	samples := []domain.ProjectInput{
		{
			Title:       "Ares K Solution",
			Description: "Professional Business Website",
			Category:    domain.CategoryWebsite,
			ImageURL:    "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?auto=format&fit=crop&w=1400&q=80",
			ProjectURL:  "https://emmzy1212.github.io/Areskesolution/",
		},
		{
			Title:       "Iyaj Collection",
			Description: "Fashion E-commerce Platform",
			Category:    domain.CategoryEcommerce,
			ImageURL:    "https://images.unsplash.com/photo-1601924994987-69e26d50dc26?auto=format&fit=crop&w=1400&q=80",
			ProjectURL:  "https://emmzy1212.github.io/iyajcollection/",
		},
		{
			Title:       "Rio Luxury",
			Description: "Premium Luxury Brand Website",
			Category:    domain.CategoryEcommerce,
			ImageURL:    "https://images.unsplash.com/photo-1489987707025-afc232f7ea0f?auto=format&fit=crop&w=1400&q=80",
			ProjectURL:  "https://rioluxury.vercel.app/",
		},
		{
			Title:       "Itz Ready Foods",
			Description: "Restaurant & Food Delivery Platform",
			Category:    domain.CategoryEcommerce,
			ImageURL:    "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=1400&q=80",
			ProjectURL:  "https://emmzy1212.github.io/itzreadyfoods/",
		},
		{
			Title:       "Jola Essential",
			Description: "Essential Products E-commerce",
			Category:    domain.CategoryEcommerce,
			ImageURL:    "https://images.unsplash.com/photo-1546868871-7041f2a55e12?auto=format&fit=crop&w=1400&q=80",
			ProjectURL:  "https://emmzy1212.github.io/jolaessential/",
		},
		{
			Title:       "Artwork Gallery",
			Description: "Digital Art Showcase Platform",
			Category:    domain.CategoryWebsite,
			ImageURL:    "https://images.unsplash.com/photo-1518998053901-5348d3961a04?auto=format&fit=crop&w=1400&q=80",
			ProjectURL:  "https://emmzy1212.github.io/artwork/",
		},
	}

	for _, in := range samples {
		s.CreateProject(in)
	}
}
