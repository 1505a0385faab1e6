// Package store holds the fixture server's in-memory data: a couple of
// demo accounts and a deterministic product catalog. The data is read-only
// after construction, so no locking is needed.
package store

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"storedash/internal/server/models"
)

// ErrNotFound is returned when a requested user does not exist.
var ErrNotFound = errors.New("not found")

// Store is the in-memory fixture dataset.
type Store struct {
	users    []models.User
	products []models.Product
}

// Page is one slice of the catalog plus the paging echo fields.
type Page struct {
	Products []models.Product
	Total    int
	Skip     int
	Limit    int
}

// New seeds the fixture accounts and catalog. Password hashes are
// computed here so no plaintext-adjacent material is embedded in the
// binary beyond the fixture definitions themselves.
func New() (*Store, error) {
	users, err := seedUsers()
	if err != nil {
		return nil, fmt.Errorf("seeding users: %w", err)
	}
	return &Store{
		users:    users,
		products: seedProducts(),
	}, nil
}

// UserByUsername looks an account up by username.
func (s *Store) UserByUsername(username string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].Username == username {
			return &s.users[i], nil
		}
	}
	return nil, ErrNotFound
}

// UserByID looks an account up by ID.
func (s *Store) UserByID(id int) (*models.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], nil
		}
	}
	return nil, ErrNotFound
}

// ProductPage returns the catalog slice [skip, skip+limit). An
// out-of-range skip yields an empty slice; Total always reflects the
// whole catalog.
func (s *Store) ProductPage(skip, limit int) Page {
	total := len(s.products)

	start := skip
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Page{
		Products: s.products[start:end],
		Total:    total,
		Skip:     skip,
		Limit:    limit,
	}
}

type fixtureUser struct {
	user     models.User
	password string
}

func seedUsers() ([]models.User, error) {
	fixtures := []fixtureUser{
		{
			user: models.User{
				ID: 1, Username: "emilys", Email: "emily.johnson@x.dummyjson.com",
				FirstName: "Emily", LastName: "Johnson", Phone: "+81 965-431-3024",
				Image: "https://dummyjson.com/icon/emilys/128", Gender: "female",
				Age: 28, BirthDate: "1996-5-30",
			},
			password: "emilyspass",
		},
		{
			user: models.User{
				ID: 2, Username: "michaelw", Email: "michael.williams@x.dummyjson.com",
				FirstName: "Michael", LastName: "Williams", Phone: "+49 258-627-6644",
				Image: "https://dummyjson.com/icon/michaelw/128", Gender: "male",
				Age: 35, BirthDate: "1989-8-10",
			},
			password: "michaelwpass",
		},
	}

	users := make([]models.User, 0, len(fixtures))
	for _, f := range fixtures {
		hash, err := bcrypt.GenerateFromPassword([]byte(f.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		f.user.PasswordHash = hash
		users = append(users, f.user)
	}
	return users, nil
}

// seedProducts generates a deterministic catalog large enough to exercise
// several pages at the client's default page size.
func seedProducts() []models.Product {
	categories := []struct {
		name  string
		brand string
	}{
		{"beauty", "Essence"},
		{"fragrances", "Chanel"},
		{"furniture", "Annibale Colombo"},
		{"groceries", "Fresh Farms"},
		{"laptops", "Apple"},
	}

	products := make([]models.Product, 0, 35)
	for i := 1; i <= 35; i++ {
		cat := categories[(i-1)%len(categories)]
		products = append(products, models.Product{
			ID:          i,
			Title:       fmt.Sprintf("%s Item %d", cat.brand, i),
			Description: fmt.Sprintf("Demo catalog product number %d in the %s category.", i, cat.name),
			Category:    cat.name,
			Price:       float64(i)*3.5 + 4.99,
			Rating:      3.0 + float64(i%20)*0.1,
			Brand:       cat.brand,
			Thumbnail:   fmt.Sprintf("https://cdn.dummyjson.com/products/images/%s/%d/thumbnail.png", cat.name, i),
			Images: []string{
				fmt.Sprintf("https://cdn.dummyjson.com/products/images/%s/%d/1.png", cat.name, i),
			},
		})
	}
	return products
}
