package catalog

import (
	"time"

	"giftie/internal/domain/entity"
	"giftie/internal/domain/service"
	"giftie/internal/errors"
)

// Demo account credentials, published in the storefront README for trying
// the API without registering.
var demoCredentials = []struct {
	id       string
	email    string
	name     string
	phone    string
	address  string
	avatar   string
	password string
	created  time.Time
}{
	{
		id:       "1",
		email:    "admin@giftie.vn",
		name:     "Admin User",
		phone:    "0123456789",
		address:  "Hà Nội, Việt Nam",
		avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		password: "admin123",
		created:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		id:       "2",
		email:    "user@giftie.vn",
		name:     "Nguyễn Văn A",
		phone:    "0987654321",
		address:  "TP. Hồ Chí Minh, Việt Nam",
		avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		password: "user123",
		created:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		id:       "3",
		email:    "customer@giftie.vn",
		name:     "Trần Thị B",
		phone:    "0369852147",
		address:  "Đà Nẵng, Việt Nam",
		avatar:   "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		password: "customer123",
		created:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	},
}

// SeedUsers builds the demo accounts with their passwords hashed by the
// configured hasher. Plaintext never reaches storage.
func SeedUsers(hasher service.PasswordHasher) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(demoCredentials))
	for _, cred := range demoCredentials {
		hash, err := hasher.Hash(cred.password)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hash seed password for %s", cred.email)
		}

		users = append(users, &entity.User{
			ID:           cred.id,
			Email:        cred.email,
			Name:         cred.name,
			Phone:        cred.phone,
			Address:      cred.address,
			Avatar:       cred.avatar,
			PasswordHash: hash,
			CreatedAt:    cred.created,
			UpdatedAt:    cred.created,
		})
	}

	return users, nil
}
