package user

import (
	"errors"
	"testing"
	"time"

	"farmhub/models"
	"farmhub/utils"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *memUserRepo) Create(user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) UpdateFields(id string, fields bson.M) error {
	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for key, value := range fields {
		switch key {
		case "name":
			user.Name = value.(string)
		case "email":
			user.Email = value.(string)
		case "phone":
			user.Phone = value.(string)
		case "address":
			user.Address = value.(string)
		case "location":
			loc := value.(models.GeoPoint)
			user.Location = &loc
		case "passwordHash":
			user.PasswordHash = value.(string)
		case "tokenHash":
			user.TokenHash = value.(string)
		case "resetPasswordToken":
			user.ResetPasswordToken = value.(string)
		case "resetPasswordExpire":
			user.ResetPasswordExpire = value.(time.Time)
		case "reviews":
			user.Reviews = value.([]models.UserReview)
		case "rating":
			user.Rating = value.(float64)
		case "numOfReviews":
			user.NumOfReviews = value.(int)
		}
	}
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return r.GetByID(id)
}

func (r *memUserRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.User, error) {
	return r.GetByEmail(email)
}

func (r *memUserRepo) SearchByRoleNear(role string, point models.GeoPoint, maxDistance int) ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		if user.Role == role {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *memUserRepo) GetByResetToken(tokenHash string) (*models.User, error) {
	for _, user := range r.users {
		if user.ResetPasswordToken == tokenHash && user.ResetPasswordExpire.After(time.Now()) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) SetRating(id string, ratingValue float64, numOfReviews int) error {
	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.Rating = ratingValue
	user.NumOfReviews = numOfReviews
	return nil
}

func newTestUserService() (*DefaultUserService, *memUserRepo) {
	repo := newMemUserRepo()
	return &DefaultUserService{Repo: repo}, repo
}

func statusOf(err error) int {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}

func registration(email string) models.UserRegistrationRequest {
	return models.UserRegistrationRequest{
		Name:     "Amina",
		Email:    email,
		Password: "secret123",
		Phone:    "0700000000",
		Address:  "Nakuru",
	}
}

func TestRegister(t *testing.T) {
	t.Run("DefaultsToFarmer", func(t *testing.T) {
		svc, repo := newTestUserService()

		usr, token, err := svc.Register(registration("amina@example.com"))
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, models.RoleFarmer, usr.Role)
		assert.Empty(t, usr.PasswordHash)

		stored, err := repo.GetByID(usr.ID)
		assert.NoError(t, err)
		assert.NotEmpty(t, stored.PasswordHash)
		assert.NotEmpty(t, stored.TokenHash)
	})

	t.Run("OmittedCoordinatesLeaveLocationUnset", func(t *testing.T) {
		svc, repo := newTestUserService()

		usr, _, err := svc.Register(registration("amina@example.com"))
		assert.NoError(t, err)

		stored, err := repo.GetByID(usr.ID)
		assert.NoError(t, err)
		assert.Nil(t, stored.Location)
	})

	t.Run("SuppliedCoordinatesStored", func(t *testing.T) {
		svc, repo := newTestUserService()

		req := registration("amina@example.com")
		req.Longitude = 36.8
		req.Latitude = -1.29
		usr, _, err := svc.Register(req)
		assert.NoError(t, err)

		stored, err := repo.GetByID(usr.ID)
		assert.NoError(t, err)
		assert.NotNil(t, stored.Location)
		assert.Equal(t, []float64{36.8, -1.29}, stored.Location.Coordinates)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		svc, _ := newTestUserService()

		req := registration("amina@example.com")
		req.Role = "wizard"
		_, _, err := svc.Register(req)
		assert.Equal(t, 400, statusOf(err))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc, _ := newTestUserService()

		_, _, err := svc.Register(registration("amina@example.com"))
		assert.NoError(t, err)

		_, _, err = svc.Register(registration("amina@example.com"))
		assert.Equal(t, 409, statusOf(err))
	})
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestUserService()
	_, _, err := svc.Register(registration("amina@example.com"))
	assert.NoError(t, err)

	t.Run("ValidCredentials", func(t *testing.T) {
		usr, token, err := svc.Authenticate("amina@example.com", "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Empty(t, usr.PasswordHash)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := svc.Authenticate("amina@example.com", "nope")
		assert.Equal(t, 401, statusOf(err))
		assert.EqualError(t, err, "Invalid email or password")
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, _, err := svc.Authenticate("ghost@example.com", "secret123")
		assert.Equal(t, 401, statusOf(err))
		assert.EqualError(t, err, "Invalid email or password")
	})
}

func TestResetPassword(t *testing.T) {
	t.Run("ShortPassword", func(t *testing.T) {
		svc, _ := newTestUserService()
		err := svc.ResetPassword("whatever", "abc")
		assert.Equal(t, 400, statusOf(err))
	})

	t.Run("InvalidToken", func(t *testing.T) {
		svc, _ := newTestUserService()
		err := svc.ResetPassword("not-a-token", "newsecret")
		assert.Equal(t, 400, statusOf(err))
	})

	t.Run("ValidToken", func(t *testing.T) {
		svc, repo := newTestUserService()
		usr, _, err := svc.Register(registration("amina@example.com"))
		assert.NoError(t, err)

		token := "a-reset-token"
		repo.UpdateFields(usr.ID, bson.M{
			"resetPasswordToken":  utils.HashToken(token),
			"resetPasswordExpire": time.Now().Add(10 * time.Minute),
		})

		assert.NoError(t, svc.ResetPassword(token, "newsecret"))

		stored, _ := repo.GetByID(usr.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newsecret")))
		assert.Empty(t, stored.ResetPasswordToken)
		assert.Empty(t, stored.TokenHash)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		svc, repo := newTestUserService()
		usr, _, err := svc.Register(registration("amina@example.com"))
		assert.NoError(t, err)

		token := "a-reset-token"
		repo.UpdateFields(usr.ID, bson.M{
			"resetPasswordToken":  utils.HashToken(token),
			"resetPasswordExpire": time.Now().Add(-time.Minute),
		})

		err = svc.ResetPassword(token, "newsecret")
		assert.Equal(t, 400, statusOf(err))
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("PartialUpdate", func(t *testing.T) {
		svc, _ := newTestUserService()
		usr, _, _ := svc.Register(registration("amina@example.com"))

		updated, err := svc.UpdateProfile(usr.ID, models.UserUpdateRequest{Phone: "0711111111"})
		assert.NoError(t, err)
		assert.Equal(t, "0711111111", updated.Phone)
		assert.Equal(t, "Amina", updated.Name)
	})

	t.Run("NoFields", func(t *testing.T) {
		svc, _ := newTestUserService()
		usr, _, _ := svc.Register(registration("amina@example.com"))

		_, err := svc.UpdateProfile(usr.ID, models.UserUpdateRequest{})
		assert.Equal(t, 400, statusOf(err))
	})

	t.Run("MalformedLocation", func(t *testing.T) {
		svc, _ := newTestUserService()
		usr, _, _ := svc.Register(registration("amina@example.com"))

		_, err := svc.UpdateProfile(usr.ID, models.UserUpdateRequest{
			Location: &models.GeoPoint{Type: "Point", Coordinates: []float64{36.8}},
		})
		assert.Equal(t, 400, statusOf(err))
	})

	t.Run("AvatarWithoutStorage", func(t *testing.T) {
		svc, _ := newTestUserService()
		usr, _, _ := svc.Register(registration("amina@example.com"))

		_, err := svc.UpdateProfile(usr.ID, models.UserUpdateRequest{Avatar: "data:image/png;base64,xxx"})
		assert.Equal(t, 400, statusOf(err))
	})
}

func TestSearch(t *testing.T) {
	svc, repo := newTestUserService()
	repo.Create(&models.User{ID: "vet-1", Role: models.RoleVeterinarian})
	repo.Create(&models.User{ID: "farmer-1", Role: models.RoleFarmer})

	t.Run("InvalidRole", func(t *testing.T) {
		_, err := svc.Search("wizard", 36.8, -1.3, 5000)
		assert.Equal(t, 400, statusOf(err))
	})

	t.Run("ByRole", func(t *testing.T) {
		found, err := svc.Search(models.RoleVeterinarian, 36.8, -1.3, 5000)
		assert.NoError(t, err)
		assert.Len(t, found, 1)
		assert.Equal(t, "vet-1", found[0].ID)
	})
}

func TestRate(t *testing.T) {
	t.Run("OutOfRange", func(t *testing.T) {
		svc, _ := newTestUserService()
		assert.Equal(t, 400, statusOf(svc.Rate("rater", "target", 0, "")))
		assert.Equal(t, 400, statusOf(svc.Rate("rater", "target", 6, "")))
	})

	t.Run("SelfRating", func(t *testing.T) {
		svc, _ := newTestUserService()
		err := svc.Rate("user-1", "user-1", 5, "")
		assert.Equal(t, 400, statusOf(err))
	})

	t.Run("UnknownTarget", func(t *testing.T) {
		svc, _ := newTestUserService()
		err := svc.Rate("rater", "missing", 4, "")
		assert.Equal(t, 404, statusOf(err))
	})

	t.Run("AppendsAndRecomputes", func(t *testing.T) {
		svc, repo := newTestUserService()
		repo.Create(&models.User{ID: "target-1", Name: "Joseph"})

		assert.NoError(t, svc.Rate("rater-1", "target-1", 5, "Reliable"))
		assert.NoError(t, svc.Rate("rater-2", "target-1", 3, ""))

		target, _ := repo.GetByID("target-1")
		assert.Len(t, target.Reviews, 2)
		assert.Equal(t, 2, target.NumOfReviews)
		assert.InDelta(t, 4.0, target.Rating, 1e-9)
		assert.Equal(t, "Reliable", target.Reviews[0].Comment)
	})
}
