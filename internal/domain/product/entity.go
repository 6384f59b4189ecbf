package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxNameLength = 200

var (
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrNameTooLong      = errors.New("product name exceeds maximum length")
	ErrEmptyBrand       = errors.New("product brand cannot be empty")
	ErrInvalidGoalLikes = errors.New("goal likes must be positive")
)

// Product is a sneaker model on the re-release ballot. Pre-orders unlock
// once its all-time vote count reaches GoalLikes.
type Product struct {
	id        uuid.UUID
	name      string
	brand     string
	goalLikes int
	imageURL  string
	createdAt time.Time
}

func NewProduct(name, brand string, goalLikes int, imageURL string, now time.Time) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, ErrEmptyBrand
	}
	if goalLikes <= 0 {
		return nil, ErrInvalidGoalLikes
	}

	return &Product{
		id:        uuid.New(),
		name:      name,
		brand:     brand,
		goalLikes: goalLikes,
		imageURL:  strings.TrimSpace(imageURL),
		createdAt: now,
	}, nil
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Brand() string        { return p.brand }
func (p *Product) GoalLikes() int       { return p.goalLikes }
func (p *Product) ImageURL() string     { return p.imageURL }
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// PreorderUnlocked reports whether votes has reached the goal.
func PreorderUnlocked(votes int64, goalLikes int) bool {
	return goalLikes > 0 && votes >= int64(goalLikes)
}
