// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"creel/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPassword is the password assigned to every seeded account.
const SeedPassword = "Password123!seed"

var fishTypes = []string{
	"Northern Pike", "European Perch", "Zander", "Brown Trout", "Rainbow Trout",
	"Atlantic Salmon", "Common Carp", "Tench", "Bream", "Roach",
	"Chub", "Asp", "Grayling", "Ide", "Burbot",
}

var spotNames = []string{
	"Reed Bank", "Old Jetty", "Boulder Point", "Willow Bend", "Mill Race",
	"Deep Hole", "Gravel Bar", "Lily Pads", "North Inlet", "Dam Tailwater",
	"Sunken Bridge", "Birch Shore", "Weed Line", "Drop-off", "Back Bay",
}

var commentTemplates = []string{
	"What a fish! Congrats.",
	"What bait were you using?",
	"That spot never disappoints.",
	"Solid weight for this time of year.",
	"Released or dinner?",
	"I need to get out there this weekend.",
	"Nice one, the water must be warming up.",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
	// seeded accounts share one bcrypt hash so large seeds stay fast
	passwordHash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	hash, _ := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
	return &Factory{
		db:           db,
		r:            rand.New(rand.NewSource(time.Now().UnixNano())),
		passwordHash: string(hash),
	}
}

// backdate returns a timestamp up to maxDays in the past.
func (f *Factory) backdate(maxDays int) time.Time {
	return time.Now().
		Add(-time.Duration(f.r.Intn(maxDays*24)) * time.Hour).
		Add(-time.Duration(f.r.Intn(60)) * time.Minute)
}

// CreateUsers persists n users with unique emails and nicknames.
func (f *Factory) CreateUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		nickname := fmt.Sprintf("%s_%s%d",
			strings.ToLower(gofakeit.AdjectiveDescriptive()),
			strings.ToLower(gofakeit.NounConcrete()), i)
		user := &models.User{
			Email:     fmt.Sprintf("angler%d@%s", i, gofakeit.DomainName()),
			Nickname:  nickname,
			Password:  f.passwordHash,
			Bio:       gofakeit.Sentence(8),
			AvatarURL: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
			IsActive:  true,
			CreatedAt: f.backdate(365),
		}
		if err := f.db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CreateSpots persists n fishing spots scattered around a lake district.
func (f *Factory) CreateSpots(users []*models.User, n int) ([]*models.FishingSpot, error) {
	spots := make([]*models.FishingSpot, 0, n)
	for i := 0; i < n; i++ {
		owner := pick(f.r, users)
		spot := &models.FishingSpot{
			Name:        fmt.Sprintf("%s %d", pick(f.r, spotNames), i),
			Description: gofakeit.Sentence(12),
			// cluster around a plausible lake region so nearby queries return hits
			Latitude:  59.0 + f.r.Float64()*0.8,
			Longitude: 17.5 + f.r.Float64()*1.2,
			UserID:    owner.ID,
			IsPublic:  f.r.Intn(10) > 1,
			CreatedAt: f.backdate(180),
		}
		if err := f.db.Create(spot).Error; err != nil {
			return nil, err
		}
		spots = append(spots, spot)
	}
	return spots, nil
}

// CreateCatches persists n catches, most at known spots, some freestanding.
func (f *Factory) CreateCatches(users []*models.User, spots []*models.FishingSpot, n int) ([]*models.FishCatch, error) {
	catches := make([]*models.FishCatch, 0, n)
	for i := 0; i < n; i++ {
		owner := pick(f.r, users)
		catch := &models.FishCatch{
			FishType:    pick(f.r, fishTypes),
			Weight:      0.2 + f.r.Float64()*11.8,
			Description: gofakeit.Paragraph(1, 2, 8, " "),
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
			UserID:      owner.ID,
			IsPublic:    f.r.Intn(10) > 0,
			CreatedAt:   f.backdate(90),
		}
		if len(spots) > 0 && f.r.Intn(4) > 0 {
			spot := pick(f.r, spots)
			catch.Latitude = spot.Latitude
			catch.Longitude = spot.Longitude
			catch.LocationName = spot.Name
		} else {
			catch.Latitude = 59.0 + f.r.Float64()*0.8
			catch.Longitude = 17.5 + f.r.Float64()*1.2
			catch.LocationName = gofakeit.City() + " shoreline"
		}
		if err := f.db.Create(catch).Error; err != nil {
			return nil, err
		}
		catches = append(catches, catch)
	}
	return catches, nil
}

// CreateLikes sprinkles likes across public catches. The unique index on
// (user_id, fish_catch_id) keeps accidental duplicates out.
func (f *Factory) CreateLikes(users []*models.User, catches []*models.FishCatch) (int, error) {
	count := 0
	for _, catch := range catches {
		if !catch.IsPublic {
			continue
		}
		for _, user := range users {
			if user.ID == catch.UserID || f.r.Intn(5) > 0 {
				continue
			}
			like := &models.Like{
				UserID:      user.ID,
				FishCatchID: catch.ID,
				CreatedAt:   f.backdate(30),
			}
			if err := f.db.Create(like).Error; err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

// CreateComments adds top-level comments and occasional replies.
func (f *Factory) CreateComments(users []*models.User, catches []*models.FishCatch) (int, error) {
	count := 0
	for _, catch := range catches {
		if !catch.IsPublic || f.r.Intn(3) == 0 {
			continue
		}
		numComments := 1 + f.r.Intn(4)
		var lastID *uint
		for i := 0; i < numComments; i++ {
			comment := &models.Comment{
				Content:     pick(f.r, commentTemplates),
				UserID:      pick(f.r, users).ID,
				FishCatchID: catch.ID,
				CreatedAt:   f.backdate(14),
			}
			// occasionally thread a reply under the previous comment
			if lastID != nil && f.r.Intn(3) == 0 {
				comment.ParentID = lastID
			}
			if err := f.db.Create(comment).Error; err != nil {
				return count, err
			}
			id := comment.ID
			lastID = &id
			count++
		}
	}
	return count, nil
}
