package seed

import (
	"fmt"
	"log"
	"strings"

	"photogram/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seedable rows, children before parents.
func (s *Seeder) ClearAll() error {
	tables := []interface{}{
		&models.Like{},
		&models.Comment{},
		&models.PostImage{},
		&models.Post{},
		&models.Follow{},
		&models.Token{},
		&models.Profile{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", table, err)
		}
	}
	log.Println("database cleared")
	return nil
}

// SeedUsers creates n users with profiles. All share the demo password.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i+1, err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))
	return users, nil
}

// SeedSocialMesh wires a follow graph: every user follows a random subset
// of the others so feeds have content from the first page on.
func (s *Seeder) SeedSocialMesh(users []*models.User) error {
	edges := 0
	for _, follower := range users {
		targets := s.factory.rand.Intn(len(users)/2 + 1)
		for i := 0; i < targets; i++ {
			followed := users[s.factory.rand.Intn(len(users))]
			if followed.ID == follower.ID {
				continue
			}
			if err := s.factory.CreateFollow(follower, followed); err != nil {
				return fmt.Errorf("creating follow: %w", err)
			}
			edges++
		}
	}
	log.Printf("created %d follow edges", edges)
	return nil
}

// SeedPosts creates n posts spread across the given users.
func (s *Seeder) SeedPosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		owner := users[s.factory.rand.Intn(len(users))]
		post, err := s.factory.CreatePost(owner)
		if err != nil {
			return nil, fmt.Errorf("creating post %d: %w", i+1, err)
		}
		posts = append(posts, post)
	}
	log.Printf("created %d posts", len(posts))
	return posts, nil
}

// SeedEngagement sprinkles likes and comments over the given posts.
func (s *Seeder) SeedEngagement(users []*models.User, posts []*models.Post) error {
	likes, comments := 0, 0
	for _, post := range posts {
		likers := s.factory.rand.Intn(len(users)/2 + 1)
		for i := 0; i < likers; i++ {
			user := users[s.factory.rand.Intn(len(users))]
			if err := s.factory.CreateLike(user, post); err != nil {
				return fmt.Errorf("creating like: %w", err)
			}
			likes++
		}

		commenters := s.factory.rand.Intn(4)
		for i := 0; i < commenters; i++ {
			user := users[s.factory.rand.Intn(len(users))]
			if _, err := s.factory.CreateComment(user, post); err != nil {
				return fmt.Errorf("creating comment: %w", err)
			}
			comments++
		}
	}
	log.Printf("created %d likes and %d comments", likes, comments)
	return nil
}

// Run executes the full seeding pipeline per the given options.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.SeedUsers(opts.NumUsers)
	if err != nil {
		return err
	}
	if err := s.SeedSocialMesh(users); err != nil {
		return err
	}
	posts, err := s.SeedPosts(users, opts.NumPosts)
	if err != nil {
		return err
	}
	return s.SeedEngagement(users, posts)
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
