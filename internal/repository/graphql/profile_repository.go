package graphql

import (
	"context"
	"fmt"
	"time"

	"github.com/PizzaHomicide/lumix/internal/domain"
	"github.com/PizzaHomicide/lumix/internal/log"
)

const viewerQuery = `
    query {
        Viewer {
            id
            name
            email
            avatar {
                medium
            }
            createdAt
            statistics {
                watched
                favourites
                reviews
            }
        }
    }
`

type ProfileRepository struct {
	client *Client
}

func NewProfileRepository(client *Client) domain.ProfileRepository {
	return &ProfileRepository{
		client: client,
	}
}

// GetProfile fetches identity and statistics together with a single Viewer query
func (r *ProfileRepository) GetProfile(ctx context.Context) (*domain.Profile, error) {
	var response struct {
		Viewer *struct {
			ID        string
			Name      string
			Email     string
			Avatar    struct{ Medium string }
			CreatedAt int64 `json:"createdAt"`
			Statistics struct {
				Watched    int
				Favourites int
				Reviews    int
			}
		}
	}

	if err := r.client.Query(ctx, viewerQuery, nil, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	if response.Viewer == nil || response.Viewer.ID == "" {
		return nil, fmt.Errorf("invalid or unauthorized token")
	}

	v := response.Viewer
	profile := &domain.Profile{
		User: domain.User{
			ID:       v.ID,
			Name:     v.Name,
			Email:    v.Email,
			Avatar:   v.Avatar.Medium,
			JoinDate: joinDateLabel(v.CreatedAt),
		},
		Statistics: domain.UserStatistics{
			Watched:   v.Statistics.Watched,
			Favorites: v.Statistics.Favourites,
			Reviews:   v.Statistics.Reviews,
		},
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	log.Info("Fetched user profile", "id", profile.User.ID, "stats", profile.Statistics.String())
	return profile, nil
}

// joinDateLabel formats a unix timestamp as e.g. "January 2024".  Unknown dates render as an empty label.
func joinDateLabel(createdAt int64) string {
	if createdAt <= 0 {
		return ""
	}
	return time.Unix(createdAt, 0).UTC().Format("January 2006")
}
