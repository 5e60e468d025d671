package ports

import (
	"context"

	"github.com/Vovarama1992/bestelerim/internal/models"
)

// ContentsLister lists the root of a remote repository.
type ContentsLister interface {
	ListContents(ctx context.Context, repo string) ([]models.RepoItem, error)
}
