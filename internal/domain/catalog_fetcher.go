package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Vovarama1992/bestelerim/internal/models"
	"github.com/Vovarama1992/bestelerim/internal/ports"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type CatalogFetcher struct {
	lister  ports.ContentsLister
	repo    string
	branch  string
	rawHost string

	newID func() string
}

func NewCatalogFetcher(lister ports.ContentsLister, repo, branch, rawHost string) *CatalogFetcher {
	return &CatalogFetcher{
		lister:  lister,
		repo:    repo,
		branch:  branch,
		rawHost: rawHost,
		newID:   uuid.NewString,
	}
}

func (f *CatalogFetcher) Repo() string { return f.repo }

// FetchCatalog lists the repository root once and keeps only classifiable
// files, in the order the remote returned them. Listing errors are returned
// untouched so callers can classify them; nothing is retried here.
func (f *CatalogFetcher) FetchCatalog(ctx context.Context) ([]models.MediaEntry, error) {
	items, err := f.lister.ListContents(ctx, f.repo)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog %s: %w", f.repo, err)
	}

	entries := lo.FilterMap(items, func(it models.RepoItem, _ int) (models.MediaEntry, bool) {
		if it.Type != "file" {
			return models.MediaEntry{}, false
		}
		kind, ok := Classify(it.Name)
		if !ok {
			return models.MediaEntry{}, false
		}
		return models.MediaEntry{
			ID:          f.newID(),
			Name:        it.Name,
			DisplayName: DisplayName(it.Name),
			URL:         RawURL(f.rawHost, f.repo, f.branch, it.Name),
			Type:        kind,
			SizeBytes:   it.Size,
		}, true
	})

	return entries, nil
}

// RawURL builds {rawHost}/{repo}/{branch}/{escaped filename}.
func RawURL(rawHost, repo, branch, filename string) string {
	return strings.TrimSuffix(rawHost, "/") + "/" + repo + "/" + branch + "/" + url.PathEscape(filename)
}
