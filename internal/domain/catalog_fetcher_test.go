package domain_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/Vovarama1992/bestelerim/internal/domain"
	"github.com/Vovarama1992/bestelerim/internal/models"
	"github.com/Vovarama1992/bestelerim/internal/ports"
	mocks "github.com/Vovarama1992/bestelerim/internal/ports/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testRepo    = "owner/songs"
	testBranch  = "main"
	testRawHost = "https://raw.example.com"
)

func size(n int64) *int64 { return &n }

func Test_FetchCatalog_FiltersDirsAndUnknownExtensions(t *testing.T) {
	lister := mocks.NewMockContentsLister(t)
	lister.On("ListContents", mock.Anything, testRepo).Return([]models.RepoItem{
		{Name: "a.mp3", Type: "file", Size: size(1024)},
		{Name: "b.txt", Type: "file"},
		{Name: "dir", Type: "dir"},
	}, nil)

	f := domain.NewCatalogFetcher(lister, testRepo, testBranch, testRawHost)
	entries, err := f.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "a.mp3", e.Name)
	assert.Equal(t, "A", e.DisplayName)
	assert.Equal(t, models.KindAudio, e.Type)
	assert.Equal(t, "https://raw.example.com/owner/songs/main/a.mp3", e.URL)
	require.NotNil(t, e.SizeBytes)
	assert.EqualValues(t, 1024, *e.SizeBytes)
	assert.Nil(t, e.Likes)

	_, err = uuid.Parse(e.ID)
	assert.NoError(t, err)
}

func Test_FetchCatalog_DirNamedLikeMediaIsSkipped(t *testing.T) {
	lister := mocks.NewMockContentsLister(t)
	lister.On("ListContents", mock.Anything, testRepo).Return([]models.RepoItem{
		{Name: "videos.mp4", Type: "dir"},
		{Name: "link.mp3", Type: "symlink"},
	}, nil)

	f := domain.NewCatalogFetcher(lister, testRepo, testBranch, testRawHost)
	entries, err := f.FetchCatalog(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func Test_FetchCatalog_PreservesRemoteOrderAndFreshIDs(t *testing.T) {
	lister := mocks.NewMockContentsLister(t)
	items := []models.RepoItem{
		{Name: "z.mp4", Type: "file"},
		{Name: "m.ogg", Type: "file"},
		{Name: "a.mkv", Type: "file"},
	}
	lister.On("ListContents", mock.Anything, testRepo).Return(items, nil).Twice()

	f := domain.NewCatalogFetcher(lister, testRepo, testBranch, testRawHost)

	first, err := f.FetchCatalog(context.Background())
	require.NoError(t, err)
	second, err := f.FetchCatalog(context.Background())
	require.NoError(t, err)

	require.Len(t, first, 3)
	for i, it := range items {
		assert.Equal(t, it.Name, first[i].Name)
		assert.Equal(t, it.Name, second[i].Name)
		assert.NotEqual(t, first[i].ID, second[i].ID, "ids are regenerated on every fetch")
		assert.Nil(t, first[i].SizeBytes)
	}
	assert.Equal(t, models.KindVideo, first[0].Type)
	assert.Equal(t, models.KindAudio, first[1].Type)
}

func Test_FetchCatalog_PropagatesUpstreamError(t *testing.T) {
	lister := mocks.NewMockContentsLister(t)
	lister.On("ListContents", mock.Anything, testRepo).
		Return(nil, &ports.UpstreamError{Status: 404})

	f := domain.NewCatalogFetcher(lister, testRepo, testBranch, testRawHost)
	entries, err := f.FetchCatalog(context.Background())
	assert.Nil(t, entries)

	var upstream *ports.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, 404, upstream.Status)
}

func Test_RawURL_RoundTrip(t *testing.T) {
	names := []string{
		"plain.mp3",
		"with space.mp3",
		"Şarkı Sözü.mp3",
		"punct!@#$%^&*()+=,;'.wav",
		"question?.ogg",
		"percent%20literal.mp3",
		"plus+sign.mp3",
		"slash/inside.mp3",
	}

	prefix := testRawHost + "/" + testRepo + "/" + testBranch + "/"
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			raw := domain.RawURL(testRawHost, testRepo, testBranch, name)
			require.True(t, strings.HasPrefix(raw, prefix))

			seg := strings.TrimPrefix(raw, prefix)
			assert.NotContains(t, seg, " ")
			assert.NotContains(t, seg, "/")

			decoded, err := url.PathUnescape(seg)
			require.NoError(t, err)
			assert.Equal(t, name, decoded)

			_, err = url.Parse(raw)
			assert.NoError(t, err)
		})
	}
}

func Test_RawURL_TrailingSlashHost(t *testing.T) {
	assert.Equal(t,
		"https://raw.example.com/o/r/dev/a%20b.mp3",
		domain.RawURL("https://raw.example.com/", "o/r", "dev", "a b.mp3"),
	)
}
