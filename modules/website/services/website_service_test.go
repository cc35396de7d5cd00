package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storo-shop/backend/modules/website/domain/entities/blogpost"
	"github.com/storo-shop/backend/modules/website/domain/entities/settings"
	"github.com/storo-shop/backend/modules/website/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/website/services"
	"github.com/storo-shop/backend/pkg/itf"
)

func TestWebsiteService_SettingsSingleton(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	svc := itf.GetService[services.WebsiteService](env)

	_, err := svc.GetSettings(env.Ctx)
	assert.ErrorIs(t, err, persistence.ErrSettingsNotFound)

	saved, err := svc.SaveSettings(env.Ctx, settings.New("Acme Coffee",
		settings.WithPalette("#3b2f2f", "#d4a373"),
		settings.WithContacts("+380501112233", "hello@acme.test", "Kyiv"),
	))
	require.NoError(t, err)
	assert.Equal(t, "Acme Coffee", saved.Title())

	// A second save replaces the row instead of adding one.
	updated, err := svc.SaveSettings(env.Ctx, settings.New("Acme Coffee Roasters"))
	require.NoError(t, err)
	assert.Equal(t, "Acme Coffee Roasters", updated.Title())

	got, err := svc.GetSettings(env.Ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme Coffee Roasters", got.Title())
}

func TestWebsiteService_BlogPublishing(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	svc := itf.GetService[services.WebsiteService](env)

	draft, err := svc.CreatePost(env.Ctx, blogpost.New("Opening Day", "opening-day", "We are open."))
	require.NoError(t, err)
	assert.False(t, draft.Published())

	draft.Publish()
	published, err := svc.UpdatePost(env.Ctx, draft)
	require.NoError(t, err)
	assert.True(t, published.Published())
	require.NotNil(t, published.PublishedAt())

	bySlug, err := svc.GetPostBySlug(env.Ctx, "opening-day")
	require.NoError(t, err)
	assert.Equal(t, draft.ID(), bySlug.ID())

	count, err := svc.CountPosts(env.Ctx, &blogpost.FindParams{PublishedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
