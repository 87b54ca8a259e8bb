package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	assert.Equal(t, []string{"instagram", "facebook", "twitter", "linkedin"}, r.IDs())
	assert.Same(t, r, Default())

	p, ok := r.ByID("twitter")
	require.True(t, ok)
	assert.Equal(t, "X (Twitter)", p.DisplayName)
	assert.Equal(t, []string{"tweet.read", "tweet.write", "users.read"}, p.Scopes)

	_, ok = r.ByID("myspace")
	assert.False(t, ok)
	assert.False(t, r.Has("myspace"))
}

func TestRegistryIsImmutable(t *testing.T) {
	r := NewRegistry(DefaultPlatforms()...)

	all := r.All()
	all[0].Scopes[0] = "tampered"
	all[0].DisplayName = "tampered"

	p, _ := r.ByID("instagram")
	p.ScopeDescriptions["user_profile"] = "tampered"

	again, _ := r.ByID("instagram")
	assert.Equal(t, "Instagram", again.DisplayName)
	assert.Equal(t, "user_profile", again.Scopes[0])
	assert.Equal(t, "Access your basic profile information", again.DescribeScope("user_profile"))
}

func TestRegistryIgnoresDuplicates(t *testing.T) {
	r := NewRegistry(
		Platform{ID: "a", DisplayName: "first"},
		Platform{ID: "a", DisplayName: "second"},
		Platform{ID: "b"},
	)

	assert.Equal(t, []string{"a", "b"}, r.IDs())
	p, _ := r.ByID("a")
	assert.Equal(t, "first", p.DisplayName)
}

func TestDescribeScopeFallsBack(t *testing.T) {
	p, _ := Default().ByID("linkedin")
	assert.Equal(t, "Share content on your behalf", p.DescribeScope("w_member_social"))
	assert.Equal(t, "unknown_scope", p.DescribeScope("unknown_scope"))
}
