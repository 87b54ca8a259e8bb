// Package platform holds the static catalog of supported social platforms.
package platform

import "errors"

// ErrPlatformNotFound is returned when a platform identifier is not in the registry.
var ErrPlatformNotFound = errors.New("platform not found")

// Platform describes a supported social platform. Icon and Color are
// presentation metadata and are opaque to the core.
type Platform struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	DisplayName       string            `json:"display_name"`
	Icon              string            `json:"icon"`
	Color             string            `json:"color"`
	AuthURL           string            `json:"auth_url"`
	Scopes            []string          `json:"scopes"`
	ScopeDescriptions map[string]string `json:"scope_descriptions,omitempty"`
}

// DescribeScope returns a human readable description of scope, falling back
// to the scope itself.
func (p Platform) DescribeScope(scope string) string {
	if d, ok := p.ScopeDescriptions[scope]; ok {
		return d
	}
	return scope
}

func (p Platform) clone() Platform {
	c := p
	c.Scopes = append([]string(nil), p.Scopes...)
	if p.ScopeDescriptions != nil {
		c.ScopeDescriptions = make(map[string]string, len(p.ScopeDescriptions))
		for k, v := range p.ScopeDescriptions {
			c.ScopeDescriptions[k] = v
		}
	}
	return c
}

// DefaultPlatforms returns the built-in platform catalog.
func DefaultPlatforms() []Platform {
	return []Platform{
		{
			ID:          "instagram",
			Name:        "instagram",
			DisplayName: "Instagram",
			Icon:        "📷",
			Color:       "bg-gradient-to-r from-purple-500 to-pink-500",
			AuthURL:     "https://api.instagram.com/oauth/authorize",
			Scopes:      []string{"user_profile", "user_media"},
			ScopeDescriptions: map[string]string{
				"user_profile": "Access your basic profile information",
				"user_media":   "View your photos and videos",
			},
		},
		{
			ID:          "facebook",
			Name:        "facebook",
			DisplayName: "Facebook",
			Icon:        "📘",
			Color:       "bg-blue-600",
			AuthURL:     "https://www.facebook.com/v18.0/dialog/oauth",
			Scopes:      []string{"pages_manage_posts", "pages_read_engagement"},
			ScopeDescriptions: map[string]string{
				"pages_manage_posts":    "Create and manage posts on your pages",
				"pages_read_engagement": "View engagement metrics on your pages",
			},
		},
		{
			ID:          "twitter",
			Name:        "twitter",
			DisplayName: "X (Twitter)",
			Icon:        "🐦",
			Color:       "bg-black",
			AuthURL:     "https://twitter.com/i/oauth2/authorize",
			Scopes:      []string{"tweet.read", "tweet.write", "users.read"},
			ScopeDescriptions: map[string]string{
				"tweet.read":  "Read your tweets and timeline",
				"tweet.write": "Post tweets on your behalf",
				"users.read":  "Access your profile information",
			},
		},
		{
			ID:          "linkedin",
			Name:        "linkedin",
			DisplayName: "LinkedIn",
			Icon:        "💼",
			Color:       "bg-blue-700",
			AuthURL:     "https://www.linkedin.com/oauth/v2/authorization",
			Scopes:      []string{"r_liteprofile", "w_member_social"},
			ScopeDescriptions: map[string]string{
				"r_liteprofile":   "Access your basic LinkedIn profile",
				"w_member_social": "Share content on your behalf",
			},
		},
	}
}
