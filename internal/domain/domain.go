package domain

import "github.com/yungbote/profile-backend/internal/domain/profile"

const DefaultThemeName = profile.DefaultThemeName

type (
	Theme       = profile.Theme
	Profile     = profile.Profile
	ProfileView = profile.View
)

// Models lists every table owned by this service, in migration order.
func Models() []any {
	return []any{&Theme{}, &Profile{}}
}
