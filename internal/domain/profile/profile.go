package profile

import "time"

// DefaultThemeName is the theme attached to freshly initialized profiles.
const DefaultThemeName = "Default"

type Theme struct {
	ID                        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                      string    `gorm:"column:theme_name;size:100;uniqueIndex;not null" json:"themeName"`
	Description               string    `gorm:"column:description;type:text" json:"description,omitempty"`
	DefaultBackgroundImageURL string    `gorm:"column:default_background_image_url;size:255" json:"defaultBackgroundImageUrl,omitempty"`
	DefaultAvatarURL          string    `gorm:"column:default_avatar_url;size:255" json:"defaultAvatarUrl,omitempty"`
	DefaultButtonStyleConfig  string    `gorm:"column:default_button_style_config;type:text" json:"defaultButtonStyleConfig,omitempty"`
	DefaultTextColor          string    `gorm:"column:default_text_color;size:20" json:"defaultTextColor,omitempty"`
	DefaultBackgroundColor    string    `gorm:"column:default_background_color;size:20" json:"defaultBackgroundColor,omitempty"`
	CreatedAt                 time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt                 time.Time `gorm:"not null" json:"updatedAt"`
}

func (Theme) TableName() string { return "themes" }

// Profile is keyed by the externally owned user id. Empty strings mean "unset".
// CurrentThemeID is a nullable foreign key to themes.id that the database clears
// when the theme is deleted. CurrentTheme only declares that constraint and is
// never loaded; callers fetch the theme by id.
type Profile struct {
	UserID             int64     `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"userId"`
	BackgroundImageURL string    `gorm:"column:background_image_url;size:255" json:"backgroundImageUrl"`
	AvatarURL          string    `gorm:"column:avatar_url;size:255" json:"avatarUrl"`
	ButtonStyleConfig  string    `gorm:"column:button_style_config;type:text" json:"buttonStyleConfig"`
	CurrentThemeID     *int64    `gorm:"column:current_theme_id;index" json:"currentThemeId"`
	CurrentTheme       *Theme    `gorm:"foreignKey:CurrentThemeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt          time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"not null" json:"updatedAt"`
}

func (Profile) TableName() string { return "user_profiles" }

// View pairs a profile with its resolved theme. Theme is nil when unset or dangling.
type View struct {
	Profile *Profile `json:"profile"`
	Theme   *Theme   `json:"theme"`
}
