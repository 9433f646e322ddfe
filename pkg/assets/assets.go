// Package assets bundles the images shown on the event screen.
package assets

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	BannerName = "banner.svg"
	AvatarName = "avatar.svg"
)

//go:embed banner.svg
var bannerSvg []byte

//go:embed avatar.svg
var avatarSvg []byte

var resourceBannerSvg = &fyne.StaticResource{
	StaticName:    BannerName,
	StaticContent: bannerSvg,
}

var resourceAvatarSvg = &fyne.StaticResource{
	StaticName:    AvatarName,
	StaticContent: avatarSvg,
}

// Banner is the header image of the event.
func Banner() fyne.Resource {
	return resourceBannerSvg
}

// Avatar is the generic reviewer picture.
func Avatar() fyne.Resource {
	return resourceAvatarSvg
}

// ByName looks up a bundled resource by its file name.
func ByName(name string) (fyne.Resource, bool) {
	switch name {
	case BannerName:
		return resourceBannerSvg, true
	case AvatarName:
		return resourceAvatarSvg, true
	}
	return nil, false
}
