package output

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/morozRed/powerdex/internal/config"
)

// iconFileName drops the extension the client uses, lower cases the rest and
// appends ext.
func iconFileName(icon, ext string) string {
	if i := strings.IndexByte(icon, '.'); i >= 0 {
		icon = icon[:i]
	}
	return strings.ToLower(icon) + ext
}

// assetURL expands format for icon. {md5} is taken over the rewritten file
// name, not the raw icon name.
func assetURL(icon, format string, assets *config.AssetsConfig) string {
	name := iconFileName(icon, assets.Ext)
	digest := md5.Sum([]byte(name))
	path := strings.NewReplacer(
		"{md5}", fmt.Sprintf("%02x", digest[0]),
		"{icon}", name,
	).Replace(format)
	return assets.BaseURL + path
}

func archetypeIcon(icon string, assets *config.AssetsConfig) string {
	if assets == nil || icon == "" {
		return icon
	}
	return assetURL(icon, assets.ArchetypeIconFormat, assets)
}

func powerIcon(icon string, assets *config.AssetsConfig) string {
	if assets == nil || icon == "" {
		return icon
	}
	return assetURL(icon, assets.PowersIconFormat, assets)
}
