// internal/config/config.go
package config

import "image/color"

const (
	AppName = "IronLog"

	AppIconSize        = 1024
	ForegroundIconSize = 1024
	SplashIconSize     = 512

	// Доля размера холста, отводимая под гантель
	AppIconScale        = 0.5
	ForegroundIconScale = 0.6 // больше, чтобы пережить маску adaptive icon
	SplashIconScale     = 0.6

	DumbbellBarWidth   = 0.6
	DumbbellBarHeight  = 0.08
	DumbbellWeightSize = 0.25

	AppIconFile        = "icon.png"
	ForegroundIconFile = "icon_foreground.png"
	SplashIconFile     = "splash.png"

	// Каталог с иконками относительно корня модуля
	AssetsDir = "assets/icon"

	DirPerm = 0o755

	SheetCellSize    = 256
	SheetGap         = 24
	SheetLabelHeight = 28
	SheetFontSize    = 14
	CheckerSize      = 16
)

var (
	BackgroundColor = color.RGBA{26, 26, 26, 255}   // #1a1a1a
	PrimaryColor    = color.RGBA{255, 107, 53, 255} // #ff6b35
	WhiteColor      = color.RGBA{255, 255, 255, 255}
	Transparent     = color.RGBA{0, 0, 0, 0}

	CheckerLightColor = color.RGBA{204, 204, 204, 255}
	LabelColor        = color.RGBA{240, 240, 240, 255}
)

// NextSteps are printed after a successful run; each one is a manual command
// for the Flutter tooling that consumes the generated PNGs.
var NextSteps = []string{
	"flutter pub get",
	"flutter pub run flutter_launcher_icons",
	"flutter pub run flutter_native_splash:create",
}
