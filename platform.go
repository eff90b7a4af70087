package modal

import "runtime"

// Platform represents the current operating system/platform
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformWeb     Platform = "js"
	PlatformUnknown Platform = "unknown"
)

// CurrentPlatform returns the platform the app is running on
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformMacOS
	case "ios":
		return PlatformIOS
	case "android":
		return PlatformAndroid
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	case "js":
		return PlatformWeb
	default:
		return PlatformUnknown
	}
}

// IsMobile returns true if running on iOS or Android
func IsMobile() bool {
	p := CurrentPlatform()
	return p == PlatformIOS || p == PlatformAndroid
}

// IsDesktop returns true if running on macOS, Linux, or Windows
func IsDesktop() bool {
	p := CurrentPlatform()
	return p == PlatformMacOS || p == PlatformLinux || p == PlatformWindows
}

// SupportsMultiWindow returns true if the platform can show the dialog
// and backdrop as separate floating windows
func SupportsMultiWindow() bool {
	return IsDesktop()
}
