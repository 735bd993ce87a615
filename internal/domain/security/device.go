package security

import (
	"net/netip"
	"strings"

	"valunds/internal/domain/constants"
	"valunds/internal/domain/entity"

	"github.com/mssola/useragent"
)

// Device classes reported in DeviceDescriptor.DeviceType.
const (
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	DeviceDesktop = "Desktop"
)

// ClassifyUserAgent parses an agent string into a device descriptor. Anything it cannot
// recognise is reported as Unknown rather than failing.
func ClassifyUserAgent(raw string) entity.DeviceDescriptor {
	unknown := entity.DeviceDescriptor{
		DeviceType: constants.UnknownDeviceValue,
		Browser:    constants.UnknownDeviceValue,
		OS:         constants.UnknownDeviceValue,
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return unknown
	}

	ua := useragent.New(raw)

	browserName, browserVersion := ua.Browser()
	osInfo := ua.OSInfo()

	descriptor := entity.DeviceDescriptor{
		DeviceType: deviceType(raw, ua),
		Browser:    joinFamily(browserName, browserVersion),
		OS:         joinFamily(osInfo.Name, osInfo.Version),
	}

	if descriptor.Browser == "" {
		descriptor.Browser = constants.UnknownDeviceValue
	}
	if descriptor.OS == "" {
		descriptor.OS = constants.UnknownDeviceValue
	}

	return descriptor
}

func deviceType(raw string, ua *useragent.UserAgent) string {
	switch {
	case ua.Bot():
		return constants.UnknownDeviceValue
	case strings.Contains(raw, "iPad") || strings.Contains(raw, "Tablet"):
		return DeviceTablet
	case strings.Contains(raw, "Android") && !strings.Contains(raw, "Mobile"):
		return DeviceTablet
	case ua.Mobile():
		return DeviceMobile
	case ua.OS() != "":
		return DeviceDesktop
	default:
		return constants.UnknownDeviceValue
	}
}

func joinFamily(family, version string) string {
	return strings.TrimSpace(family + " " + version)
}

// ResolveLocation maps a source address to a location label. Only loopback addresses are
// recognised; every other address yields an empty label until a geolocation provider exists.
func ResolveLocation(ipAddress string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(ipAddress))
	if err != nil {
		return ""
	}

	if addr.Unmap().IsLoopback() {
		return constants.LocalLocationLabel
	}

	return ""
}

// IsNewDevice reports whether none of the recent successful attempts share the source
// address or the (browser, os) pair of the current login. Browser and OS carry their
// versions, so an upgrade seen from a new address counts as a new device.
func IsNewDevice(recent []*entity.LoginAttempt, descriptor entity.DeviceDescriptor, ipAddress string) bool {
	for _, attempt := range recent {
		if !attempt.Succeeded {
			continue
		}
		if ipAddress != "" && attempt.IPAddress == ipAddress {
			return false
		}
		if attempt.Device.Browser == descriptor.Browser && attempt.Device.OS == descriptor.OS {
			return false
		}
	}

	return true
}
