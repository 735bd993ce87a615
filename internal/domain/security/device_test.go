package security

import (
	"strings"
	"testing"

	"valunds/internal/domain/constants"
	"valunds/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

const (
	chromeWindowsUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	safariIPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1"
	safariIPadUA    = "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Safari/604.1"
)

func TestClassifyUserAgent(t *testing.T) {
	desktop := ClassifyUserAgent(chromeWindowsUA)
	assert.Equal(t, DeviceDesktop, desktop.DeviceType)
	assert.Equal(t, "Chrome 120.0.0.0", desktop.Browser)
	assert.True(t, strings.HasPrefix(desktop.OS, "Windows"), desktop.OS)

	assert.Equal(t, DeviceMobile, ClassifyUserAgent(safariIPhoneUA).DeviceType)
	assert.Equal(t, DeviceTablet, ClassifyUserAgent(safariIPadUA).DeviceType)
}

func TestClassifyUserAgent_Unknown(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		got := ClassifyUserAgent(raw)

		assert.Equal(t, entity.DeviceDescriptor{
			DeviceType: constants.UnknownDeviceValue,
			Browser:    constants.UnknownDeviceValue,
			OS:         constants.UnknownDeviceValue,
		}, got)
	}
}

func TestResolveLocation(t *testing.T) {
	tests := map[string]string{
		"127.0.0.1":        constants.LocalLocationLabel,
		"127.10.0.3":       constants.LocalLocationLabel,
		"::1":              constants.LocalLocationLabel,
		"::ffff:127.0.0.1": constants.LocalLocationLabel,
		"81.232.10.4":      "",
		"not-an-ip":        "",
		"":                 "",
	}

	for ip, want := range tests {
		assert.Equal(t, want, ResolveLocation(ip), ip)
	}
}

func TestIsNewDevice(t *testing.T) {
	chrome := entity.DeviceDescriptor{DeviceType: DeviceDesktop, Browser: "Chrome 120", OS: "Windows 10"}
	firefox := entity.DeviceDescriptor{DeviceType: DeviceDesktop, Browser: "Firefox 121", OS: "Ubuntu"}
	chromeUpgraded := entity.DeviceDescriptor{DeviceType: DeviceDesktop, Browser: "Chrome 121", OS: "Windows 10"}

	history := []*entity.LoginAttempt{
		{IPAddress: "10.0.0.1", Device: chrome, Succeeded: true},
		{IPAddress: "10.0.0.9", Device: firefox, Succeeded: false},
	}

	tests := []struct {
		name       string
		descriptor entity.DeviceDescriptor
		ip         string
		want       bool
	}{
		{name: "same ip different device", descriptor: firefox, ip: "10.0.0.1", want: false},
		{name: "same browser and os new ip", descriptor: chrome, ip: "10.0.0.2", want: false},
		{name: "only matches a failed attempt", descriptor: firefox, ip: "10.0.0.9", want: true},
		{name: "nothing matches", descriptor: firefox, ip: "10.0.0.3", want: true},
		{name: "browser upgrade from new ip", descriptor: chromeUpgraded, ip: "10.0.0.2", want: true},
		{name: "browser upgrade from known ip", descriptor: chromeUpgraded, ip: "10.0.0.1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNewDevice(history, tt.descriptor, tt.ip))
		})
	}

	assert.True(t, IsNewDevice(nil, chrome, "10.0.0.1"))
}
