// Package useragent classifies the browser a page is running in.
package useragent

import (
	"fmt"
	"strings"

	"github.com/avct/uasurfer"
)

type Device struct {
	Browser string
	OS      string
	Type    string

	deviceType uasurfer.DeviceType
}

func Parse(userAgent string) Device {
	ua := uasurfer.Parse(userAgent)
	return Device{
		Browser:    strings.TrimPrefix(ua.Browser.Name.String(), "Browser"),
		OS:         strings.TrimPrefix(ua.OS.Name.String(), "OS"),
		Type:       strings.TrimPrefix(ua.DeviceType.String(), "Device"),
		deviceType: ua.DeviceType,
	}
}

// Touch reports whether the device is expected to deliver touch events rather than mouse events.
func (d Device) Touch() bool {
	switch d.deviceType {
	case uasurfer.DevicePhone, uasurfer.DeviceTablet, uasurfer.DeviceWearable:
		return true
	default:
		return false
	}
}

func (d Device) String() string {
	return fmt.Sprintf("%s/%s (%s)", d.Browser, d.OS, d.Type)
}
