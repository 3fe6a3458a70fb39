package api

import (
	"strings"

	"github.com/google/uuid"
)

// DeviceSettings описывает аппаратный отпечаток, под которым клиент
// представляется платформе. Платформа сверяет отпечаток с сессией,
// поэтому он сохраняется в настройках и переживает перезапуски.
type DeviceSettings struct {
	CPU            string `json:"cpu"`
	DPI            string `json:"dpi"`
	Model          string `json:"model"`
	Device         string `json:"device"`
	Resolution     string `json:"resolution"`
	AppVersion     string `json:"app_version"`
	Manufacturer   string `json:"manufacturer"`
	VersionCode    string `json:"version_code"`
	AndroidRelease string `json:"android_release"`
	AndroidVersion int    `json:"android_version"`
}

// DefaultUserAgent — строка User-Agent мобильного приложения.
// Должна согласовываться с отпечатком DefaultDevice.
const DefaultUserAgent = "Instagram 300.0.0.28.109 Android (34/14.0; 500dpi; 1440x3088; " +
	"samsung; SM-S926B; e3q; s5e9945; en_US; 300001010)"

// DefaultDevice возвращает отпечаток, используемый для новых сессий.
func DefaultDevice() DeviceSettings {
	return DeviceSettings{
		CPU:            "Exynos 2400",
		DPI:            "500dpi",
		Model:          "SM-S926B",
		Device:         "Samsung Galaxy S24 Ultra",
		Resolution:     "3088x1440",
		AppVersion:     "300.0.0.28.109",
		Manufacturer:   "Samsung",
		VersionCode:    "300001010",
		AndroidRelease: "14.0",
		AndroidVersion: 34,
	}
}

// UUIDSet — набор идентификаторов устройства, которые платформа ожидает
// видеть неизменными в рамках одной сессии.
type UUIDSet struct {
	DeviceID      string `json:"device_id"`
	PhoneID       string `json:"phone_id"`
	ClientUUID    string `json:"uuid"`
	AdvertisingID string `json:"advertising_id"`
}

// NewUUIDSet генерирует свежий набор идентификаторов для новой сессии.
func NewUUIDSet() UUIDSet {
	return UUIDSet{
		DeviceID:      "android-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16],
		PhoneID:       uuid.NewString(),
		ClientUUID:    uuid.NewString(),
		AdvertisingID: uuid.NewString(),
	}
}
