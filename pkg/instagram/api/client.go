package api

import "context"

// Client — авторизованный клиент платформы. Каждый вызов блокирующий:
// либо типизированный результат, либо ошибка удалённой стороны.
// Настройки (отпечаток устройства, куки, токен) сериализуются через
// DumpSettings и восстанавливаются через LoadSettings, что позволяет
// переиспользовать сессию без повторной отправки пароля.
type Client interface {
	SetDevice(device DeviceSettings)
	SetUserAgent(userAgent string)
	SetCountry(country string)
	SetCountryCode(code int)

	LoadSettings(data []byte) error
	DumpSettings() ([]byte, error)

	Login(ctx context.Context, username, password string) error

	AccountInfo(ctx context.Context) (*AccountInfo, error)
	AccountEdit(ctx context.Context, edit AccountEdit) error
	AccountChangePicture(ctx context.Context, jpegData []byte) error

	UserIDFromUsername(ctx context.Context, username string) (int64, error)
	UserFollow(ctx context.Context, userID int64) error
	UserUnfollow(ctx context.Context, userID int64) error
	UserFollowers(ctx context.Context, userID int64, amount int) ([]UserShort, error)
	UserFollowing(ctx context.Context, userID int64, amount int) ([]UserShort, error)
	UserMedias(ctx context.Context, userID int64, amount int) ([]Media, error)

	PhotoUpload(ctx context.Context, jpegData []byte, caption string) (*Media, error)
	PhotoUploadToStory(ctx context.Context, jpegData []byte) (*Media, error)

	DirectSend(ctx context.Context, text string, userIDs []int64) error

	MediaPKFromURL(rawURL string) (string, error)
	MediaLike(ctx context.Context, mediaID string) error
	MediaComment(ctx context.Context, mediaID, text string) error
	MediaInfo(ctx context.Context, mediaPK string) (*Media, error)

	DownloadByURL(ctx context.Context, rawURL string) ([]byte, error)
}

// Factory создаёт чистый клиент без сессии. Нужна, чтобы слой
// инициализации аккаунтов не зависел от конкретной реализации.
type Factory func() Client
