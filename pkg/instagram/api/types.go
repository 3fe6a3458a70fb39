package api

// Типы медиа в ответах платформы.
const (
	MediaTypePhoto = 1
	MediaTypeVideo = 2
	MediaTypeAlbum = 8
)

// AccountInfo — профиль текущего аккаунта, как его отдаёт платформа.
type AccountInfo struct {
	UserID          int64  `json:"pk"`
	Username        string `json:"username"`
	FullName        string `json:"full_name"`
	Biography       string `json:"biography"`
	FollowerCount   int    `json:"follower_count"`
	FollowingCount  int    `json:"following_count"`
	MediaCount      int    `json:"media_count"`
	IsPrivate       bool   `json:"is_private"`
	ProfilePicURL   string `json:"profile_pic_url"`
	ProfilePicURLHD string `json:"profile_pic_url_hd"`
}

// UserShort — краткая карточка пользователя в списках подписок.
type UserShort struct {
	UserID        int64  `json:"pk"`
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	ProfilePicURL string `json:"profile_pic_url"`
}

// MediaResource — элемент альбома.
type MediaResource struct {
	PK           string `json:"pk"`
	MediaType    int    `json:"media_type"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoURL     string `json:"video_url"`
}

// Media — публикация. Для фото заполняется ThumbnailURL, для видео —
// VideoURL, для альбома — Resources.
type Media struct {
	PK           string          `json:"pk"`
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	MediaType    int             `json:"media_type"`
	Caption      string          `json:"caption_text"`
	ThumbnailURL string          `json:"thumbnail_url"`
	VideoURL     string          `json:"video_url"`
	Resources    []MediaResource `json:"resources"`
}

// AccountEdit перечисляет изменяемые поля профиля. Нулевые указатели
// означают «поле не трогать».
type AccountEdit struct {
	Username  *string
	FullName  *string
	Biography *string
}
