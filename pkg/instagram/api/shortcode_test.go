package api

import "testing"

// TestMediaPKFromURL проверяет декодирование кода публикации из разных
// форм ссылок.
func TestMediaPKFromURL(t *testing.T) {
	cases := []struct {
		name   string
		rawURL string
		want   string
	}{
		{"публикация", "https://www.instagram.com/p/B/", "1"},
		{"двухсимвольный код", "https://www.instagram.com/p/Ba/", "90"},
		{"reel", "https://www.instagram.com/reel/B/", "1"},
		{"tv", "https://www.instagram.com/tv/B/", "1"},
		{"без завершающего слэша", "https://www.instagram.com/p/Ba", "90"},
		{"с query-параметрами", "https://www.instagram.com/p/B/?igshid=abc", "1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MediaPKFromURL(tc.rawURL)
			if err != nil {
				t.Fatalf("неожиданная ошибка: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ожидалось %s, получено %s", tc.want, got)
			}
		})
	}
}

// TestMediaPKFromURL_Invalid проверяет отказ на ссылках без кода публикации.
func TestMediaPKFromURL_Invalid(t *testing.T) {
	for _, rawURL := range []string{
		"https://www.instagram.com/alice/",
		"https://www.instagram.com/p/",
		"https://www.instagram.com/p/АБВ/",
	} {
		if _, err := MediaPKFromURL(rawURL); err == nil {
			t.Fatalf("ожидалась ошибка для %s", rawURL)
		}
	}
}
