package models

// CredentialSet содержит пароли аккаунта в порядке попыток входа.
// Часть аккаунтов заведена под историческим паролем, поэтому помимо
// основного хранится резервный. Набор не сохраняется на диск —
// его передаёт вызывающая сторона при каждой операции.
type CredentialSet struct {
	Identity       string `json:"username"`
	PrimarySecret  string `json:"password"`
	FallbackSecret string `json:"fallback_password,omitempty"`
}

// Secrets возвращает пароли в порядке перебора: сначала основной,
// затем резервный, если он задан.
func (c CredentialSet) Secrets() []string {
	secrets := []string{c.PrimarySecret}
	if c.FallbackSecret != "" {
		secrets = append(secrets, c.FallbackSecret)
	}
	return secrets
}
