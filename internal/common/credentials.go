package common

import "aig_go/models"

// Credentials собирает набор паролей для identity. Пароли из запроса
// имеют приоритет; пустые значения добираются из конфигурации —
// общий пароль парка и исторический резервный.
func Credentials(identity, password, fallbackPassword, commonPassword, secondaryPassword string) models.CredentialSet {
	if password == "" {
		password = commonPassword
	}
	if fallbackPassword == "" {
		fallbackPassword = secondaryPassword
	}
	return models.CredentialSet{
		Identity:       identity,
		PrimarySecret:  password,
		FallbackSecret: fallbackPassword,
	}
}
