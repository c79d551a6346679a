package interpreter

import "strings"

const progressBar = "██████████ 100%"

var English = &Vocabulary{
	locale:   "en",
	notFound: "Command not found: ",
	commands: map[string]command{
		"help":    {output: "Available commands: help, clear, status, hack, scan, exit, matrix, decrypt, encrypt, ping"},
		"clear":   {signal: Clear},
		"status":  {output: "System status: ACTIVE\nAccess level: ROOT\nProtection: BREACHED"},
		"hack":    {output: "Starting breach...\nProgress: " + progressBar + "\nAccess granted!"},
		"scan":    {output: "Scanning system...\nVulnerabilities found: 7\nRecommended action: breach"},
		"matrix":  {output: "Launching Matrix effect...\n01010101 10101010\nMatrix activated"},
		"decrypt": {output: "Decrypting data...\nProgress: " + progressBar + "\nData decrypted"},
		"encrypt": {output: "Encrypting data...\nProgress: " + progressBar + "\nData encrypted"},
		"ping":    {output: "PING localhost\nResponse time: 0.001ms\nConnection stable"},
		"exit":    {output: "Connection closed", signal: Exit},
	},
}

var Russian = &Vocabulary{
	locale:   "ru",
	notFound: "Команда не найдена: ",
	commands: map[string]command{
		"help":    {output: "Доступные команды: help, clear, status, hack, scan, exit, matrix, decrypt, encrypt, ping"},
		"clear":   {signal: Clear},
		"status":  {output: "Статус системы: АКТИВЕН\nУровень доступа: ROOT\nЗащита: ВЗЛОМАНА"},
		"hack":    {output: "Начинаю взлом...\nПрогресс: " + progressBar + "\nДоступ получен!"},
		"scan":    {output: "Сканирование системы...\nНайдено уязвимостей: 7\nРекомендуемые действия: взлом"},
		"matrix":  {output: "Запуск Matrix-эффекта...\n01010101 10101010\nМатрица активирована"},
		"decrypt": {output: "Расшифровка данных...\nПрогресс: " + progressBar + "\nДанные расшифрованы"},
		"encrypt": {output: "Шифрование данных...\nПрогресс: " + progressBar + "\nДанные зашифрованы"},
		"ping":    {output: "PING localhost\nВремя отклика: 0.001ms\nСоединение стабильно"},
		"exit":    {output: "Соединение закрыто", signal: Exit},
	},
}

// ForLocale returns the vocabulary for a locale tag such as "en" or "ru-RU".
func ForLocale(locale string) (*Vocabulary, bool) {
	tag := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	switch tag {
	case "en", "":
		return English, true
	case "ru":
		return Russian, true
	}
	return nil, false
}
