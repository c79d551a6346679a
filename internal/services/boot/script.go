package boot

import "strings"

// Line is one scripted step of the boot sequence.
type Line struct {
	Prompt  string
	Output  string
	Success bool
}

// Script is an ordered, read-only list of boot lines shared by every session.
type Script []Line

var English = Script{
	{Prompt: "> Initializing system...", Output: "System initialized successfully", Success: true},
	{Prompt: "> Connecting to servers...", Output: "Connected to primary server", Success: true},
	{Prompt: "> Running security check...", Output: "Vulnerabilities detected: 3", Success: true},
	{Prompt: "> Breaching system...", Output: "Progress: ██████████ 100%", Success: true},
	{Prompt: "> Acquiring access...", Output: "Access granted: ROOT", Success: true},
	{Prompt: "> Downloading data...", Output: "Downloaded: 1.2 TB", Success: true},
	{Prompt: "> Activating protocol...", Output: "Protocol activated: ELITE", Success: true},
	{Prompt: "> Checking status...", Output: "Status: ACTIVE", Success: true},
	{Prompt: "> Connecting to database...", Output: "Database: ELITE_DB", Success: true},
	{Prompt: "> Loading profiles...", Output: "Profiles loaded: 1337", Success: true},
}

var Russian = Script{
	{Prompt: "> Инициализация системы...", Output: "Система инициализирована успешно", Success: true},
	{Prompt: "> Подключение к серверам...", Output: "Подключено к основному серверу", Success: true},
	{Prompt: "> Проверка безопасности...", Output: "Обнаружены уязвимости: 3", Success: true},
	{Prompt: "> Взлом системы...", Output: "Прогресс: ██████████ 100%", Success: true},
	{Prompt: "> Получение доступа...", Output: "Доступ получен: ROOT", Success: true},
	{Prompt: "> Загрузка данных...", Output: "Загружено: 1.2 TB", Success: true},
	{Prompt: "> Активация протокола...", Output: "Протокол активирован: ELITE", Success: true},
	{Prompt: "> Проверка статуса...", Output: "Статус: АКТИВЕН", Success: true},
	{Prompt: "> Подключение к базе...", Output: "База данных: ELITE_DB", Success: true},
	{Prompt: "> Загрузка профилей...", Output: "Загружено профилей: 1337", Success: true},
}

// ForLocale returns the boot script for a locale tag such as "en" or "ru-RU".
func ForLocale(locale string) (Script, bool) {
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
