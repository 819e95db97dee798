// Package constants содержит константы, используемые демонстрационной
// утилитой faillog. Константы сгруппированы по функциональному назначению.
package constants

// AppName — имя утилиты в диагностических логах.
const AppName = "faillog"

// Коды завершения процесса.
const (
	// ExitOK — все сценарии отработали и отказы были перевозбуждены.
	ExitOK = 0
	// ExitFailure — ошибка конфигурации либо сценарий повёл себя
	// не по контракту (отказ не дошёл до вызывающего).
	ExitFailure = 1
)

// Имена демонстрационных сценариев.
const (
	// ScenarioAll запускает все сценарии по порядку.
	ScenarioAll = "all"
	// ScenarioDivide — целочисленное деление на ноль (panic рантайма).
	ScenarioDivide = "divide"
	// ScenarioFile — чтение отсутствующего файла.
	ScenarioFile = "file"
	// ScenarioLookup — поиск отсутствующего ключа.
	ScenarioLookup = "lookup"
	// ScenarioDecode — декодирование windows-1251 в короткий буфер.
	ScenarioDecode = "decode"
	// ScenarioCustom — фиксированный id, имя операции и контекстные поля.
	ScenarioCustom = "custom"
)

// EnvConfigPath — переменная окружения с путём к YAML-конфигурации.
const EnvConfigPath = "FL_CONFIG_PATH"
