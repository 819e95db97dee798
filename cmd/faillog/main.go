// Package main содержит точку входа демонстрационной утилиты faillog.
// Утилита прогоняет набор заведомо отказывающих операций через обёртку
// наблюдаемости: каждая операция пишет в stdout одну структурированную
// лог-строку и перевозбуждает отказ, который утилита перехватывает и
// подтверждает в диагностическом логе (stderr).
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"golang.org/x/text/encoding/charmap"

	"github.com/Kargones/faillog"
	"github.com/Kargones/faillog/internal/config"
	"github.com/Kargones/faillog/internal/constants"
	"github.com/Kargones/faillog/internal/pkg/logging"
)

func main() {
	os.Exit(run())
}

// run выполняет выбранные сценарии и возвращает код завершения.
func run() int {
	cfg, err := config.MustLoad()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", constants.AppName, err)
		return constants.ExitFailure
	}

	l := logging.NewLogger(cfg.Logging).With("app", constants.AppName)
	l.Info("Запуск демонстрации", "scenario", cfg.Scenario)

	ok := true
	for _, s := range selectScenarios(cfg.Scenario) {
		if !runScenario(l, cfg, s) {
			ok = false
		}
	}

	if !ok {
		l.Error("Часть сценариев нарушила контракт обёртки")
		return constants.ExitFailure
	}
	l.Info("Все отказы перевозбуждены, по одной лог-строке на отказ")
	return constants.ExitOK
}

// scenario — одна демонстрационная операция и её опции вызова.
type scenario struct {
	name string
	op   func(context.Context) error
	opts []faillog.Option
}

// selectScenarios возвращает сценарии для запуска по имени из конфигурации.
func selectScenarios(name string) []scenario {
	all := []scenario{
		{name: constants.ScenarioDivide, op: divideByZero},
		{name: constants.ScenarioFile, op: readMissingFile},
		{name: constants.ScenarioLookup, op: lookupMissingKey},
		{name: constants.ScenarioDecode, op: decodeShortBuffer},
		{
			name: constants.ScenarioCustom,
			op:   indexOutOfRange,
			opts: []faillog.Option{
				faillog.WithCorrelationID("fixed-id-1"),
				faillog.WithOperation("custom_op"),
				faillog.WithField("user", "frank"),
				faillog.WithField("rate", 0.125),
			},
		},
	}

	if name == constants.ScenarioAll {
		return all
	}
	for _, s := range all {
		if s.name == name {
			return []scenario{s}
		}
	}
	return nil
}

// runScenario прогоняет операцию через обёртку и проверяет контракт:
// отказ обязан дойти до вызывающего (ошибкой или panic).
// Возвращает false при нарушении контракта.
func runScenario(l logging.Logger, cfg *config.Config, s scenario) bool {
	opts := s.opts
	if cfg.CorrelationID != "" {
		opts = append([]faillog.Option{faillog.WithCorrelationID(cfg.CorrelationID)}, opts...)
	}
	wrapped := faillog.Wrap(s.op)

	failed := false
	func() {
		defer func() {
			if p := recover(); p != nil {
				failed = true
				l.Info("Отказ перевозбуждён как panic", "scenario", s.name, "panic", fmt.Sprint(p))
			}
		}()
		if err := wrapped(context.Background(), opts...); err != nil {
			failed = true
			l.Info("Отказ возвращён вызывающему", "scenario", s.name, "error", err.Error())
		}
	}()

	if !failed {
		l.Error("Сценарий не отказал — нарушение контракта", "scenario", s.name)
	}
	return failed
}

// divideByZero — целочисленное деление на ноль: panic рантайма,
// категория DivisionByZero, сообщение у рантайма фиксированное.
func divideByZero(_ context.Context) error {
	a, b := 10, 0
	_ = a / b
	return nil
}

// readMissingFile — чтение отсутствующего файла: категория NotFound.
func readMissingFile(_ context.Context) error {
	_, err := os.ReadFile("/nonexistent/faillog-demo.txt")
	return err
}

// lookupMissingKey — поиск ключа "b" в данных {"a": 1}:
// категория KeyNotFound.
func lookupMissingKey(_ context.Context) error {
	limits := map[string]int{"a": 1}
	if _, ok := limits["b"]; !ok {
		return fmt.Errorf("key %q: %w", "b", sql.ErrNoRows)
	}
	return nil
}

// decodeShortBuffer — декодирование windows-1251 в заведомо короткий
// буфер: категория BufferError (transform.ErrShortDst).
func decodeShortBuffer(_ context.Context) error {
	dec := charmap.Windows1251.NewDecoder()
	src := []byte{0xCF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2} // "Привет" в windows-1251
	dst := make([]byte, 2)
	_, _, err := dec.Transform(dst, src, true)
	return err
}

// indexOutOfRange — выход за границы среза: panic рантайма,
// категория OutOfRange.
func indexOutOfRange(_ context.Context) error {
	data := []int{1, 2, 3}
	i := 10
	_ = data[i]
	return nil
}
