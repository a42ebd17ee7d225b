package location

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"warehouse-console/internal/warehouse/models"
)

// ============================================================
// Location Code Parser
// ============================================================

// ErrInvalidFormat - код ячейки не разбирается. Все ошибки Parse оборачивают его.
var ErrInvalidFormat = errors.New("invalid location code format")

// Буква ряда + только цифры. Последняя цифра хвоста - ярус, остальное - колонка.
var codePattern = regexp.MustCompile(`^[A-Z](\d+)$`)

// columnWidth - минимальная ширина колонки в каноническом коде (A + 01 + 2).
const columnWidth = 2

type ParseError struct {
	Code   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidFormat, e.Code, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidFormat
}

// Parse разбирает код вида <Буква><цифры><цифра> в координату.
// Для некорректной строки возвращает *ParseError, частичного результата нет.
func Parse(code string) (models.LocationCode, error) {
	match := codePattern.FindStringSubmatch(code)
	if match == nil {
		return models.LocationCode{}, &ParseError{Code: code, Reason: "expected one uppercase letter followed by digits"}
	}

	tail := match[1]
	if len(tail) < 2 {
		return models.LocationCode{}, &ParseError{Code: code, Reason: "need at least two digits for column and level"}
	}

	level := int(tail[len(tail)-1] - '0')
	column, err := strconv.Atoi(tail[:len(tail)-1])
	if err != nil {
		// только переполнение: regexp уже гарантирует цифры
		return models.LocationCode{}, &ParseError{Code: code, Reason: "column out of range"}
	}

	return models.LocationCode{
		Row:    code[:1],
		Column: column,
		Level:  level,
	}, nil
}

// Format собирает канонический код: ряд + колонка (минимум 2 знака) + ярус.
func Format(c models.LocationCode) string {
	return fmt.Sprintf("%s%0*d%d", c.Row, columnWidth, c.Column, c.Level)
}

// Canonical разбирает и заново собирает код, выравнивая формат (A0012 -> A012).
func Canonical(code string) (string, error) {
	c, err := Parse(code)
	if err != nil {
		return "", err
	}
	return Format(c), nil
}

func Valid(code string) bool {
	_, err := Parse(code)
	return err == nil
}
