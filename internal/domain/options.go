package domain

import (
	"errors"
	"fmt"
)

// OptionKey ключ дополнительной опции бронирования
type OptionKey string

const (
	OptionBBQ4           OptionKey = "bbq4"      // барбекю на 4 персоны
	OptionBBQ4Plus       OptionKey = "bbq4plus"  // барбекю больше 4 персон
	OptionHotWaterWinter OptionKey = "hotwater1" // подогрев бассейна, зима
	OptionHotWaterSummer OptionKey = "hotwater2" // подогрев бассейна, лето
	OptionFireplace      OptionKey = "fireplace"
)

// OptionPrices фиксированные цены опций
var OptionPrices = map[OptionKey]int64{
	OptionBBQ4:           30000,
	OptionBBQ4Plus:       50000,
	OptionHotWaterWinter: 100000,
	OptionHotWaterSummer: 50000,
	OptionFireplace:      0,
}

// optionOrder порядок опций в ответах и выгрузках
var optionOrder = []OptionKey{
	OptionBBQ4,
	OptionBBQ4Plus,
	OptionHotWaterWinter,
	OptionHotWaterSummer,
	OptionFireplace,
}

// exclusiveGroups взаимоисключающие варианты
var exclusiveGroups = [][]OptionKey{
	{OptionBBQ4, OptionBBQ4Plus},
	{OptionHotWaterWinter, OptionHotWaterSummer},
}

// IsValid известна ли опция
func (k OptionKey) IsValid() bool {
	_, ok := OptionPrices[k]
	return ok
}

// OptionSelection выбранные опции формы бронирования.
// Взаимоисключение обеспечивается здесь, а не в расчете стоимости.
type OptionSelection struct {
	selected map[OptionKey]bool
}

// NewOptionSelection применяет Toggle к ключам по порядку.
// Повторный ключ снимает выбор, как повторный клик в форме.
func NewOptionSelection(keys ...OptionKey) *OptionSelection {
	s := &OptionSelection{selected: make(map[OptionKey]bool)}
	for _, k := range keys {
		s.Toggle(k)
	}
	return s
}

// Toggle переключает опцию. Выбор варианта из группы молча снимает другой вариант той же группы.
// Неизвестные ключи игнорируются.
func (s *OptionSelection) Toggle(key OptionKey) {
	if !key.IsValid() {
		return
	}
	if s.selected[key] {
		delete(s.selected, key)
		return
	}
	for _, group := range exclusiveGroups {
		if !containsOption(group, key) {
			continue
		}
		for _, other := range group {
			delete(s.selected, other)
		}
	}
	s.selected[key] = true
}

// Has выбрана ли опция
func (s *OptionSelection) Has(key OptionKey) bool {
	return s.selected[key]
}

// Keys выбранные опции в каноническом порядке
func (s *OptionSelection) Keys() []OptionKey {
	keys := make([]OptionKey, 0, len(s.selected))
	for _, k := range optionOrder {
		if s.selected[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

func containsOption(list []OptionKey, key OptionKey) bool {
	for _, k := range list {
		if k == key {
			return true
		}
	}
	return false
}

// ErrUnknownOption неизвестный ключ опции во входных данных
var ErrUnknownOption = errors.New("domain: unknown option key")

// ParseOptionKeys разбирает список опций из запроса.
// Повторы игнорируются, из взаимоисключающих вариантов остается последний.
func ParseOptionKeys(raw []string) ([]OptionKey, error) {
	s := NewOptionSelection()
	for _, r := range raw {
		key := OptionKey(r)
		if !key.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOption, r)
		}
		if !s.Has(key) {
			s.Toggle(key)
		}
	}
	return s.Keys(), nil
}
