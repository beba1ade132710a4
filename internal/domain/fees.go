package domain

import "errors"

// ErrOverCapacity гостей больше максимальной вместимости номера
var ErrOverCapacity = errors.New("domain: guests exceed room max occupancy")

// FeeBreakdown расчет стоимости бронирования
type FeeBreakdown struct {
	BasePrice     int64
	AdditionalFee int64
	OptionsFee    int64
	Total         int64
	ExcessGuests  int
}

// feeTier категория гостей и её цена; тарифы перечислены от дешевого к дорогому
type feeTier struct {
	count int
	price int64
}

// ExcessGuests платящие гости сверх стандартной вместимости.
// Первые FreeInfants младенцев не считаются вовсе.
func ExcessGuests(standardOccupancy int, g GuestCounts) int {
	paidInfants := g.Infants - min(g.Infants, FreeInfants)
	paying := g.Adults + g.Students + g.Children + paidInfants
	return max(0, paying-standardOccupancy)
}

// CalculateAdditionalFee доплата за гостей сверх стандартной вместимости.
// Превышение списывается с категорий от самой дешевой: платные младенцы -> дети -> студенты -> взрослые.
func CalculateAdditionalFee(standardOccupancy int, g GuestCounts) int64 {
	remaining := ExcessGuests(standardOccupancy, g)
	if remaining == 0 {
		return 0
	}

	paidInfants := g.Infants - min(g.Infants, FreeInfants)
	tiers := []feeTier{
		{count: paidInfants, price: FeePerInfant},
		{count: g.Children, price: FeePerChild},
		{count: g.Students, price: FeePerStudent},
		{count: g.Adults, price: FeePerAdult},
	}

	var fee int64
	for _, tier := range tiers {
		if remaining == 0 {
			break
		}
		units := min(remaining, tier.count)
		fee += int64(units) * tier.price
		remaining -= units
	}

	return fee
}

// CalculateOptionsFee сумма цен выбранных опций. Неизвестные ключи стоят 0.
func CalculateOptionsFee(keys []OptionKey) int64 {
	var fee int64
	for _, k := range keys {
		fee += OptionPrices[k]
	}
	return fee
}

// CalculateFees полный расчет: базовая цена + доплата за гостей + опции
func CalculateFees(room *Room, basePrice int64, g GuestCounts, options []OptionKey) FeeBreakdown {
	additional := CalculateAdditionalFee(room.StandardOccupancy, g)
	optionsFee := CalculateOptionsFee(options)

	return FeeBreakdown{
		BasePrice:     basePrice,
		AdditionalFee: additional,
		OptionsFee:    optionsFee,
		Total:         basePrice + additional + optionsFee,
		ExcessGuests:  ExcessGuests(room.StandardOccupancy, g),
	}
}

// CheckCapacity блокирующая проверка: все гости, включая младенцев, не больше MaxOccupancy.
// Автоматически ничего не исправляется.
func CheckCapacity(room *Room, g GuestCounts) error {
	if g.Total() > room.MaxOccupancy {
		return ErrOverCapacity
	}
	return nil
}
