package entities

import (
	"errors"
	"time"
)

type AutoshipStatus string

const (
	AutoshipStatusActive    AutoshipStatus = "active"
	AutoshipStatusPaused    AutoshipStatus = "paused"
	AutoshipStatusCancelled AutoshipStatus = "cancelled"
)

var autoshipTransitions = map[AutoshipStatus][]AutoshipStatus{
	AutoshipStatusActive:    {AutoshipStatusPaused, AutoshipStatusCancelled},
	AutoshipStatusPaused:    {AutoshipStatusActive, AutoshipStatusCancelled},
	AutoshipStatusCancelled: {},
}

func (s AutoshipStatus) Valid() bool {
	_, ok := autoshipTransitions[s]
	return ok
}

func (s AutoshipStatus) CanTransitionTo(target AutoshipStatus) bool {
	for _, allowed := range autoshipTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

type FrequencyUnit string

const (
	FrequencyUnitDay   FrequencyUnit = "day"
	FrequencyUnitWeek  FrequencyUnit = "week"
	FrequencyUnitMonth FrequencyUnit = "month"
)

// Frequency — интервал между доставками подписки.
type Frequency struct {
	Unit  FrequencyUnit
	Count int
}

func (f Frequency) Valid() bool {
	if f.Count <= 0 {
		return false
	}
	switch f.Unit {
	case FrequencyUnitDay, FrequencyUnitWeek, FrequencyUnitMonth:
		return true
	}
	return false
}

// Next возвращает from + один интервал. Для месяцев используется
// нормализация time.AddDate: 31 января + месяц даёт 2-3 марта.
func (f Frequency) Next(from time.Time) time.Time {
	switch f.Unit {
	case FrequencyUnitWeek:
		return from.AddDate(0, 0, 7*f.Count)
	case FrequencyUnitMonth:
		return from.AddDate(0, f.Count, 0)
	default:
		return from.AddDate(0, 0, f.Count)
	}
}

// AutoshipItem — подписанная позиция. Цена фиксируется при оформлении
// подписки и используется для создаваемых по расписанию заказов.
type AutoshipItem struct {
	ProductID string
	Quantity  int
	UnitPrice int
}

type Autoship struct {
	AutoshipID string
	CustomerID string
	Status     AutoshipStatus
	Frequency  Frequency
	// NextRunAt не nil тогда и только тогда, когда подписка активна.
	NextRunAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []AutoshipItem
}

var (
	ErrAutoshipNotFound = errors.New("autoship not found")
	ErrInvalidState     = errors.New("invalid autoship state")
)
