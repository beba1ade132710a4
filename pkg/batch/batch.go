// Package batch описывает пакетные операции с явно выбранной семантикой.
//
// AllOrNothing - элементы обрабатываются последовательно внутри одной транзакции,
// первая ошибка откатывает весь пакет.
// BestEffort - элементы обрабатываются конкурентно, ошибка одного элемента не влияет
// на остальные и ничего не откатывается; результат каждого элемента возвращается вызывающему.
package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelism ограничение параллелизма для BestEffort по умолчанию
const DefaultParallelism = 8

// ErrItemFailed оборачивает ошибку элемента в AllOrNothing
var ErrItemFailed = errors.New("batch: item failed")

// Transactor выполняет функцию в транзакции (txmanager.TransactionManager)
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result результат обработки одного элемента
type Result struct {
	Index int
	Err   error
}

// Report итог BestEffort-пакета. Results упорядочены как входные элементы.
type Report struct {
	Results []Result
}

// Failed количество элементов с ошибкой
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Succeeded количество успешно обработанных элементов
func (r Report) Succeeded() int {
	return len(r.Results) - r.Failed()
}

// RunBestEffort обрабатывает элементы конкурентно (не более parallelism одновременно).
// Порядок выполнения не гарантируется.
func RunBestEffort[T any](ctx context.Context, items []T, parallelism int, fn func(ctx context.Context, item T) error) Report {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}

	results := make([]Result, len(items))

	// errgroup используется только как ограничитель параллелизма:
	// горутины всегда возвращают nil, чтобы не отменять соседей
	var g errgroup.Group
	g.SetLimit(parallelism)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			results[i] = Result{Index: i, Err: fn(ctx, item)}
			return nil
		})
	}
	_ = g.Wait()

	return Report{Results: results}
}

// RunAllOrNothing обрабатывает элементы по очереди в одной транзакции
func RunAllOrNothing[T any](ctx context.Context, tx Transactor, items []T, fn func(ctx context.Context, item T) error) error {
	return tx.Do(ctx, func(txCtx context.Context) error {
		for i, item := range items {
			if err := fn(txCtx, item); err != nil {
				return fmt.Errorf("%w: item #%d: %w", ErrItemFailed, i, err)
			}
		}
		return nil
	})
}
