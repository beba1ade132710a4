package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/villa-booking-service/internal/domain"
	reservationRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/reservation"
	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
	"github.com/m04kA/villa-booking-service/pkg/batch"
)

// Service сервис для работы с бронированиями: поиск гостем, самостоятельная отмена
// и операции администратора
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	parallelism     int
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// parallelism ограничивает конкурентность массовых операций.
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	timeProvider TimeProvider,
	parallelism int,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    timeProvider,
		parallelism:     parallelism,
		logger:          logger,
	}
}

// Lookup бронирования гостя по имени и телефону. Пустой список - нормальный результат.
func (s *Service) Lookup(ctx context.Context, name, phone string) ([]models.ReservationResponse, error) {
	name = strings.TrimSpace(name)
	phone = normalizePhone(phone)
	if name == "" || phone == "" {
		return nil, fmt.Errorf("%w: name and phone are required", ErrInvalidInput)
	}

	list, err := s.reservationRepo.FindByBooker(ctx, name, phone)
	if err != nil {
		s.logger.Error("Lookup: repository error: %v", err)
		return nil, fmt.Errorf("%w: Lookup - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Lookup: found %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// CancelByCustomer самостоятельная отмена гостем.
// Телефон должен совпадать, отменить можно только до дня заезда включительно.
func (s *Service) CancelByCustomer(ctx context.Context, number, phone string) (*models.ReservationResponse, error) {
	s.logger.Info("CancelByCustomer: number=%s", number)

	res, err := s.reservationRepo.GetByNumber(ctx, strings.TrimSpace(number))
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("CancelByCustomer: reservation %s not found", number)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("CancelByCustomer: repository error for %s: %v", number, err)
		return nil, fmt.Errorf("%w: CancelByCustomer - repository error: %v", ErrInternal, err)
	}

	if res.BookerPhone != normalizePhone(phone) {
		s.logger.Warn("CancelByCustomer: phone mismatch for %s", number)
		return nil, ErrPhoneMismatch
	}

	now := s.timeProvider.Now()
	if !res.CanTransitionTo(domain.StatusCancelled) || domain.CalendarDate(res.CheckIn).Before(domain.CalendarDate(now)) {
		s.logger.Warn("CancelByCustomer: reservation %s cannot be cancelled, status=%s", number, res.Status)
		return nil, ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, res.ID, domain.CancelledByCustomer, now); err != nil {
		return nil, s.mapUpdateError("CancelByCustomer", res.ID, err)
	}
	s.metrics.IncReservationCancelled(string(domain.CancelledByCustomer))

	updated, err := s.reservationRepo.GetByID(ctx, res.ID)
	if err != nil {
		s.logger.Error("CancelByCustomer: failed to reload reservation id=%d: %v", res.ID, err)
		return nil, fmt.Errorf("%w: CancelByCustomer - reload: %v", ErrInternal, err)
	}

	s.logger.Info("CancelByCustomer: reservation %s cancelled", number)
	resp := models.FromDomainReservation(updated)
	return &resp, nil
}

// List страница бронирований для админки, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	req.Normalize()

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		total int
		list  []*domain.Reservation
	)

	// Счетчик и страница читаются из одного снимка
	err = s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		total, err = s.reservationRepo.Count(txCtx, filter)
		if err != nil {
			s.logger.Error("List: count error: %v", err)
			return fmt.Errorf("%w: List - count: %v", ErrInternal, err)
		}

		filter.Limit = uint64(req.Size)
		filter.Offset = uint64((req.Page - 1) * req.Size)

		list, err = s.reservationRepo.List(txCtx, filter)
		if err != nil {
			s.logger.Error("List: repository error: %v", err)
			return fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		s.logger.Error("List: transaction error: %v", err)
		return nil, fmt.Errorf("%w: List - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("List: page=%d size=%d total=%d", req.Page, req.Size, total)
	return &models.ListResponse{
		Items: models.FromDomainReservationList(list),
		Total: total,
		Page:  req.Page,
		Size:  req.Size,
	}, nil
}

// UpdateStatus смена статуса администратором.
// Отмена сохраняет время и инициатора admin. Повторная установка того же статуса ничего не делает.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: reservation id=%d to status=%s", id, req.Status)

	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	return s.applyStatus(ctx, id, status)
}

// BulkUpdateStatus массовая смена статуса. Каждое бронирование обрабатывается независимо,
// успешные изменения не откатываются при ошибках в других.
func (s *Service) BulkUpdateStatus(ctx context.Context, req *models.BulkStatusRequest) (*models.BulkStatusResponse, error) {
	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	if len(req.IDs) == 0 {
		return nil, fmt.Errorf("%w: ids are required", ErrInvalidInput)
	}

	s.logger.Info("BulkUpdateStatus: %d reservations to status=%s", len(req.IDs), status)

	report := batch.RunBestEffort(ctx, req.IDs, s.parallelism, func(ctx context.Context, id int64) error {
		return s.applyStatus(ctx, id, status)
	})

	resp := &models.BulkStatusResponse{
		Results:   make([]models.BulkItemResult, 0, len(req.IDs)),
		Succeeded: report.Succeeded(),
		Failed:    report.Failed(),
	}
	for _, r := range report.Results {
		item := models.BulkItemResult{ID: req.IDs[r.Index], OK: r.Err == nil}
		if r.Err != nil {
			item.Error = bulkErrorCode(r.Err)
		}
		resp.Results = append(resp.Results, item)
	}

	s.logger.Info("BulkUpdateStatus: succeeded=%d failed=%d", resp.Succeeded, resp.Failed)
	return resp, nil
}

// SetCheckFlags выставляет или снимает отметки заезда и выезда
func (s *Service) SetCheckFlags(ctx context.Context, id int64, req *models.CheckRequest) (*models.ReservationResponse, error) {
	if req.CheckedIn == nil && req.CheckedOut == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	res, err := s.get(ctx, "SetCheckFlags", id)
	if err != nil {
		return nil, err
	}

	if res.IsCancelled() {
		s.logger.Warn("SetCheckFlags: reservation id=%d is cancelled", id)
		return nil, ErrCannotCheck
	}

	now := s.timeProvider.Now()

	if req.CheckedIn != nil {
		if err := s.reservationRepo.SetCheckedIn(ctx, id, *req.CheckedIn, now); err != nil {
			return nil, s.mapUpdateError("SetCheckFlags", id, err)
		}
	}
	if req.CheckedOut != nil {
		if err := s.reservationRepo.SetCheckedOut(ctx, id, *req.CheckedOut, now); err != nil {
			return nil, s.mapUpdateError("SetCheckFlags", id, err)
		}
	}

	updated, err := s.get(ctx, "SetCheckFlags", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetCheckFlags: reservation id=%d checkedIn=%t checkedOut=%t", id, updated.CheckedIn, updated.CheckedOut)
	resp := models.FromDomainReservation(updated)
	return &resp, nil
}

// Вспомогательные методы

func (s *Service) applyStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	res, err := s.get(ctx, "UpdateStatus", id)
	if err != nil {
		return err
	}

	if res.Status == status {
		return nil
	}

	if !res.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: reservation id=%d cannot go from %s to %s", id, res.Status, status)
		return ErrInvalidTransition
	}

	if status == domain.StatusCancelled {
		if err := s.reservationRepo.Cancel(ctx, id, domain.CancelledByAdmin, s.timeProvider.Now()); err != nil {
			return s.mapUpdateError("UpdateStatus", id, err)
		}
		s.metrics.IncReservationCancelled(string(domain.CancelledByAdmin))
		return nil
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		return s.mapUpdateError("UpdateStatus", id, err)
	}
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return res, nil
}

func (s *Service) mapUpdateError(op string, id int64, err error) error {
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Warn("%s: reservation id=%d not found during update", op, id)
		return ErrReservationNotFound
	}
	s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// bulkErrorCode машинный код ошибки элемента для ответа API
func bulkErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrReservationNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	default:
		return "internal"
	}
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
