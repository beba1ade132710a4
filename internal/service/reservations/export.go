package reservations

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
	"github.com/m04kA/villa-booking-service/pkg/xlsxexport"
)

const exportSheet = "예약목록"

var exportHeaders = []string{
	"예약번호", "객실", "체크인", "체크아웃", "박수",
	"예약자", "연락처", "이메일", "투숙객", "투숙객 연락처",
	"성인", "학생", "아동", "유아", "옵션",
	"객실요금", "추가요금", "옵션요금", "총액", "상태",
	"취소일시", "취소주체", "입실", "퇴실", "요청사항", "예약일시",
}

var exportWidths = []float64{14, 14, 12, 12, 6, 12, 15, 22, 12, 15}

var statusLabels = map[domain.ReservationStatus]string{
	domain.StatusPending:   "대기",
	domain.StatusConfirmed: "확정",
	domain.StatusCancelled: "취소",
}

var actorLabels = map[domain.CancelActor]string{
	domain.CancelledByAdmin:    "관리자",
	domain.CancelledByCustomer: "고객",
}

// Export пишет в w xlsx со всеми бронированиями по фильтру (без пагинации)
func (s *Service) Export(ctx context.Context, req *models.ListRequest, w io.Writer) (int, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("Export: invalid filter: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Export: repository error: %v", err)
		return 0, fmt.Errorf("%w: Export - repository error: %v", ErrInternal, err)
	}

	rows := make([][]interface{}, 0, len(list))
	for _, r := range list {
		rows = append(rows, exportRow(r))
	}

	if err := xlsxexport.Write(w, xlsxexport.Table{
		Sheet:        exportSheet,
		Headers:      exportHeaders,
		Rows:         rows,
		ColumnWidths: exportWidths,
	}); err != nil {
		s.logger.Error("Export: failed to write workbook: %v", err)
		return 0, fmt.Errorf("%w: Export - write: %v", ErrInternal, err)
	}

	s.logger.Info("Export: %d reservations exported", len(list))
	return len(list), nil
}

func exportRow(r *domain.Reservation) []interface{} {
	options := make([]string, 0, len(r.Options))
	for _, o := range r.Options {
		options = append(options, string(o))
	}

	var cancelledBy string
	if r.CancelledBy != nil {
		cancelledBy = actorLabels[*r.CancelledBy]
	}

	return []interface{}{
		r.Number,
		r.RoomName,
		r.CheckIn.Format(domain.DateFormat),
		r.CheckOut.Format(domain.DateFormat),
		r.Nights,
		r.BookerName,
		r.BookerPhone,
		deref(r.BookerEmail),
		deref(r.GuestName),
		deref(r.GuestPhone),
		r.Guests.Adults,
		r.Guests.Students,
		r.Guests.Children,
		r.Guests.Infants,
		strings.Join(options, ", "),
		r.RoomPrice,
		r.AdditionalFee,
		r.OptionsFee,
		r.TotalAmount,
		statusLabels[r.Status],
		formatExportTime(r.CancelledAt),
		cancelledBy,
		yesNo(r.CheckedIn),
		yesNo(r.CheckedOut),
		deref(r.CustomerNote),
		r.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatExportTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func yesNo(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}
