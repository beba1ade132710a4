package upload_image

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/service/content"
)

const (
	// FormFile поле multipart-формы с файлом
	FormFile = "file"
	// FormFolder необязательное поле с каталогом (rooms, pages, ...)
	FormFolder = "folder"

	// multipartOverhead запас на заголовки частей формы сверх размера файла
	multipartOverhead = 64 << 10

	msgFileRequired    = "업로드할 파일을 선택해 주세요"
	msgFileTooLarge    = "파일 크기는 5MB 이하여야 합니다"
	msgUnsupportedType = "이미지 파일만 업로드할 수 있습니다"
	msgInvalidInput    = "업로드 정보를 확인해 주세요"
)

type Handler struct {
	service ContentService
	logger  Logger
}

func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/uploads (multipart/form-data: file, folder)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxUploadSizeBytes+multipartOverhead)

	if err := r.ParseMultipartForm(domain.MaxUploadSizeBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.Warn("POST /admin/uploads - Body too large: limit=%d", maxErr.Limit)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		h.logger.Warn("POST /admin/uploads - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgFileRequired)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(FormFile)
	if err != nil {
		h.logger.Warn("POST /admin/uploads - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgFileRequired)
		return
	}
	defer file.Close()

	if header.Size > domain.MaxUploadSizeBytes {
		h.logger.Warn("POST /admin/uploads - File too large: name=%s, size=%d", header.Filename, header.Size)
		handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
		return
	}

	result, err := h.service.UploadImage(r.Context(), r.FormValue(FormFolder), file)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrFileTooLarge):
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)

		case errors.Is(err, content.ErrUnsupportedType):
			h.logger.Warn("POST /admin/uploads - Unsupported type: name=%s, error=%v", header.Filename, err)
			handlers.RespondError(w, http.StatusUnsupportedMediaType, msgUnsupportedType)

		case errors.Is(err, content.ErrInvalidInput):
			h.logger.Warn("POST /admin/uploads - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/uploads - Failed to upload: name=%s, error=%v", header.Filename, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/uploads - Uploaded: name=%s, url=%s", header.Filename, result.URL)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
