package showcase

import (
	"log/slog"
	"net/http"

	"github.com/mytheresa/go-feature-showcase/app/api"
	"github.com/mytheresa/go-feature-showcase/textutil"
)

const (
	SampleText     = "Hello from C# 14"
	truncateLength = 10
)

// EnhancedForm is bound from the query string or an url-encoded body.
type EnhancedForm struct {
	Email string `json:"email" form:"email" validate:"required,email"`
	Name  string `json:"name" form:"name" validate:"required"`
}

type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) HandleFieldBacked(w http.ResponseWriter, r *http.Request) {
	var holder FieldBacked

	message := "Message"
	if err := holder.SetMessage(&message); err != nil {
		api.RespondError(w, r, h.logger, http.StatusInternalServerError, "failed to set message", err)
		return
	}

	h.logger.DebugContext(r.Context(), "field-backed message set", slog.String("message", *holder.Message()))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) HandleExtensionMembers(w http.ResponseWriter, r *http.Request) {
	text := SampleText
	if t := r.URL.Query().Get("text"); t != "" {
		text = t
	}

	h.logger.InfoContext(r.Context(), "string facts",
		slog.String("text", text),
		slog.Int("word_count", textutil.WordCount(text)),
		slog.Bool("is_empty", textutil.IsEmpty(text)),
		slog.String("truncated", textutil.Truncate(text, truncateLength)),
		slog.String("reversed", textutil.Reverse(text)),
	)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) HandleNullConditional(w http.ResponseWriter, r *http.Request) {
	counter := &NullableCounter{}
	applied := counter.Increment(1)

	h.logger.InfoContext(r.Context(), "null-conditional increment",
		slog.Bool("applied", applied),
		slog.Any("num", counter.Num),
	)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) HandleEnhancedValidation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		api.RespondError(w, r, h.logger, http.StatusBadRequest, "Invalid form body", err)
		return
	}

	form := EnhancedForm{
		Email: r.Form.Get("email"),
		Name:  r.Form.Get("name"),
	}

	fields, err := api.Validate(form)
	if err != nil {
		api.RespondError(w, r, h.logger, http.StatusInternalServerError, "failed to validate form", err)
		return
	}
	if fields != nil {
		api.RespondValidation(w, fields)
		return
	}

	api.RespondJSON(w, http.StatusOK, form)
}
