package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	router "github.com/goliatone/go-router"
	"github.com/google/uuid"

	"github.com/gaurav-prasanna/folio/logging"
)

// Messages shown to the visitor after a submission.
const (
	MissingFieldsMessage = "Please fill in all required fields."
	InvalidEmailMessage  = "Please enter a valid email address."
	ThankYouMessage      = "Thank you for your message! I'll get back to you soon."
)

var (
	ErrMissingFields = errors.New(MissingFieldsMessage)
	ErrInvalidEmail  = errors.New(InvalidEmailMessage)
)

// Submission is the contact form as posted by the visitor.
type Submission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Record is an accepted submission.
type Record struct {
	ID         uuid.UUID `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
	Submission
}

// Inbox validates submissions and appends accepted ones to a writer as
// JSON lines.
type Inbox struct {
	mu       sync.Mutex
	enc      *json.Encoder
	validate *validator.Validate
	now      func() time.Time
}

func NewInbox(w io.Writer) *Inbox {
	return &Inbox{
		enc:      json.NewEncoder(w),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// Submit validates s and records it. Surrounding whitespace is ignored, so a
// field of only spaces counts as missing.
func (in *Inbox) Submit(s Submission) (Record, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Message = strings.TrimSpace(s.Message)

	if err := in.check(s); err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:         uuid.New(),
		ReceivedAt: in.now().UTC(),
		Submission: s,
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if err := in.enc.Encode(rec); err != nil {
		return Record{}, fmt.Errorf("storing submission: %w", err)
	}
	return rec, nil
}

func (in *Inbox) check(s Submission) error {
	err := in.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return ErrMissingFields
		}
	}
	return ErrInvalidEmail
}

// ContactResponse is the JSON body returned by ContactHandler.
type ContactResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// ContactHandler accepts form or JSON posts of the contact form.
type ContactHandler struct {
	inbox  *Inbox
	logger logging.Logger
}

func NewContactHandler(inbox *Inbox, logger logging.Logger) *ContactHandler {
	return &ContactHandler{inbox: inbox, logger: logging.OrNoOp(logger)}
}

// Handle is the go-router handler for POST /contact.
func (h *ContactHandler) Handle(ctx router.Context) error {
	sub, err := decodeSubmission(ctx.Header("Content-Type"), ctx.Body())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ContactResponse{Message: MissingFieldsMessage})
	}

	rec, err := h.inbox.Submit(sub)
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidEmail):
		return ctx.JSON(http.StatusUnprocessableEntity, ContactResponse{Message: err.Error()})
	case err != nil:
		h.logger.Error("contact submission failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, ContactResponse{Message: "Your message could not be sent. Please try again later."})
	default:
		h.logger.Info("contact submission received", "id", rec.ID.String())
		return ctx.JSON(http.StatusOK, ContactResponse{OK: true, Message: ThankYouMessage, ID: rec.ID.String()})
	}
}

// maxContactBody bounds the size of a contact post.
const maxContactBody = 1 << 20

// decodeSubmission reads a JSON or URL-encoded form body.
func decodeSubmission(contentType string, body []byte) (Submission, error) {
	var sub Submission
	if len(body) > maxContactBody {
		return sub, errors.New("contact body too large")
	}

	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "application/json" {
		err := json.Unmarshal(body, &sub)
		return sub, err
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return sub, err
	}
	sub.Name = values.Get("name")
	sub.Email = values.Get("email")
	sub.Message = values.Get("message")
	return sub, nil
}
