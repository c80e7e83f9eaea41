package cli_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/flyai/flyai/internal/booking"
	"github.com/flyai/flyai/internal/cli"
	"github.com/flyai/flyai/internal/domain"
	"github.com/flyai/flyai/internal/registration"
	"github.com/flyai/flyai/pkg/events"
)

// ---------- Mocks ----------

type memStore struct {
	doc *domain.Document
}

func newMemStore() *memStore {
	return &memStore{doc: domain.NewDocument()}
}

func clone(doc *domain.Document) *domain.Document {
	out := domain.NewDocument()
	if doc.User != nil {
		u := *doc.User
		out.User = &u
	}
	out.Bookings = append(out.Bookings, doc.Bookings...)
	return out
}

func (m *memStore) Load(_ context.Context) (*domain.Document, error) {
	return clone(m.doc), nil
}

func (m *memStore) Save(_ context.Context, doc *domain.Document) error {
	m.doc = clone(doc)
	return nil
}

type recordingSender struct {
	lastCode string
}

func (s *recordingSender) Send(_, code string) error {
	s.lastCode = code
	return nil
}

// lazyInput yields one line per Read call site, resolving each line only when
// the prompt reaches it. That lets a later line reference the OTP issued
// while the earlier lines were being consumed.
type lazyInput struct {
	lines []func() string
	cur   *strings.Reader
}

func script(lines ...func() string) *lazyInput {
	return &lazyInput{lines: lines}
}

func line(s string) func() string {
	return func() string { return s }
}

func (l *lazyInput) Read(p []byte) (int, error) {
	for {
		if l.cur != nil && l.cur.Len() > 0 {
			return l.cur.Read(p)
		}
		if len(l.lines) == 0 {
			return 0, io.EOF
		}
		l.cur = strings.NewReader(l.lines[0]() + "\n")
		l.lines = l.lines[1:]
	}
}

// ---------- Tests ----------

func newApp(store *memStore, sender *recordingSender, in io.Reader) (*cli.App, *bytes.Buffer) {
	bus := events.NewNoopBus()
	reg := registration.NewService(store, sender, bus)
	bookings := booking.NewService(store, bus)
	out := &bytes.Buffer{}
	return cli.New(reg, bookings, in, out), out
}

func TestRunRegistersBooksAndLists(t *testing.T) {
	store := newMemStore()
	sender := &recordingSender{}

	in := script(
		line("en"),
		line("9990001111"),
		func() string { return sender.lastCode }, // the OTP just issued
		line("1"),                // new booking
		line("Apple"),
		line("2"),
		line("Himachal"),
		line("2025-03-10 09:00"),
		line("2"), // history
		line("9"), // invalid choice
		line("4"), // exit
	)

	app, out := newApp(store, sender, in)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if store.doc.User == nil || store.doc.User.Phone != "9990001111" {
		t.Fatalf("user: got %+v", store.doc.User)
	}
	if len(store.doc.Bookings) != 1 {
		t.Fatalf("bookings: got %d, want 1", len(store.doc.Bookings))
	}
	b := store.doc.Bookings[0]
	if b.ID != 1 || b.Crop != "Apple" || b.Datetime != "2025-03-10 09:00" || b.Status != domain.StatusScheduled {
		t.Errorf("booking: got %+v", b)
	}

	text := out.String()
	if !strings.Contains(text, "Registration successful!") {
		t.Error("missing registration confirmation")
	}
	if !strings.Contains(text, "Booking confirmed! Status: Scheduled") {
		t.Error("missing booking confirmation")
	}
	if !strings.Contains(text, "#1 | Apple") {
		t.Error("missing history line")
	}
	if !strings.Contains(text, "Invalid option.") {
		t.Error("missing invalid-choice message")
	}
}

func TestRunAbortsOnSingleMismatch(t *testing.T) {
	store := newMemStore()
	sender := &recordingSender{}

	// "xxxx" can never equal a numeric code.
	in := script(line("en"), line("9990001111"), line("xxxx"))

	app, out := newApp(store, sender, in)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if store.doc.User != nil {
		t.Errorf("user persisted after mismatch: %+v", store.doc.User)
	}
	if !strings.Contains(out.String(), "Wrong OTP") {
		t.Error("missing mismatch message")
	}
}

func TestRunSkipsRegistrationWhenUserExists(t *testing.T) {
	store := newMemStore()
	store.doc.User = &domain.UserProfile{Phone: "123", Language: domain.LangHindi}

	in := script(line("2"), line("4")) // history, exit

	app, out := newApp(store, &recordingSender{}, in)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	if strings.Contains(text, "OTP") {
		t.Error("registration ran for an existing user")
	}
	if !strings.Contains(text, "कोई बुकिंग नहीं।") {
		t.Error("missing localized empty-history message")
	}
}

func TestRunReportsBadDateAndContinues(t *testing.T) {
	store := newMemStore()
	store.doc.User = &domain.UserProfile{Phone: "123", Language: domain.LangEnglish}

	in := script(
		line("1"),
		line("Apple"),
		line("2"),
		line("Himachal"),
		line("10-03-2025 9am"),
		line("4"),
	)

	app, out := newApp(store, &recordingSender{}, in)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(store.doc.Bookings) != 0 {
		t.Errorf("bookings: got %d, want 0", len(store.doc.Bookings))
	}
	if !strings.Contains(out.String(), "Invalid date format.") {
		t.Error("missing bad-date message")
	}
}

func TestRunExitsCleanlyOnEOF(t *testing.T) {
	store := newMemStore()
	store.doc.User = &domain.UserProfile{Phone: "123", Language: domain.LangEnglish}

	app, _ := newApp(store, &recordingSender{}, strings.NewReader(""))
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
