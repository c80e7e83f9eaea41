// Package cli is the line-prompt presentation layer: a blocking register-or-
// exit step followed by a menu loop over the booking workflow.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flyai/flyai/internal/booking"
	"github.com/flyai/flyai/internal/domain"
	"github.com/flyai/flyai/internal/i18n"
	"github.com/flyai/flyai/internal/registration"
)

type App struct {
	reg      *registration.Service
	bookings *booking.Service

	in  *bufio.Scanner
	out io.Writer
}

func New(reg *registration.Service, bookings *booking.Service, in io.Reader, out io.Writer) *App {
	return &App{
		reg:      reg,
		bookings: bookings,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run drives the whole session: registration when no user exists (a single
// OTP mismatch aborts), then the menu loop until the exit choice or EOF.
func (a *App) Run(ctx context.Context) error {
	user, err := a.bookings.User(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotRegistered) {
			return err
		}
		user, err = a.register(ctx)
		if err != nil {
			return err
		}
		if user == nil {
			return nil
		}
	}

	return a.menu(ctx, user.Language)
}

func (a *App) register(ctx context.Context) (*domain.UserProfile, error) {
	lang := domain.ParseLanguage(a.prompt("Language / भाषा (en/hi)"))

	fmt.Fprintf(a.out, "\n*** %s ***\n", i18n.Text(lang, i18n.RegisterTitle))
	phone := a.prompt(i18n.Text(lang, i18n.EnterPhone))

	if _, err := a.reg.Begin(ctx, phone, lang); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return a.bookings.User(ctx)
		}
		return nil, err
	}

	code := a.prompt(i18n.Text(lang, i18n.EnterOTP))
	user, err := a.reg.Complete(ctx, phone, code)
	if err != nil {
		if errors.Is(err, domain.ErrCodeMismatch) {
			// One attempt only in the prompt flow.
			fmt.Fprintln(a.out, i18n.Text(lang, i18n.WrongOTP))
			return nil, nil
		}
		return nil, err
	}

	fmt.Fprintf(a.out, "%s\n\n", i18n.Text(lang, i18n.RegisterSuccess))
	return user, nil
}

func (a *App) menu(ctx context.Context, lang domain.Language) error {
	for {
		fmt.Fprintf(a.out, "1. %s\n", i18n.Text(lang, i18n.MenuBooking))
		fmt.Fprintf(a.out, "2. %s\n", i18n.Text(lang, i18n.MenuHistory))
		fmt.Fprintf(a.out, "3. %s\n", i18n.Text(lang, i18n.MenuHelp))
		fmt.Fprintf(a.out, "4. %s\n", i18n.Text(lang, i18n.MenuExit))

		choice, ok := a.read(i18n.Text(lang, i18n.MenuChoose))
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			if err := a.createBooking(ctx, lang); err != nil {
				return err
			}
		case "2":
			if err := a.showHistory(ctx, lang); err != nil {
				return err
			}
		case "3":
			a.showHelp(lang)
		case "4":
			return nil
		default:
			fmt.Fprintf(a.out, "%s\n\n", i18n.Text(lang, i18n.MenuInvalid))
		}
	}
}

func (a *App) createBooking(ctx context.Context, lang domain.Language) error {
	fmt.Fprintf(a.out, "\n*** %s ***\n", i18n.Text(lang, i18n.NewBooking))

	req := domain.BookingRequest{
		Crop:      a.prompt(i18n.Text(lang, i18n.Crop)),
		FieldSize: a.prompt(i18n.Text(lang, i18n.FieldSize)),
		Region:    a.prompt(i18n.Text(lang, i18n.Region)),
		Datetime:  a.prompt(i18n.Text(lang, i18n.DateTime) + " (YYYY-MM-DD HH:MM)"),
	}

	_, err := a.bookings.Submit(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrBadDateFormat) {
			fmt.Fprintf(a.out, "%s\n\n", i18n.Text(lang, i18n.BadDate))
			return nil
		}
		if errors.Is(err, domain.ErrNotRegistered) {
			fmt.Fprintf(a.out, "%s\n\n", i18n.Text(lang, i18n.RegisterFirst))
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "%s\n\n", i18n.Text(lang, i18n.BookingDone))
	return nil
}

func (a *App) showHistory(ctx context.Context, lang domain.Language) error {
	fmt.Fprintf(a.out, "\n*** %s ***\n", i18n.Text(lang, i18n.History))

	bookings, err := a.bookings.List(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotRegistered) {
			fmt.Fprintf(a.out, "%s\n\n", i18n.Text(lang, i18n.RegisterFirst))
			return nil
		}
		return err
	}

	if len(bookings) == 0 {
		fmt.Fprintf(a.out, "%s\n\n", i18n.Text(lang, i18n.NoBookings))
		return nil
	}
	for _, b := range bookings {
		fmt.Fprintf(a.out, "#%d | %s | %s | %s | %s | %s\n",
			b.ID, b.Crop, b.FieldSize, b.Region, b.Datetime, b.Status)
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *App) showHelp(lang domain.Language) {
	fmt.Fprintf(a.out, "\n%s\n", i18n.Text(lang, i18n.MenuHelp))
	fmt.Fprintln(a.out, i18n.Text(lang, i18n.HelpPhone))
	fmt.Fprintln(a.out, i18n.Text(lang, i18n.HelpEmail))
	fmt.Fprintln(a.out)
}

func (a *App) prompt(label string) string {
	s, _ := a.read(label)
	return s
}

// read prompts and returns the trimmed line; ok is false at EOF.
func (a *App) read(label string) (string, bool) {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}
