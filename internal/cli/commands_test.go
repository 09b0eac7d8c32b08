package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dkamau/studentportal/internal/common"
	"github.com/dkamau/studentportal/internal/models"
)

// stubInputs replaces the interactive input seams with canned answers.
// Text prompts are answered in order from texts; every password prompt
// returns the next value from passwords.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	ti, pi := 0, 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		v := texts[ti]
		ti++
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) (string, error) {
		v := passwords[pi]
		pi++
		return v, nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	registerErr error
	registered  []models.Account

	loginRet *models.Account
	loginErr error
	logins   []string

	currentRet *models.SessionRecord
	currentErr error

	logoutCalls int
	logoutErr   error
}

func (f *fakeAuth) Register(_ context.Context, account models.Account) error {
	f.registered = append(f.registered, account)
	return f.registerErr
}

func (f *fakeAuth) Login(_ context.Context, regNumber, password string) (*models.Account, error) {
	f.logins = append(f.logins, regNumber+"/"+password)
	return f.loginRet, f.loginErr
}

func (f *fakeAuth) CurrentUser(context.Context) (*models.SessionRecord, error) {
	return f.currentRet, f.currentErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func newTestApp(f *fakeAuth) (*App, *bytes.Buffer) {
	var buf bytes.Buffer
	return &App{authService: f, out: &buf}, &buf
}

func TestRegisterCommand_Success(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(f)

	stubInputs(t, []string{"Jane", "jane@x.com", "COM/B/01-0001"}, []string{"secret1", "secret1"})

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if len(f.registered) != 1 {
		t.Fatalf("expected one registration, got %d", len(f.registered))
	}
	want := models.Account{Name: "Jane", Email: "jane@x.com", RegNumber: "COM/B/01-0001", Password: "secret1"}
	if f.registered[0] != want {
		t.Fatalf("registered account mismatch: %+v", f.registered[0])
	}
	if !strings.Contains(out.String(), "Account created successfully") {
		t.Fatalf("missing success message: %q", out.String())
	}
}

func TestRegisterCommand_FormErrorsStopBeforeService(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(f)

	// invalid email, short password, mismatched confirmation
	stubInputs(t, []string{"Jane", "not-an-email", "COM/B/01-0001"}, []string{"abc", "abcd"})

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if len(f.registered) != 0 {
		t.Fatalf("service must not be called on form errors")
	}
	for _, want := range []string{"Please enter a valid email", "at least 6 characters", "Passwords do not match"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("missing %q in output: %q", want, out.String())
		}
	}
}

func TestRegisterCommand_ConflictMessageDoesNotNameField(t *testing.T) {
	f := &fakeAuth{registerErr: common.ErrAlreadyExists}
	a, out := newTestApp(f)

	stubInputs(t, []string{"Jane", "jane@x.com", "COM/B/01-0001"}, []string{"secret1", "secret1"})

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if !strings.Contains(out.String(), "Email or registration number already exists") {
		t.Fatalf("missing combined conflict message: %q", out.String())
	}
}

func TestLoginCommand_Success(t *testing.T) {
	account := models.Account{Name: "Jane", Email: "jane@x.com", RegNumber: "COM/B/01-0001", Password: "secret1"}
	f := &fakeAuth{loginRet: &account}
	a, out := newTestApp(f)

	stubInputs(t, []string{"COM/B/01-0001"}, []string{"secret1"})

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if len(f.logins) != 1 || f.logins[0] != "COM/B/01-0001/secret1" {
		t.Fatalf("login call mismatch: %v", f.logins)
	}
	if !strings.Contains(out.String(), "Welcome back, Jane!") {
		t.Fatalf("missing welcome message: %q", out.String())
	}
}

func TestLoginCommand_InvalidCredentialsIsUniform(t *testing.T) {
	f := &fakeAuth{loginErr: common.ErrInvalidCredentials}
	a, out := newTestApp(f)

	stubInputs(t, []string{"COM/B/01-0001"}, []string{"wrong"})

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login should swallow invalid credentials, got: %v", err)
	}
	if !strings.Contains(out.String(), "Invalid registration number or password") {
		t.Fatalf("missing uniform failure message: %q", out.String())
	}
}

func TestDashboard_LoggedOutHint(t *testing.T) {
	a, out := newTestApp(&fakeAuth{})

	if err := a.Dashboard(context.Background()); err != nil {
		t.Fatalf("Dashboard err: %v", err)
	}
	if !strings.Contains(out.String(), "Not logged in") {
		t.Fatalf("missing logged-out hint: %q", out.String())
	}
}

func TestDashboard_ShowsSessionFields(t *testing.T) {
	f := &fakeAuth{currentRet: &models.SessionRecord{Name: "Jane", RegNumber: "COM/B/01-0001", Email: "jane@x.com"}}
	a, out := newTestApp(f)

	if err := a.Dashboard(context.Background()); err != nil {
		t.Fatalf("Dashboard err: %v", err)
	}
	for _, want := range []string{"Welcome, Jane", "COM/B/01-0001", "jane@x.com"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("missing %q in output: %q", want, out.String())
		}
	}
}

func TestViews_RenderCatalog(t *testing.T) {
	a, out := newTestApp(&fakeAuth{})

	if err := a.Timetable(context.Background()); err != nil {
		t.Fatalf("Timetable err: %v", err)
	}
	if err := a.Results(context.Background()); err != nil {
		t.Fatalf("Results err: %v", err)
	}
	for _, want := range []string{"Mathematics I", "Room A1", "Ethics and Professionalism", "GRADE"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("missing %q in output", want)
		}
	}
}

func TestLogoutCommand(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(f)

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if f.logoutCalls != 1 {
		t.Fatalf("expected one logout call, got %d", f.logoutCalls)
	}
	if !strings.Contains(out.String(), "Logged out.") {
		t.Fatalf("missing logout message: %q", out.String())
	}
}
