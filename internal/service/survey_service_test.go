package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/events"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/persistence"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/repository"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/undo"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/validation"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/pkg/util"
)

func newTestService(t *testing.T) (*SurveyService, events.Dispatcher) {
	t.Helper()
	db, err := persistence.OpenSQLite(filepath.Join(t.TempDir(), "survey.db"), 1, 1, time.Minute)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	opts := persistence.BootstrapOptions{
		AdminUsername: "admin", AdminPassword: "admin123",
		AdminFullName: "Administrator", BcryptCost: 4,
	}
	if err := persistence.Bootstrap(context.Background(), db, persistence.DriverSQLite, opts, zap.NewNop()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	svc := NewSurveyService(SurveyDependencies{
		SurveyRepo: repository.NewSurveyRepository(db),
		UndoBuffer: undo.New(undo.DefaultCapacity),
		Dispatcher: dispatcher,
	})
	return svc, dispatcher
}

func adminSession() domain.Session {
	return domain.Session{UserID: 1, Username: "admin", FullName: "Administrator", IsAdmin: true}
}

func sampleForm() validation.SurveyForm {
	return validation.SurveyForm{
		Name:       "Sahrini",
		Email:      "sahrini@gmail.com",
		Phone:      "08123456789",
		Location:   "Jonggol",
		Quality:    "4",
		Timeliness: "3",
		Service:    "5",
		Overall:    "8",
		Comments:   "great",
	}
}

func TestGuestCanCreate(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.Create(context.Background(), domain.Guest(), sampleForm())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if record.ID == "" || record.Timestamp == "" {
		t.Fatalf("identifier/timestamp not assigned: %+v", record)
	}
	if record.Owner != "" {
		t.Fatalf("guest submissions must store an empty owner, got %q", record.Owner)
	}
}

func TestCreateRejectsInvalidForm(t *testing.T) {
	svc, _ := newTestService(t)

	form := sampleForm()
	form.Name = ""
	form.Overall = "eleven"
	_, err := svc.Create(context.Background(), domain.Guest(), form)
	if err == nil {
		t.Fatal("expected validation error")
	}
	domainErr := util.ToDomainError(err)
	if domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q", domainErr.Code)
	}
	violations, ok := domainErr.Details["violations"].([]string)
	if !ok || len(violations) != 2 {
		t.Fatalf("expected both violations reported, got %v", domainErr.Details)
	}
}

func TestUpdateRequiresAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, adminSession(), sampleForm())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	user := domain.Session{UserID: 2, Username: "operator1", IsAdmin: false}
	if _, err := svc.Update(ctx, user, record.ID, sampleForm()); util.ToDomainError(err).Code != "FORBIDDEN" {
		t.Fatalf("expected FORBIDDEN, got %v", err)
	}

	form := sampleForm()
	form.Name = "Renamed"
	updated, err := svc.Update(ctx, adminSession(), record.ID, form)
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if updated.Name != "Renamed" || updated.ID != record.ID {
		t.Fatalf("update result = %+v", updated)
	}
}

func TestUpdateMissingIsReportable(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Update(context.Background(), adminSession(), "no-such-id", sampleForm())
	if util.ToDomainError(err).Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestDeleteUndoRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	admin := adminSession()

	record, err := svc.Create(ctx, admin, sampleForm())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, admin, record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if all, _ := svc.List(ctx, ""); len(all) != 0 {
		t.Fatalf("record still visible after delete: %+v", all)
	}

	restored, err := svc.Undo(ctx, admin)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if *restored != *record {
		t.Fatalf("restored record differs:\n got %+v\nwant %+v", restored, record)
	}

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].ID != record.ID {
		t.Fatalf("restored row missing: %+v", all)
	}
}

func TestUndoEmptyBuffer(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Undo(context.Background(), adminSession())
	if util.ToDomainError(err).Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND on empty buffer, got %v", err)
	}
}

func TestDeleteRequiresAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.Delete(context.Background(), domain.Guest(), "whatever")
	if util.ToDomainError(err).Code != "FORBIDDEN" {
		t.Fatalf("expected FORBIDDEN, got %v", err)
	}
}

func TestMutationsPublishEvents(t *testing.T) {
	svc, dispatcher := newTestService(t)
	ctx := context.Background()

	var seen []events.EventType
	for _, eventType := range events.AllSurveyEvents {
		et := eventType
		dispatcher.Subscribe(et, func(_ context.Context, e events.Event) error {
			seen = append(seen, e.Type)
			return nil
		})
	}

	record, err := svc.Create(ctx, adminSession(), sampleForm())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, adminSession(), record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Undo(ctx, adminSession()); err != nil {
		t.Fatalf("undo: %v", err)
	}

	want := []events.EventType{events.EventSurveyCreated, events.EventSurveyDeleted, events.EventSurveyRestored}
	if len(seen) != len(want) {
		t.Fatalf("events = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("events = %v, want %v", seen, want)
		}
	}
}

func TestSampleFormIsValid(t *testing.T) {
	svc, _ := newTestService(t)
	for i := 0; i < 20; i++ {
		if _, violations := validation.CheckSurveyForm(svc.Sample()); len(violations) != 0 {
			t.Fatalf("sample form invalid: %v", violations)
		}
	}
}
