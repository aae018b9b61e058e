package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/Prathamahuja/employee-leave-management/internal/models"
	"github.com/Prathamahuja/employee-leave-management/internal/repositories"
)

func seedUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	user := models.User{Name: "User " + email, Email: email, Password: "x", Role: models.RoleEmployee}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func newLeaveService(t *testing.T) (*LeaveService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewLeaveService(repositories.NewLeaveRepository(db)), db
}

func strPtr(s string) *string { return &s }

func TestCreateLeaveValidation(t *testing.T) {
	svc, db := newLeaveService(t)
	ctx := context.Background()
	owner := seedUser(t, db, "amy@x.com")

	cases := []struct {
		name string
		in   CreateLeaveInput
		want error
	}{
		{"missing type", CreateLeaveInput{StartDate: "2024-03-01", EndDate: "2024-03-03"}, ErrMissingFields},
		{"missing start", CreateLeaveInput{Type: "Sick Leave", EndDate: "2024-03-03"}, ErrMissingFields},
		{"missing end", CreateLeaveInput{Type: "Sick Leave", StartDate: "2024-03-01"}, ErrMissingFields},
		{"malformed date", CreateLeaveInput{Type: "Sick Leave", StartDate: "03/01/2024", EndDate: "2024-03-03"}, ErrInvalidDate},
		{"impossible date", CreateLeaveInput{Type: "Sick Leave", StartDate: "2024-02-30", EndDate: "2024-03-03"}, ErrInvalidDate},
		{"inverted range", CreateLeaveInput{Type: "Sick Leave", StartDate: "2024-05-10", EndDate: "2024-05-01"}, ErrDateRange},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, owner, tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, err)
		}
	}
}

func TestCreateLeaveDefaultsPending(t *testing.T) {
	svc, db := newLeaveService(t)
	ctx := context.Background()
	owner := seedUser(t, db, "amy@x.com")

	id, err := svc.Create(ctx, owner, CreateLeaveInput{
		Type: "Sick Leave", StartDate: "2024-03-01", EndDate: "2024-03-03", Reason: "flu",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	leave, err := svc.GetOne(ctx, owner, id)
	if err != nil {
		t.Fatalf("get one: %v", err)
	}
	if leave.Status != models.StatusPending {
		t.Fatalf("expected pending got %q", leave.Status)
	}
	if leave.StartDate != "2024-03-01" || leave.EndDate != "2024-03-03" {
		t.Fatalf("unexpected dates: %s..%s", leave.StartDate, leave.EndDate)
	}
	// Single-day leave is valid (start == end).
	if _, err := svc.Create(ctx, owner, CreateLeaveInput{Type: "Casual", StartDate: "2024-04-01", EndDate: "2024-04-01"}); err != nil {
		t.Fatalf("single-day create: %v", err)
	}
}

func TestListMineOrdersAndScopes(t *testing.T) {
	svc, db := newLeaveService(t)
	ctx := context.Background()
	amy := seedUser(t, db, "amy@x.com")
	bob := seedUser(t, db, "bob@x.com")

	mustCreate := func(owner uint, start, end string) {
		t.Helper()
		if _, err := svc.Create(ctx, owner, CreateLeaveInput{Type: "Vacation", StartDate: start, EndDate: end}); err != nil {
			t.Fatalf("create %s: %v", start, err)
		}
	}
	mustCreate(amy, "2024-01-10", "2024-01-12")
	mustCreate(amy, "2024-06-01", "2024-06-05")
	mustCreate(amy, "2024-03-15", "2024-03-16")
	mustCreate(bob, "2024-12-01", "2024-12-02")

	leaves, err := svc.ListMine(ctx, amy)
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(leaves) != 3 {
		t.Fatalf("expected 3 leaves got %d", len(leaves))
	}
	want := []string{"2024-06-01", "2024-03-15", "2024-01-10"}
	for i, leave := range leaves {
		if leave.StartDate != want[i] {
			t.Fatalf("position %d: expected %s got %s", i, want[i], leave.StartDate)
		}
		if leave.UserID != amy {
			t.Fatalf("foreign leave in listing: owner %d", leave.UserID)
		}
	}
}

func TestGetOneHidesForeignLeaves(t *testing.T) {
	svc, db := newLeaveService(t)
	ctx := context.Background()
	amy := seedUser(t, db, "amy@x.com")
	bob := seedUser(t, db, "bob@x.com")

	id, err := svc.Create(ctx, amy, CreateLeaveInput{Type: "Vacation", StartDate: "2024-03-01", EndDate: "2024-03-03"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.GetOne(ctx, bob, id); !errors.Is(err, ErrLeaveNotFound) {
		t.Fatalf("foreign leave: expected ErrLeaveNotFound got %v", err)
	}
	if _, err := svc.GetOne(ctx, amy, id+100); !errors.Is(err, ErrLeaveNotFound) {
		t.Fatalf("missing leave: expected ErrLeaveNotFound got %v", err)
	}
}

func TestUpdatePartialFields(t *testing.T) {
	svc, db := newLeaveService(t)
	ctx := context.Background()
	owner := seedUser(t, db, "amy@x.com")

	id, err := svc.Create(ctx, owner, CreateLeaveInput{
		Type: "Sick Leave", StartDate: "2024-03-01", EndDate: "2024-03-03", Reason: "flu",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Update(ctx, owner, id, UpdateLeaveInput{Reason: strPtr("doctor visit")}); err != nil {
		t.Fatalf("update: %v", err)
	}

	leave, err := svc.GetOne(ctx, owner, id)
	if err != nil {
		t.Fatalf("get one: %v", err)
	}
	if leave.Reason != "doctor visit" {
		t.Fatalf("reason not updated: %q", leave.Reason)
	}
	if leave.Type != "Sick Leave" || leave.StartDate != "2024-03-01" || leave.EndDate != "2024-03-03" {
		t.Fatal("unrelated fields changed by partial update")
	}

	// No fields at all is rejected; empty strings count as absent.
	if err := svc.Update(ctx, owner, id, UpdateLeaveInput{}); !errors.Is(err, ErrNoFields) {
		t.Fatalf("empty update: expected ErrNoFields got %v", err)
	}
	if err := svc.Update(ctx, owner, id, UpdateLeaveInput{Type: strPtr("")}); !errors.Is(err, ErrNoFields) {
		t.Fatalf("empty-string update: expected ErrNoFields got %v", err)
	}
}

func TestUpdateValidatesDates(t *testing.T) {
	svc, db := newLeaveService(t)
	ctx := context.Background()
	owner := seedUser(t, db, "amy@x.com")

	id, err := svc.Create(ctx, owner, CreateLeaveInput{Type: "Vacation", StartDate: "2024-05-01", EndDate: "2024-05-05"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Update(ctx, owner, id, UpdateLeaveInput{StartDate: strPtr("not-a-date")}); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate got %v", err)
	}
	if err := svc.Update(ctx, owner, id, UpdateLeaveInput{StartDate: strPtr("2024-05-10"), EndDate: strPtr("2024-05-01")}); !errors.Is(err, ErrDateRange) {
		t.Fatalf("expected ErrDateRange got %v", err)
	}
	// A lone date is not checked against the stored counterpart; only a pair
	// supplied together is range-checked.
	if err := svc.Update(ctx, owner, id, UpdateLeaveInput{StartDate: strPtr("2024-06-01")}); err != nil {
		t.Fatalf("lone start date update: %v", err)
	}
}

func TestMutationRequiresPendingStatus(t *testing.T) {
	svc, db := newLeaveService(t)
	ctx := context.Background()
	owner := seedUser(t, db, "amy@x.com")
	repo := repositories.NewLeaveRepository(db)

	id, err := svc.Create(ctx, owner, CreateLeaveInput{Type: "Vacation", StartDate: "2024-05-01", EndDate: "2024-05-05"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.SetStatus(ctx, id, models.StatusApproved, "enjoy"); err != nil {
		t.Fatalf("approve: %v", err)
	}

	if err := svc.Update(ctx, owner, id, UpdateLeaveInput{Reason: strPtr("changed my mind")}); !errors.Is(err, ErrLeaveNotPending) {
		t.Fatalf("update approved: expected ErrLeaveNotPending got %v", err)
	}
	if err := svc.Delete(ctx, owner, id); !errors.Is(err, ErrLeaveNotPending) {
		t.Fatalf("delete approved: expected ErrLeaveNotPending got %v", err)
	}

	// A pending leave deletes fine.
	id2, err := svc.Create(ctx, owner, CreateLeaveInput{Type: "Vacation", StartDate: "2024-07-01", EndDate: "2024-07-02"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if err := svc.Delete(ctx, owner, id2); err != nil {
		t.Fatalf("delete pending: %v", err)
	}
	if _, err := svc.GetOne(ctx, owner, id2); !errors.Is(err, ErrLeaveNotFound) {
		t.Fatalf("expected deleted leave to be gone, got %v", err)
	}
}
