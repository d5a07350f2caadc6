package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/view"
)

func redemptionServer(t *testing.T) (*RewardService, *int) {
	t.Helper()
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/api/redeem", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.RedemptionListResponse{
			RedemptionRequests: []models.Redemption{
				{ID: "r1", User: models.NameRef{Name: "Ravi"}, Status: models.RedemptionPending},
				{ID: "r2", User: models.NameRef{Name: "Asha"}, Status: models.RedemptionApproved},
			},
		})
	})
	mux.HandleFunc("/api/redeem/approve/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("approve method = %s, want PATCH", r.Method)
		}
		calls++
		w.WriteHeader(http.StatusOK)
	})

	svc := NewRewardService(newTestAPI(t, mux))
	if _, err := svc.RefreshRedemptions(context.Background()); err != nil {
		t.Fatalf("RefreshRedemptions: %v", err)
	}
	return svc, &calls
}

func TestApproveRedemptionPatchesOnlyThatRow(t *testing.T) {
	svc, calls := redemptionServer(t)

	if err := svc.ApproveRedemption(context.Background(), "r1"); err != nil {
		t.Fatalf("ApproveRedemption: %v", err)
	}
	if *calls != 1 {
		t.Fatalf("upstream calls = %d, want 1", *calls)
	}

	rows := svc.Redemptions()
	if view.Status(rows[0]) != models.RedemptionApproved {
		t.Fatalf("r1 status = %q, want Approved", view.Status(rows[0]))
	}
	if view.Status(rows[1]) != models.RedemptionApproved {
		t.Fatal("r2 status lost on local patch")
	}
}

func TestApproveRedemptionRefusesTerminalRow(t *testing.T) {
	svc, calls := redemptionServer(t)

	err := svc.ApproveRedemption(context.Background(), "r2")
	if !errors.Is(err, view.ErrNotActionable) {
		t.Fatalf("err = %v, want ErrNotActionable", err)
	}
	if *calls != 0 {
		t.Fatal("upstream called for a terminal row")
	}
}

func TestFailedApprovalLeavesRowRetryable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/redeem", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.RedemptionListResponse{
			RedemptionRequests: []models.Redemption{
				{ID: "r1", Status: models.RedemptionPending},
			},
		})
	})
	mux.HandleFunc("/api/redeem/reject/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	svc := NewRewardService(newTestAPI(t, mux))
	if _, err := svc.RefreshRedemptions(context.Background()); err != nil {
		t.Fatalf("RefreshRedemptions: %v", err)
	}

	if err := svc.RejectRedemption(context.Background(), "r1"); err == nil {
		t.Fatal("expected error from failing upstream")
	}
	if view.Status(svc.Redemptions()[0]) != models.RedemptionPending {
		t.Fatal("status changed by failed action")
	}
	// The row is free for another attempt.
	if err := svc.RejectRedemption(context.Background(), "r1"); err == nil {
		t.Fatal("expected error from failing upstream on retry")
	}
}

func TestRewardEditPatchesSnapshot(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/rewards/update/rw1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	svc := NewRewardService(newTestAPI(t, mux))
	svc.rewards = []models.Reward{{ID: "rw1", RewardName: "Mug", PointsRequired: 50, QuantityAvailable: 3}}

	err := svc.Edit(context.Background(), "rw1", models.RewardRequest{
		RewardName: "Steel Mug", PointsRequired: 60, QuantityAvailable: 2,
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	got := svc.List()[0]
	if got.RewardName != "Steel Mug" || got.PointsRequired != 60 || got.QuantityAvailable != 2 {
		t.Fatalf("snapshot row = %+v, want submitted fields merged", got)
	}
}
