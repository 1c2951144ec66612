package broadcast

import (
	"context"
	"errors"
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"
)

type staticAudience struct {
	ids []int64
	err error
}

func (a staticAudience) AllIDs(ctx context.Context) ([]int64, error) {
	return a.ids, a.err
}

func TestRunDeliversToEveryRecipient(t *testing.T) {
	o := New(staticAudience{ids: []int64{1, 2, 3}}, time.Millisecond)

	var delivered []int64
	rep, err := o.Run(context.Background(), func(userID int64) error {
		delivered = append(delivered, userID)
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Total != 3 || rep.Success != 3 || rep.Failed != 0 {
		t.Fatalf("report = %+v", rep)
	}
	if len(delivered) != 3 {
		t.Fatalf("delivered = %v", delivered)
	}
}

func TestRunContinuesPastFailures(t *testing.T) {
	o := New(staticAudience{ids: []int64{1, 2, 3, 4}}, time.Millisecond)

	rep, err := o.Run(context.Background(), func(userID int64) error {
		if userID%2 == 0 {
			return errors.New("blocked by user")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Total != 4 || rep.Success != 2 || rep.Failed != 2 {
		t.Fatalf("report = %+v", rep)
	}
	if rep.Success+rep.Failed != rep.Total {
		t.Fatalf("report does not add up: %+v", rep)
	}
}

func TestRunEmptyAudience(t *testing.T) {
	o := New(staticAudience{}, time.Millisecond)

	rep, err := o.Run(context.Background(), func(userID int64) error {
		t.Fatal("deliver must not be called for an empty audience")
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Total != 0 || rep.Success != 0 || rep.Failed != 0 {
		t.Fatalf("report = %+v", rep)
	}
}

func TestRunAbortsWhenAudienceUnavailable(t *testing.T) {
	o := New(staticAudience{err: errors.New("db down")}, time.Millisecond)

	if _, err := o.Run(context.Background(), func(int64) error { return nil }); err == nil {
		t.Fatal("expected audience error to propagate")
	}
}

func TestRunRetriesOnceAfterFloodWait(t *testing.T) {
	o := New(staticAudience{ids: []int64{1}}, time.Millisecond)

	calls := 0
	rep, err := o.Run(context.Background(), func(userID int64) error {
		calls++
		if calls == 1 {
			return tele.FloodError{RetryAfter: 1}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if calls != 2 {
		t.Fatalf("deliver calls = %d, want 2 (one flood wait, one retry)", calls)
	}
	if rep.Total != 1 || rep.Success != 1 || rep.Failed != 0 {
		t.Fatalf("report = %+v, want the recipient counted once as success", rep)
	}
}

func TestRunCountsFailureAfterFloodRetry(t *testing.T) {
	o := New(staticAudience{ids: []int64{1}}, time.Millisecond)

	calls := 0
	rep, err := o.Run(context.Background(), func(userID int64) error {
		calls++
		return tele.FloodError{RetryAfter: 1}
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// One wait is honoured, a second flood response is not.
	if calls != 2 {
		t.Fatalf("deliver calls = %d, want 2", calls)
	}
	if rep.Total != 1 || rep.Success != 0 || rep.Failed != 1 {
		t.Fatalf("report = %+v, want the recipient counted once as failed", rep)
	}
}

func TestNewAppliesDefaultPacing(t *testing.T) {
	o := New(staticAudience{}, 0)
	if o.pacing != DefaultPacing {
		t.Fatalf("pacing = %v, want %v", o.pacing, DefaultPacing)
	}
	o = New(staticAudience{}, -time.Second)
	if o.pacing != DefaultPacing {
		t.Fatalf("pacing = %v, want %v", o.pacing, DefaultPacing)
	}
}
