package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

func TestPolicyCurrent_FallsBackToDefaultOnError(t *testing.T) {
	store := &fakeFlagStore{
		flag: model.VerificationFlag{Mode: model.ModeNonBlocking, Method: model.MethodCommunity},
		err:  errors.New("connection refused"),
	}
	p := NewPolicyService(store)

	flag := p.Current(context.Background())

	want := model.DefaultVerificationFlag()
	if flag != want {
		t.Errorf("flag = %+v, want strict default %+v on store error", flag, want)
	}
}

func TestPolicyCurrent_ReadsStoredFlag(t *testing.T) {
	store := &fakeFlagStore{flag: model.VerificationFlag{Mode: model.ModeNonBlocking, Method: model.MethodCommunity}}
	p := NewPolicyService(store)

	flag := p.Current(context.Background())
	if flag.Mode != model.ModeNonBlocking || flag.Method != model.MethodCommunity {
		t.Errorf("flag = %+v, want the stored non-blocking/community flag", flag)
	}
}

func TestPolicySet_ValidatesFields(t *testing.T) {
	p := NewPolicyService(&fakeFlagStore{flag: model.DefaultVerificationFlag()})
	ctx := context.Background()

	badMode := "aggressive"
	if _, err := p.Set(ctx, model.PolicyUpdateRequest{Mode: &badMode}); !errors.Is(err, ErrValidation) {
		t.Errorf("bad mode err = %v, want ErrValidation", err)
	}

	badMethod := "telepathy"
	if _, err := p.Set(ctx, model.PolicyUpdateRequest{Method: &badMethod}); !errors.Is(err, ErrValidation) {
		t.Errorf("bad method err = %v, want ErrValidation", err)
	}
}

func TestPolicySet_PartialUpdate(t *testing.T) {
	store := &fakeFlagStore{flag: model.DefaultVerificationFlag()}
	p := NewPolicyService(store)

	mode := model.ModeNonBlocking
	flag, err := p.Set(context.Background(), model.PolicyUpdateRequest{Mode: &mode})
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}

	if flag.Mode != model.ModeNonBlocking {
		t.Errorf("mode = %q, want %q", flag.Mode, model.ModeNonBlocking)
	}
	if flag.Method != model.MethodBoth {
		t.Errorf("method = %q, want untouched %q", flag.Method, model.MethodBoth)
	}
	if store.flag != flag {
		t.Errorf("persisted flag %+v differs from returned %+v", store.flag, flag)
	}
}

func TestPolicySubscribe_NotifiedOnChange(t *testing.T) {
	store := &fakeFlagStore{flag: model.DefaultVerificationFlag()}
	p := NewPolicyService(store)
	ctx := context.Background()

	var seen []model.VerificationFlag
	p.Subscribe(func(f model.VerificationFlag) {
		seen = append(seen, f)
	})

	// Same flag as the default: no notification.
	p.Refresh(ctx)
	if len(seen) != 0 {
		t.Fatalf("got %d notifications for an unchanged flag, want 0", len(seen))
	}

	store.flag = model.VerificationFlag{Mode: model.ModeNonBlocking, Method: model.MethodBoth}
	p.Refresh(ctx)

	if len(seen) != 1 {
		t.Fatalf("got %d notifications, want 1", len(seen))
	}
	if seen[0].Mode != model.ModeNonBlocking {
		t.Errorf("notified mode = %q, want %q", seen[0].Mode, model.ModeNonBlocking)
	}
}

func TestVendorBlocked(t *testing.T) {
	blocking := model.VerificationFlag{Mode: model.ModeBlocking, Method: model.MethodBoth}
	nonBlocking := model.VerificationFlag{Mode: model.ModeNonBlocking, Method: model.MethodBoth}
	approved := &model.VendorProfile{VerificationStatus: model.VendorApproved}
	pendingPhoto := &model.VendorProfile{VerificationStatus: model.VendorPendingPhoto}

	cases := []struct {
		name    string
		flag    model.VerificationFlag
		profile *model.VendorProfile
		want    bool
	}{
		{"blocking, approved vendor", blocking, approved, false},
		{"blocking, pending photo", blocking, pendingPhoto, true},
		{"blocking, unknown vendor", blocking, nil, true},
		{"non-blocking, pending photo", nonBlocking, pendingPhoto, false},
		{"non-blocking, unknown vendor", nonBlocking, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := VendorBlocked(tc.flag, tc.profile); got != tc.want {
				t.Errorf("VendorBlocked = %v, want %v", got, tc.want)
			}
		})
	}
}
