package service

import (
	"context"
	"log"
	"sync"

	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
)

// PolicyService owns the process view of the verification flag. Decision
// points read fresh through Current so an admin toggle takes effect on the
// very next submission; subscribers get pushed updates for anything that
// wants to react without polling.
type PolicyService struct {
	store FlagStore

	mu      sync.RWMutex
	current model.VerificationFlag
	subs    []func(model.VerificationFlag)
}

func NewPolicyService(store FlagStore) *PolicyService {
	return &PolicyService{
		store:   store,
		current: model.DefaultVerificationFlag(),
	}
}

// Current reads the flag fresh from the store. An unreadable flag falls
// back to the strict default rather than failing the caller's operation.
func (p *PolicyService) Current(ctx context.Context) model.VerificationFlag {
	if p.store == nil {
		return p.snapshot()
	}

	flag, err := p.store.Get(ctx)
	if err != nil {
		log.Printf("policy: flag read failed, using default %+v: %v", model.DefaultVerificationFlag(), err)
		return model.DefaultVerificationFlag()
	}
	p.apply(flag)
	return flag
}

// Set validates and persists a partial policy update, then notifies
// subscribers. Administrative surface only.
func (p *PolicyService) Set(ctx context.Context, update model.PolicyUpdateRequest) (model.VerificationFlag, error) {
	flag := p.Current(ctx)

	if update.Mode != nil {
		if !model.ValidMode(*update.Mode) {
			return flag, validationErr("mode", "must be blocking or non-blocking")
		}
		flag.Mode = *update.Mode
	}
	if update.Method != nil {
		if !model.ValidMethod(*update.Method) {
			return flag, validationErr("method", "must be photo, community, or both")
		}
		flag.Method = *update.Method
	}

	if err := p.store.Set(ctx, flag); err != nil {
		return flag, err
	}
	p.apply(flag)
	return flag, nil
}

// Subscribe registers a callback invoked whenever the observed flag
// changes. Callbacks run synchronously on the goroutine that observed the
// change; keep them short.
func (p *PolicyService) Subscribe(fn func(model.VerificationFlag)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, fn)
}

// Refresh re-reads the flag and fans out to subscribers on change. Called
// by the watcher on NOTIFY and on its periodic tick.
func (p *PolicyService) Refresh(ctx context.Context) {
	if p.store == nil {
		return
	}
	flag, err := p.store.Get(ctx)
	if err != nil {
		log.Printf("policy: refresh failed: %v", err)
		return
	}
	p.apply(flag)
}

// VendorBlocked reports whether an unverified vendor must be denied the
// reporting surface under the given flag.
func VendorBlocked(flag model.VerificationFlag, profile *model.VendorProfile) bool {
	if flag.Mode != model.ModeBlocking {
		return false
	}
	return profile == nil || !profile.Trusted()
}

func (p *PolicyService) snapshot() model.VerificationFlag {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

func (p *PolicyService) apply(flag model.VerificationFlag) {
	p.mu.Lock()
	changed := flag != p.current
	p.current = flag
	subs := p.subs
	p.mu.Unlock()

	if !changed {
		return
	}
	log.Printf("policy: flag changed to mode=%s method=%s", flag.Mode, flag.Method)
	for _, fn := range subs {
		fn(flag)
	}
}
