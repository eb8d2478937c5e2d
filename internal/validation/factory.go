package validation

import (
	"sort"
	"sync"
)

// Entity-type registry keys.
const (
	EntityTask              = "task"
	EntityListing           = "listing"
	EntityProduct           = "product"
	EntityOrder             = "order"
	EntityOrderItem         = "order_item"
	EntityPayment           = "payment"
	EntityProfile           = "profile"
	EntityReview            = "review"
	EntityCertification     = "certification"
	EntityQualityReport     = "quality_report"
	EntityNegotiation       = "negotiation"
	EntityShipment          = "shipment"
	EntityMessage           = "message"
	EntityDispute           = "dispute"
	EntityRetailerInventory = "retailer_inventory"
	EntityColdChainLog      = "cold_chain_log"
	EntityBlockchainTx      = "blockchain_tx"
)

// Registry lazily constructs and caches one validator per entity type. It is
// built once at startup and passed by reference; first-access construction is
// mutex-guarded for multi-goroutine hosts.
type Registry struct {
	limits       Limits
	mu           sync.Mutex
	cache        map[string]Validator
	constructors map[string]func(Limits) Validator
}

// NewRegistry creates a registry constructing validators with the given
// business limits.
func NewRegistry(limits Limits) *Registry {
	return &Registry{
		limits: limits,
		cache:  make(map[string]Validator),
		constructors: map[string]func(Limits) Validator{
			EntityTask:              func(l Limits) Validator { return NewTaskValidator(l) },
			EntityListing:           func(l Limits) Validator { return NewListingValidator(l) },
			EntityProduct:           func(l Limits) Validator { return NewProductValidator(l) },
			EntityOrder:             func(l Limits) Validator { return NewOrderValidator(l) },
			EntityOrderItem:         func(l Limits) Validator { return NewOrderItemValidator(l) },
			EntityPayment:           func(l Limits) Validator { return NewPaymentValidator(l) },
			EntityProfile:           func(l Limits) Validator { return NewProfileValidator(l) },
			EntityReview:            func(l Limits) Validator { return NewReviewValidator(l) },
			EntityCertification:     func(l Limits) Validator { return NewCertificationValidator(l) },
			EntityQualityReport:     func(l Limits) Validator { return NewQualityReportValidator(l) },
			EntityNegotiation:       func(l Limits) Validator { return NewNegotiationValidator(l) },
			EntityShipment:          func(l Limits) Validator { return NewShipmentValidator(l) },
			EntityMessage:           func(l Limits) Validator { return NewMessageValidator(l) },
			EntityDispute:           func(l Limits) Validator { return NewDisputeValidator(l) },
			EntityRetailerInventory: func(l Limits) Validator { return NewRetailerInventoryValidator(l) },
			EntityColdChainLog:      func(l Limits) Validator { return NewColdChainLogValidator(l) },
			EntityBlockchainTx:      func(l Limits) Validator { return NewBlockchainTxValidator(l) },
		},
	}
}

// Get returns the cached validator for the entity type, constructing it on
// first access. Unknown keys return nil.
func (r *Registry) Get(entityType string) Validator {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.cache[entityType]; ok {
		return v
	}
	ctor, ok := r.constructors[entityType]
	if !ok {
		return nil
	}
	v := ctor(r.limits)
	r.cache[entityType] = v
	return v
}

// GetOrGeneric returns the entity's validator, or a pass-everything generic
// validator for unrecognized keys.
func (r *Registry) GetOrGeneric(entityType string) Validator {
	if v := r.Get(entityType); v != nil {
		return v
	}
	return genericValidator{}
}

// Keys lists every supported entity type, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.constructors))
	for k := range r.constructors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset clears the cache. Intended for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]Validator)
}
